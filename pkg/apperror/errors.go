package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Banking API (BANK) ----

// ErrBankAPI reports a non-2xx answer from the banking API. The upstream
// message is shown to the user, the same way the account UI surfaces it.
func ErrBankAPI(message string, err error) *AppError {
	return Wrap("BANK_001", message, http.StatusBadGateway, err)
}

func ErrBankUnavailable(err error) *AppError {
	return Wrap("BANK_002", "Banking API unreachable", http.StatusGatewayTimeout, err)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("BANK_003", "Transfer to savings goal failed", http.StatusBadGateway, err)
}

func ErrGoalUnavailable(err error) *AppError {
	return Wrap("BANK_004", "Round-up savings goal unavailable", http.StatusBadGateway, err)
}

// ---- Transfer workflow (XFER) ----

func ErrNoAccountSelected() *AppError {
	return New("XFER_001", "No account selected", http.StatusBadRequest)
}

func ErrNothingToTransfer() *AppError {
	return New("XFER_002", "Round-up amount must be greater than zero", http.StatusUnprocessableEntity)
}

// ---- Request (REQ) ----

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("REQ_003", "Request body too large", http.StatusRequestEntityTooLarge)
}

func ErrNotFound(entity string) *AppError {
	return New("REQ_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
