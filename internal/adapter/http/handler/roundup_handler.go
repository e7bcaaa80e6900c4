package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"roundup-saver/internal/adapter/http/dto"
	"roundup-saver/internal/core/domain"
	"roundup-saver/internal/core/ports"
	"roundup-saver/pkg/apperror"
	"roundup-saver/pkg/response"

	"github.com/gin-gonic/gin"
)

// RoundUpHandler serves weekly summaries, transfers and transfer history.
type RoundUpHandler struct {
	roundUpSvc ports.RoundUpService
	now        func() time.Time
}

// NewRoundUpHandler creates a new RoundUpHandler.
func NewRoundUpHandler(roundUpSvc ports.RoundUpService) *RoundUpHandler {
	return &RoundUpHandler{roundUpSvc: roundUpSvc, now: time.Now}
}

// Summary handles GET /api/v1/accounts/:accountId/roundup.
func (h *RoundUpHandler) Summary(c *gin.Context) {
	accountUID, ok := accountParam(c)
	if !ok {
		return
	}

	var q dto.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	week, err := h.resolveWeek(q.WeekStart)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := ports.DirectionFilter(strings.ToUpper(q.Direction))
	if filter == "" {
		filter = ports.FilterAll
	}

	summary, err := h.roundUpSvc.Summary(c.Request.Context(), ports.SummaryRequest{
		AccountUID: accountUID,
		Week:       week,
		Direction:  filter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSummaryResponse(summary, filter))
}

// Transfer handles POST /api/v1/accounts/:accountId/roundup/transfer.
func (h *RoundUpHandler) Transfer(c *gin.Context) {
	accountUID, ok := accountParam(c)
	if !ok {
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return
		}
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	week, err := h.resolveWeek(req.WeekStart)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.roundUpSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		AccountUID: accountUID,
		Week:       week,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransferResponse(result))
}

// ListTransfers handles GET /api/v1/accounts/:accountId/transfers.
func (h *RoundUpHandler) ListTransfers(c *gin.Context) {
	accountUID, ok := accountParam(c)
	if !ok {
		return
	}

	var q dto.TransfersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	records, err := h.roundUpSvc.ListTransfers(c.Request.Context(), accountUID, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TransferRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, toTransferRecordResponse(&records[i]))
	}
	response.OK(c, out)
}

// resolveWeek parses week_start, defaulting to the current week.
func (h *RoundUpHandler) resolveWeek(raw string) (domain.Week, error) {
	if raw == "" {
		return domain.WeekOf(h.now()), nil
	}
	week, err := domain.ParseWeekStart(raw)
	if err != nil {
		return domain.Week{}, apperror.Validation(err.Error())
	}
	return week, nil
}

// accountParam reads :accountId, writing a validation error when malformed.
func accountParam(c *gin.Context) (string, bool) {
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return "", false
	}
	return uri.AccountID, true
}
