package dto

import (
	"regexp"

	"roundup-saver/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("week_start", validateWeekStart)
	}
}

// validateSafeID allows bank uids: alphanumerics, underscore and dash.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeIDRe.MatchString(fl.Field().String())
}

// validateWeekStart accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
func validateWeekStart(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional; the current week is used
	}
	_, err := domain.ParseWeekStart(raw)
	return err == nil
}
