package handler

import (
	"roundup-saver/internal/adapter/http/dto"
	"roundup-saver/internal/core/ports"
	"roundup-saver/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the account list and greeting.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Overview handles GET /api/v1/overview.
func (h *AccountHandler) Overview(c *gin.Context) {
	overview, err := h.accountSvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OverviewResponse{
		Greeting: toGreetingResponse(overview.Greeting),
		Accounts: toAccountResponses(overview.Accounts),
	})
}

// AccountHolder handles GET /api/v1/account-holder. It never fails; a
// lookup error is reported inside the greeting.
func (h *AccountHandler) AccountHolder(c *gin.Context) {
	response.OK(c, toGreetingResponse(h.accountSvc.Greeting(c.Request.Context())))
}

// ListAccounts handles GET /api/v1/accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountSvc.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAccountResponses(accounts))
}
