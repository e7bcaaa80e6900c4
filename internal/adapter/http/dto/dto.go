package dto

// ---- Requests ----

// AccountURI is the :accountId path parameter shared by the account routes.
type AccountURI struct {
	AccountID string `uri:"accountId" binding:"required,safe_id"`
}

// SummaryQuery is the query string of GET /accounts/:accountId/roundup.
type SummaryQuery struct {
	WeekStart string `form:"week_start" binding:"omitempty,week_start"`
	Direction string `form:"direction" binding:"omitempty,oneof=ALL IN OUT all in out"`
}

// TransferRequest is the body of POST /accounts/:accountId/roundup/transfer.
// An empty body transfers the current week.
type TransferRequest struct {
	WeekStart string `json:"week_start" binding:"omitempty,week_start"`
}

// TransfersQuery is the query string of GET /accounts/:accountId/transfers.
type TransfersQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

// ---- Responses ----

// AmountResponse carries minor units with a display string, e.g. "GBP 1.58".
type AmountResponse struct {
	Currency   string `json:"currency"`
	MinorUnits int64  `json:"minor_units"`
	Formatted  string `json:"formatted"`
}

type AccountResponse struct {
	AccountUID      string `json:"account_uid"`
	Name            string `json:"name,omitempty"`
	Currency        string `json:"currency"`
	DefaultCategory string `json:"default_category"`
}

// GreetingResponse always carries a name; Error explains a degraded lookup.
type GreetingResponse struct {
	Name     string `json:"name"`
	Degraded bool   `json:"degraded"`
	Error    string `json:"error,omitempty"`
}

type OverviewResponse struct {
	Greeting GreetingResponse  `json:"greeting"`
	Accounts []AccountResponse `json:"accounts"`
}

type TransactionResponse struct {
	FeedItemUID      string         `json:"feed_item_uid"`
	Direction        string         `json:"direction"`
	Amount           AmountResponse `json:"amount"`
	RoundUp          AmountResponse `json:"round_up"`
	SpendingCategory string         `json:"spending_category,omitempty"`
	Source           string         `json:"source,omitempty"`
	Status           string         `json:"status,omitempty"`
	OccurredAt       *string        `json:"occurred_at,omitempty"`
}

type CountsResponse struct {
	All int `json:"all"`
	In  int `json:"in"`
	Out int `json:"out"`
}

type GoalResponse struct {
	SavingsGoalUID string          `json:"savings_goal_uid"`
	Name           string          `json:"name"`
	State          string          `json:"state,omitempty"`
	Target         *AmountResponse `json:"target,omitempty"`
	TotalSaved     *AmountResponse `json:"total_saved,omitempty"`
}

// RoundUpSummaryResponse is the weekly round-up view of one account.
type RoundUpSummaryResponse struct {
	AccountUID   string                `json:"account_uid"`
	LedgerKey    string                `json:"ledger_key"`
	WeekStart    string                `json:"week_start"`
	WeekEnd      string                `json:"week_end"`
	Direction    string                `json:"direction"`
	Counts       CountsResponse        `json:"counts"`
	Transactions []TransactionResponse `json:"transactions"`
	RoundUp      AmountResponse        `json:"round_up"`
	Processed    AmountResponse        `json:"processed"`
	Pending      AmountResponse        `json:"pending"`
	CanTransfer  bool                  `json:"can_transfer"`
	Goal         *GoalResponse         `json:"goal,omitempty"`
}

type TransferResponse struct {
	TransferUID string         `json:"transfer_uid"`
	AccountUID  string         `json:"account_uid"`
	WeekStart   string         `json:"week_start"`
	Amount      AmountResponse `json:"amount"`
	Processed   AmountResponse `json:"processed"`
	Pending     AmountResponse `json:"pending"`
	Goal        GoalResponse   `json:"goal"`
}

type TransferRecordResponse struct {
	ID             string         `json:"id"`
	TransferUID    string         `json:"transfer_uid"`
	SavingsGoalUID string         `json:"savings_goal_uid"`
	LedgerKey      string         `json:"ledger_key"`
	Amount         AmountResponse `json:"amount"`
	Status         string         `json:"status"`
	FailureReason  *string        `json:"failure_reason,omitempty"`
	CreatedAt      string         `json:"created_at"`
}
