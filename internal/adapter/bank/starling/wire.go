package starling

import (
	"strings"
	"time"

	"roundup-saver/internal/core/domain"
)

// Wire types mirror the bank's camelCase JSON. Optional fields that are
// missing decode to zero values.

type wireAmount struct {
	Currency   string `json:"currency"`
	MinorUnits int64  `json:"minorUnits"`
}

func (a *wireAmount) toDomain() *domain.Amount {
	if a == nil {
		return nil
	}
	return &domain.Amount{Currency: a.Currency, MinorUnits: a.MinorUnits}
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type accountsResponse struct {
	Accounts []wireAccount `json:"accounts"`
}

type wireAccount struct {
	AccountUID       string `json:"accountUid"`
	AccountHolderUID string `json:"accountHolderUid"`
	DefaultCategory  string `json:"defaultCategory"`
	Currency         string `json:"currency"`
	Name             string `json:"name"`
}

func (a wireAccount) toDomain() domain.Account {
	return domain.Account{
		AccountUID:       a.AccountUID,
		AccountHolderUID: a.AccountHolderUID,
		DefaultCategory:  a.DefaultCategory,
		Currency:         a.Currency,
		Name:             a.Name,
	}
}

type feedResponse struct {
	FeedItems []wireFeedItem `json:"feedItems"`
}

type wireFeedItem struct {
	FeedItemUID      string      `json:"feedItemUid"`
	Amount           *wireAmount `json:"amount"`
	Direction        string      `json:"direction"`
	SpendingCategory string      `json:"spendingCategory"`
	Source           string      `json:"source"`
	Status           string      `json:"status"`
	Timestamp        string      `json:"timestamp"`
	TransactionTime  string      `json:"transactionTime"`
}

func (f wireFeedItem) toDomain() domain.FeedItem {
	item := domain.FeedItem{
		FeedItemUID:      f.FeedItemUID,
		Direction:        domain.Direction(strings.ToUpper(f.Direction)),
		SpendingCategory: f.SpendingCategory,
		Source:           f.Source,
		Status:           f.Status,
		Timestamp:        parseTime(f.Timestamp),
		TransactionTime:  parseTime(f.TransactionTime),
	}
	if f.Amount != nil {
		item.Amount = domain.Amount{Currency: f.Amount.Currency, MinorUnits: f.Amount.MinorUnits}
	}
	return item
}

type savingsGoalsResponse struct {
	SavingsGoalList []wireSavingsGoal `json:"savingsGoalList"`
}

type wireSavingsGoal struct {
	SavingsGoalUID string      `json:"savingsGoalUid"`
	Name           string      `json:"name"`
	Target         *wireAmount `json:"target"`
	TotalSaved     *wireAmount `json:"totalSaved"`
	State          string      `json:"state"`
}

func (g wireSavingsGoal) toDomain() domain.SavingsGoal {
	return domain.SavingsGoal{
		SavingsGoalUID: g.SavingsGoalUID,
		Name:           g.Name,
		Target:         g.Target.toDomain(),
		TotalSaved:     g.TotalSaved.toDomain(),
		State:          g.State,
	}
}

type createGoalRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type createGoalResponse struct {
	SavingsGoalUID string `json:"savingsGoalUid"`
	Success        *bool  `json:"success"`
}

type topUpRequest struct {
	Amount wireAmount `json:"amount"`
}

type topUpResponse struct {
	TransferUID string `json:"transferUid"`
	Success     *bool  `json:"success"`
}

type accountHolderNameResponse struct {
	AccountHolderName string `json:"accountHolderName"`
}

// parseTime returns nil for empty or unparseable timestamps.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
