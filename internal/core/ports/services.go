package ports

import (
	"context"
	"time"

	"roundup-saver/internal/core/domain"

	"github.com/google/uuid"
)

// EventPublisher announces confirmed round-up transfers.
type EventPublisher interface {
	PublishRoundUpTransferred(ctx context.Context, event domain.RoundUpTransferred) error
}

// Metrics receives service and bank-call observations.
type Metrics interface {
	TransferAttempted(result string, amountMinorUnits int64)
	SummaryComputed(rawMinorUnits, pendingMinorUnits int64)
	BankRequest(operation string, statusCode int, duration time.Duration)
}

// Transfer results reported to Metrics.
const (
	TransferResultSuccess  = "success"
	TransferResultFailed   = "failed"
	TransferResultRejected = "rejected"
)

// --- Service Ports (Business Logic) ---

// RoundUpService computes weekly round-ups and sweeps them into savings.
type RoundUpService interface {
	Summary(ctx context.Context, req SummaryRequest) (*WeeklySummary, error)
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	ListTransfers(ctx context.Context, accountUID string, limit int) ([]domain.TransferRecord, error)
}

// DirectionFilter narrows the transactions listed in a summary.
type DirectionFilter string

const (
	FilterAll DirectionFilter = "ALL"
	FilterIn  DirectionFilter = "IN"
	FilterOut DirectionFilter = "OUT"
)

// Matches reports whether item passes the filter. The empty filter matches everything.
func (f DirectionFilter) Matches(item domain.FeedItem) bool {
	switch f {
	case FilterIn:
		return item.Direction == domain.DirectionIn
	case FilterOut:
		return item.Direction == domain.DirectionOut
	default:
		return true
	}
}

// SummaryRequest selects an account's week.
type SummaryRequest struct {
	AccountUID string
	Week       domain.Week
	Direction  DirectionFilter
}

// TransactionView is a feed item with its own round-up.
type TransactionView struct {
	Item              domain.FeedItem
	RoundUpMinorUnits int64
}

// TransactionCounts counts the week's feed before filtering.
type TransactionCounts struct {
	All int
	In  int
	Out int
}

// WeeklySummary is everything the account screen shows for one week.
type WeeklySummary struct {
	Account             domain.Account
	Week                domain.Week
	LedgerKey           string
	Transactions        []TransactionView
	Counts              TransactionCounts
	Currency            string
	RawMinorUnits       int64
	ProcessedMinorUnits int64
	PendingMinorUnits   int64
	Goal                *domain.SavingsGoal // nil until a round-up goal exists
}

// TransferRequest asks to sweep the pending round-up of an account's week.
type TransferRequest struct {
	AccountUID string
	Week       domain.Week
}

// TransferResult describes a confirmed transfer.
type TransferResult struct {
	TransferUID         uuid.UUID
	AccountUID          string
	Week                domain.Week
	Goal                domain.SavingsGoal
	Amount              domain.Amount
	ProcessedMinorUnits int64
	PendingMinorUnits   int64
}

// AccountService lists accounts and greets the account holder.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// Greeting never fails; a lookup error degrades to a generic name.
	Greeting(ctx context.Context) Greeting
	Overview(ctx context.Context) (*Overview, error)
}

// Greeting is the account holder's display name.
type Greeting struct {
	Name     string
	Degraded bool
	Error    string
}

// Overview is the landing view: greeting plus accounts.
type Overview struct {
	Greeting Greeting
	Accounts []domain.Account
}
