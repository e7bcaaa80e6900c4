package ports

import (
	"context"
	"time"

	"roundup-saver/internal/core/domain"

	"github.com/google/uuid"
)

// BankClient is the banking API the service sweeps round-ups through.
// Implementations return *apperror.AppError values for upstream failures.
type BankClient interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// ListTransactionsBetween returns feed items with from <= timestamp < to.
	ListTransactionsBetween(ctx context.Context, accountUID, categoryUID string, from, to time.Time) ([]domain.FeedItem, error)
	ListSavingsGoals(ctx context.Context, accountUID string) ([]domain.SavingsGoal, error)
	CreateSavingsGoal(ctx context.Context, accountUID, name, currency string) (*domain.SavingsGoal, error)
	// TransferToSavingsGoal moves amount into the goal. transferUID must be
	// fresh for every attempt; the bank deduplicates on it.
	TransferToSavingsGoal(ctx context.Context, accountUID, goalUID string, transferUID uuid.UUID, amount domain.Amount) error
	AccountHolderName(ctx context.Context) (string, error)
}
