package ports

import (
	"context"

	"roundup-saver/internal/core/domain"
)

// GoalStore remembers which savings goal receives an account's round-ups.
type GoalStore interface {
	// Get returns the stored goal uid, or "" when none is stored.
	Get(ctx context.Context, accountUID string) (string, error)
	Set(ctx context.Context, accountUID, goalUID string) error
	Delete(ctx context.Context, accountUID string) error
}

// TransferAuditRepository keeps an append-only history of transfer attempts.
type TransferAuditRepository interface {
	Create(ctx context.Context, record *domain.TransferRecord) error
	// ListByAccount returns the newest records first.
	ListByAccount(ctx context.Context, accountUID string, limit int) ([]domain.TransferRecord, error)
}
