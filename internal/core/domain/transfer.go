package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus is the outcome of one transfer attempt.
type TransferStatus string

const (
	TransferStatusSuccess TransferStatus = "SUCCESS"
	TransferStatusFailed  TransferStatus = "FAILED"
)

// TransferRecord is an append-only audit row for one transfer attempt.
// It is never read back into the ledger.
type TransferRecord struct {
	ID             uuid.UUID      `json:"id"`
	AccountUID     string         `json:"account_uid"`
	SavingsGoalUID string         `json:"savings_goal_uid"`
	LedgerKey      string         `json:"ledger_key"`
	TransferUID    uuid.UUID      `json:"transfer_uid"`
	Amount         int64          `json:"amount"` // minor units
	Currency       string         `json:"currency"`
	Status         TransferStatus `json:"status"`
	FailureReason  *string        `json:"failure_reason,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// RoundUpTransferred is published after a transfer has been confirmed and committed.
type RoundUpTransferred struct {
	TransferUID    string    `json:"transfer_uid"`
	AccountUID     string    `json:"account_uid"`
	SavingsGoalUID string    `json:"savings_goal_uid"`
	WeekStart      string    `json:"week_start"`
	Amount         Amount    `json:"amount"`
	Processed      int64     `json:"processed_minor_units"`
	OccurredAt     time.Time `json:"occurred_at"`
}
