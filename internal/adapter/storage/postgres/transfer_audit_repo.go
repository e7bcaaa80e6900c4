package postgres

import (
	"context"
	"fmt"

	"roundup-saver/internal/core/domain"
)

const transferColumns = `id, account_uid, savings_goal_uid, ledger_key, transfer_uid,
	amount, currency, status, failure_reason, created_at`

// TransferAuditRepo implements ports.TransferAuditRepository.
type TransferAuditRepo struct {
	pool Pool
}

// NewTransferAuditRepo creates a new TransferAuditRepo.
func NewTransferAuditRepo(pool Pool) *TransferAuditRepo {
	return &TransferAuditRepo{pool: pool}
}

// Create appends one transfer attempt.
func (r *TransferAuditRepo) Create(ctx context.Context, rec *domain.TransferRecord) error {
	query := `INSERT INTO roundup_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.AccountUID, rec.SavingsGoalUID, rec.LedgerKey, rec.TransferUID,
		rec.Amount, rec.Currency, string(rec.Status), rec.FailureReason, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer record: %w", err)
	}
	return nil
}

// ListByAccount returns up to limit records for an account, newest first.
func (r *TransferAuditRepo) ListByAccount(ctx context.Context, accountUID string, limit int) ([]domain.TransferRecord, error) {
	query := `SELECT ` + transferColumns + `
		FROM roundup_transfers WHERE account_uid = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountUID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transfer records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TransferRecord, 0, limit)
	for rows.Next() {
		var (
			rec    domain.TransferRecord
			status string
		)
		err := rows.Scan(
			&rec.ID, &rec.AccountUID, &rec.SavingsGoalUID, &rec.LedgerKey, &rec.TransferUID,
			&rec.Amount, &rec.Currency, &status, &rec.FailureReason, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transfer record: %w", err)
		}
		rec.Status = domain.TransferStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer records: %w", err)
	}
	return records, nil
}
