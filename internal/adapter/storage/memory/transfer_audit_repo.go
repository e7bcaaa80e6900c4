package memory

import (
	"context"
	"sort"
	"sync"

	"roundup-saver/internal/core/domain"
)

// TransferAuditRepo implements ports.TransferAuditRepository in memory.
type TransferAuditRepo struct {
	mu      sync.RWMutex
	records []domain.TransferRecord
}

func NewTransferAuditRepo() *TransferAuditRepo {
	return &TransferAuditRepo{}
}

// Create appends a copy of rec.
func (r *TransferAuditRepo) Create(_ context.Context, rec *domain.TransferRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

// ListByAccount returns up to limit records, newest first. Records created
// at the same instant keep reverse insertion order.
func (r *TransferAuditRepo) ListByAccount(_ context.Context, accountUID string, limit int) ([]domain.TransferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TransferRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].AccountUID == accountUID {
			out = append(out, r.records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
