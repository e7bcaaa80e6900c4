package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"roundup-saver/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalStore(t *testing.T) {
	store := NewGoalStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Set(ctx, "acc-1", "goal-1"))
	require.NoError(t, store.Set(ctx, "acc-2", "goal-2"))
	got, _ = store.Get(ctx, "acc-1")
	assert.Equal(t, "goal-1", got)

	require.NoError(t, store.Delete(ctx, "acc-1"))
	got, _ = store.Get(ctx, "acc-1")
	assert.Empty(t, got)
	got, _ = store.Get(ctx, "acc-2")
	assert.Equal(t, "goal-2", got)
}

func TestTransferAuditRepo_NewestFirst(t *testing.T) {
	repo := NewTransferAuditRepo()
	ctx := context.Background()
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &domain.TransferRecord{
			ID:         uuid.New(),
			AccountUID: "acc-1",
			Amount:     int64(i + 1),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.TransferRecord{ID: uuid.New(), AccountUID: "acc-2", CreatedAt: base}))

	records, err := repo.ListByAccount(ctx, "acc-1", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int64{5, 4, 3}, []int64{records[0].Amount, records[1].Amount, records[2].Amount})

	all, err := repo.ListByAccount(ctx, "acc-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := repo.ListByAccount(ctx, "acc-3", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransferAuditRepo_StoresCopy(t *testing.T) {
	repo := NewTransferAuditRepo()
	rec := &domain.TransferRecord{ID: uuid.New(), AccountUID: "acc-1", Amount: 10}
	require.NoError(t, repo.Create(context.Background(), rec))

	rec.Amount = 999

	records, _ := repo.ListByAccount(context.Background(), "acc-1", 10)
	assert.Equal(t, int64(10), records[0].Amount)
}

func TestTransferAuditRepo_ConcurrentCreate(t *testing.T) {
	repo := NewTransferAuditRepo()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(context.Background(), &domain.TransferRecord{
				ID:         uuid.New(),
				AccountUID: fmt.Sprintf("acc-%d", i%2),
			})
		}(i)
	}
	wg.Wait()

	a, _ := repo.ListByAccount(context.Background(), "acc-0", 100)
	b, _ := repo.ListByAccount(context.Background(), "acc-1", 100)
	assert.Len(t, a, 25)
	assert.Len(t, b, 25)
}

func TestRateLimitStore(t *testing.T) {
	store := NewRateLimitStore()
	clock := time.Unix(1_700_000_040, 0)
	store.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := int64(1); i <= 2; i++ {
		res, err := store.Allow(ctx, "ip:transfer", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, _ := store.Allow(ctx, "ip:transfer", 2, time.Minute)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)
	assert.Equal(t, (clock.Unix()/60+1)*60, res.ResetAt)

	other, _ := store.Allow(ctx, "other:transfer", 2, time.Minute)
	assert.True(t, other.Allowed)

	clock = clock.Add(time.Minute)
	res, _ = store.Allow(ctx, "ip:transfer", 2, time.Minute)
	assert.True(t, res.Allowed, "a new window resets the count")
}
