package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roundup-saver/internal/core/domain"
	"roundup-saver/internal/core/ledger"
	"roundup-saver/internal/core/ports"
	"roundup-saver/internal/core/ports/mocks"
	"roundup-saver/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAccountUID  = "acc-1"
	testCategoryUID = "cat-1"
)

var testWeek = domain.WeekStartingOn(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))

type roundUpFixture struct {
	bank    *mocks.MockBankClient
	goals   *mocks.MockGoalStore
	audit   *mocks.MockTransferAuditRepository
	events  *mocks.MockEventPublisher
	metrics *mocks.MockMetrics
	ledger  *ledger.Ledger
	svc     *RoundUpServiceImpl
}

func newRoundUpFixture(t *testing.T) *roundUpFixture {
	ctrl := gomock.NewController(t)
	f := &roundUpFixture{
		bank:    mocks.NewMockBankClient(ctrl),
		goals:   mocks.NewMockGoalStore(ctrl),
		audit:   mocks.NewMockTransferAuditRepository(ctrl),
		events:  mocks.NewMockEventPublisher(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
		ledger:  ledger.New(),
	}
	f.svc = NewRoundUpService(f.bank, f.ledger, f.goals, f.audit, f.events, f.metrics, "Round Up", newTestLogger())
	return f
}

func testAccount() domain.Account {
	return domain.Account{AccountUID: testAccountUID, DefaultCategory: testCategoryUID, Currency: "GBP", Name: "Personal"}
}

func outItem(uid string, minor int64) domain.FeedItem {
	return domain.FeedItem{FeedItemUID: uid, Direction: domain.DirectionOut, Amount: domain.Amount{Currency: "GBP", MinorUnits: minor}}
}

func inItem(uid string, minor int64) domain.FeedItem {
	return domain.FeedItem{FeedItemUID: uid, Direction: domain.DirectionIn, Amount: domain.Amount{Currency: "GBP", MinorUnits: minor}}
}

// weekFeed rounds up to 65 + 80 + 0 = 145.
func weekFeed() []domain.FeedItem {
	return []domain.FeedItem{
		outItem("f-1", 435),
		outItem("f-2", 520),
		outItem("f-3", 1000),
		inItem("f-4", 2000),
	}
}

func (f *roundUpFixture) expectAccountAndFeed(feed []domain.FeedItem) {
	f.bank.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{testAccount()}, nil)
	f.bank.EXPECT().
		ListTransactionsBetween(gomock.Any(), testAccountUID, testCategoryUID, testWeek.Start, testWeek.End).
		Return(feed, nil)
}

func roundUpGoal(uid string) domain.SavingsGoal {
	return domain.SavingsGoal{SavingsGoalUID: uid, Name: "Round Up", TotalSaved: &domain.Amount{Currency: "GBP"}}
}

// ---- Summary ----

func TestRoundUpService_Summary_Success(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil)
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-1", nil)
	f.metrics.EXPECT().SummaryComputed(int64(145), int64(145))

	summary, err := f.svc.Summary(context.Background(), ports.SummaryRequest{
		AccountUID: testAccountUID,
		Week:       testWeek,
		Direction:  ports.FilterOut,
	})
	require.NoError(t, err)

	assert.Equal(t, "acc-1:2024-01-08", summary.LedgerKey)
	assert.Equal(t, "GBP", summary.Currency)
	assert.Equal(t, int64(145), summary.RawMinorUnits)
	assert.Equal(t, int64(0), summary.ProcessedMinorUnits)
	assert.Equal(t, int64(145), summary.PendingMinorUnits)
	assert.Equal(t, ports.TransactionCounts{All: 4, In: 1, Out: 3}, summary.Counts)

	require.Len(t, summary.Transactions, 3)
	assert.Equal(t, int64(65), summary.Transactions[0].RoundUpMinorUnits)
	assert.Equal(t, int64(80), summary.Transactions[1].RoundUpMinorUnits)
	assert.Equal(t, int64(0), summary.Transactions[2].RoundUpMinorUnits)

	require.NotNil(t, summary.Goal)
	assert.Equal(t, "goal-1", summary.Goal.SavingsGoalUID)
}

func TestRoundUpService_Summary_ReflectsProcessed(t *testing.T) {
	f := newRoundUpFixture(t)
	f.ledger.Commit(testAccountUID, testWeek.Start, 100)

	f.expectAccountAndFeed(weekFeed())
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return(nil, nil)
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("", nil)
	f.metrics.EXPECT().SummaryComputed(int64(145), int64(45))

	summary, err := f.svc.Summary(context.Background(), ports.SummaryRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)

	assert.Equal(t, int64(100), summary.ProcessedMinorUnits)
	assert.Equal(t, int64(45), summary.PendingMinorUnits)
	assert.Len(t, summary.Transactions, 4, "empty filter lists everything")
	assert.Nil(t, summary.Goal)
}

func TestRoundUpService_Summary_GoalLookupFailureDegrades(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return(nil, errors.New("boom"))
	f.metrics.EXPECT().SummaryComputed(int64(145), int64(145))

	summary, err := f.svc.Summary(context.Background(), ports.SummaryRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)
	assert.Nil(t, summary.Goal)
}

func TestRoundUpService_Summary_NameMatchIsRemembered(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{
		{SavingsGoalUID: "goal-h", Name: "Holiday"},
		roundUpGoal("goal-r"),
	}, nil)
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("", nil)
	f.goals.EXPECT().Set(gomock.Any(), testAccountUID, "goal-r").Return(nil)
	f.metrics.EXPECT().SummaryComputed(int64(0), int64(0))

	summary, err := f.svc.Summary(context.Background(), ports.SummaryRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)
	require.NotNil(t, summary.Goal)
	assert.Equal(t, "goal-r", summary.Goal.SavingsGoalUID)
}

func TestRoundUpService_Summary_MissingCurrencyDefaultsToAccount(t *testing.T) {
	f := newRoundUpFixture(t)
	f.bank.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{
		{AccountUID: testAccountUID, DefaultCategory: testCategoryUID, Currency: "EUR"},
	}, nil)
	f.bank.EXPECT().ListTransactionsBetween(gomock.Any(), testAccountUID, testCategoryUID, testWeek.Start, testWeek.End).
		Return([]domain.FeedItem{{FeedItemUID: "f-1", Direction: domain.DirectionOut, Amount: domain.Amount{MinorUnits: 199}}}, nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return(nil, nil)
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("", nil)
	f.metrics.EXPECT().SummaryComputed(int64(1), int64(1))

	summary, err := f.svc.Summary(context.Background(), ports.SummaryRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)
	assert.Equal(t, "EUR", summary.Currency)
	assert.Equal(t, "EUR", summary.Transactions[0].Item.Amount.Currency)
}

func TestRoundUpService_Summary_NoAccountSelected(t *testing.T) {
	f := newRoundUpFixture(t)

	_, err := f.svc.Summary(context.Background(), ports.SummaryRequest{Week: testWeek})
	assert.True(t, apperror.HasCode(err, "XFER_001"))
}

func TestRoundUpService_Summary_UnknownAccount(t *testing.T) {
	f := newRoundUpFixture(t)
	f.bank.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{testAccount()}, nil)

	_, err := f.svc.Summary(context.Background(), ports.SummaryRequest{AccountUID: "nope", Week: testWeek})
	assert.True(t, apperror.HasCode(err, "REQ_002"))
}

func TestRoundUpService_Summary_FeedError(t *testing.T) {
	f := newRoundUpFixture(t)
	f.bank.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{testAccount()}, nil)
	f.bank.EXPECT().ListTransactionsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrBankUnavailable(errors.New("timeout")))

	_, err := f.svc.Summary(context.Background(), ports.SummaryRequest{AccountUID: testAccountUID, Week: testWeek})
	assert.True(t, apperror.HasCode(err, "BANK_002"))
}

// ---- Transfer ----

func TestRoundUpService_Transfer_Success(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("", nil)
	f.goals.EXPECT().Set(gomock.Any(), testAccountUID, "goal-1").Return(nil)

	gomock.InOrder(
		f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).
			Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil),
		f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).
			Return([]domain.SavingsGoal{{
				SavingsGoalUID: "goal-1",
				Name:           "Round Up",
				TotalSaved:     &domain.Amount{Currency: "GBP", MinorUnits: 145},
			}}, nil),
	)

	var sentUID uuid.UUID
	f.bank.EXPECT().
		TransferToSavingsGoal(gomock.Any(), testAccountUID, "goal-1", gomock.Any(), domain.Amount{Currency: "GBP", MinorUnits: 145}).
		DoAndReturn(func(_ context.Context, _, _ string, transferUID uuid.UUID, _ domain.Amount) error {
			assert.Zero(t, f.ledger.Processed(ledger.KeyFor(testAccountUID, testWeek.Start)), "no commit before confirmation")
			sentUID = transferUID
			return nil
		})

	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *domain.TransferRecord) error {
		assert.Equal(t, domain.TransferStatusSuccess, rec.Status)
		assert.Equal(t, int64(145), rec.Amount)
		assert.Equal(t, "acc-1:2024-01-08", rec.LedgerKey)
		assert.Equal(t, sentUID, rec.TransferUID)
		assert.Nil(t, rec.FailureReason)
		return nil
	})
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultSuccess, int64(145))
	f.events.EXPECT().PublishRoundUpTransferred(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev domain.RoundUpTransferred) error {
		assert.Equal(t, sentUID.String(), ev.TransferUID)
		assert.Equal(t, "2024-01-08", ev.WeekStart)
		assert.Equal(t, int64(145), ev.Processed)
		return nil
	})

	result, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)

	assert.Equal(t, sentUID, result.TransferUID)
	assert.NotEqual(t, uuid.Nil, result.TransferUID)
	assert.Equal(t, int64(145), result.Amount.MinorUnits)
	assert.Equal(t, int64(145), result.ProcessedMinorUnits)
	assert.Equal(t, int64(0), result.PendingMinorUnits)
	require.NotNil(t, result.Goal.TotalSaved)
	assert.Equal(t, int64(145), result.Goal.TotalSaved.MinorUnits, "goal is refreshed after the transfer")
	assert.Equal(t, int64(145), f.ledger.Processed(ledger.KeyFor(testAccountUID, testWeek.Start)))
}

func TestRoundUpService_Transfer_OnlyNewRoundUpIsSent(t *testing.T) {
	f := newRoundUpFixture(t)
	f.ledger.Commit(testAccountUID, testWeek.Start, 145)

	// A new purchase of 2.10 adds 90 to the week.
	feed := append(weekFeed(), outItem("f-5", 210))
	f.expectAccountAndFeed(feed)
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-1", nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil).Times(2)
	f.bank.EXPECT().
		TransferToSavingsGoal(gomock.Any(), testAccountUID, "goal-1", gomock.Any(), domain.Amount{Currency: "GBP", MinorUnits: 90}).
		Return(nil)
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultSuccess, int64(90))
	f.events.EXPECT().PublishRoundUpTransferred(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)
	assert.Equal(t, int64(235), result.ProcessedMinorUnits)
}

func TestRoundUpService_Transfer_NothingPending(t *testing.T) {
	f := newRoundUpFixture(t)
	f.ledger.Commit(testAccountUID, testWeek.Start, 145)
	f.expectAccountAndFeed(weekFeed())
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultRejected, int64(0))

	result, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	assert.Nil(t, result)
	assert.True(t, apperror.HasCode(err, "XFER_002"))
	assert.Equal(t, int64(145), f.ledger.Processed(ledger.KeyFor(testAccountUID, testWeek.Start)))
}

func TestRoundUpService_Transfer_OnlyIncomingIsRejected(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed([]domain.FeedItem{inItem("f-1", 1234)})
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultRejected, int64(0))

	_, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	assert.True(t, apperror.HasCode(err, "XFER_002"))
	assert.Zero(t, f.ledger.Len())
}

func TestRoundUpService_Transfer_BankFailureLeavesLedgerUntouched(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-1", nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil)
	f.bank.EXPECT().TransferToSavingsGoal(gomock.Any(), testAccountUID, "goal-1", gomock.Any(), gomock.Any()).
		Return(apperror.ErrBankAPI("Starling API error: insufficient funds", errors.New("status 400")))
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *domain.TransferRecord) error {
		assert.Equal(t, domain.TransferStatusFailed, rec.Status)
		require.NotNil(t, rec.FailureReason)
		assert.Equal(t, "Starling API error: insufficient funds", *rec.FailureReason)
		return nil
	})
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultFailed, int64(145))

	result, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	assert.Nil(t, result)
	assert.True(t, apperror.HasCode(err, "BANK_003"))
	assert.Equal(t, int64(0), f.ledger.Processed(ledger.KeyFor(testAccountUID, testWeek.Start)))
	assert.Equal(t, int64(145), f.ledger.Pending(testAccountUID, testWeek.Start, 145))
}

func TestRoundUpService_Transfer_FreshTokenPerAttempt(t *testing.T) {
	f := newRoundUpFixture(t)
	f.bank.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{testAccount()}, nil).Times(2)
	f.bank.EXPECT().ListTransactionsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(weekFeed(), nil).Times(2)
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-1", nil).Times(2)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil).Times(2)
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultFailed, int64(145)).Times(2)

	var tokens []uuid.UUID
	f.bank.EXPECT().TransferToSavingsGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, transferUID uuid.UUID, _ domain.Amount) error {
			tokens = append(tokens, transferUID)
			return errors.New("network down")
		}).Times(2)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
		require.Error(t, err)
	}

	require.Len(t, tokens, 2)
	assert.NotEqual(t, tokens[0], tokens[1])
}

func TestRoundUpService_Transfer_CreatesGoalWhenMissing(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("", nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).
		Return([]domain.SavingsGoal{{SavingsGoalUID: "goal-h", Name: "Holiday"}}, nil)
	f.bank.EXPECT().CreateSavingsGoal(gomock.Any(), testAccountUID, "Round Up", "GBP").
		Return(&domain.SavingsGoal{SavingsGoalUID: "goal-new", Name: "Round Up"}, nil)
	f.goals.EXPECT().Set(gomock.Any(), testAccountUID, "goal-new").Return(nil)
	f.bank.EXPECT().TransferToSavingsGoal(gomock.Any(), testAccountUID, "goal-new", gomock.Any(), gomock.Any()).Return(nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return(nil, errors.New("refresh failed"))
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultSuccess, int64(145))
	f.events.EXPECT().PublishRoundUpTransferred(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)
	assert.Equal(t, "goal-new", result.Goal.SavingsGoalUID, "refresh failure keeps the known goal")
}

func TestRoundUpService_Transfer_StaleStoredGoalFallsBackToName(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-deleted", nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil).Times(2)
	gomock.InOrder(
		f.goals.EXPECT().Delete(gomock.Any(), testAccountUID).Return(nil),
		f.goals.EXPECT().Set(gomock.Any(), testAccountUID, "goal-1").Return(nil),
	)
	f.bank.EXPECT().TransferToSavingsGoal(gomock.Any(), testAccountUID, "goal-1", gomock.Any(), gomock.Any()).Return(nil)
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultSuccess, int64(145))
	f.events.EXPECT().PublishRoundUpTransferred(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	assert.NoError(t, err)
}

func TestRoundUpService_Summary_StaleStoredGoalIsForgotten(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-deleted", nil)
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).
		Return([]domain.SavingsGoal{{SavingsGoalUID: "goal-h", Name: "Holiday"}}, nil)
	f.goals.EXPECT().Delete(gomock.Any(), testAccountUID).Return(errors.New("redis down"))
	f.metrics.EXPECT().SummaryComputed(gomock.Any(), gomock.Any())

	summary, err := f.svc.Summary(context.Background(), ports.SummaryRequest{
		AccountUID: testAccountUID,
		Week:       testWeek,
		Direction:  ports.FilterOut,
	})
	require.NoError(t, err, "a failed delete does not fail the request")
	assert.Nil(t, summary.Goal)
}

func TestRoundUpService_Transfer_GoalUnavailable(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return(nil, errors.New("boom"))
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultFailed, int64(145))

	_, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	assert.True(t, apperror.HasCode(err, "BANK_004"))
	assert.Zero(t, f.ledger.Len())
}

func TestRoundUpService_Transfer_SideEffectFailuresKeepCommit(t *testing.T) {
	f := newRoundUpFixture(t)
	f.expectAccountAndFeed(weekFeed())
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("", errors.New("redis down"))
	f.goals.EXPECT().Set(gomock.Any(), testAccountUID, "goal-1").Return(errors.New("redis down"))
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil).Times(2)
	f.bank.EXPECT().TransferToSavingsGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	f.metrics.EXPECT().TransferAttempted(ports.TransferResultSuccess, int64(145))
	f.events.EXPECT().PublishRoundUpTransferred(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	result, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
	require.NoError(t, err)
	assert.Equal(t, int64(145), result.ProcessedMinorUnits)
	assert.Equal(t, int64(145), f.ledger.Processed(ledger.KeyFor(testAccountUID, testWeek.Start)))
}

func TestRoundUpService_Transfer_NoAccountSelected(t *testing.T) {
	f := newRoundUpFixture(t)

	_, err := f.svc.Transfer(context.Background(), ports.TransferRequest{Week: testWeek})
	assert.True(t, apperror.HasCode(err, "XFER_001"))
}

func TestRoundUpService_Transfer_ConcurrentRequestsTransferOnce(t *testing.T) {
	f := newRoundUpFixture(t)
	f.bank.EXPECT().ListAccounts(gomock.Any()).Return([]domain.Account{testAccount()}, nil).AnyTimes()
	f.bank.EXPECT().ListTransactionsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, time.Time, time.Time) ([]domain.FeedItem, error) {
			return weekFeed(), nil
		}).AnyTimes()
	f.goals.EXPECT().Get(gomock.Any(), testAccountUID).Return("goal-1", nil).AnyTimes()
	f.bank.EXPECT().ListSavingsGoals(gomock.Any(), testAccountUID).Return([]domain.SavingsGoal{roundUpGoal("goal-1")}, nil).AnyTimes()
	f.bank.EXPECT().TransferToSavingsGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string, uuid.UUID, domain.Amount) error {
			time.Sleep(5 * time.Millisecond)
			return nil
		}).Times(1)
	f.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.events.EXPECT().PublishRoundUpTransferred(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.metrics.EXPECT().TransferAttempted(gomock.Any(), gomock.Any()).AnyTimes()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Transfer(context.Background(), ports.TransferRequest{AccountUID: testAccountUID, Week: testWeek})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperror.HasCode(err, "XFER_002"):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, rejected)
	assert.Equal(t, int64(145), f.ledger.Processed(ledger.KeyFor(testAccountUID, testWeek.Start)))
	assert.Zero(t, f.svc.locks.size())
}

// ---- ListTransfers ----

func TestRoundUpService_ListTransfers_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultTransferLimit},
		{"negative", -5, DefaultTransferLimit},
		{"within range", 7, 7},
		{"capped", 500, MaxTransferLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoundUpFixture(t)
			records := []domain.TransferRecord{{ID: uuid.New(), AccountUID: testAccountUID}}
			f.audit.EXPECT().ListByAccount(gomock.Any(), testAccountUID, tt.want).Return(records, nil)

			got, err := f.svc.ListTransfers(context.Background(), testAccountUID, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestRoundUpService_ListTransfers_RepositoryError(t *testing.T) {
	f := newRoundUpFixture(t)
	f.audit.EXPECT().ListByAccount(gomock.Any(), testAccountUID, DefaultTransferLimit).Return(nil, errors.New("db down"))

	_, err := f.svc.ListTransfers(context.Background(), testAccountUID, 0)
	assert.True(t, apperror.HasCode(err, "SYS_001"))
}

func TestRoundUpService_ListTransfers_NoAccount(t *testing.T) {
	f := newRoundUpFixture(t)

	_, err := f.svc.ListTransfers(context.Background(), "", 10)
	assert.True(t, apperror.HasCode(err, "XFER_001"))
}
