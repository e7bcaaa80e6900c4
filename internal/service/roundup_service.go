package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roundup-saver/internal/core/domain"
	"roundup-saver/internal/core/ledger"
	"roundup-saver/internal/core/ports"
	"roundup-saver/internal/core/roundup"
	"roundup-saver/pkg/apperror"
	"roundup-saver/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultTransferLimit = 20
	MaxTransferLimit     = 100
)

// RoundUpServiceImpl implements ports.RoundUpService.
type RoundUpServiceImpl struct {
	bank     ports.BankClient
	ledger   *ledger.Ledger
	goals    ports.GoalStore
	audit    ports.TransferAuditRepository
	events   ports.EventPublisher // nil = no events
	metrics  ports.Metrics        // nil = no metrics
	goalName string
	locks    *keyedMutex
	log      zerolog.Logger
}

// NewRoundUpService creates a new RoundUpServiceImpl. The ledger is owned by
// the caller and shared by every request.
func NewRoundUpService(
	bank ports.BankClient,
	ledger *ledger.Ledger,
	goals ports.GoalStore,
	audit ports.TransferAuditRepository,
	events ports.EventPublisher,
	metrics ports.Metrics,
	goalName string,
	log zerolog.Logger,
) *RoundUpServiceImpl {
	return &RoundUpServiceImpl{
		bank:     bank,
		ledger:   ledger,
		goals:    goals,
		audit:    audit,
		events:   events,
		metrics:  metrics,
		goalName: goalName,
		locks:    newKeyedMutex(),
		log:      log,
	}
}

// Summary builds the weekly view: feed, round-up totals and the goal if one is known.
func (s *RoundUpServiceImpl) Summary(ctx context.Context, req ports.SummaryRequest) (*ports.WeeklySummary, error) {
	if req.AccountUID == "" {
		return nil, apperror.ErrNoAccountSelected()
	}

	account, err := s.findAccount(ctx, req.AccountUID)
	if err != nil {
		return nil, err
	}

	items, err := s.fetchWeek(ctx, account, req.Week)
	if err != nil {
		return nil, err
	}

	raw := roundup.Calculate(items)
	key := ledger.KeyFor(account.AccountUID, req.Week.Start)
	processed := s.ledger.Processed(key)
	pending := s.ledger.Pending(account.AccountUID, req.Week.Start, raw)

	summary := &ports.WeeklySummary{
		Account:             *account,
		Week:                req.Week,
		LedgerKey:           string(key),
		Transactions:        make([]ports.TransactionView, 0, len(items)),
		Currency:            money.CurrencyOrDefault(account.Currency),
		RawMinorUnits:       raw,
		ProcessedMinorUnits: processed,
		PendingMinorUnits:   pending,
	}

	for _, item := range items {
		summary.Counts.All++
		switch item.Direction {
		case domain.DirectionIn:
			summary.Counts.In++
		case domain.DirectionOut:
			summary.Counts.Out++
		}
		if req.Direction.Matches(item) {
			summary.Transactions = append(summary.Transactions, ports.TransactionView{
				Item:              item,
				RoundUpMinorUnits: roundup.ForItem(item),
			})
		}
	}

	// Lookup only: the summary never creates a goal.
	goals, err := s.bank.ListSavingsGoals(ctx, account.AccountUID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_uid", account.AccountUID).Msg("savings goal lookup failed, summary has no goal")
	} else {
		summary.Goal = s.findGoal(ctx, account.AccountUID, goals)
	}

	if s.metrics != nil {
		s.metrics.SummaryComputed(raw, pending)
	}

	return summary, nil
}

// Transfer sweeps the pending round-up of one account-week into the round-up goal.
// The ledger is committed only after the bank confirms the transfer.
func (s *RoundUpServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	if req.AccountUID == "" {
		return nil, apperror.ErrNoAccountSelected()
	}

	account, err := s.findAccount(ctx, req.AccountUID)
	if err != nil {
		return nil, err
	}

	key := ledger.KeyFor(account.AccountUID, req.Week.Start)
	unlock := s.locks.Lock(string(key))
	defer unlock()

	items, err := s.fetchWeek(ctx, account, req.Week)
	if err != nil {
		return nil, err
	}

	raw := roundup.Calculate(items)
	pending := s.ledger.Pending(account.AccountUID, req.Week.Start, raw)
	if pending <= 0 {
		s.recordMetric(ports.TransferResultRejected, 0)
		return nil, apperror.ErrNothingToTransfer()
	}

	goal, err := s.resolveGoal(ctx, account)
	if err != nil {
		s.recordMetric(ports.TransferResultFailed, pending)
		return nil, err
	}

	amount := domain.Amount{Currency: money.CurrencyOrDefault(account.Currency), MinorUnits: pending}
	transferUID := uuid.New()

	// Post-transfer bookkeeping must not be skipped when the caller goes away.
	postCtx := context.WithoutCancel(ctx)

	if err := s.bank.TransferToSavingsGoal(ctx, account.AccountUID, goal.SavingsGoalUID, transferUID, amount); err != nil {
		s.log.Error().Err(err).
			Bool("upstream_timeout", apperror.HasCode(err, "BANK_002")).
			Str("ledger_key", string(key)).
			Str("transfer_uid", transferUID.String()).
			Int64("amount", pending).
			Msg("round-up transfer failed")

		reason := failureReason(err)
		s.recordAudit(postCtx, account.AccountUID, goal.SavingsGoalUID, key, transferUID, amount, domain.TransferStatusFailed, &reason)
		s.recordMetric(ports.TransferResultFailed, pending)
		return nil, apperror.ErrTransferFailed(err)
	}

	processed := s.ledger.Commit(account.AccountUID, req.Week.Start, pending)

	s.log.Info().
		Str("ledger_key", string(key)).
		Str("transfer_uid", transferUID.String()).
		Str("savings_goal_uid", goal.SavingsGoalUID).
		Int64("amount", pending).
		Int64("processed", processed).
		Msg("round-up transferred")

	s.recordAudit(postCtx, account.AccountUID, goal.SavingsGoalUID, key, transferUID, amount, domain.TransferStatusSuccess, nil)
	s.recordMetric(ports.TransferResultSuccess, pending)
	s.publish(postCtx, domain.RoundUpTransferred{
		TransferUID:    transferUID.String(),
		AccountUID:     account.AccountUID,
		SavingsGoalUID: goal.SavingsGoalUID,
		WeekStart:      req.Week.Date(),
		Amount:         amount,
		Processed:      processed,
		OccurredAt:     time.Now().UTC(),
	})

	return &ports.TransferResult{
		TransferUID:         transferUID,
		AccountUID:          account.AccountUID,
		Week:                req.Week,
		Goal:                s.refreshGoal(postCtx, account.AccountUID, *goal),
		Amount:              amount,
		ProcessedMinorUnits: processed,
		PendingMinorUnits:   s.ledger.Pending(account.AccountUID, req.Week.Start, raw),
	}, nil
}

// ListTransfers returns the newest audit rows for an account.
func (s *RoundUpServiceImpl) ListTransfers(ctx context.Context, accountUID string, limit int) ([]domain.TransferRecord, error) {
	if accountUID == "" {
		return nil, apperror.ErrNoAccountSelected()
	}
	if limit <= 0 {
		limit = DefaultTransferLimit
	}
	if limit > MaxTransferLimit {
		limit = MaxTransferLimit
	}

	records, err := s.audit.ListByAccount(ctx, accountUID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list transfers: %w", err))
	}
	return records, nil
}

func (s *RoundUpServiceImpl) findAccount(ctx context.Context, accountUID string) (*domain.Account, error) {
	accounts, err := s.bank.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	account := domain.FindAccount(accounts, accountUID)
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}
	return account, nil
}

// fetchWeek loads the week's feed and fills in missing currencies.
func (s *RoundUpServiceImpl) fetchWeek(ctx context.Context, account *domain.Account, week domain.Week) ([]domain.FeedItem, error) {
	items, err := s.bank.ListTransactionsBetween(ctx, account.AccountUID, account.DefaultCategory, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", week.Date(), err)
	}

	currency := money.CurrencyOrDefault(account.Currency)
	for i := range items {
		if items[i].Amount.Currency == "" {
			items[i].Amount.Currency = currency
		}
	}
	return items, nil
}

// findGoal picks the round-up goal among goals: the stored reference first,
// then an exact name match, which is remembered.
func (s *RoundUpServiceImpl) findGoal(ctx context.Context, accountUID string, goals []domain.SavingsGoal) *domain.SavingsGoal {
	stored, err := s.goals.Get(ctx, accountUID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_uid", accountUID).Msg("goal store read failed")
	}
	if stored != "" {
		if goal := domain.FindGoalByUID(goals, stored); goal != nil {
			return goal
		}
		s.log.Warn().Str("account_uid", accountUID).Str("savings_goal_uid", stored).Msg("stored savings goal no longer exists")
		s.forgetGoal(ctx, accountUID)
	}

	goal := domain.FindGoalByName(goals, s.goalName)
	if goal != nil {
		s.rememberGoal(ctx, accountUID, goal.SavingsGoalUID)
	}
	return goal
}

// resolveGoal returns the round-up goal, creating it when none exists.
func (s *RoundUpServiceImpl) resolveGoal(ctx context.Context, account *domain.Account) (*domain.SavingsGoal, error) {
	goals, err := s.bank.ListSavingsGoals(ctx, account.AccountUID)
	if err != nil {
		return nil, apperror.ErrGoalUnavailable(fmt.Errorf("list savings goals: %w", err))
	}

	if goal := s.findGoal(ctx, account.AccountUID, goals); goal != nil {
		return goal, nil
	}

	goal, err := s.bank.CreateSavingsGoal(ctx, account.AccountUID, s.goalName, money.CurrencyOrDefault(account.Currency))
	if err != nil {
		return nil, apperror.ErrGoalUnavailable(fmt.Errorf("create savings goal: %w", err))
	}
	s.rememberGoal(ctx, account.AccountUID, goal.SavingsGoalUID)

	s.log.Info().Str("account_uid", account.AccountUID).Str("savings_goal_uid", goal.SavingsGoalUID).Msg("round-up goal created")
	return goal, nil
}

func (s *RoundUpServiceImpl) rememberGoal(ctx context.Context, accountUID, goalUID string) {
	if err := s.goals.Set(ctx, accountUID, goalUID); err != nil {
		s.log.Warn().Err(err).Str("account_uid", accountUID).Msg("goal store write failed")
	}
}

func (s *RoundUpServiceImpl) forgetGoal(ctx context.Context, accountUID string) {
	if err := s.goals.Delete(ctx, accountUID); err != nil {
		s.log.Warn().Err(err).Str("account_uid", accountUID).Msg("goal store delete failed")
	}
}

// refreshGoal re-reads the goal so the caller sees its new total. The
// pre-transfer copy is returned when the lookup fails.
func (s *RoundUpServiceImpl) refreshGoal(ctx context.Context, accountUID string, goal domain.SavingsGoal) domain.SavingsGoal {
	goals, err := s.bank.ListSavingsGoals(ctx, accountUID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_uid", accountUID).Msg("savings goal refresh failed")
		return goal
	}
	if fresh := domain.FindGoalByUID(goals, goal.SavingsGoalUID); fresh != nil {
		return *fresh
	}
	return goal
}

func (s *RoundUpServiceImpl) recordAudit(
	ctx context.Context,
	accountUID, goalUID string,
	key ledger.Key,
	transferUID uuid.UUID,
	amount domain.Amount,
	status domain.TransferStatus,
	reason *string,
) {
	if s.audit == nil {
		return
	}
	record := &domain.TransferRecord{
		ID:             uuid.New(),
		AccountUID:     accountUID,
		SavingsGoalUID: goalUID,
		LedgerKey:      string(key),
		TransferUID:    transferUID,
		Amount:         amount.MinorUnits,
		Currency:       amount.Currency,
		Status:         status,
		FailureReason:  reason,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.audit.Create(ctx, record); err != nil {
		s.log.Error().Err(err).Str("transfer_uid", transferUID.String()).Msg("failed to write transfer audit")
	}
}

func (s *RoundUpServiceImpl) recordMetric(result string, amount int64) {
	if s.metrics != nil {
		s.metrics.TransferAttempted(result, amount)
	}
}

func (s *RoundUpServiceImpl) publish(ctx context.Context, event domain.RoundUpTransferred) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRoundUpTransferred(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("transfer_uid", event.TransferUID).Msg("failed to publish round-up event")
	}
}

// failureReason prefers the user-facing message of an AppError.
func failureReason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
