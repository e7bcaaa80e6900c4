package handler

import (
	"time"

	"roundup-saver/internal/adapter/http/dto"
	"roundup-saver/internal/core/domain"
	"roundup-saver/internal/core/ports"
	"roundup-saver/pkg/money"
)

func toAmountResponse(minorUnits int64, currency string) dto.AmountResponse {
	return dto.AmountResponse{
		Currency:   money.CurrencyOrDefault(currency),
		MinorUnits: minorUnits,
		Formatted:  money.Format(minorUnits, currency),
	}
}

func toOptionalAmount(a *domain.Amount) *dto.AmountResponse {
	if a == nil {
		return nil
	}
	resp := toAmountResponse(a.MinorUnits, a.Currency)
	return &resp
}

func toAccountResponses(accounts []domain.Account) []dto.AccountResponse {
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{
			AccountUID:      a.AccountUID,
			Name:            a.Name,
			Currency:        money.CurrencyOrDefault(a.Currency),
			DefaultCategory: a.DefaultCategory,
		})
	}
	return out
}

func toGreetingResponse(g ports.Greeting) dto.GreetingResponse {
	return dto.GreetingResponse{Name: g.Name, Degraded: g.Degraded, Error: g.Error}
}

func toGoalResponse(g *domain.SavingsGoal) *dto.GoalResponse {
	if g == nil {
		return nil
	}
	return &dto.GoalResponse{
		SavingsGoalUID: g.SavingsGoalUID,
		Name:           g.Name,
		State:          g.State,
		Target:         toOptionalAmount(g.Target),
		TotalSaved:     toOptionalAmount(g.TotalSaved),
	}
}

func toTransactionResponse(v ports.TransactionView) dto.TransactionResponse {
	item := v.Item
	resp := dto.TransactionResponse{
		FeedItemUID:      item.FeedItemUID,
		Direction:        string(item.Direction),
		Amount:           toAmountResponse(item.Amount.MinorUnits, item.Amount.Currency),
		RoundUp:          toAmountResponse(v.RoundUpMinorUnits, item.Amount.Currency),
		SpendingCategory: item.SpendingCategory,
		Source:           item.Source,
		Status:           item.Status,
	}
	if at := item.OccurredAt(); at != nil {
		s := at.UTC().Format(time.RFC3339)
		resp.OccurredAt = &s
	}
	return resp
}

func toSummaryResponse(s *ports.WeeklySummary, filter ports.DirectionFilter) dto.RoundUpSummaryResponse {
	txns := make([]dto.TransactionResponse, 0, len(s.Transactions))
	for _, v := range s.Transactions {
		txns = append(txns, toTransactionResponse(v))
	}

	return dto.RoundUpSummaryResponse{
		AccountUID:   s.Account.AccountUID,
		LedgerKey:    s.LedgerKey,
		WeekStart:    s.Week.Date(),
		WeekEnd:      s.Week.End.Format(time.RFC3339),
		Direction:    string(filter),
		Counts:       dto.CountsResponse{All: s.Counts.All, In: s.Counts.In, Out: s.Counts.Out},
		Transactions: txns,
		RoundUp:      toAmountResponse(s.RawMinorUnits, s.Currency),
		Processed:    toAmountResponse(s.ProcessedMinorUnits, s.Currency),
		Pending:      toAmountResponse(s.PendingMinorUnits, s.Currency),
		CanTransfer:  s.PendingMinorUnits > 0,
		Goal:         toGoalResponse(s.Goal),
	}
}

func toTransferResponse(r *ports.TransferResult) dto.TransferResponse {
	return dto.TransferResponse{
		TransferUID: r.TransferUID.String(),
		AccountUID:  r.AccountUID,
		WeekStart:   r.Week.Date(),
		Amount:      toAmountResponse(r.Amount.MinorUnits, r.Amount.Currency),
		Processed:   toAmountResponse(r.ProcessedMinorUnits, r.Amount.Currency),
		Pending:     toAmountResponse(r.PendingMinorUnits, r.Amount.Currency),
		Goal:        *toGoalResponse(&r.Goal),
	}
}

func toTransferRecordResponse(r *domain.TransferRecord) dto.TransferRecordResponse {
	return dto.TransferRecordResponse{
		ID:             r.ID.String(),
		TransferUID:    r.TransferUID.String(),
		SavingsGoalUID: r.SavingsGoalUID,
		LedgerKey:      r.LedgerKey,
		Amount:         toAmountResponse(r.Amount, r.Currency),
		Status:         string(r.Status),
		FailureReason:  r.FailureReason,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
