package domain

import "time"

// Direction is the money flow of a feed item relative to the account.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Amount is a currency amount in minor units (pence for GBP).
type Amount struct {
	Currency   string `json:"currency"`
	MinorUnits int64  `json:"minor_units"`
}

// FeedItem is one transaction from the account feed. Records are sourced
// from the bank and never modified here.
type FeedItem struct {
	FeedItemUID      string     `json:"feed_item_uid"`
	Amount           Amount     `json:"amount"`
	Direction        Direction  `json:"direction"`
	SpendingCategory string     `json:"spending_category,omitempty"`
	Source           string     `json:"source,omitempty"`
	Status           string     `json:"status,omitempty"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
	TransactionTime  *time.Time `json:"transaction_time,omitempty"`
}

// IsOutgoing reports whether the item left the account.
func (f FeedItem) IsOutgoing() bool {
	return f.Direction == DirectionOut
}

// OccurredAt prefers the transaction time and falls back to the feed timestamp.
func (f FeedItem) OccurredAt() *time.Time {
	if f.TransactionTime != nil {
		return f.TransactionTime
	}
	return f.Timestamp
}
