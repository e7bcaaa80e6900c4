// Package roundup computes the spare change between outgoing transactions
// and the next whole currency unit.
package roundup

import "roundup-saver/internal/core/domain"

// unit is the number of minor units in one major unit. Currencies with two
// decimal subdivisions are assumed.
const unit = 100

// ForItem returns the round-up contributed by a single feed item: zero for
// incoming items, non-positive amounts and exact multiples of unit.
func ForItem(item domain.FeedItem) int64 {
	if !item.IsOutgoing() {
		return 0
	}
	minor := item.Amount.MinorUnits
	if minor <= 0 {
		return 0
	}
	remainder := minor % unit
	if remainder == 0 {
		return 0
	}
	return unit - remainder
}

// Calculate returns the total round-up of items in minor units.
// The result does not depend on the order of items.
func Calculate(items []domain.FeedItem) int64 {
	var total int64
	for _, item := range items {
		total += ForItem(item)
	}
	return total
}
