// Package ledger tracks how much round-up has already been swept into
// savings per account and week, so repeated summaries and transfers never
// move the same money twice.
//
// Entries live for the lifetime of the owning Ledger value. Nothing is
// persisted: a restarted process starts from zero for every key.
package ledger

import (
	"sync"
	"time"
)

// Key identifies one account's week: "<accountUID>:<YYYY-MM-DD>".
// The date is the week start's calendar date in UTC, so any two week-start
// timestamps on the same UTC day share a key.
type Key string

// KeyFor derives the ledger key for an account and week start.
func KeyFor(accountUID string, weekStart time.Time) Key {
	return Key(accountUID + ":" + weekStart.UTC().Format("2006-01-02"))
}

func (k Key) String() string { return string(k) }

// Ledger is an in-memory map of processed round-up amounts in minor units.
// The zero value is not usable; call New.
type Ledger struct {
	mu        sync.RWMutex
	processed map[Key]int64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{processed: make(map[Key]int64)}
}

// Processed returns the amount already transferred for key, 0 if unseen.
func (l *Ledger) Processed(key Key) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.processed[key]
}

// SetProcessed stores amount for key, clamping negatives to 0.
func (l *Ledger) SetProcessed(key Key, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.processed[key] = clamp(amount)
}

// Pending returns the part of raw that has not been transferred yet, never below 0.
func (l *Ledger) Pending(accountUID string, weekStart time.Time, raw int64) int64 {
	pending := raw - l.Processed(KeyFor(accountUID, weekStart))
	if pending < 0 {
		return 0
	}
	return pending
}

// Commit adds a confirmed transfer to the week's processed total and returns
// the new total. Non-positive amounts leave the entry untouched.
func (l *Ledger) Commit(accountUID string, weekStart time.Time, amount int64) int64 {
	key := KeyFor(accountUID, weekStart)

	l.mu.Lock()
	defer l.mu.Unlock()
	if amount > 0 {
		l.processed[key] = clamp(l.processed[key] + amount)
	}
	return l.processed[key]
}

// Reset drops every entry.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.processed = make(map[Key]int64)
}

// Len returns the number of keys with an entry.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.processed)
}

func clamp(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	return amount
}
