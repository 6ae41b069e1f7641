package model

import "github.com/shopspring/decimal"

// UsageEntry is the total committed against a single instrument.
type UsageEntry struct {
	InstrumentID string
	Amount       decimal.Decimal
}

// Usage accumulates committed spend per instrument.
// Identifiers are kept in first-use order.
type Usage struct {
	ids    []string
	totals map[string]decimal.Decimal
}

// NewUsage returns an empty usage ledger.
func NewUsage() *Usage {
	return &Usage{totals: make(map[string]decimal.Decimal)}
}

// Add increases the total for id by amount.
func (u *Usage) Add(id string, amount decimal.Decimal) {
	current, ok := u.totals[id]
	if !ok {
		u.ids = append(u.ids, id)
		current = decimal.Zero
	}
	u.totals[id] = current.Add(amount)
}

// Lookup returns the total recorded for id.
func (u *Usage) Lookup(id string) (decimal.Decimal, bool) {
	amount, ok := u.totals[id]
	return amount, ok
}

// Get returns the total recorded for id, zero when nothing was committed.
func (u *Usage) Get(id string) decimal.Decimal {
	if amount, ok := u.totals[id]; ok {
		return amount
	}
	return decimal.Zero
}

// Len returns the number of instruments with recorded usage.
func (u *Usage) Len() int {
	return len(u.ids)
}

// Entries returns recorded totals in first-use order.
func (u *Usage) Entries() []UsageEntry {
	entries := make([]UsageEntry, 0, len(u.ids))
	for _, id := range u.ids {
		entries = append(entries, UsageEntry{InstrumentID: id, Amount: u.totals[id]})
	}
	return entries
}
