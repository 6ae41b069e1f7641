package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/paymentoptimizer/internal/domain/model"
)

// FormatAmount renders amount with two decimals, rounding half-up.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// NonZero returns usage entries with a non-zero total, in first-use order.
func NonZero(usage *model.Usage) []model.UsageEntry {
	if usage == nil {
		return nil
	}
	entries := make([]model.UsageEntry, 0, usage.Len())
	for _, entry := range usage.Entries() {
		if !entry.Amount.IsZero() {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Lines returns "<method> <amount>" for every instrument with non-zero usage.
func Lines(usage *model.Usage) []string {
	entries := NonZero(usage)
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.InstrumentID+" "+FormatAmount(entry.Amount))
	}
	return lines
}

// Write prints usage lines to w.
func Write(w io.Writer, usage *model.Usage) error {
	for _, line := range Lines(usage) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
