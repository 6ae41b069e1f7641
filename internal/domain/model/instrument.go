package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/paymentoptimizer/internal/domain/errors"
)

// LoyaltyInstrumentID is the reserved identifier of the loyalty points instrument.
const LoyaltyInstrumentID = "PUNKTY"

// Percent is a whole-number discount percentage.
type Percent int

// UnmarshalJSON accepts both 15 and "15".
func (p *Percent) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if bytes.Equal(raw, []byte("null")) || len(raw) == 0 {
		*p = 0
		return nil
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return fmt.Errorf("%w: %q", domainErrors.ErrInvalidDiscount, string(data))
	}
	*p = Percent(n)
	return nil
}

// MarshalJSON writes the percentage as a JSON number.
func (p Percent) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(p))
}

// PaymentInstrument is a balance-limited payment source offering a percentage discount.
type PaymentInstrument struct {
	ID       string          `json:"id"`
	Discount Percent         `json:"discount"`
	Limit    decimal.Decimal `json:"limit"`
}

// IsLoyalty reports whether the instrument is the loyalty points instrument.
func (p PaymentInstrument) IsLoyalty() bool {
	return p.ID == LoyaltyInstrumentID
}
