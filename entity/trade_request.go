// Package entity defines data models for the payment signing service.
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeRequest is the client payload of a create-payment call.
type TradeRequest struct {
	Amount    Amount `json:"amount"`
	Email     string `json:"email"`
	ItemDesc  string `json:"itemDesc"`
	SessionId string `json:"sessionId"`
}

// Amount accepts a JSON number or a numeric string. The raw text is kept so that
// an empty or zero amount can be told apart from a malformed one.
type Amount struct {
	raw string
}

func NewAmount(raw string) Amount {
	return Amount{raw: strings.TrimSpace(raw)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.raw = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.raw = strings.TrimSpace(s)
		return nil
	}
	// numbers pass through; booleans, objects and arrays are rejected at validation
	a.raw = string(data)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.raw)
}

// IsEmpty reports whether the amount is absent, empty or numerically zero.
func (a Amount) IsEmpty() bool {
	if a.raw == "" || a.raw == "false" {
		return true
	}
	d, err := decimal.NewFromString(a.raw)
	return err == nil && d.IsZero()
}

// maxAmountLen bounds the amount text, which is sent to the gateway unchanged.
const maxAmountLen = 20

// Decimal parses the amount, which must be a positive number in plain notation.
// The raw text, not the parsed value, is what goes to the gateway.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if len(a.raw) > maxAmountLen {
		return decimal.Zero, fmt.Errorf("amount is longer than %d characters", maxAmountLen)
	}
	if strings.ContainsAny(a.raw, "eE") {
		return decimal.Zero, fmt.Errorf("amount %q uses exponent notation", a.raw)
	}
	d, err := decimal.NewFromString(a.raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", a.raw, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount %s is not positive", d.String())
	}
	return d, nil
}

func (a Amount) String() string {
	return a.raw
}
