package common

import "github.com/shopspring/decimal"

// NewDecimalFromString parses an optional decimal input. The empty string
// yields nil rather than zero, so callers can tell absent from "0".
func NewDecimalFromString(data string) (*decimal.Decimal, error) {
	if data == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(data)
	if err != nil {
		return nil, err
	}

	return &amount, nil
}
