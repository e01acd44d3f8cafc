package currency

import "fmt"

// Currency is the closed set of settlement currencies the platform supports.
type Currency string

const (
	Naira Currency = "naira"
	USDT  Currency = "usdt"
)

func Parse(s string) (Currency, error) {
	switch Currency(s) {
	case Naira, USDT:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unknown currency %q", s)
}

func (c Currency) Valid() bool {
	return c == Naira || c == USDT
}
