package entity

import (
	"fmt"
	"strings"

	"stock_compare/internal/feature/comparison/domain"
)

const maxSymbolLen = 10

// NormalizeSymbol trims and uppercases a ticker symbol and checks that it can be
// sent as an API query parameter. Letters, digits, '.' and '-' are accepted
// (e.g. "AAPL", "BRK.B", "RDS-A").
func NormalizeSymbol(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || len(s) > maxSymbolLen {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, s)
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
		default:
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, s)
		}
	}
	return s, nil
}
