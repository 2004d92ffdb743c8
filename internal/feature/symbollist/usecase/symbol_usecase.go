// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"errors"
	"strings"

	"stock_compare/internal/feature/symbollist/domain/entity"
)

// ErrInvalidExchange is returned when the requested exchange code is malformed.
var ErrInvalidExchange = errors.New("invalid exchange")

// ListingRepository abstracts the source of exchange listings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ListingRepository interface {
	ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo ListingRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r ListingRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSymbols returns the symbols listed on the given exchange.
// An empty exchange means entity.DefaultExchange.
func (u *SymbolUsecase) ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	ex, err := NormalizeExchange(exchange)
	if err != nil {
		return nil, err
	}
	return u.repo.ListSymbols(ctx, ex)
}

// NormalizeExchange uppercases the exchange code and applies the default.
// Codes are letters and spaces only (e.g. "NYSE ARCA").
func NormalizeExchange(exchange string) (string, error) {
	ex := strings.ToUpper(strings.TrimSpace(exchange))
	if ex == "" {
		return entity.DefaultExchange, nil
	}
	if len(ex) > 16 {
		return "", ErrInvalidExchange
	}
	for _, r := range ex {
		if (r < 'A' || r > 'Z') && r != ' ' {
			return "", ErrInvalidExchange
		}
	}
	return ex, nil
}
