// Package usecase implements the stock comparison pipeline:
// fetch both price histories, align them, and derive growth and returns.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"stock_compare/internal/feature/comparison/domain"
	"stock_compare/internal/feature/comparison/domain/entity"
)

// MarketRepository は銘柄の日次終値を取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetDailyCloses(ctx context.Context, symbol string) (entity.PriceSeries, error)
}

// ComparisonUsecase compares the historical growth of two symbols.
type ComparisonUsecase struct {
	market MarketRepository
	base   float64
}

// NewComparisonUsecase creates a ComparisonUsecase normalizing to DefaultBaseValue.
func NewComparisonUsecase(market MarketRepository) *ComparisonUsecase {
	return &ComparisonUsecase{market: market, base: DefaultBaseValue}
}

// Compare fetches both symbols, aligns them on their common period and
// computes yearly growth, yearly returns and cumulative returns.
//
// It returns either a fully populated comparison and a nil error, or a nil
// comparison and one of domain.ErrFetchFailed, domain.ErrNoOverlap or
// domain.ErrInvalidSeries.
func (u *ComparisonUsecase) Compare(ctx context.Context, symbol1, symbol2 string) (*entity.Comparison, error) {
	s1, s2, err := u.fetchBoth(ctx, symbol1, symbol2)
	if err != nil {
		return nil, err
	}

	a1, a2, err := Align(s1, s2)
	if err != nil {
		return nil, err
	}

	g1, r1, err := ComputeGrowth(a1, u.base)
	if err != nil {
		return nil, err
	}
	g2, r2, err := ComputeGrowth(a2, u.base)
	if err != nil {
		return nil, err
	}
	if !sameYears(g1, g2) {
		slog.Warn("aligned series resampled to different years",
			"symbol1", symbol1, "years1", len(g1), "symbol2", symbol2, "years2", len(g2))
		return nil, fmt.Errorf("%w: %w", domain.ErrNoOverlap, domain.ErrYearMismatch)
	}

	return &entity.Comparison{
		Symbol1:     symbol1,
		Symbol2:     symbol2,
		Growth1:     g1,
		Growth2:     g2,
		Returns1:    r1,
		Returns2:    r2,
		Cumulative1: CumulativeReturns(g1),
		Cumulative2: CumulativeReturns(g2),
	}, nil
}

// fetchBoth は2銘柄を並行して取得します。どちらか一方でも失敗した場合は
// 原因をログに出力し、domain.ErrFetchFailed を返します。
func (u *ComparisonUsecase) fetchBoth(ctx context.Context, symbol1, symbol2 string) (entity.PriceSeries, entity.PriceSeries, error) {
	var s1, s2 entity.PriceSeries
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.market.GetDailyCloses(gctx, symbol1)
		if err != nil {
			slog.Error("failed to fetch price history", "symbol", symbol1, "error", err)
			return err
		}
		s1 = s
		return nil
	})
	g.Go(func() error {
		s, err := u.market.GetDailyCloses(gctx, symbol2)
		if err != nil {
			slog.Error("failed to fetch price history", "symbol", symbol2, "error", err)
			return err
		}
		s2 = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, domain.ErrFetchFailed
	}
	return s1, s2, nil
}

func sameYears(a, b entity.GrowthSeries) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Year != b[i].Year {
			return false
		}
	}
	return true
}
