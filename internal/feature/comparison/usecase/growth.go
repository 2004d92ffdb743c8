package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stock_compare/internal/feature/comparison/domain"
	"stock_compare/internal/feature/comparison/domain/entity"
)

// DefaultBaseValue is the starting value of a normalized growth series.
const DefaultBaseValue = 100.0

// ResampleYearly keeps the chronologically last close of every calendar year
// present in the series. Years without data are skipped, not interpolated.
func ResampleYearly(s entity.PriceSeries) []entity.YearPoint {
	out := make([]entity.YearPoint, 0, len(s)/250+1)
	for _, p := range s {
		y := p.Date.Year()
		if n := len(out); n > 0 && out[n-1].Year == y {
			out[n-1].AsOf = p.Date
			out[n-1].Value = p.Close
			continue
		}
		out = append(out, entity.YearPoint{Year: y, AsOf: p.Date, Value: p.Close})
	}
	return out
}

// ComputeGrowth は価格系列を年末値にリサンプリングし、先頭が base になるよう正規化した
// 成長系列と、前年比リターン（%、小数点以下2桁に丸め）を返します。
// 先頭年のリターンは前年がないため nil です。
func ComputeGrowth(s entity.PriceSeries, base float64) (entity.GrowthSeries, entity.ReturnSeries, error) {
	if base <= 0 {
		return nil, nil, fmt.Errorf("%w: base value %v", domain.ErrInvalidSeries, base)
	}
	yearly := ResampleYearly(s)
	if len(yearly) == 0 {
		return nil, nil, fmt.Errorf("%w: empty series", domain.ErrInvalidSeries)
	}
	first := yearly[0].Value
	if first <= 0 {
		return nil, nil, fmt.Errorf("%w: first value %v", domain.ErrInvalidSeries, first)
	}

	growth := make(entity.GrowthSeries, len(yearly))
	returns := make(entity.ReturnSeries, len(yearly))
	for i, y := range yearly {
		v := base
		if i > 0 {
			v = (y.Value / first) * base
		}
		growth[i] = entity.YearPoint{Year: y.Year, AsOf: y.AsOf, Value: v}
		returns[i] = entity.YearReturn{Year: y.Year}
		if i > 0 {
			prev := growth[i-1].Value
			if prev <= 0 {
				return nil, nil, fmt.Errorf("%w: non-positive close in %d", domain.ErrInvalidSeries, yearly[i-1].Year)
			}
			r := roundPercent(((v - prev) / prev) * 100)
			returns[i].Percent = &r
		}
	}
	return growth, returns, nil
}

// CumulativeReturns returns the percent change of each value relative to the
// first one. The first entry is always 0.
func CumulativeReturns(g entity.GrowthSeries) []float64 {
	out := make([]float64, len(g))
	for i := 1; i < len(g); i++ {
		out[i] = ((g[i].Value - g[0].Value) / 100) * 100
	}
	return out
}

// roundPercent rounds half away from zero to 2 decimal places.
func roundPercent(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
