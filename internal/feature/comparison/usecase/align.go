package usecase

import (
	"stock_compare/internal/feature/comparison/domain"
	"stock_compare/internal/feature/comparison/domain/entity"
)

// Align は2つの価格系列を共通の期間 [common_start, common_end] に切り詰めます。
// common_start は両系列の開始日の遅い方、common_end は終了日の早い方です。
// 重なりがない場合は domain.ErrNoOverlap を返します。
func Align(a, b entity.PriceSeries) (entity.PriceSeries, entity.PriceSeries, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, domain.ErrNoOverlap
	}

	start := a.First().Date
	if d := b.First().Date; d.After(start) {
		start = d
	}
	end := a.Last().Date
	if d := b.Last().Date; d.Before(end) {
		end = d
	}
	if start.After(end) {
		return nil, nil, domain.ErrNoOverlap
	}

	a2 := a.Window(start, end)
	b2 := b.Window(start, end)
	if len(a2) == 0 || len(b2) == 0 {
		return nil, nil, domain.ErrNoOverlap
	}
	return a2, b2, nil
}
