package usecase_test

import (
	"testing"
	"time"

	"stock_compare/internal/feature/comparison/domain/entity"
)

// day parses a YYYY-MM-DD date for test fixtures.
func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

// series builds a PriceSeries from alternating date strings and closes.
func series(t *testing.T, pts ...any) entity.PriceSeries {
	t.Helper()
	if len(pts)%2 != 0 {
		t.Fatalf("series: odd number of arguments")
	}
	out := make(entity.PriceSeries, 0, len(pts)/2)
	for i := 0; i < len(pts); i += 2 {
		out = append(out, entity.PricePoint{Date: day(t, pts[i].(string)), Close: pts[i+1].(float64)})
	}
	return out
}

// yearEnds builds a series with one mid-year and one year-end close per year,
// starting at firstYear.
func yearEnds(t *testing.T, firstYear int, closes ...float64) entity.PriceSeries {
	t.Helper()
	out := make(entity.PriceSeries, 0, len(closes)*2)
	for i, c := range closes {
		y := firstYear + i
		out = append(out,
			entity.PricePoint{Date: time.Date(y, time.January, 5, 0, 0, 0, 0, time.UTC), Close: c * 0.9},
			entity.PricePoint{Date: time.Date(y, time.December, 30, 0, 0, 0, 0, time.UTC), Close: c},
		)
	}
	return out
}
