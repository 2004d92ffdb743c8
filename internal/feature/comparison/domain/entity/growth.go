package entity

import "time"

// YearPoint is one value per calendar year.
type YearPoint struct {
	Year  int       // Calendar year
	AsOf  time.Time // Date of the last observation used for this year
	Value float64   // Year-end close, or the normalized value in a GrowthSeries
}

// PeriodEnd returns December 31 of the point's year, the label used when
// reporting the start and end of a comparison.
func (p YearPoint) PeriodEnd() time.Time {
	return time.Date(p.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// GrowthSeries is a yearly series normalized so that its first value equals
// the base value (the value of a hypothetical investment over time).
type GrowthSeries []YearPoint

// Values returns the normalized values in order.
func (g GrowthSeries) Values() []float64 {
	out := make([]float64, len(g))
	for i, p := range g {
		out[i] = p.Value
	}
	return out
}

// YearReturn is the percentage change from the previous year-end.
// Percent is nil for the first year, which has no predecessor.
type YearReturn struct {
	Year    int
	Percent *float64
}

// ReturnSeries is aligned index-for-index with a GrowthSeries.
type ReturnSeries []YearReturn
