package entity

import "time"

// Comparison is the result of comparing two symbols over their common period.
// All series have the same length and cover the same years.
type Comparison struct {
	Symbol1     string
	Symbol2     string
	Growth1     GrowthSeries
	Growth2     GrowthSeries
	Returns1    ReturnSeries
	Returns2    ReturnSeries
	Cumulative1 []float64 // Percent change relative to the first value; first entry is 0
	Cumulative2 []float64
}

// Row is one year of the comparison table.
type Row struct {
	Year        int
	Value1      float64
	Return1     *float64
	Value2      float64
	Return2     *float64
	Cumulative1 float64
	Cumulative2 float64
}

// StartDate returns the period label of the first year.
func (c *Comparison) StartDate() time.Time {
	return c.Growth1[0].PeriodEnd()
}

// EndDate returns the period label of the last year.
func (c *Comparison) EndDate() time.Time {
	return c.Growth1[len(c.Growth1)-1].PeriodEnd()
}

// FinalValue1 returns the last normalized value of the first symbol.
func (c *Comparison) FinalValue1() float64 {
	return c.Growth1[len(c.Growth1)-1].Value
}

// FinalValue2 returns the last normalized value of the second symbol.
func (c *Comparison) FinalValue2() float64 {
	return c.Growth2[len(c.Growth2)-1].Value
}

// Rows flattens the comparison into one row per year.
func (c *Comparison) Rows() []Row {
	rows := make([]Row, 0, len(c.Growth1))
	for i := range c.Growth1 {
		rows = append(rows, Row{
			Year:        c.Growth1[i].Year,
			Value1:      c.Growth1[i].Value,
			Return1:     c.Returns1[i].Percent,
			Value2:      c.Growth2[i].Value,
			Return2:     c.Returns2[i].Percent,
			Cumulative1: c.Cumulative1[i],
			Cumulative2: c.Cumulative2[i],
		})
	}
	return rows
}
