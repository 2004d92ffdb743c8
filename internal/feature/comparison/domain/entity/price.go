// Package entity defines the domain models for the comparison feature.
package entity

import "time"

// PricePoint is a single trading day's closing price.
type PricePoint struct {
	Date  time.Time // Trading day (midnight UTC)
	Close float64   // Closing price
}

// PriceSeries is a chronologically ascending sequence of daily closes.
// Operations on a series return new slices and never modify the receiver.
type PriceSeries []PricePoint

// First returns the earliest point. The series must not be empty.
func (s PriceSeries) First() PricePoint {
	return s[0]
}

// Last returns the latest point. The series must not be empty.
func (s PriceSeries) Last() PricePoint {
	return s[len(s)-1]
}

// Window returns a copy of the points dated within [start, end].
func (s PriceSeries) Window(start, end time.Time) PriceSeries {
	out := make(PriceSeries, 0, len(s))
	for _, p := range s {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}
