// Package domain defines domain-level errors for the comparison feature.
package domain

import "errors"

// Domain errors for stock comparison.
// The messages of ErrFetchFailed and ErrNoOverlap are shown to end users as-is.
var (
	// ErrFetchFailed indicates that the price history of at least one symbol could not be retrieved.
	// The underlying cause (HTTP status, API message, decode error) is logged, not surfaced.
	ErrFetchFailed = errors.New("could not fetch data for one or both symbols")

	// ErrNoOverlap indicates that the two series share no trading dates.
	ErrNoOverlap = errors.New("no overlapping data available for the selected stocks")

	// ErrYearMismatch indicates that the aligned series resampled to different sets of years.
	// It is always wrapped together with ErrNoOverlap.
	ErrYearMismatch = errors.New("resampled series cover different years")

	// ErrInvalidSeries indicates a precondition violation in the growth computation
	// (empty series or non-positive first value). It points at a caller bug.
	ErrInvalidSeries = errors.New("invalid price series")

	// ErrInvalidSymbol indicates that a ticker symbol is empty or malformed.
	ErrInvalidSymbol = errors.New("invalid symbol")
)
