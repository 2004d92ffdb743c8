// Package entity defines the domain models for the symbollist feature.
package entity

// DefaultExchange is the exchange listed when none is requested.
const DefaultExchange = "NASDAQ"

// Symbol represents a listed ticker on an exchange.
type Symbol struct {
	Code      string `json:"code"`       // Ticker (e.g., "AAPL")
	Name      string `json:"name"`       // Company or fund name
	Exchange  string `json:"exchange"`   // Listing exchange (e.g., "NASDAQ", "NYSE")
	AssetType string `json:"asset_type"` // "Stock" or "ETF"
}
