// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

// TimeSeriesDailyResponse represents the JSON response of function=TIME_SERIES_DAILY.
// On failure the API still answers 200 with one of ErrorMessage, Note or Information set
// and no "Time Series (Daily)" key.
type TimeSeriesDailyResponse struct {
	MetaData     map[string]string   `json:"Meta Data"`
	TimeSeries   map[string]DailyBar `json:"Time Series (Daily)"`
	ErrorMessage string              `json:"Error Message,omitempty"`
	Note         string              `json:"Note,omitempty"`
	Information  string              `json:"Information,omitempty"`
}

// DailyBar is one trading day keyed by "YYYY-MM-DD". Values are decimal strings.
type DailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// APIMessage returns the first diagnostic message set by the API, if any.
func (r TimeSeriesDailyResponse) APIMessage() string {
	switch {
	case r.ErrorMessage != "":
		return r.ErrorMessage
	case r.Note != "":
		return r.Note
	default:
		return r.Information
	}
}
