package alphavantage

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_compare/internal/feature/symbollist/domain/entity"
)

const listingCSV = "symbol,name,exchange,assetType,ipoDate,delistingDate,status\r\n" +
	"AAPL,Apple Inc,NASDAQ,Stock,1980-12-12,null,Active\r\n" +
	"1234,Numeric Placeholder,NASDAQ,Stock,2020-01-01,null,Active\r\n" +
	"QQQ,Invesco QQQ Trust Series 1,NASDAQ,ETF,1999-03-10,null,Active\r\n" +
	"\"BRK-B\",\"Berkshire Hathaway, Class B\",NYSE,Stock,1996-05-09,null,Active\r\n"

func TestMarket_ListSymbols_Success(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "LISTING_STATUS", r.URL.Query().Get("function"))
		assert.Equal(t, "NASDAQ", r.URL.Query().Get("exchange"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/x-download")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(listingCSV))
	})

	symbols, err := market.ListSymbols(context.Background(), "NASDAQ")
	require.NoError(t, err)

	assert.Equal(t, []entity.Symbol{
		{Code: "AAPL", Name: "Apple Inc", Exchange: "NASDAQ", AssetType: "Stock"},
		{Code: "QQQ", Name: "Invesco QQQ Trust Series 1", Exchange: "NASDAQ", AssetType: "ETF"},
		{Code: "BRK-B", Name: "Berkshire Hathaway, Class B", Exchange: "NYSE", AssetType: "Stock"},
	}, symbols, "digit-only symbols must be dropped")
}

func TestMarket_ListSymbols_TextCSVContentType(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte("symbol,name\nMSFT,Microsoft Corporation\n"))
	})

	symbols, err := market.ListSymbols(context.Background(), "NASDAQ")
	require.NoError(t, err)
	require.Len(t, symbols, 1)
	assert.Equal(t, "MSFT", symbols[0].Code)
	assert.Equal(t, "", symbols[0].Exchange)
}

func TestMarket_ListSymbols_HeaderOnly(t *testing.T) {
	t.Parallel()

	market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-download")
		_, _ = w.Write([]byte("symbol,name,exchange,assetType,ipoDate,delistingDate,status\r\n"))
	})

	symbols, err := market.ListSymbols(context.Background(), "NYSE")
	require.NoError(t, err)
	assert.NotNil(t, symbols)
	assert.Empty(t, symbols)
}

func TestMarket_ListSymbols_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		errText     string
	}{
		{
			name:        "json error body",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"Information": "Invalid API key"}`,
			errText:     "content type",
		},
		{
			name:        "http error",
			status:      http.StatusInternalServerError,
			contentType: "text/plain",
			errText:     "alphavantage http 500",
		},
		{
			name:        "empty body",
			status:      http.StatusOK,
			contentType: "application/x-download",
			body:        "",
			errText:     "read header",
		},
		{
			name:        "missing symbol column",
			status:      http.StatusOK,
			contentType: "application/x-download",
			body:        "ticker,name\nAAPL,Apple\n",
			errText:     "missing symbol column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			market := newTestMarket(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			symbols, err := market.ListSymbols(context.Background(), "NASDAQ")
			require.Error(t, err)
			assert.Nil(t, symbols)
			assert.ErrorIs(t, err, ErrUnexpectedResponse)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
