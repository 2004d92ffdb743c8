package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"stock_compare/internal/feature/comparison/domain/entity"
	"stock_compare/internal/feature/comparison/usecase"
	"stock_compare/internal/platform/externalapi/alphavantage/dto"
)

// historyDays is the look-back window of a price history: 10 years of 365 days,
// without leap-year correction.
const historyDays = 10 * 365

// ErrUnexpectedResponse is returned when the API answers with an error status
// or a body that does not match the documented contract.
var ErrUnexpectedResponse = errors.New("alphavantage: unexpected response")

// Market はAlpha Vantage外部APIから株価データを取得するMarketRepository実装です。
type Market struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// MarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Market)(nil)

// NewMarket は指定された設定とHTTPクライアントでMarketの新しいインスタンスを生成します。
func NewMarket(cfg Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client, now: time.Now}
}

// GetDailyCloses はAlpha Vantage APIから日次終値の全履歴を取得し、
// 直近10年分（3650日）を日付の昇順で返します。
// リトライは行わず、1回の失敗で即座にエラーを返します。
func (m *Market) GetDailyCloses(ctx context.Context, symbol string) (entity.PriceSeries, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("outputsize", "full")

	var body dto.TimeSeriesDailyResponse
	if err := m.getJSON(ctx, q, &body); err != nil {
		return nil, err
	}
	if body.TimeSeries == nil {
		if msg := body.APIMessage(); msg != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, msg)
		}
		return nil, fmt.Errorf("%w: missing %q", ErrUnexpectedResponse, "Time Series (Daily)")
	}

	cutoff := m.cutoff()
	out := make(entity.PriceSeries, 0, len(body.TimeSeries))
	for ds, bar := range body.TimeSeries {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return nil, fmt.Errorf("%w: parse date %q: %v", ErrUnexpectedResponse, ds, err)
		}
		c, err := strconv.ParseFloat(bar.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parse close %q: %v", ErrUnexpectedResponse, bar.Close, err)
		}
		if c <= 0 {
			return nil, fmt.Errorf("%w: non-positive close %q on %s", ErrUnexpectedResponse, bar.Close, ds)
		}
		if d.Before(cutoff) {
			continue
		}
		out = append(out, entity.PricePoint{Date: d, Close: c})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	slog.Debug("fetched daily closes", "symbol", symbol, "points", len(out), "since", cutoff.Format("2006-01-02"))
	return out, nil
}

// cutoff returns the first calendar day kept in a price history.
func (m *Market) cutoff() time.Time {
	y, mo, d := m.now().UTC().AddDate(0, 0, -historyDays).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// getJSON performs GET {BaseURL}/query with the given parameters and decodes the body.
func (m *Market) getJSON(ctx context.Context, q url.Values, v any) error {
	res, err := m.get(ctx, q)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

// get performs the request and rejects non-2xx statuses. The caller closes the body.
func (m *Market) get(ctx context.Context, q url.Values) (*http.Response, error) {
	q.Set("apikey", m.cfg.APIKey)
	u := fmt.Sprintf("%s/query?%s", m.cfg.baseURL(), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := m.client.Do(req)
	if err != nil {
		// *url.Error embeds the request URL, which carries the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, fmt.Errorf("alphavantage request: %w", uerr.Err)
		}
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		_ = res.Body.Close()
		return nil, fmt.Errorf("%w: alphavantage http %d", ErrUnexpectedResponse, res.StatusCode)
	}
	return res, nil
}
