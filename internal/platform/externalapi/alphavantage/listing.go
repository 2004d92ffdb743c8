package alphavantage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"stock_compare/internal/feature/symbollist/domain/entity"
	symbolusecase "stock_compare/internal/feature/symbollist/usecase"
)

var _ symbolusecase.ListingRepository = (*Market)(nil)

// ListSymbols は function=LISTING_STATUS のCSVを取得し、指定取引所の銘柄一覧を返します。
// 数字のみのシンボルは除外します。
func (m *Market) ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error) {
	q := url.Values{}
	q.Set("function", "LISTING_STATUS")
	q.Set("exchange", exchange)

	res, err := m.get(ctx, q)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// エラー時は200のままJSONが返るため、Content-TypeでCSVかどうかを判定する
	ct := res.Header.Get("Content-Type")
	if !isCSV(ct) {
		return nil, fmt.Errorf("%w: content type %q", ErrUnexpectedResponse, ct)
	}

	r := csv.NewReader(res.Body)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrUnexpectedResponse, err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	symIdx, ok := col["symbol"]
	if !ok {
		return nil, fmt.Errorf("%w: missing symbol column", ErrUnexpectedResponse)
	}

	out := []entity.Symbol{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read record: %v", ErrUnexpectedResponse, err)
		}
		code := strings.TrimSpace(field(rec, symIdx))
		if code == "" || isDigits(code) {
			continue
		}
		s := entity.Symbol{Code: code}
		if i, ok := col["name"]; ok {
			s.Name = field(rec, i)
		}
		if i, ok := col["exchange"]; ok {
			s.Exchange = field(rec, i)
		}
		if i, ok := col["assetType"]; ok {
			s.AssetType = field(rec, i)
		}
		out = append(out, s)
	}
	return out, nil
}

func isCSV(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "application/x-download") || strings.Contains(ct, "csv")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
