// Package handler はcomparisonフィーチャーのHTTPハンドラー（JSON API とHTMLページ）を提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_compare/internal/feature/comparison/domain"
	"stock_compare/internal/feature/comparison/domain/entity"
	"stock_compare/internal/feature/comparison/transport/http/dto"
	symbolentity "stock_compare/internal/feature/symbollist/domain/entity"
)

// ComparisonUsecase は2銘柄比較のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ComparisonUsecase interface {
	Compare(ctx context.Context, symbol1, symbol2 string) (*entity.Comparison, error)
}

// SymbolLister はフォームの銘柄候補を取得します。
type SymbolLister interface {
	ListSymbols(ctx context.Context, exchange string) ([]symbolentity.Symbol, error)
}

// テンプレート名
const (
	IndexTemplate  = "index.html"
	ResultTemplate = "result.html"
)

const internalErrorMessage = "internal server error"

// ComparisonHandler は銘柄比較のHTTPリクエストを処理します。
type ComparisonHandler struct {
	uc      ComparisonUsecase
	symbols SymbolLister
}

// NewComparisonHandler は新しいComparisonHandlerを生成します。
// symbols が nil の場合、フォームに銘柄候補は表示されません。
func NewComparisonHandler(uc ComparisonUsecase, symbols SymbolLister) *ComparisonHandler {
	return &ComparisonHandler{uc: uc, symbols: symbols}
}

// IndexPage は入力フォームのテンプレートデータです。
type IndexPage struct {
	Exchange string
	Symbol1  string
	Symbol2  string
	Symbols  []symbolentity.Symbol
	Error    string
}

// ResultPage は比較結果のテンプレートデータです。
type ResultPage struct {
	Exchange string
	Result   dto.ComparisonResponse
	Messages []string
}

// Compare は2銘柄を比較してJSONで返します。
//
// エンドポイント例:
// GET /api/compare?symbol1=AAPL&symbol2=MSFT
func (h *ComparisonHandler) Compare(c *gin.Context) {
	res, status, msg := h.run(c.Request.Context(), c.Query("symbol1"), c.Query("symbol2"))
	if res == nil {
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

// Index は入力フォームを表示します。?exchange= で候補の取引所を切り替えます（デフォルトNASDAQ）。
func (h *ComparisonHandler) Index(c *gin.Context) {
	exchange := c.DefaultQuery("exchange", symbolentity.DefaultExchange)
	c.HTML(http.StatusOK, IndexTemplate, IndexPage{
		Exchange: exchange,
		Symbols:  h.suggestions(c.Request.Context(), exchange),
	})
}

// Submit はフォーム送信を受け取り、結果ページまたはエラー付きのフォームを表示します。
func (h *ComparisonHandler) Submit(c *gin.Context) {
	exchange := c.DefaultPostForm("exchange", symbolentity.DefaultExchange)
	symbol1 := c.PostForm("symbol1")
	symbol2 := c.PostForm("symbol2")

	res, status, msg := h.run(c.Request.Context(), symbol1, symbol2)
	if res == nil {
		c.HTML(status, IndexTemplate, IndexPage{
			Exchange: exchange,
			Symbol1:  symbol1,
			Symbol2:  symbol2,
			Symbols:  h.suggestions(c.Request.Context(), exchange),
			Error:    msg,
		})
		return
	}

	out := toResponse(res)
	c.HTML(http.StatusOK, ResultTemplate, ResultPage{
		Exchange: exchange,
		Result:   out,
		Messages: strings.Split(out.Message, "\n"),
	})
}

// run は入力を検証して比較を実行します。失敗時は nil とHTTPステータス、利用者向けメッセージを返します。
func (h *ComparisonHandler) run(ctx context.Context, symbol1, symbol2 string) (*entity.Comparison, int, string) {
	s1, err := entity.NormalizeSymbol(symbol1)
	if err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}
	s2, err := entity.NormalizeSymbol(symbol2)
	if err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}

	res, err := h.uc.Compare(ctx, s1, s2)
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
			slog.Error("comparison failed", "symbol1", s1, "symbol2", s2, "error", err)
		}
		return nil, status, msg
	}
	return res, http.StatusOK, ""
}

// errorStatus はドメインエラーをHTTPステータスと利用者向けメッセージに変換します。
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidSymbol):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrFetchFailed):
		return http.StatusBadGateway, domain.ErrFetchFailed.Error()
	case errors.Is(err, domain.ErrNoOverlap):
		return http.StatusUnprocessableEntity, domain.ErrNoOverlap.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// suggestions は取引所の銘柄一覧を返します。取得に失敗しても空の一覧でフォームを表示します。
func (h *ComparisonHandler) suggestions(ctx context.Context, exchange string) []symbolentity.Symbol {
	if h.symbols == nil {
		return nil
	}
	symbols, err := h.symbols.ListSymbols(ctx, exchange)
	if err != nil {
		slog.Warn("failed to list symbols", "exchange", exchange, "error", err)
		return nil
	}
	return symbols
}
