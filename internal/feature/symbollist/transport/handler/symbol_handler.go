// Package handler はsymbollistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_compare/internal/feature/symbollist/domain/entity"
	"stock_compare/internal/feature/symbollist/transport/http/dto"
	"stock_compare/internal/feature/symbollist/usecase"
)

// SymbolUsecase は銘柄情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListSymbols(ctx context.Context, exchange string) ([]entity.Symbol, error)
}

// SymbolHandler は銘柄情報に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は取引所の上場銘柄一覧を返すAPIです。
//
// エンドポイント例:
// GET /api/symbols?exchange=NASDAQ
//
// 取引所コードが不正な場合は400、上流APIの失敗は502を返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSymbols(c.Request.Context(), c.Query("exchange"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidExchange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("failed to list symbols", "exchange", c.Query("exchange"), "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch symbol list"})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Symbol: s.Code, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}
