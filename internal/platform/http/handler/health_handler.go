// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// キャッシュ状態
const (
	CacheUp       = "up"
	CacheDown     = "down"
	CacheDisabled = "disabled"
)

// HealthHandler はサービスヘルスチェック用の /healthz エンドポイントを処理します。
type HealthHandler struct {
	rdb *redis.Client
}

// NewHealthHandler は新しいHealthHandlerを生成します。rdb が nil の場合キャッシュは "disabled" と報告されます。
func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{rdb: rdb}
}

// Health はHTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// キャッシュが落ちていてもサービス自体は稼働しているため200を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cache": h.cacheStatus(c.Request.Context())})
	}
}

func (h *HealthHandler) cacheStatus(ctx context.Context) string {
	if h.rdb == nil {
		return CacheDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		return CacheDown
	}
	return CacheUp
}
