// Package router はアプリケーションのHTTPルーティングを構成します。
package router

import (
	"html/template"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	comparisonhandler "stock_compare/internal/feature/comparison/transport/handler"
	symbollisthandler "stock_compare/internal/feature/symbollist/transport/handler"
	platformhandler "stock_compare/internal/platform/http/handler"
	"stock_compare/internal/platform/http/middleware"
)

// Options はルーター全体に適用する設定です。
type Options struct {
	Templates   *template.Template
	CORSOrigins []string // 空の場合CORSは無効
	Logger      *slog.Logger
}

func NewRouter(opts Options, health *platformhandler.HealthHandler,
	comparison *comparisonhandler.ComparisonHandler, symbol *symbollisthandler.SymbolHandler) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(opts.Logger, "/healthz"),
		middleware.Recovery(opts.Logger),
	)
	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)

	// HTMLフォーム
	r.GET("/", comparison.Index)
	r.POST("/", comparison.Submit)

	// JSON API
	api := r.Group("/api")
	if len(opts.CORSOrigins) > 0 {
		api.Use(cors.New(corsConfig(opts.CORSOrigins)))
		// プリフライトはCORSミドルウェアが処理する
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}
	{
		api.GET("/compare", comparison.Compare)
		api.GET("/symbols", symbol.List)
	}

	return r
}

// corsConfig はGETのみを許可するCORS設定を返します。"*" は全オリジン許可です。
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
