package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"stock_compare/internal/app/di"
	"stock_compare/internal/app/router"
	"stock_compare/internal/app/web"
	comparisonhandler "stock_compare/internal/feature/comparison/transport/handler"
	comparisonusecase "stock_compare/internal/feature/comparison/usecase"
	symbollisthandler "stock_compare/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_compare/internal/feature/symbollist/usecase"
	"stock_compare/internal/platform/config"
	platformhandler "stock_compare/internal/platform/http/handler"
	"stock_compare/internal/platform/logger"
)

func main() {
	// 設定
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[ERROR] invalid config: %v", err)
	}

	// ロガー
	lg := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(lg)
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis（銘柄一覧キャッシュ用、なければキャッシュなしで動作）
	rdb := di.NewRedis(ctx, cfg)
	if rdb == nil {
		slog.Warn("Redis unavailable. Running without listing cache.")
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	market := di.NewMarket(cfg)
	listingRepo := di.NewListingRepository(rdb, market, cfg.Redis.TTL)

	// Usecase
	comparisonUC := comparisonusecase.NewComparisonUsecase(market)
	symbolUC := symbollistusecase.NewSymbolUsecase(listingRepo)

	// Handler
	healthH := platformhandler.NewHealthHandler(rdb)
	comparisonH := comparisonhandler.NewComparisonHandler(comparisonUC, symbolUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("[ERROR] parse templates: %v", err)
	}

	// ルータ生成
	r := router.NewRouter(router.Options{
		Templates:   tmpl,
		CORSOrigins: cfg.Server.CORSOrigins,
		Logger:      lg,
	}, healthH, comparisonH, symbolH)

	// 2銘柄の取得が終わるまで書き込みを待てるようにする
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.AlphaVantage.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
