// cmd/recommender/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fitting-engine/internal/catalog"
	"fitting-engine/internal/catalog/cache"
	"fitting-engine/internal/catalog/postgres"
	"fitting-engine/internal/color"
	"fitting-engine/internal/common/config"
	"fitting-engine/internal/common/database"
	"fitting-engine/internal/common/errors"
	"fitting-engine/internal/common/logger"
	"fitting-engine/internal/common/metrics"
	"fitting-engine/internal/common/observability"
	"fitting-engine/internal/engine"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting recommendation service...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Wire the engine ---
	pgStore := postgres.NewStore(pg.DB, log)
	catalogStore := cache.NewStore(pgStore, rdb.GetClient(), config.GetDuration(cfg.Engine.CacheTTL), log)
	analyzer := color.New(cfg.Palettes)
	rules := engine.RulesFromConfig(cfg.Engine)
	eng := engine.New(rules, catalogStore, analyzer, log)

	zapLog.Info("Recommendation engine initialized",
		zap.String("defaultSize", rules.DefaultSize),
		zap.Strings("genderOrder", rules.GenderOrder),
	)

	// --- Start metrics and health server ---
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pg.Ping(ctx); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		addr := fmt.Sprintf(":%d", cfg.Server.MetricsPort)
		zapLog.Info("Metrics server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	// --- Scan processing loop ---
	loopCtx, cancelLoop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		runLoop(loopCtx, eng, pgStore, cfg, log, obs)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping scan loop...")
	cancelLoop()
	<-done
	zapLog.Info("Recommendation service stopped")
}

// runLoop polls for pending body scans and runs each through the engine,
// persisting the resulting recommendations.
func runLoop(ctx context.Context, eng *engine.Engine, store *postgres.Store, cfg *config.Config, log logger.Logger, obs *observability.Observability) {
	interval := config.GetDuration(cfg.Server.PollInterval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	errHandler := errors.NewErrorHandler(log)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := processBatch(ctx, eng, store, cfg.Server.ScanBatch, errHandler, obs); err != nil {
				errHandler.Handle("poll_pending_scans", err)
			}
		}
	}
}

func processBatch(ctx context.Context, eng *engine.Engine, store *postgres.Store, batch int, errHandler *errors.ErrorHandler, obs *observability.Observability) error {
	scans, err := store.PendingScans(ctx, batch)
	if err != nil {
		return err
	}

	for _, scan := range scans {
		if err := processScan(ctx, eng, store, scan, obs); err != nil {
			errHandler.Handle("process_scan", err)
			metrics.ScansProcessed.WithLabelValues("error").Inc()
			obs.RecordScanProcessed(ctx, "error")
			continue
		}
		metrics.ScansProcessed.WithLabelValues("success").Inc()
		obs.RecordScanProcessed(ctx, "success")
	}
	return nil
}

func processScan(ctx context.Context, eng *engine.Engine, store *postgres.Store, scan catalog.BodyScan, obs *observability.Observability) error {
	start := time.Now()

	recs, err := eng.GenerateRecommendations(ctx, scan)
	if err != nil {
		return err
	}

	for i := range recs {
		if err := store.SaveRecommendation(ctx, &recs[i]); err != nil {
			return err
		}
	}

	if err := store.MarkScanProcessed(ctx, scan.ID); err != nil {
		return err
	}

	obs.RecordScanDuration(ctx, time.Since(start), "success")
	return nil
}
