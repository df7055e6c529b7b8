package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
	"github.com/Gunvolt24/slf4g/pkg/telemetry"
)

// App — фасад логирования процесса и демонстрационный HTTP-сервер.
type App struct {
	Facade          *slf4g.Facade // фасад с резолвером из конфигурации
	Logger          slf4g.Logger  // логгер пакета app
	HTTPServer      *http.Server  // HTTP-сервер
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(mode string, log slf4g.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warn("unknown GIN_MODE={0}, fallback to debug", mode)
	}
}

// Bootstrap — собирает фасад по конфигурации и делает его фасадом процесса.
// Диагностика фасада пишется в report.
func Bootstrap(ctx context.Context, cfg *config.Config, report io.Writer) (*App, Cleanup, error) {
	if _, err := slf4g.ParseLevel(cfg.Logger.Level); err != nil {
		return nil, func() {}, fmt.Errorf("logger config: %w", err)
	}

	var opts []slf4g.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, slf4g.WithMetrics())
	}

	resolver := slf4g.NewEnvResolver(cfg.Manifest, slf4g.DefaultLoader(cfg.Logger))
	facade := slf4g.New(resolver, slf4g.PlatformGo, slf4g.WriterReporter(report), opts...)
	slf4g.SetDefault(facade)

	logg := facade.Get(slf4g.Here())

	// Режим Gin.
	applyGinMode(cfg.HTTP.GinMode, logg)

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := telemetry.Shutdown(telemetry.NoopShutdown)
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		setup, err := telemetry.SetupTracing(ctx, cfg.Tracing)
		if err != nil {
			logg.Warn("failed to setup tracing: {0}", err)
		} else {
			logg.Info("otel tracing enabled service={0} endpoint={1} sample={2}",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, telemetry.ClampRatio(cfg.Tracing.SampleRatio))
			shutdownTrace = setup
			otelServiceName = cfg.Tracing.ServiceName
		}
	}

	a := &App{
		Facade:          facade,
		Logger:          logg,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	a.HTTPServer = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           NewRouter(a, cfg.Metrics.Enabled, otelServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if err := shutdownTrace(context.Background()); err != nil {
			logg.Warn("shutdown tracing: {0}", err)
		}
		if err := facade.Sync(); err != nil {
			logg.Warn("sync logger factory: {0}", err)
		}
	}

	return a, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	log := slf4g.FromContext(ctx, a.Logger)
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		log.Info("http server starting (addr={0})", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		log.Error("http server failed: {0}", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown failed: {0}", err)
	} else {
		log.Info("http server stopped gracefully")
	}

	return runErr
}
