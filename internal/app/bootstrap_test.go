package app_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/Gunvolt24/slf4g/config"
	"github.com/Gunvolt24/slf4g/internal/app"
	_ "github.com/Gunvolt24/slf4g/pkg/binding/all"
	"github.com/Gunvolt24/slf4g/pkg/binding/console"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

const testBinding = "apptest"

// syncBuffer — общий вывод тестовой привязки.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

var testOut syncBuffer

func init() {
	slf4g.Register(testBinding, func(opts config.Logger) (slf4g.LoggerFactory, error) {
		level, err := slf4g.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		return console.NewWithWriter(&testOut, level, false), nil
	})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Defaults()
	cfg.Manifest.Dir = t.TempDir()
	cfg.Manifest.Files = []string{"slf4g-app-test-manifest.yaml"}
	cfg.HTTP.GinMode = "test"
	cfg.HTTP.Addr = "127.0.0.1:0"

	testOut.Reset()
	t.Cleanup(func() { slf4g.SetDefault(nil) })
	return &cfg
}

func TestBootstrap_FallbackToNop(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, "")
	cfg := testConfig(t)

	var report bytes.Buffer
	a, cleanup, err := app.Bootstrap(context.Background(), cfg, &report)
	require.NoError(t, err)
	defer cleanup()

	lines := strings.Split(strings.TrimSpace(report.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "SLF4G: failed to determine binding"))

	require.Equal(t, 0, a.Demo(context.Background()))

	d := a.Describe()
	require.Equal(t, "nop", d.Active)
	require.Equal(t, slf4g.PlatformGo, d.Platform)
	require.NotEmpty(t, d.Error)
	require.Contains(t, d.Available, "console")

	require.Same(t, a.Facade, slf4g.Default())
}

func TestBootstrap_EnvBinding(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, testBinding)
	cfg := testConfig(t)
	cfg.Logger.Level = "debug"

	var report bytes.Buffer
	a, cleanup, err := app.Bootstrap(context.Background(), cfg, &report)
	require.NoError(t, err)
	defer cleanup()

	require.Empty(t, report.String())
	require.Equal(t, 4, a.Demo(context.Background()))

	out := testOut.String()
	require.NotContains(t, out, "TRACE")
	for _, lvl := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		require.Contains(t, out, "github.com/Gunvolt24/slf4g/internal/app "+strings.ToLower(lvl)+": The "+lvl+" level is enabled")
	}

	d := a.Describe()
	require.Equal(t, testBinding, d.Binding)
	require.Equal(t, slf4g.BindingEnv, d.Source)
	require.Equal(t, console.Name, d.Active)
	require.Empty(t, d.Error)

	// описание относится к разрешённой фабрике, а не к текущему окружению
	t.Setenv(slf4g.BindingEnv, "nop")
	require.Equal(t, d, a.Describe())

	a.Facade.Reset()
	d = a.Describe()
	require.Equal(t, "nop", d.Binding)
	require.Equal(t, "nop", d.Active)
}

func TestBootstrap_ManifestBinding(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, "")
	cfg := testConfig(t)
	cfg.Manifest.Files = []string{"manifest.json"}
	require.NoError(t, writeJSON(cfg.Manifest.Dir+"/manifest.json", map[string]any{"slf4g": map[string]any{"binding": testBinding}}))

	a, cleanup, err := app.Bootstrap(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, 3, a.Demo(context.Background()))
	require.True(t, strings.HasSuffix(a.Describe().Source, "manifest.json"))
}

func TestBootstrap_InvalidLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Logger.Level = "loud"

	_, cleanup, err := app.Bootstrap(context.Background(), cfg, &bytes.Buffer{})
	require.ErrorIs(t, err, slf4g.ErrUnknownLevel)
	cleanup()
}

func TestRouter(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, testBinding)
	cfg := testConfig(t)
	cfg.Metrics.Enabled = true

	a, cleanup, err := app.Bootstrap(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	defer cleanup()

	h := a.HTTPServer.Handler

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/binding", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	var d app.Description
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	require.Equal(t, testBinding, d.Binding)
	require.Equal(t, console.Name, d.Active)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/demo", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"emitted": 3}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "slf4g_binding_resolutions_total")

	require.Contains(t, testOut.String(), "http info: request method=POST path=/demo status=200")
}

func TestRouter_Tracing(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, testBinding)
	cfg := testConfig(t)
	cfg.Tracing.Enabled = true
	cfg.Tracing.Endpoint = "127.0.0.1:1"

	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	a, cleanup, err := app.Bootstrap(context.Background(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	defer cleanup()

	require.Contains(t, testOut.String(), "otel tracing enabled service=slf4g endpoint=127.0.0.1:1 sample=1")

	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NewServeMux(),
		ReadHeaderTimeout: time.Second,
	}

	a := &app.App{
		Facade:     slf4g.New(nil, slf4g.PlatformGo, nil),
		Logger:     slf4g.Nop().Get(""),
		HTTPServer: srv,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestAppRun_ListenError(t *testing.T) {
	a := &app.App{
		Facade: slf4g.New(nil, slf4g.PlatformGo, nil),
		Logger: slf4g.Nop().Get(""),
		HTTPServer: &http.Server{
			Addr:              "invalid-address",
			ReadHeaderTimeout: time.Second,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Run(ctx); err == nil {
		t.Fatalf("Run must return the listen error")
	}
}
