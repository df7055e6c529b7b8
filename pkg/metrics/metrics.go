package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	LogMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slf4g_log_messages_total",
			Help: "Number of messages passed to a logging backend",
		},
		[]string{"binding", "level"},
	)
	BindingResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slf4g_binding_resolutions_total",
			Help: "Number of binding resolutions by outcome",
		},
		[]string{"outcome"}, // resolved|not_found|load_failed|invalid|no_resolver
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slf4g_logger_cache_operations_total",
			Help: "Logger cache operations",
		},
		[]string{"binding", "op"}, // hit|miss
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "slf4g_logger_cache_size",
			Help: "Number of loggers currently cached by a binding",
		},
		[]string{"binding"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в реестре по умолчанию; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LogMessages, BindingResolutions, CacheOps, CacheSize)
	})
}
