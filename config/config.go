package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix — префикс переменных окружения фасада.
const Prefix = "SLF4G"

// Manifest — поиск файла-манифеста с полем привязки.
type Manifest struct {
	Dir   string   `envconfig:"DIR"`                                          // стартовая директория (пусто — директория бинарника)
	Files []string `default:"manifest.yaml,manifest.json" envconfig:"FILES"` // имена файлов в порядке приоритета
	Field string   `default:"slf4g" envconfig:"FIELD"`                        // поле с именем привязки
}

// Logger — общие настройки для всех бэкендов.
type Logger struct {
	Level  string `default:"info" envconfig:"LEVEL"`
	Format string `default:"text" envconfig:"FORMAT"` // text|json
	IsProd bool   `default:"false" envconfig:"IS_PROD"`
	Output string `default:"stderr" envconfig:"OUTPUT"` // stderr|stdout
}

type Metrics struct {
	Enabled bool `default:"false" envconfig:"ENABLED"`
}

// HTTP — демонстрационный сервер `slf4g serve`.
type HTTP struct {
	Addr            string        `default:":8080" envconfig:"ADDR"`
	GinMode         string        `default:"release" envconfig:"GIN_MODE"`
	GracefulTimeout time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Tracing — OTLP/HTTP экспорт спанов демонстрационного сервера.
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"ENABLED"`
	ServiceName string  `default:"slf4g" envconfig:"SERVICE_NAME"`
	Endpoint    string  `default:"localhost:4318" envconfig:"ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"SAMPLE_RATIO"`
}

type Config struct {
	Manifest Manifest
	Logger   Logger
	Metrics  Metrics
	HTTP     HTTP
	Tracing  Tracing
}

// Load — читает конфигурацию с префиксом SLF4G.
func Load() (Config, error) {
	return LoadWithPrefix(Prefix)
}

// LoadWithPrefix — то же, что Load, но с произвольным префиксом (удобно для тестов).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Defaults — значения по умолчанию без чтения окружения.
func Defaults() Config {
	return Config{
		Manifest: Manifest{Files: []string{"manifest.yaml", "manifest.json"}, Field: "slf4g"},
		Logger:   Logger{Level: "info", Format: "text", Output: "stderr"},
		HTTP:     HTTP{Addr: ":8080", GinMode: "release", GracefulTimeout: 5 * time.Second},
		Tracing:  Tracing{ServiceName: "slf4g", Endpoint: "localhost:4318", SampleRatio: 1},
	}
}

// Writer — поток вывода по значению Output; неизвестное значение → stderr.
func (l Logger) Writer() io.Writer {
	switch strings.ToLower(strings.TrimSpace(l.Output)) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

// JSON — true, если выбран JSON-формат.
func (l Logger) JSON() bool {
	return strings.EqualFold(strings.TrimSpace(l.Format), "json")
}
