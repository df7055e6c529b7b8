package app

import (
	"context"
	"strings"

	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// Demo — по сообщению на каждый включённый уровень; возвращает число сообщений.
func (a *App) Demo(ctx context.Context) int {
	log := slf4g.FromContext(ctx, a.Logger)

	emit := []struct {
		level   slf4g.Level
		enabled func() bool
		log     func(msg any, args ...any)
	}{
		{slf4g.LevelTrace, log.IsTraceEnabled, log.Trace},
		{slf4g.LevelDebug, log.IsDebugEnabled, log.Debug},
		{slf4g.LevelInfo, log.IsInfoEnabled, log.Info},
		{slf4g.LevelWarn, log.IsWarnEnabled, log.Warn},
		{slf4g.LevelError, log.IsErrorEnabled, log.Error},
	}

	n := 0
	for _, e := range emit {
		if !e.enabled() {
			continue
		}
		e.log("The {0} level is enabled", strings.ToUpper(e.level.String()))
		n++
	}
	return n
}

// Description — результат разрешения привязки.
type Description struct {
	Platform  string   `json:"platform"`
	Binding   string   `json:"binding,omitempty"` // имя из окружения или манифеста
	Source    string   `json:"source,omitempty"`  // переменная окружения или путь манифеста
	Active    string   `json:"active"`            // Name() активного логгера; "nop" при откате
	Error     string   `json:"error,omitempty"`
	Available []string `json:"available"`
}

// Describe — откуда взята привязка и чем закончилось разрешение.
// Все поля относятся к последнему разрешению фасада.
func (a *App) Describe() Description {
	d := Description{
		Platform:  a.Facade.Platform(),
		Active:    a.Facade.Get(slf4g.Here()).Name(),
		Available: slf4g.Bindings(),
	}
	origin := a.Facade.Origin()
	d.Binding, d.Source = origin.Name, origin.Source
	if err := a.Facade.Err(); err != nil {
		d.Error = err.Error()
	}
	return d
}
