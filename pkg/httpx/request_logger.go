package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id/trace_id/span_id добавляет сам логгер через slf4g.FromContext.
func RequestLogger(log slf4g.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		l := slf4g.FromContext(c.Request.Context(), log)
		if !l.IsInfoEnabled() {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		l.Info(
			"request method={0} path={1} status={2} ip={3} duration={4} size={5}",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
