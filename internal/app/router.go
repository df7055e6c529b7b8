package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/slf4g/pkg/httpx"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

// NewRouter — /ping, /binding, /demo и (при включённых метриках) /metrics.
// Каждый запрос логируется через фасад с request_id; otelServiceName != "" включает otelgin.
func NewRouter(a *App, withMetrics bool, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware(), httpx.RequestLogger(a.Facade.Get("http")))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/binding", func(c *gin.Context) { c.JSON(http.StatusOK, a.Describe()) })
	r.POST("/demo", func(c *gin.Context) {
		n := a.Demo(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"emitted": n})
	})

	if withMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		slf4g.FromContext(c.Request.Context(), a.Logger).Debug("no route for {0}", c.Request.URL.Path)
		c.Status(http.StatusNotFound)
	})
	return r
}
