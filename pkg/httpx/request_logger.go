package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/pkg/ctxmeta"
)

// RequestLogger — одна строка лога на обработанный запрос.
// Служебные маршруты (/ping, /metrics) опрашиваются постоянно и не логируются.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "/ping" || route == "/metrics" {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		tr, _ := ctxmeta.TraceIDFromContext(ctx)
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		log.Infof(ctx,
			"request id=%s trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			rid, tr, sp,
			c.Request.Method, route,
			c.Writer.Status(), c.ClientIP(),
			time.Since(start), c.Writer.Size(),
		)
	}
}
