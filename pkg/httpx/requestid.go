package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cartverify/prepay-gateway/pkg/ctxmeta"
)

// HeaderRequestID — заголовок сквозного идентификатора запроса.
// Вебхуки доставляются с ретраями, идентификатор позволяет связать
// повторные доставки одного события в логах и аудите вердиктов.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware — берёт идентификатор из заголовка клиента
// (или генерирует UUID), кладёт его в контекст запроса и дублирует в ответ.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header(HeaderRequestID, rid)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}
