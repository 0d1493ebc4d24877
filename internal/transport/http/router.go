package rest

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/internal/webhook"
	"github.com/cartverify/prepay-gateway/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Ограничение на размер тела вебхука: корзины больше мегабайта не бывают,
// а читать тело приходится целиком (подпись считается по сырым байтам).
const maxBodyBytes = 1 << 20

// Handler — HTTP-обработчики поверх прикладных сервисов.
type Handler struct {
	verifier ports.PrepaymentVerifier
	verdicts ports.VerdictRepository // nil — операционный просмотр выключен
	log      ports.Logger
	timeout  time.Duration // бюджет обработки одного запроса; 0 — без бюджета
}

// NewHandler — DI-конструктор.
func NewHandler(verifier ports.PrepaymentVerifier, verdicts ports.VerdictRepository, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{verifier: verifier, verdicts: verdicts, log: log, timeout: timeout}
}

// NewRouter — сборка маршрутов и middleware.
// otelServiceName — имя сервиса для otelgin; пустая строка отключает трейсинг.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/webhook/prepayment", h.verifyPrepayment)

	if h.verdicts != nil {
		r.GET("/verdicts", h.listVerdicts)
	}

	return r
}

// verificationResponse — тело ответа вебхуку.
type verificationResponse struct {
	Details string `json:"details"`
	OK      bool   `json:"ok"`
}

// verifyPrepayment — POST /webhook/prepayment.
// Тело читается целиком: подпись считается по сырым байтам.
// Статус ответа — транспортный сигнал вердикта (200/400/500/503).
func (h *Handler) verifyPrepayment(c *gin.Context) {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		h.log.Warnf(ctx, "read webhook body failed: %v", err)
		c.JSON(http.StatusBadRequest, verificationResponse{Details: "Malformed request body", OK: false})
		return
	}

	verdict := h.verifier.VerifyPrepayment(ctx, body, c.GetHeader(webhook.SignatureHeader))
	c.JSON(verdict.StatusCode, verificationResponse{Details: verdict.Details, OK: verdict.OK})
}

// listVerdicts — GET /verdicts?limit=N, операционный просмотр журнала аудита.
func (h *Handler) listVerdicts(c *gin.Context) {
	limit, _ := httpx.ParseLimitOffset(c, 20, 100)

	records, err := h.verdicts.LastN(c.Request.Context(), limit)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "verdicts.LastN failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, records)
}
