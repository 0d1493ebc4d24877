package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/internal/webhook"
	"github.com/cartverify/prepay-gateway/pkg/metrics"
)

const providerName = "server"

// Проверка, что Client удовлетворяет порту RemoteJudge.
var _ ports.RemoteJudge = (*Client)(nil)

// Config — настройки произвольного сервера проверки.
type Config struct {
	Endpoint    string
	APIID       string
	APIKey      string
	HTTPTimeout time.Duration
}

// Client — клиент произвольного сервера проверки: решение о позиции
// принимает удалённая сторона, по одной позиции за вызов.
type Client struct {
	cfg  Config
	http *http.Client
	log  ports.Logger
}

// NewClient — конструктор. Неполная конфигурация не фатальна на этом этапе:
// она выявляется проверкой Ready в начале каждого запроса (вердикт 503).
func NewClient(cfg Config, log ports.Logger) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}, log: log}
}

// Ready — эндпоинт и оба учётных значения обязательны.
func (c *Client) Ready() error {
	if c.cfg.Endpoint == "" || c.cfg.APIID == "" || c.cfg.APIKey == "" {
		return fmt.Errorf("%w: server endpoint and credentials are required", domain.ErrProviderMisconfigured)
	}
	return nil
}

// verifyRequest — тело запроса к серверу проверки.
// Идентификатор позиции составной: значения опций pid и vid.
type verifyRequest struct {
	DataPointID  string   `json:"data_point_id"`
	DataPointVID string   `json:"data_point_vid"`
	Price        *float64 `json:"price"`
	Quantity     *float64 `json:"quantity"`
}

// VerifyItem — отправить позицию на удалённую проверку и прочитать
// булево поле valid из ответа. Не-200 статус — domain.ErrProviderUnavailable.
func (c *Client) VerifyItem(ctx context.Context, item domain.CartItem) (bool, error) {
	pid, _ := item.Option(webhook.OptionPID)
	vid, _ := item.Option(webhook.OptionVID)

	body, err := json.Marshal(verifyRequest{
		DataPointID:  pid,
		DataPointVID: vid,
		Price:        item.Price,
		Quantity:     item.Quantity,
	})
	if err != nil {
		return false, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(providerName, "verify").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(providerName, "verify", "error").Inc()
		return false, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequests.WithLabelValues(providerName, "verify", "error").Inc()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Errorf(ctx, "verification server failed status=%d body=%s", resp.StatusCode, detail)
		return false, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var verdict struct {
		Valid bool `json:"valid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		metrics.ProviderRequests.WithLabelValues(providerName, "verify", "error").Inc()
		return false, fmt.Errorf("%w: decode response: %v", domain.ErrProviderUnavailable, err)
	}

	metrics.ProviderRequests.WithLabelValues(providerName, "verify", "ok").Inc()
	return verdict.Valid, nil
}
