package orderdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/pkg/metrics"
)

const providerName = "orderdesk"

// Проверка, что Client удовлетворяет порту CanonicalProvider.
var _ ports.CanonicalProvider = (*Client)(nil)

// Item — запись инвентаря в нативном формате OrderDesk.
// Price/Stock — указатели: для пакета обновлений ноль — допустимое значение,
// а отсутствие поля — нет.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	Price    *float64 `json:"price"`
	Stock    *float64 `json:"stock"`
	ParentID string   `json:"parent_id,omitempty"`
}

// Config — настройки клиента OrderDesk.
type Config struct {
	Domain      string // хост API, по умолчанию app.orderdesk.me
	Credentials string // составная строка учётных данных (приоритетная)
	StoreID     string
	APIKey      string
	HTTPTimeout time.Duration
}

// Client — клиент инвентаря OrderDesk (ports.CanonicalProvider).
type Client struct {
	baseURL string
	creds   Credentials
	http    *http.Client
	log     ports.Logger
}

// NewClient — конструктор. Учётные данные разрешаются здесь один раз;
// без них клиент не создаётся (domain.ErrMissingCredentials).
func NewClient(cfg Config, log ports.Logger) (*Client, error) {
	creds, err := ResolveCredentials(cfg.Credentials, cfg.StoreID, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	host := cfg.Domain
	if host == "" {
		host = "app.orderdesk.me"
	}
	// Хост без схемы считается HTTPS; схема в конфиге нужна тестам и стендам.
	baseURL := "https://" + host
	if strings.Contains(host, "://") {
		baseURL = strings.TrimRight(host, "/")
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		creds:   creds,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// Ready — клиент создаётся только с разрешёнными учётными данными,
// поэтому после конструктора он всегда готов.
func (c *Client) Ready() error { return nil }

// FetchCanonicalItems — GET inventory-items по списку кодов (одним запросом,
// коды соединяются запятой).
func (c *Client) FetchCanonicalItems(ctx context.Context, codes []string) ([]domain.CanonicalItem, error) {
	endpoint := c.buildEndpoint("inventory-items") + "?" + url.Values{
		"code": []string{strings.Join(codes, ",")},
	}.Encode()

	var listing struct {
		InventoryItems []Item `json:"inventory_items"`
	}
	if err := c.call(ctx, "fetch", http.MethodGet, endpoint, nil, &listing); err != nil {
		return nil, err
	}

	items := make([]domain.CanonicalItem, 0, len(listing.InventoryItems))
	for i := range listing.InventoryItems {
		items = append(items, ConvertToCanonical(&listing.InventoryItems[i]))
	}
	return items, nil
}

// PushInventoryUpdates — PUT batch-inventory-items.
// Сначала локальная предпроверка всех записей: при любом провале сетевой
// вызов не выполняется (всё или ничего).
func (c *Client) PushInventoryUpdates(ctx context.Context, items []domain.CanonicalItem) error {
	native := make([]Item, 0, len(items))
	var invalid []string
	for i := range items {
		item := convertToNative(&items[i])
		if !validUpdateItem(&item) {
			invalid = append(invalid, items[i].Code)
			continue
		}
		native = append(native, item)
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidUpdatePayload, strings.Join(invalid, ","))
	}

	body, err := json.Marshal(native)
	if err != nil {
		return fmt.Errorf("marshal update batch: %w", err)
	}
	return c.call(ctx, "update", http.MethodPut, c.buildEndpoint("batch-inventory-items"), body, nil)
}

// ConvertToCanonical — одностороннее, с потерями, отображение нативной записи
// в каноническую форму: остаются только имя, цена, остаток и код.
func ConvertToCanonical(item *Item) domain.CanonicalItem {
	return domain.CanonicalItem{
		Name:      item.Name,
		Price:     item.Price,
		Inventory: item.Stock,
		Code:      item.Code,
	}
}

// convertToNative — обратная проекция для пакета обновлений.
// Идентификатором записи служит код товара.
func convertToNative(item *domain.CanonicalItem) Item {
	return Item{
		ID:    item.Code,
		Name:  item.Name,
		Code:  item.Code,
		Price: item.Price,
		Stock: item.Inventory,
	}
}

// validUpdateItem — минимальные требования к записи пакета обновлений:
// непустые id, name, code и объявленные (возможно нулевые) цена и остаток.
func validUpdateItem(item *Item) bool {
	return item.ID != "" && item.Name != "" && item.Code != "" &&
		item.Price != nil && item.Stock != nil
}

// buildEndpoint — полный URL эндпоинта из пути.
func (c *Client) buildEndpoint(path string) string {
	return fmt.Sprintf("%s/api/v2/%s", c.baseURL, path)
}

// call — один HTTP-вызов к OrderDesk с учётными заголовками и метриками.
// Не-2xx статус и сетевые ошибки — domain.ErrProviderUnavailable.
func (c *Client) call(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ORDERDESK-STORE-ID", c.creds.StoreID)
	req.Header.Set("ORDERDESK-API-KEY", c.creds.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(providerName, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(providerName, op, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ProviderRequests.WithLabelValues(providerName, op, "error").Inc()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Errorf(ctx, "orderdesk %s failed status=%d body=%s", op, resp.StatusCode, detail)
		return fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	metrics.ProviderRequests.WithLabelValues(providerName, op, "ok").Inc()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrProviderUnavailable, err)
	}
	return nil
}
