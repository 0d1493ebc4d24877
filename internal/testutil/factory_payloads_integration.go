//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeCanonicalItem — валидная позиция каталога с уникальным кодом.
func MakeCanonicalItem(opts ...func(*domain.CanonicalItem)) domain.CanonicalItem {
	code := "sku-" + UniqSuffix()

	it := domain.CanonicalItem{
		Code:      code,
		Name:      "Item " + code,
		Price:     domain.Float(10),
		Inventory: domain.Float(100),
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func WithPrice(p float64) func(*domain.CanonicalItem) {
	return func(it *domain.CanonicalItem) { it.Price = domain.Float(p) }
}

func WithInventory(n float64) func(*domain.CanonicalItem) {
	return func(it *domain.CanonicalItem) { it.Inventory = domain.Float(n) }
}

// MakeWebhookBody — тело вебхука предоплаты в формате, который шлёт корзина.
// Каждая позиция получает цену 10.00 и количество 1, опции pid/vid заполнены.
func MakeWebhookBody(codes ...string) []byte {
	type option struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	type embeddedOptions struct {
		Options []option `json:"fx:item_options"`
	}
	type item struct {
		Code     string          `json:"code"`
		Name     string          `json:"name"`
		Price    string          `json:"price"`
		Quantity int             `json:"quantity"`
		Embedded embeddedOptions `json:"_embedded"`
	}

	items := make([]item, 0, len(codes))
	for i, code := range codes {
		items = append(items, item{
			Code:     code,
			Name:     fmt.Sprintf("Item %d", i+1),
			Price:    "10.00",
			Quantity: 1,
			Embedded: embeddedOptions{Options: []option{
				{Name: "pid", Value: "100"},
				{Name: "vid", Value: "200"},
			}},
		})
	}

	body, _ := json.Marshal(map[string]any{
		"_embedded": map[string]any{"fx:items": items},
	})
	return body
}
