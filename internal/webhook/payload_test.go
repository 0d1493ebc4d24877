package webhook_test

import (
	"strings"
	"testing"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/webhook"
)

const samplePayload = `{
	"_embedded": {
		"fx:items": [
			{
				"name": "Blue Shirt",
				"code": "sku-1",
				"price": "10.00",
				"quantity": 2,
				"_embedded": {
					"fx:item_options": [
						{"name": "pid", "value": "p-100"},
						{"name": "vid", "value": 200}
					]
				}
			}
		]
	}
}`

func TestExtractItems(t *testing.T) {
	items := webhook.ExtractItems([]byte(samplePayload))
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Code != "sku-1" || item.Name != "Blue Shirt" {
		t.Fatalf("wrong item identity: %+v", item)
	}
	// Числовая строка "10.00" нормализуется в 10.
	if item.Price == nil || *item.Price != 10 {
		t.Fatalf("price: want 10, got %v", item.Price)
	}
	if item.Quantity == nil || *item.Quantity != 2 {
		t.Fatalf("quantity: want 2, got %v", item.Quantity)
	}
	if pid, ok := item.Option("pid"); !ok || pid != "p-100" {
		t.Fatalf("pid: want p-100, got %q (found=%v)", pid, ok)
	}
	// Числовое значение опции приводится к строке.
	if vid, ok := item.Option("vid"); !ok || vid != "200" {
		t.Fatalf("vid: want 200, got %q (found=%v)", vid, ok)
	}
}

func TestExtractItems_MissingLocation(t *testing.T) {
	cases := map[string]string{
		"empty object":  `{}`,
		"no items key":  `{"_embedded": {}}`,
		"empty items":   `{"_embedded": {"fx:items": []}}`,
		"unparseable":   `{broken`,
		"null embedded": `{"_embedded": null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if items := webhook.ExtractItems([]byte(body)); len(items) != 0 {
				t.Fatalf("want empty result, got %d items", len(items))
			}
		})
	}
}

func TestValidItem(t *testing.T) {
	base := func() domain.CartItem {
		return domain.CartItem{
			Code:     "sku-1",
			Name:     "Blue Shirt",
			Price:    domain.Float(0),
			Quantity: domain.Float(0),
			Options: []domain.ItemOption{
				{Name: "pid", Value: "p-100"},
				{Name: "vid", Value: "v-200"},
			},
		}
	}

	t.Run("zero price and quantity are defined values", func(t *testing.T) {
		item := base()
		ok, reasons := webhook.ValidItem(&item)
		if !ok || len(reasons) != 0 {
			t.Fatalf("want valid, got reasons=%v", reasons)
		}
	})

	t.Run("missing pid rejects despite valid price and quantity", func(t *testing.T) {
		item := base()
		item.Options = []domain.ItemOption{{Name: "vid", Value: "v-200"}}
		ok, reasons := webhook.ValidItem(&item)
		if ok {
			t.Fatalf("want invalid")
		}
		if len(reasons) != 1 || !strings.Contains(reasons[0], "has no pid") {
			t.Fatalf("want pid reason, got %v", reasons)
		}
	})

	t.Run("all fields missing accumulate reasons", func(t *testing.T) {
		item := domain.CartItem{Code: "sku-1", Name: "Blue Shirt"}
		ok, reasons := webhook.ValidItem(&item)
		if ok || len(reasons) != 4 {
			t.Fatalf("want 4 reasons, got ok=%v reasons=%v", ok, reasons)
		}
	})
}
