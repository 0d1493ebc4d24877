package validate

import (
	"context"
	"strings"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
)

// Проверка, что CartValidator удовлетворяет порту CartValidator.
var _ ports.CartValidator = (*CartValidator)(nil)

// CartValidator — чистые правила сверки позиции корзины с эталонной записью.
// Наборы кодов-исключений наполняются один раз при старте (append-only),
// после этого читаются без синхронизации: конкурентных писателей нет.
type CartValidator struct {
	skipPrice     map[string]struct{}
	skipInventory map[string]struct{}
}

// NewCartValidator — конструктор с пустыми наборами исключений.
func NewCartValidator() *CartValidator {
	return &CartValidator{
		skipPrice:     make(map[string]struct{}),
		skipInventory: make(map[string]struct{}),
	}
}

// SkipPrice — исключить код товара из проверки цены.
// Повторное добавление того же кода ничего не меняет.
func (v *CartValidator) SkipPrice(code string) {
	if code != "" {
		v.skipPrice[code] = struct{}{}
	}
}

// SkipInventory — исключить код товара из проверки остатков.
func (v *CartValidator) SkipInventory(code string) {
	if code != "" {
		v.skipInventory[code] = struct{}{}
	}
}

// SkipFromConfig — наполнить оба набора из строк вида "code1,code2,...".
// Пустая строка даёт пустой набор, это не ошибка.
func (v *CartValidator) SkipFromConfig(_ context.Context, priceCSV, inventoryCSV string) {
	for _, code := range splitCodes(priceCSV) {
		v.SkipPrice(code)
	}
	for _, code := range splitCodes(inventoryCSV) {
		v.SkipInventory(code)
	}
}

// ValidPrice — цена позиции корректна, если:
//   - код в наборе исключений по цене, ИЛИ
//   - у эталона цена не объявлена (fail-open), ИЛИ
//   - цены совпадают после нормализации к float64 (точное равенство, без допуска).
func (v *CartValidator) ValidPrice(cart *domain.CartItem, canonical *domain.CanonicalItem) bool {
	if _, ok := v.skipPrice[cart.Code]; ok {
		return true
	}
	if !canonical.HasPrice() {
		return true
	}
	if !cart.HasPrice() {
		return false
	}
	return *cart.Price == *canonical.Price
}

// ValidInventory — остатка достаточно, если:
//   - код в наборе исключений по остаткам, ИЛИ
//   - количество не задано или равно нулю (нечего проверять), ИЛИ
//   - у эталона остаток не объявлен (fail-open), ИЛИ
//   - количество <= остатка (достаточность, не равенство).
func (v *CartValidator) ValidInventory(cart *domain.CartItem, canonical *domain.CanonicalItem) bool {
	if _, ok := v.skipInventory[cart.Code]; ok {
		return true
	}
	if cart.QuantityOrZero() == 0 {
		return true
	}
	if !canonical.HasInventory() {
		return true
	}
	return *cart.Quantity <= *canonical.Inventory
}

// splitCodes — разбор CSV-списка кодов с отбрасыванием пустых элементов.
func splitCodes(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
