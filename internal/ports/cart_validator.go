package ports

import "github.com/cartverify/prepay-gateway/internal/domain"

// CartValidator — локальные правила сверки позиции корзины с эталоном.
type CartValidator interface {
	ValidPrice(cart *domain.CartItem, canonical *domain.CanonicalItem) bool
	ValidInventory(cart *domain.CartItem, canonical *domain.CanonicalItem) bool
}
