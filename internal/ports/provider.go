package ports

import (
	"context"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

// CanonicalProvider — доступ к авторитетному хранилищу цен/остатков.
type CanonicalProvider interface {
	// Ready — все ли обязательные настройки провайдера на месте.
	// domain.ErrProviderMisconfigured (обёрнутая) переводится в вердикт 503.
	Ready() error

	// FetchCanonicalItems — получить эталонные записи по списку кодов товаров.
	// Транспортные проблемы — domain.ErrProviderUnavailable (обёрнутая).
	FetchCanonicalItems(ctx context.Context, codes []string) ([]domain.CanonicalItem, error)

	// PushInventoryUpdates — отправить пакет обновлений остатков.
	// Перед отправкой каждая запись проходит локальную предпроверку;
	// при провале — domain.ErrInvalidUpdatePayload без сетевого вызова.
	PushInventoryUpdates(ctx context.Context, items []domain.CanonicalItem) error
}

// RemoteJudge — альтернативная стратегия проверки: решение о позиции
// принимает удалённый сервис, локальные правила цен/остатков не применяются.
type RemoteJudge interface {
	// Ready — все ли обязательные настройки удалённого сервиса на месте.
	Ready() error

	// VerifyItem — проверить одну позицию корзины на удалённой стороне.
	// (false, nil) — сервис ответил «позиция не прошла».
	VerifyItem(ctx context.Context, item domain.CartItem) (bool, error)
}
