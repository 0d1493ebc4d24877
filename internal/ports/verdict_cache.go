package ports

import (
	"context"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

// VerdictCache — кэш вердиктов по сигнатуре доставки вебхука.
// Отправители повторяют доставку; повторный запрос с той же подписью
// должен получить прежний ответ без повторного похода к провайдеру.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1).
type VerdictCache interface {
	// Get — вернуть вердикт по сигнатуре; (verdict, true) при попадании.
	Get(ctx context.Context, signature string) (domain.Verdict, bool)

	// Set — запомнить вердикт для сигнатуры.
	Set(ctx context.Context, signature string, verdict domain.Verdict) error
}
