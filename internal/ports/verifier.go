package ports

import (
	"context"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

// PrepaymentVerifier — прикладной сервис проверки корзины перед оплатой.
type PrepaymentVerifier interface {
	// VerifyPrepayment — прогнать сырое тело вебхука через конвейер проверки.
	// Всегда возвращает вердикт; ошибки наружу не выходят.
	VerifyPrepayment(ctx context.Context, body []byte, signature string) domain.Verdict
}
