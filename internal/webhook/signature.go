package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
)

// SignatureHeader — заголовок с подписью тела вебхука.
const SignatureHeader = "Foxy-Webhook-Signature"

// Проверка, что SignatureAuthenticator удовлетворяет порту WebhookAuthenticator.
var _ ports.WebhookAuthenticator = (*SignatureAuthenticator)(nil)

// SignatureAuthenticator — проверка подлинности вебхука по HMAC-SHA256
// от сырого тела с клиентским ключом. Пустой ключ отключает проверку
// (режим разработки, сравнение подписи не выполняется).
type SignatureAuthenticator struct {
	clientKey []byte
}

// NewSignatureAuthenticator — конструктор. clientKey разделён с отправителем вебхуков.
func NewSignatureAuthenticator(clientKey string) *SignatureAuthenticator {
	return &SignatureAuthenticator{clientKey: []byte(clientKey)}
}

// Authenticate — сверить подпись из заголовка с вычисленной по телу.
// Текст ошибки уходит клиенту в вердикте 400, поэтому он намеренно краток.
func (a *SignatureAuthenticator) Authenticate(body []byte, signature string) error {
	if len(a.clientKey) == 0 {
		return nil
	}
	if signature == "" {
		return fmt.Errorf("%w: webhook signature is missing", domain.ErrMalformedRequest)
	}

	mac := hmac.New(sha256.New, a.clientKey)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: webhook signature does not match", domain.ErrMalformedRequest)
	}
	return nil
}
