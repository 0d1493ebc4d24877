package orderdesk

import (
	"fmt"
	"regexp"

	"github.com/cartverify/prepay-gateway/internal/domain"
)

// Составной формат учётных данных: фиксированные литералы, пятизначный
// идентификатор магазина и алфавитно-цифровой ключ в конце строки.
var compositeCredentials = regexp.MustCompile(`Store ID (\d{5}) API Key ([A-Za-z0-9]+)$`)

// Credentials — разрешённые учётные данные OrderDesk.
type Credentials struct {
	StoreID string
	APIKey  string
}

// ResolveCredentials — разбор учётных данных из конфигурации.
// Составная строка имеет приоритет; если она не разбирается —
// берутся отдельные значения. Без идентификатора и ключа провайдер
// существовать не может: domain.ErrMissingCredentials.
func ResolveCredentials(composite, storeID, apiKey string) (Credentials, error) {
	if composite != "" {
		if m := compositeCredentials.FindStringSubmatch(composite); len(m) == 3 {
			return Credentials{StoreID: m[1], APIKey: m[2]}, nil
		}
	}
	if storeID == "" || apiKey == "" {
		return Credentials{}, fmt.Errorf("%w: orderdesk store id and/or api key", domain.ErrMissingCredentials)
	}
	return Credentials{StoreID: storeID, APIKey: apiKey}, nil
}
