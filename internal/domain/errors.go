package domain

import "errors"

// Таксономия ошибок провайдеров и обработки запроса.
// Оркестратор различает их через errors.Is и переводит в вердикты.
var (
	// ErrMissingCredentials — учётные данные провайдера не заданы.
	// Фатальна на этапе конструирования: провайдер в таком состоянии не создаётся.
	ErrMissingCredentials = errors.New("provider credentials are missing")

	// ErrProviderUnavailable — транспортная ошибка при обращении к бэкенду
	// (сеть, не-2xx статус). Наружу уходит как 500.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderMisconfigured — конфигурация есть, но неполная/некорректная.
	// Наружу уходит как 503.
	ErrProviderMisconfigured = errors.New("provider misconfigured")

	// ErrInvalidUpdatePayload — локальная предпроверка пакета обновлений
	// не прошла; сетевой вызов не выполняется.
	ErrInvalidUpdatePayload = errors.New("invalid inventory update payload")

	// ErrMalformedRequest — входящий запрос не прошёл проверку подлинности
	// или структуры.
	ErrMalformedRequest = errors.New("malformed request")
)
