// Пакет ctxmeta — метаданные запроса, переносимые через context.Context.
// HTTP-слой кладёт сюда request_id, логгер и обработчики его читают;
// напрямую друг о друге эти слои не знают.
package ctxmeta

import "context"

// Неэкспортируемый тип ключа исключает коллизии с чужими значениями контекста.
type ctxKey string

const KeyRequestID ctxKey = "request_id"

// WithRequestID — кладёт идентификатор запроса в контекст.
// Пустой идентификатор не сохраняем: отсутствие значения информативнее пустой строки.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext — идентификатор запроса, если он был установлен.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(KeyRequestID).(string)
	return v, ok && v != ""
}
