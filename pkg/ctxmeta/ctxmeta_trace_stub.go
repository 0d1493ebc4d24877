//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` трассировка не подключена, идентификаторов нет.

func TraceIDFromContext(context.Context) (string, bool) { return "", false }

func SpanIDFromContext(context.Context) (string, bool) { return "", false }
