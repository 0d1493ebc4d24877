// Пакет logger — zap-реализация порта ports.Logger.
// Записи обогащаются метаданными запроса из контекста (request_id, trace_id),
// чтобы по логам можно было собрать путь одного вебхука через весь конвейер.
package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/cartverify/prepay-gateway/pkg/ctxmeta"
)

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — логгер для прода (JSON) или разработки (консольный).
// Возвращает функцию сброса буферов для вызова при остановке.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	build := zap.NewDevelopment
	if isProd {
		build = zap.NewProduction
	}

	base, err := build()
	if err != nil {
		return nil, nil, err
	}

	z := &ZapLogger{base: base, sugar: base.Sugar()}
	return z, base.Sync, nil
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with — добавляет к записи request_id и trace_id, если они есть в контексте.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	s := z.sugar
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if tid, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		s = s.With("trace_id", tid)
	}
	return s
}
