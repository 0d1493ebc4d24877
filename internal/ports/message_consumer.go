package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (фид обновлений остатков).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
