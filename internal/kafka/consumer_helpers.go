package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/pkg/metrics"
)

// handleMessage — применяет партию обновлений и решает судьбу оффсета.
// Коммитим в двух случаях: партия применена либо заведомо невалидна
// (повторная доставка мусора ничего не исправит). Временные ошибки
// провайдера оставляют оффсет на месте — партия придёт снова.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	applyCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.ApplyFromMessage(applyCtx, msg.Value)
	cancel()

	if err == nil {
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	}

	metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
	if errors.Is(err, domain.ErrInvalidUpdatePayload) {
		c.log.Warnf(ctx, "invalid update batch offset=%d: %v (skipped)", msg.Offset, err)
		return true
	}
	c.log.Warnf(ctx, "apply failed offset=%d: %v (will retry without commit)", msg.Offset, err)
	return false
}

// commitSafely — ошибка коммита не роняет цикл: партия уже применена,
// худший исход — повторное применение после рестарта.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

// pause — ждёт d или отмену контекста; false при отмене.
func (c *Consumer) pause(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff — удвоение интервала до потолка retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	return min(current*2, c.retryMax)
}

// withJitterEqual — equal jitter: половина интервала фиксирована,
// половина случайна. Рассинхронизирует повторы соседних потребителей.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}
