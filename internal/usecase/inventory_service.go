package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
)

// InventoryService — приём пакетов обновлений остатков из фида и передача
// их провайдеру. Невалидный пакет — постоянная ошибка (сообщение пропускается),
// отказ провайдера — временная (сообщение будет доставлено повторно).
type InventoryService struct {
	provider ports.CanonicalProvider
	log      ports.Logger
}

// NewInventoryService — DI-конструктор.
func NewInventoryService(provider ports.CanonicalProvider, log ports.Logger) *InventoryService {
	return &InventoryService{provider: provider, log: log}
}

// ApplyFromMessage — применить пакет обновлений из сырого JSON-сообщения.
// Формат: массив канонических записей [{code, name, price, inventory}...].
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. передача пакета провайдеру (локальная предпроверка — на его стороне).
func (s *InventoryService) ApplyFromMessage(ctx context.Context, raw []byte) error {
	var items []domain.CanonicalItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&items); err != nil {
		s.log.Warnf(ctx, "invalid update message: %v", err)
		return fmt.Errorf("%w: invalid json: %v", domain.ErrInvalidUpdatePayload, err)
	}

	// Убеждаемся, что после массива нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid update message: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", domain.ErrInvalidUpdatePayload)
	}

	if len(items) == 0 {
		s.log.Warnf(ctx, "empty update batch, nothing to push")
		return nil
	}

	if err := s.provider.PushInventoryUpdates(ctx, items); err != nil {
		if !errors.Is(err, domain.ErrInvalidUpdatePayload) {
			s.log.Errorf(ctx, "push updates failed count=%d: %v", len(items), err)
		}
		return err
	}

	s.log.Infof(ctx, "inventory updates pushed count=%d", len(items))
	return nil
}
