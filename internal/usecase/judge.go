package usecase

import (
	"context"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
)

// ItemJudge — стратегия вынесения решения по одной позиции корзины.
// Две реализации: локальная (эталон из провайдера + правила валидатора)
// и делегирующая (решение принимает удалённый сервер). Выбирается
// конфигурацией, оркестратору стратегии неразличимы.
type ItemJudge interface {
	// Ready — на месте ли конфигурация, без которой стратегия не работает.
	Ready() error

	// Judge — (true, nil) — позиция прошла; (false, nil) — отклонена;
	// ошибка — транспортный отказ провайдера.
	Judge(ctx context.Context, item *domain.CartItem) (bool, error)
}

// LocalJudge — локальное решение: эталонная запись запрашивается у провайдера,
// цена и остаток сверяются правилами валидатора.
type LocalJudge struct {
	provider  ports.CanonicalProvider
	validator ports.CartValidator
	log       ports.Logger
}

// NewLocalJudge — DI-конструктор.
func NewLocalJudge(provider ports.CanonicalProvider, validator ports.CartValidator, log ports.Logger) *LocalJudge {
	return &LocalJudge{provider: provider, validator: validator, log: log}
}

func (j *LocalJudge) Ready() error { return j.provider.Ready() }

// Judge — запросить эталон по коду позиции и сверить цену/остаток.
// Код без эталонной записи проходит: проверка применяется только к товарам,
// известным хранилищу (fail-open, как и отсутствие цены/остатка у эталона).
func (j *LocalJudge) Judge(ctx context.Context, item *domain.CartItem) (bool, error) {
	canonicals, err := j.provider.FetchCanonicalItems(ctx, []string{item.Code})
	if err != nil {
		return false, err
	}

	var canonical *domain.CanonicalItem
	for i := range canonicals {
		if canonicals[i].Code == item.Code {
			canonical = &canonicals[i]
			break
		}
	}
	if canonical == nil {
		j.log.Warnf(ctx, "no canonical record for code=%s, skipping checks", item.Code)
		return true, nil
	}

	if !j.validator.ValidPrice(item, canonical) {
		j.log.Infof(ctx, "price check failed code=%s", item.Code)
		return false, nil
	}
	if !j.validator.ValidInventory(item, canonical) {
		j.log.Infof(ctx, "inventory check failed code=%s", item.Code)
		return false, nil
	}
	return true, nil
}

// UnconfiguredJudge — заглушка для процесса без учётных данных магазина.
// Каждый вебхук получает 503, сам сервис при этом живёт: оператор может
// дослать учётные данные без пересборки окружения.
type UnconfiguredJudge struct {
	err error
}

// NewUnconfiguredJudge — DI-конструктор; err — причина неготовности.
func NewUnconfiguredJudge(err error) *UnconfiguredJudge { return &UnconfiguredJudge{err: err} }

func (j *UnconfiguredJudge) Ready() error { return j.err }

func (j *UnconfiguredJudge) Judge(context.Context, *domain.CartItem) (bool, error) {
	return false, j.err
}

// RemoteDelegatedJudge — решение выносит удалённый сервер проверки;
// локальные правила цен/остатков не применяются вовсе.
type RemoteDelegatedJudge struct {
	remote ports.RemoteJudge
}

// NewRemoteDelegatedJudge — DI-конструктор.
func NewRemoteDelegatedJudge(remote ports.RemoteJudge) *RemoteDelegatedJudge {
	return &RemoteDelegatedJudge{remote: remote}
}

func (j *RemoteDelegatedJudge) Ready() error { return j.remote.Ready() }

func (j *RemoteDelegatedJudge) Judge(ctx context.Context, item *domain.CartItem) (bool, error) {
	return j.remote.VerifyItem(ctx, *item)
}
