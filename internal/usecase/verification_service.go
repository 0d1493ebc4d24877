package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/internal/webhook"
	"github.com/cartverify/prepay-gateway/pkg/ctxmeta"
	"github.com/cartverify/prepay-gateway/pkg/metrics"
)

// Проверка, что VerificationService удовлетворяет порту PrepaymentVerifier.
var _ ports.PrepaymentVerifier = (*VerificationService)(nil)

// VerificationService — оркестратор проверки корзины перед оплатой.
// Конечный автомат со строгой последовательностью состояний, терминальный
// на первом отказе: проверка конфигурации → подлинность → извлечение →
// по-позиционная проверка (структура, затем решение) → одобрение.
// Повторных попыток нет; позиции обрабатываются строго последовательно,
// после первого отказа остальные не трогаются.
type VerificationService struct {
	providerName string                     // метка провайдера для метрик/аудита
	auth         ports.WebhookAuthenticator // проверка подписи вебхука
	judge        ItemJudge                  // стратегия решения по позиции
	verdicts     ports.VerdictRepository    // журнал аудита; nil — аудит выключен
	cache        ports.VerdictCache         // кэш повторных доставок; nil — выключен
	log          ports.Logger
}

// NewVerificationService — DI-конструктор. verdicts и cache могут быть nil.
func NewVerificationService(
	providerName string,
	auth ports.WebhookAuthenticator,
	judge ItemJudge,
	verdicts ports.VerdictRepository,
	cache ports.VerdictCache,
	log ports.Logger,
) *VerificationService {
	return &VerificationService{
		providerName: providerName,
		auth:         auth,
		judge:        judge,
		verdicts:     verdicts,
		cache:        cache,
		log:          log,
	}
}

// VerifyPrepayment — прогнать тело вебхука через конвейер.
// Всегда возвращает вердикт; ошибки и паники наружу не выходят.
func (s *VerificationService) VerifyPrepayment(ctx context.Context, body []byte, signature string) domain.Verdict {
	// 1. Проверка конфигурации активного провайдера.
	if err := s.judge.Ready(); err != nil {
		s.log.Warnf(ctx, "provider not configured: %v", err)
		return s.finish(ctx, domain.Unavailable("Server credentials were not provided."), signature, 0)
	}

	// 2. Подлинность запроса. Текст ошибки уходит клиенту в вердикте 400.
	if err := s.auth.Authenticate(body, signature); err != nil {
		s.log.Warnf(ctx, "authenticity check failed: %v", err)
		return s.finish(ctx, domain.BadRequest(err.Error()), signature, 0)
	}

	// Повторная доставка того же тела получает прежний ответ без
	// повторного похода к провайдеру.
	if s.cache != nil && signature != "" {
		if cached, ok := s.cache.Get(ctx, signature); ok {
			s.log.Infof(ctx, "verdict replayed from cache ok=%v", cached.OK)
			return cached
		}
	}

	verdict, itemCount := s.evaluate(ctx, body)
	return s.finish(ctx, verdict, signature, itemCount)
}

// evaluate — состояния 3–5. Любая паника здесь перехватывается и
// превращается в общий вердикт 500 без деталей для клиента.
func (s *VerificationService) evaluate(ctx context.Context, body []byte) (verdict domain.Verdict, itemCount int) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf(ctx, "verification panic: %v", r)
			verdict = domain.Failed("An internal error has occurred")
		}
	}()

	// 3. Извлечение. Отсутствие позиций — корректный вход: проверять нечего,
	// корзина одобряется.
	items := webhook.ExtractItems(body)
	itemCount = len(items)

	// 4–5. Позиции в порядке извлечения; первый отказ любого рода терминален,
	// последующие позиции не оцениваются и не запрашиваются у провайдера.
	for i := range items {
		item := &items[i]

		if ok, reasons := webhook.ValidItem(item); !ok {
			s.log.Warnf(ctx, "invalid item %s: %s", item.Name, strings.Join(reasons, " "))
			return domain.Rejected("Invalid items: " + item.Name), itemCount
		}

		ok, err := s.judge.Judge(ctx, item)
		if err != nil {
			// Полная причина остаётся в логах; клиент получает общий текст.
			s.log.Errorf(ctx, "provider call failed code=%s: %v", item.Code, err)
			return domain.Failed("Server failed to handle request"), itemCount
		}
		if !ok {
			return domain.Rejected("Invalid item"), itemCount
		}
	}

	// 6. Все позиции прошли.
	s.log.Infof(ctx, "OK: payment approved - items verified")
	return domain.Approved(), itemCount
}

// finish — терминальная обработка вердикта: метрика, кэш повторов
// (только для понятых запросов, 5xx должны переспрашиваться), аудит.
func (s *VerificationService) finish(ctx context.Context, verdict domain.Verdict, signature string, itemCount int) domain.Verdict {
	metrics.VerdictsTotal.WithLabelValues(s.providerName, outcomeLabel(verdict)).Inc()

	if s.cache != nil && signature != "" && verdict.StatusCode == http.StatusOK {
		if err := s.cache.Set(ctx, signature, verdict); err != nil {
			s.log.Warnf(ctx, "verdict cache set failed: %v", err)
		}
	}

	if s.verdicts != nil {
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		rec := &ports.VerdictRecord{
			RequestID:  rid,
			Provider:   s.providerName,
			Verdict:    verdict,
			StatusCode: verdict.StatusCode,
			ItemCount:  itemCount,
		}
		if err := s.verdicts.Save(ctx, rec); err != nil {
			// Аудит best-effort: отказ журнала не меняет вердикт.
			s.log.Warnf(ctx, "verdict audit save failed: %v", err)
		}
	}

	return verdict
}

// outcomeLabel — метка исхода для метрик.
func outcomeLabel(v domain.Verdict) string {
	switch v.StatusCode {
	case http.StatusOK:
		if v.OK {
			return "approved"
		}
		return "rejected"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}
