package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cartverify/prepay-gateway/config"
	cachemem "github.com/cartverify/prepay-gateway/internal/cache/memory"
	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/kafka"
	"github.com/cartverify/prepay-gateway/internal/ports"
	"github.com/cartverify/prepay-gateway/internal/provider/orderdesk"
	"github.com/cartverify/prepay-gateway/internal/provider/server"
	"github.com/cartverify/prepay-gateway/internal/repo/postgres"
	rest "github.com/cartverify/prepay-gateway/internal/transport/http"
	"github.com/cartverify/prepay-gateway/internal/usecase"
	"github.com/cartverify/prepay-gateway/internal/webhook"
	"github.com/cartverify/prepay-gateway/pkg/logger"
	"github.com/cartverify/prepay-gateway/pkg/metrics"
	"github.com/cartverify/prepay-gateway/pkg/telemetry"
	"github.com/cartverify/prepay-gateway/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер фида остатков; nil — фид выключен
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Стратегия проверки позиций — по конфигурации магазина.
	var (
		judge     usecase.ItemJudge
		canonical ports.CanonicalProvider
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Datastore.Provider)) {
	case "server":
		remote := server.NewClient(server.Config{
			Endpoint:    cfg.Datastore.ServerEndpoint,
			APIID:       cfg.Datastore.ServerAPIID,
			APIKey:      cfg.Datastore.ServerAPIKey,
			HTTPTimeout: cfg.Datastore.HTTPTimeout,
		}, logg)
		judge = usecase.NewRemoteDelegatedJudge(remote)
	default:
		client, cErr := orderdesk.NewClient(orderdesk.Config{
			Domain:      cfg.Datastore.Domain,
			Credentials: cfg.Datastore.Credentials,
			StoreID:     cfg.Datastore.StoreID,
			APIKey:      cfg.Datastore.APIKey,
			HTTPTimeout: cfg.Datastore.HTTPTimeout,
		}, logg)
		switch {
		case errors.Is(cErr, domain.ErrMissingCredentials):
			// Без учётных данных живём, но каждый вебхук получает 503.
			logg.Warnf(ctx, "orderdesk credentials missing, webhooks will be rejected with 503")
			judge = usecase.NewUnconfiguredJudge(cErr)
		case cErr != nil:
			if clErr := cleanupLogger(); clErr != nil {
				logg.Warnf(ctx, "cleanup logger: %v", clErr)
			}
			return nil, func() {}, cErr
		default:
			canonical = client
			validator := validate.NewCartValidator()
			validator.SkipFromConfig(ctx, cfg.Datastore.SkipPriceCodes, cfg.Datastore.SkipInventoryCodes)
			judge = usecase.NewLocalJudge(client, validator, logg)
		}
	}

	// Проверка подписи вебхуков (пустой ключ отключает).
	auth := webhook.NewSignatureAuthenticator(cfg.Webhook.ClientKey)

	// Журнал аудита вердиктов (опционален, по DSN).
	var (
		verdicts ports.VerdictRepository
		pool     interface{ Close() }
	)
	if cfg.Postgres.DSN != "" {
		pgPool, pErr := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if pErr != nil {
			if clErr := cleanupLogger(); clErr != nil {
				logg.Warnf(ctx, "cleanup logger: %v", clErr)
			}
			return nil, func() {}, pErr
		}
		pool = pgPool
		verdicts = postgres.NewVerdictRepository(pgPool)
	}

	// Кэш повторных доставок (опционален, по ёмкости).
	var cache ports.VerdictCache
	if cfg.Cache.Capacity > 0 {
		cache = cachemem.NewVerdictCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	verification := usecase.NewVerificationService(
		cfg.Datastore.Provider, auth, judge, verdicts, cache, logg,
	)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(verification, verdicts, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Консьюмер фида остатков: нужен включённый флаг и каноничный провайдер,
	// принимающий пакеты обновлений.
	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		if canonical == nil {
			logg.Warnf(ctx, "kafka feed enabled but datastore provider accepts no inventory updates, feed disabled")
		} else {
			inventory := usecase.NewInventoryService(canonical, logg)
			consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
				Brokers:        cfg.Kafka.Brokers,
				GroupID:        cfg.Kafka.GroupID,
				Topic:          cfg.Kafka.Topic,
				StartOffset:    cfg.Kafka.StartOffset,
				ProcessTimeout: cfg.Kafka.ProcessTimeout,
				RetryInitial:   cfg.Kafka.RetryInitial,
				RetryMax:       cfg.Kafka.RetryMax,
			}, inventory, logg)
		}
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if pool != nil {
			pool.Close()
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера (если фид включён).
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
