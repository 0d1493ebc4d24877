//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/cartverify/prepay-gateway/internal/domain"
	ikafka "github.com/cartverify/prepay-gateway/internal/kafka"
	"github.com/cartverify/prepay-gateway/internal/testutil"
	"github.com/cartverify/prepay-gateway/internal/usecase"
	"github.com/cartverify/prepay-gateway/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// recordingStore — провайдер-заглушка, накапливающая протолкнутые обновления.
type recordingStore struct {
	mu     sync.Mutex
	pushed [][]domain.CanonicalItem
}

func (s *recordingStore) Ready() error { return nil }

func (s *recordingStore) FetchCanonicalItems(context.Context, []string) ([]domain.CanonicalItem, error) {
	return nil, nil
}

func (s *recordingStore) PushInventoryUpdates(_ context.Context, items []domain.CanonicalItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushed = append(s.pushed, items)
	return nil
}

func (s *recordingStore) batches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pushed)
}

func (s *recordingStore) allBatches() [][]domain.CanonicalItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]domain.CanonicalItem(nil), s.pushed...)
}

func (s *recordingStore) firstBatch() []domain.CanonicalItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pushed) == 0 {
		return nil
	}
	return s.pushed[0]
}

// 1) Валидная партия доезжает до магазина
func TestKafka_ValidBatch_Pushed_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "inventory-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	store := &recordingStore{}
	svc := usecase.NewInventoryService(store, logg)

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе/получить assignment
	time.Sleep(1500 * time.Millisecond)

	batch := []domain.CanonicalItem{
		testutil.MakeCanonicalItem(testutil.WithInventory(42)),
		testutil.MakeCanonicalItem(testutil.WithPrice(19.99)),
	}
	raw, _ := json.Marshal(batch)
	writeMsg(t, ctx, kf.Brokers, topic, raw)

	deadline := time.Now().Add(20 * time.Second)
	for store.batches() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("batch not pushed in time")
		}
		time.Sleep(200 * time.Millisecond)
	}

	got := store.firstBatch()
	require.Len(t, got, 2)
	require.Equal(t, batch[0].Code, got[0].Code)
	require.Equal(t, float64(42), *got[0].Inventory)
}

// 2) Не-JSON сообщение пропускается, валидная партия после него — доезжает
func TestKafka_Skip_InvalidJSON_Then_PushValid_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "inventory-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-invalid-json-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	store := &recordingStore{}
	svc := usecase.NewInventoryService(store, logg)

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	time.Sleep(1500 * time.Millisecond)

	// 1) Шлём мусор
	writeMsg(t, ctx, kf.Brokers, topic, []byte("not-a-json"))

	// 2) Шлём валидную партию
	batch := []domain.CanonicalItem{testutil.MakeCanonicalItem()}
	raw, _ := json.Marshal(batch)
	writeMsg(t, ctx, kf.Brokers, topic, raw)

	// 3) Ждём ровно одну доехавшую партию — мусор не должен превратиться в push
	deadline := time.Now().Add(20 * time.Second)
	for store.batches() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("valid batch not pushed in time")
		}
		time.Sleep(200 * time.Millisecond)
	}
	require.Equal(t, 1, store.batches())
	require.Equal(t, batch[0].Code, store.firstBatch()[0].Code)
}

// 3) StartOffset="last": партии, опубликованные до старта консьюмера, игнорируются
func TestKafka_StartOffset_Last_IgnoresOld_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "inventory-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-last-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	// 1) Публикуем "старую" партию ДО консьюмера
	old := []domain.CanonicalItem{testutil.MakeCanonicalItem()}
	rold, _ := json.Marshal(old)
	writeMsg(t, ctx, kf.Brokers, topic, rold)

	store := &recordingStore{}
	svc := usecase.NewInventoryService(store, logg)

	// 2) Запускаем консьюмера с StartOffset="last"
	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: "last",
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = consumer.Run(runCtx) }()

	// 3) Публикуем новую партию несколько раз до доезда — так гарантируем, что одно из
	//    сообщений окажется после базовой позиции, с которой читает консьюмер.
	fresh := []domain.CanonicalItem{testutil.MakeCanonicalItem(testutil.WithInventory(7))}
	rnew, _ := json.Marshal(fresh)

	deadline := time.Now().Add(20 * time.Second)
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	for {
		writeMsg(t, ctx, kf.Brokers, topic, rnew)

		if b := store.firstBatch(); b != nil {
			require.Equal(t, fresh[0].Code, b[0].Code)
			// и убеждаемся, что "старая" не доехала
			for _, pushed := range store.allBatches() {
				require.NotEqual(t, old[0].Code, pushed[0].Code)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("fresh batch not pushed in time")
		}
		<-ticker.C
	}
}

// 4) At-least-once через рестарт: при временной ошибке и отсутствии коммита — передоставка после перезапуска
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "inventory-itc")
	require.NoError(t, err)
	defer func() { _ = stopKF(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = closer() }()

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-redelivery-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	batch := []domain.CanonicalItem{testutil.MakeCanonicalItem()}
	raw, _ := json.Marshal(batch)
	writeMsg(t, ctx, kf.Brokers, topic, raw)

	// Фаза 1: всегда временная ошибка => оффсет НЕ коммитится
	consumerFail := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 300 * time.Millisecond,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       300 * time.Millisecond,
	}, alwaysTempFailApplier{}, logg)

	runCtx1, cancelRun1 := context.WithCancel(ctx)
	go func() { _ = consumerFail.Run(runCtx1) }()

	// Ждём немного, чтобы сообщение точно было Fetch'ed и обработка упала
	time.Sleep(2 * time.Second)
	cancelRun1() // выходим без коммита

	// Фаза 2: нормальный сервис в той же группе перехватывает некоммиченное
	store := &recordingStore{}
	svc := usecase.NewInventoryService(store, logg)

	consumerOK := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		GroupID:     group,
		StartOffset: "first",
	}, svc, logg)

	runCtx2, cancelRun2 := context.WithCancel(ctx)
	defer cancelRun2()
	go func() { _ = consumerOK.Run(runCtx2) }()

	deadline := time.Now().Add(25 * time.Second)
	for store.batches() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("batch not redelivered/pushed in time")
		}
		time.Sleep(250 * time.Millisecond)
	}
	require.Equal(t, batch[0].Code, store.firstBatch()[0].Code)
}

// -----------------функции-помощники-----------------

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: payload}))
}

// временная "сетеподобная" ошибка
type tempNetErr struct{}

func (tempNetErr) Error() string   { return "temporary failure" }
func (tempNetErr) Temporary() bool { return true }
func (tempNetErr) Timeout() bool   { return true } // как у net.Error

type alwaysTempFailApplier struct{}

func (alwaysTempFailApplier) ApplyFromMessage(ctx context.Context, _ []byte) error {
	return tempNetErr{}
}
