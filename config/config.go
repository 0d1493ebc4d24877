package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"prepay-gateway" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Datastore — настройки магазина, против которого сверяется корзина.
// Provider выбирает стратегию: "orderdesk" — каноничный каталог OrderDesk,
// "server" — делегирование решения произвольному HTTP-серверу.
type Datastore struct {
	Provider string `default:"orderdesk" envconfig:"PROVIDER"`

	// Credentials — составная строка "Store ID NNNNN API Key XXXX";
	// если задана, имеет приоритет над отдельными StoreID/APIKey.
	Credentials string `default:"" envconfig:"CREDENTIALS"`
	StoreID     string `default:"" envconfig:"STORE_ID"`
	APIKey      string `default:"" envconfig:"API_KEY"`
	Domain      string `default:"app.orderdesk.me" envconfig:"DOMAIN"`

	// Server — провайдер "server".
	ServerEndpoint string `default:"" envconfig:"SERVER_ENDPOINT"`
	ServerAPIID    string `default:"" envconfig:"SERVER_API_ID"`
	ServerAPIKey   string `default:"" envconfig:"SERVER_API_KEY"`

	// Коды позиций, исключённые из проверок (CSV).
	SkipPriceCodes     string `default:"" envconfig:"SKIP_PRICE_CODES"`
	SkipInventoryCodes string `default:"" envconfig:"SKIP_INVENTORY_CODES"`

	HTTPTimeout time.Duration `default:"10s" envconfig:"HTTP_TIMEOUT"`
}

// Webhook — параметры приёма вебхуков.
// Пустой ClientKey отключает проверку подписи.
type Webhook struct {
	ClientKey string `default:"" envconfig:"CLIENT_KEY"`
}

// Postgres — журнал аудита вердиктов. Пустой DSN отключает журнал.
type Postgres struct {
	DSN      string `default:"" envconfig:"DSN"`
	MaxConns int32  `default:"10" envconfig:"MAX_CONNS"`
}

// Kafka — фид обновлений остатков и цен. Enabled=false отключает консьюмера.
type Kafka struct {
	Enabled     bool     `default:"false" envconfig:"ENABLED"`
	Brokers     []string `default:"kafka:9092" envconfig:"BROKERS"`
	Topic       string   `default:"inventory-updates" envconfig:"TOPIC"`
	GroupID     string   `default:"prepay-gateway" envconfig:"GROUP_ID"`
	StartOffset string   `default:"last" envconfig:"START_OFFSET"`

	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`
}

// Cache — кэш повторных доставок вебхуков. Capacity=0 отключает кэш.
type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"10m" envconfig:"TTL"`
}

type Config struct {
	HTTP      HTTP
	Metrics   Metrics
	Tracing   Tracing
	Logger    Logger
	Datastore Datastore
	Webhook   Webhook
	Postgres  Postgres
	Kafka     Kafka
	Cache     Cache
}

// Load — конфигурация процесса из окружения с префиксом GATEWAY.
func Load() (Config, error) { return LoadWithPrefix("GATEWAY") }

// LoadWithPrefix — то же, но с произвольным префиксом (удобно в тестах,
// чтобы изолировать окружение).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
