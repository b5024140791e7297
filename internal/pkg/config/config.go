package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Queue     QueueConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Jobs      JobsConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	Migrate  bool   `envconfig:"DB_MIGRATE_ON_START" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// QueueConfig holds the product constants of the booking engine.
type QueueConfig struct {
	WalkinGrace             time.Duration `envconfig:"QUEUE_WALKIN_GRACE" default:"5m"`
	DisplayBuffer           time.Duration `envconfig:"QUEUE_DISPLAY_BUFFER" default:"5m"`
	SlotInterval            time.Duration `envconfig:"QUEUE_SLOT_INTERVAL" default:"30m"`
	ClosingWarning          time.Duration `envconfig:"QUEUE_CLOSING_WARNING" default:"15m"`
	CountdownVisible        time.Duration `envconfig:"QUEUE_COUNTDOWN_VISIBLE" default:"60s"`
	ScheduledPromoteLead    time.Duration `envconfig:"QUEUE_SCHEDULED_PROMOTE_LEAD" default:"15m"`
	DefaultServiceDuration  time.Duration `envconfig:"QUEUE_DEFAULT_SERVICE_DURATION" default:"30m"`
	AllowWalkinsWhenClosing bool          `envconfig:"QUEUE_ALLOW_WALKINS_WHEN_CLOSING" default:"false"`
	PollFast                time.Duration `envconfig:"QUEUE_POLL_FAST" default:"3s"`
	PollSlow                time.Duration `envconfig:"QUEUE_POLL_SLOW" default:"10s"`
	PollQuietAfter          time.Duration `envconfig:"QUEUE_POLL_QUIET_AFTER" default:"30s"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:""`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	RateLimit    int           `envconfig:"RATE_LIMIT_PER_WINDOW" default:"30"`
	RateWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	RateFailOpen bool          `envconfig:"RATE_LIMIT_FAIL_OPEN" default:"true"`
}

type KafkaConfig struct {
	Brokers      string        `envconfig:"KAFKA_BROKERS" default:""`
	ServingTopic string        `envconfig:"KAFKA_SERVING_TOPIC" default:"reservation.serving"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"2s"`
}

type JobsConfig struct {
	Enabled            bool          `envconfig:"JOBS_ENABLED" default:"true"`
	CompactionInterval time.Duration `envconfig:"JOBS_COMPACTION_INTERVAL" default:"1m"`
}

type TelemetryConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"salon-queue"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Queue: NewDefaultQueueConfig(),
		Redis: RedisConfig{
			RateLimit:    1000,
			RateWindow:   time.Minute,
			RateFailOpen: true,
		},
		Kafka: KafkaConfig{
			ServingTopic: "reservation.serving",
			WriteTimeout: time.Second,
		},
		Jobs: JobsConfig{
			Enabled:            false,
			CompactionInterval: time.Minute,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "salon-queue-test",
			SampleRatio: 1,
		},
	}
}

func NewDefaultQueueConfig() QueueConfig {
	return QueueConfig{
		WalkinGrace:            5 * time.Minute,
		DisplayBuffer:          5 * time.Minute,
		SlotInterval:           30 * time.Minute,
		ClosingWarning:         15 * time.Minute,
		CountdownVisible:       60 * time.Second,
		ScheduledPromoteLead:   15 * time.Minute,
		DefaultServiceDuration: 30 * time.Minute,
		PollFast:               3 * time.Second,
		PollSlow:               10 * time.Second,
		PollQuietAfter:         30 * time.Second,
	}
}
