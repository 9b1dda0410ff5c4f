package config

import "time"

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Redis    RedisConfig    `env-prefix:"REDIS_"`
	Kafka    KafkaConfig    `env-prefix:"KAFKA_"`
}

type AppConfig struct {
	Name     string `env:"NAME" env-default:"bookshelf"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr         string        `env:"ADDR" env-default:":8081"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
}

type GRPCConfig struct {
	Addr                 string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime        time.Duration `env:"KEEPALIVE_TIME" env-default:"60s"`
	KeepaliveTimeout     time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"30s"`
	MaxConcurrentStreams uint32        `env:"MAX_CONCURRENT_STREAMS" env-default:"50"`
}

type DatabaseConfig struct {
	// URL overrides the parts below when set.
	URL           string        `env:"URL"`
	Port          string        `env:"PORT" env-default:"5432"`
	Host          string        `env:"HOST" env-default:"localhost"`
	Name          string        `env:"NAME" env-default:"postgres"`
	User          string        `env:"USER" env-default:"user"`
	Password      string        `env:"PASSWORD"`
	SSLMode       string        `env:"SSL_MODE" env-default:"disable"`
	MaxConns      int32         `env:"MAX_CONNS" env-default:"10"`
	RetryAttempts uint          `env:"RETRY_ATTEMPTS" env-default:"5"`
	RetryDelay    time.Duration `env:"RETRY_DELAY" env-default:"500ms"`
	Migrate       bool          `env:"MIGRATE" env-default:"true"`
}

func (c DatabaseConfig) Address() string {
	return c.Host + ":" + c.Port
}

// RedisConfig disables the read cache when Addr is empty.
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" env-default:"0"`
	TTL      time.Duration `env:"TTL" env-default:"5m"`
}

// KafkaConfig disables change event publishing when Brokers is empty.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" env-separator:","`
	Topic   string   `env:"TOPIC" env-default:"library.changes"`
}
