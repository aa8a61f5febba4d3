package config

import (
	"time"

	"ticketdesk/pkg/mailer"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration. Each binary reads the sections it
// needs; unrelated sections keep their defaults.
type Config struct {
	Environment EnvironmentConfig

	Server ServerConfig
	Logger LoggerConfig

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Storage  StorageConfig

	JWT  JWTConfig
	Auth AuthConfig
	SMTP mailer.Config

	WebSocket WebSocketConfig
	Gateway   GatewayConfig
	Notifier  NotifierConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"development"`
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
	Mode string `env:"SERVER_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"ticketdesk"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// MongoConfig is the configuration for MongoDB (notification store).
type MongoConfig struct {
	URI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName         string        `env:"MONGO_DB" envDefault:"notifications"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize    uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host         string        `env:"REDIS_HOST" envDefault:"localhost:6379"`
	Password     string        `env:"REDIS_PASSWORD"`
	DB           int           `env:"REDIS_DB" envDefault:"0"`
	MaxRetries   int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout  time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
}

// StorageConfig is the configuration for MinIO object storage.
type StorageConfig struct {
	Endpoint  string `env:"STORAGE_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	UseSSL    bool   `env:"STORAGE_USE_SSL" envDefault:"false"`
	Bucket    string `env:"STORAGE_BUCKET" envDefault:"ticket-attachments"`
}

// JWTConfig is the configuration for the JWT manager.
type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY"`
	Issuer    string        `env:"JWT_ISSUER" envDefault:"ticketdesk"`
	TTL       time.Duration `env:"JWT_TTL" envDefault:"30m"`
}

// AuthConfig tunes password reset and login throttling.
type AuthConfig struct {
	ResetTokenTTL      time.Duration `env:"AUTH_RESET_TOKEN_TTL" envDefault:"15m"`
	LoginAttemptWindow time.Duration `env:"AUTH_LOGIN_ATTEMPT_WINDOW" envDefault:"15m"`
	MaxLoginAttempts   int64         `env:"AUTH_MAX_LOGIN_ATTEMPTS" envDefault:"5"`
}

// WebSocketConfig is the configuration for WebSocket connections.
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"4096"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	SendBufferSize  int           `env:"WS_SEND_BUFFER_SIZE" envDefault:"256"`
}

// GatewayConfig maps path prefixes to backend services.
type GatewayConfig struct {
	TicketsURL      string `env:"GATEWAY_TICKETS_URL" envDefault:"http://localhost:8000"`
	AuthURL         string `env:"GATEWAY_AUTH_URL" envDefault:"http://localhost:8001"`
	NotificationURL string `env:"GATEWAY_NOTIFICATION_URL" envDefault:"http://localhost:8002"`
}

// NotifierConfig points ticket-service producers at the notification service.
type NotifierConfig struct {
	BaseURL string        `env:"NOTIFIER_BASE_URL" envDefault:"http://localhost:8002"`
	Timeout time.Duration `env:"NOTIFIER_TIMEOUT" envDefault:"5s"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
