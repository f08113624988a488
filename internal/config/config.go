// Package config loads worker and tool settings from the environment.
// .env and .env.local are read first; variables already set in the process
// environment win.
package config

import (
	"net"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Queue    QueueConfig
	Storage  StorageConfig
	AWS      AWSConfig
	Logging  LoggingConfig
	Tracing  TracingConfig
	Rate     RateLimitConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// InternalSecret guards /internal routes. Empty disables the check.
	InternalSecret string `env:"INTERNAL_JOB_SECRET"`

	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" default:"65536"`
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL" envAlt:"DB_DSN" required:"true"`
	MaxConns        int           `env:"DB_MAX_CONNS" default:"10"`
	MinConns        int           `env:"DB_MIN_CONNS" default:"1"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

type ImportConfig struct {
	// BatchSize is the number of records committed per transaction.
	BatchSize int `env:"IMPORT_BATCH_SIZE" default:"500"`

	// ReadChunkSize is the size of each read from the uploaded file.
	ReadChunkSize int `env:"IMPORT_READ_CHUNK_SIZE" default:"65536"`
}

type QueueConfig struct {
	// MarcQueueURL is the SQS queue carrying job messages. Empty disables
	// the consumer; jobs can still be run over HTTP.
	MarcQueueURL      string        `env:"MARC_QUEUE_URL"`
	EmbeddingQueueURL string        `env:"EMBEDDING_QUEUE_URL"`
	WaitTime          time.Duration `env:"QUEUE_WAIT_TIME" default:"20s"`
	MaxMessages       int           `env:"QUEUE_MAX_MESSAGES" default:"1"`
	VisibilityTimeout time.Duration `env:"QUEUE_VISIBILITY_TIMEOUT" default:"15m"`
	ErrorBackoff      time.Duration `env:"QUEUE_ERROR_BACKOFF" default:"5s"`
}

type StorageConfig struct {
	// Driver is "s3" or "fs".
	Driver string `env:"STORAGE_DRIVER" default:"s3"`
	// FSRoot holds <bucket>/<key> files when Driver is "fs".
	FSRoot string `env:"STORAGE_FS_ROOT" default:"./data"`
}

type AWSConfig struct {
	Region string `env:"AWS_REGION" envAlt:"AWS_DEFAULT_REGION" default:"us-east-1"`
	// EndpointURL points the S3 and SQS clients at a local stack.
	EndpointURL string `env:"AWS_ENDPOINT_URL"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" default:"info"`
	Format string `env:"LOG_FORMAT" default:"text"`
}

type TracingConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" default:"false"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	Insecure    bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	ServiceName string `env:"OTEL_SERVICE_NAME" default:"marcingest"`
}

type RateLimitConfig struct {
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`
	// RequestsPerMinute applies per client to the internal job routes.
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"30"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
