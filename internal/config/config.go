package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and cache
// connections, moderation behavior, outbound integrations and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default minimum log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS; "*" allows any origin without credentials
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"moderation" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the cache used for pending-count lookups
	Redis struct {
		// Addr is the Redis host:port; an empty value disables caching
		Addr string `env:"REDIS_ADDR" env-default:"" yaml:"addr"`
		// Password for Redis authentication
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB is the Redis logical database index
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// PendingCountTTL is how long a cached pending count is served
		PendingCountTTL time.Duration `env:"REDIS_PENDING_COUNT_TTL" env-default:"30s" yaml:"pendingCountTTL"`
	} `yaml:"redis"`

	// JWT holds the RS256 key pair used to verify (and, for the jwt command, issue) bearer tokens
	JWT struct {
		// PublicKey is the PEM-encoded RSA public key
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM-encoded RSA private key; only the jwt command needs it
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Worker configures the background notification workers
	Worker struct {
		// MaxWorkers is the number of notification jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// NotifyMaxAttempts is how many times a notification delivery is attempted
		NotifyMaxAttempts int `env:"WORKER_NOTIFY_MAX_ATTEMPTS" env-default:"10" yaml:"notifyMaxAttempts"`
	} `yaml:"worker"`

	// Moderation configures the change request workflow
	Moderation struct {
		// ConflictPolicy decides what happens when a field already has a pending
		// request: "supersede" replaces it, "reject" refuses the new submission
		ConflictPolicy string `env:"MODERATION_CONFLICT_POLICY" env-default:"supersede" yaml:"conflictPolicy"`
		// SubmitRetries bounds how often a submission that lost a race is retried
		SubmitRetries int `env:"MODERATION_SUBMIT_RETRIES" env-default:"3" yaml:"submitRetries"`
	} `yaml:"moderation"`

	// Media configures the asset store used to verify logo and banner references
	Media struct {
		// BaseURL is the asset store API root
		BaseURL string `env:"MEDIA_BASE_URL" env-default:"http://localhost:8081" yaml:"baseURL"`
		// Token is sent as a bearer token when set
		Token string `env:"MEDIA_TOKEN" yaml:"token"`
		// Timeout bounds a single lookup
		Timeout time.Duration `env:"MEDIA_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"media"`

	// EventSink configures where change request events are delivered
	EventSink struct {
		// URL of the webhook; an empty value logs events instead
		URL string `env:"EVENT_SINK_URL" env-default:"" yaml:"url"`
		// Token is sent as a bearer token when set
		Token string `env:"EVENT_SINK_TOKEN" yaml:"token"`
		// Timeout bounds a single delivery
		Timeout time.Duration `env:"EVENT_SINK_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"eventSink"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
