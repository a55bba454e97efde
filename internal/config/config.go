// Package config loads the service configuration from a YAML file, with
// environment variables taking precedence.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
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
		// CORSOrigins lists the origins allowed to call the API. Empty allows any origin.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"privacymon" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. The public key verifies API tokens, the
	// private key is only needed by the jwt command.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Scanner configures the job queue and the runner retry policy.
	Scanner struct {
		// MaxAttempts counts the first run, so 4 means three retries.
		MaxAttempts  int           `env:"SCANNER_MAX_ATTEMPTS" env-default:"4" yaml:"maxAttempts"`
		RetryBackoff time.Duration `env:"SCANNER_RETRY_BACKOFF" env-default:"2m" yaml:"retryBackoff"`
		JobTimeout   time.Duration `env:"SCANNER_JOB_TIMEOUT" env-default:"30m" yaml:"jobTimeout"`
		MaxWorkers   int           `env:"SCANNER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`

		SchedulerEnabled   bool          `env:"SCANNER_SCHEDULER_ENABLED" env-default:"true" yaml:"schedulerEnabled"`
		FullScanInterval   time.Duration `env:"SCANNER_FULL_SCAN_INTERVAL" env-default:"24h" yaml:"fullScanInterval"`
		BreachScanInterval time.Duration `env:"SCANNER_BREACH_SCAN_INTERVAL" env-default:"6h" yaml:"breachScanInterval"`
	} `yaml:"scanner"`

	HIBP struct {
		APIKey            string        `env:"HIBP_API_KEY" yaml:"apiKey"`
		BaseURL           string        `env:"HIBP_BASE_URL" env-default:"https://haveibeenpwned.com/api/v3" yaml:"baseUrl"`
		UserAgent         string        `env:"HIBP_USER_AGENT" env-default:"Privacy-Monitor" yaml:"userAgent"`
		Timeout           time.Duration `env:"HIBP_TIMEOUT" env-default:"30s" yaml:"timeout"`
		RequestsPerMinute int           `env:"HIBP_REQUESTS_PER_MINUTE" env-default:"10" yaml:"requestsPerMinute"`
	} `yaml:"hibp"`

	Brokers struct {
		// CatalogPath points to a YAML site list replacing the built-in catalog.
		CatalogPath string `env:"BROKERS_CATALOG_PATH" yaml:"catalogPath"`
	} `yaml:"brokers"`

	// Notifications configures email alerts. Without SMTP credentials alerts
	// are written to the log instead.
	Notifications struct {
		QueueSize    int    `env:"NOTIFICATIONS_QUEUE_SIZE" env-default:"100" yaml:"queueSize"`
		Brand        string `env:"NOTIFICATIONS_BRAND" env-default:"Privacy Monitor" yaml:"brand"`
		DashboardURL string `env:"NOTIFICATIONS_DASHBOARD_URL" yaml:"dashboardUrl"`

		SMTP struct {
			Host     string        `env:"SMTP_HOST" yaml:"host"`
			Port     int           `env:"SMTP_PORT" env-default:"587" yaml:"port"`
			Username string        `env:"SMTP_USERNAME" yaml:"username"`
			Password string        `env:"SMTP_PASSWORD" yaml:"password"`
			From     string        `env:"SMTP_FROM" yaml:"from"`
			To       string        `env:"NOTIFICATION_EMAIL" yaml:"to"`
			Timeout  time.Duration `env:"SMTP_TIMEOUT" env-default:"30s" yaml:"timeout"`
		} `yaml:"smtp"`
	} `yaml:"notifications"`

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
