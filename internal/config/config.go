package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Summary   SummaryConfig   `yaml:"summary"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// AutoMigrate defaults to true; see Load.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"`
}

// RedisConfig holds the Redis connection used for refresh sessions and rate limiting.
type RedisConfig struct {
	URL       string `yaml:"url"        env:"REDIS_URL"        env-default:"redis://localhost:6379/0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"knowtes:"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"knowtes"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// AIConfig holds settings of the chat-completion provider.
type AIConfig struct {
	BaseURL     string        `yaml:"base_url"    env:"AI_BASE_URL"    env-default:"https://openrouter.ai/api/v1"`
	APIKey      string        `yaml:"api_key"     env:"AI_API_KEY"     env-required:"true"`
	Model       string        `yaml:"model"       env:"AI_MODEL"       env-default:"openai/gpt-4o-mini"`
	Temperature float64       `yaml:"temperature" env:"AI_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout"     env:"AI_TIMEOUT"     env-default:"30s"`
	SiteURL     string        `yaml:"site_url"    env:"AI_SITE_URL"    env-default:"https://knowtes.app"`
	AppName     string        `yaml:"app_name"    env:"AI_APP_NAME"    env-default:"Knowtes"`
}

// SummaryConfig holds summary workflow settings.
type SummaryConfig struct {
	MaxTokens        int           `yaml:"max_tokens"        env:"SUMMARY_MAX_TOKENS"        env-default:"1000"`
	PendingRetention time.Duration `yaml:"pending_retention" env:"SUMMARY_PENDING_RETENTION" env-default:"168h"`
}

// CORSConfig holds CORS settings. Credentials are never allowed for an
// origin matched only by "*".
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig bounds request rates per minute. Zero disables a limit.
type RateLimitConfig struct {
	AuthPerMinute    int `yaml:"auth_per_minute"    env:"RATE_LIMIT_AUTH_PER_MINUTE"    env-default:"10"`
	SummaryPerMinute int `yaml:"summary_per_minute" env:"RATE_LIMIT_SUMMARY_PER_MINUTE" env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MaintenanceConfig is the configuration of maintenance commands such as
// cmd/cleanup. It shares keys with Config.
type MaintenanceConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Summary  SummaryConfig  `yaml:"summary"`
	Log      LogConfig      `yaml:"log"`
}
