package config

import (
	"slices"
	"time"
)

// Translation provider names accepted in TranslateConfig.Provider.
const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderStub   = "stub"
)

var knownProviders = []string{ProviderAzure, ProviderOpenAI, ProviderGemini, ProviderStub}

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Translate TranslateConfig `yaml:"translate"`
	Storage   StorageConfig   `yaml:"storage"`
	Import    ImportConfig    `yaml:"import"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"52428800"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
	// AppName is reported to Postgres as application_name.
	AppName string `yaml:"app_name" env:"DATABASE_APP_NAME" env-default:"lingoreader"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by the
// identity provider; this service only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"lingoreader"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// TranslateConfig selects and configures the translation provider.
type TranslateConfig struct {
	Provider      string        `yaml:"provider"       env:"TRANSLATE_PROVIDER"       env-default:"azure"`
	Timeout       time.Duration `yaml:"timeout"        env:"TRANSLATE_TIMEOUT"        env-default:"10s"`
	AzureKey      string        `yaml:"azure_key"      env:"TRANSLATE_AZURE_KEY"`
	AzureRegion   string        `yaml:"azure_region"   env:"TRANSLATE_AZURE_REGION"`
	AzureEndpoint string        `yaml:"azure_endpoint" env:"TRANSLATE_AZURE_ENDPOINT" env-default:"https://api.cognitive.microsofttranslator.com"`
	OpenAIKey     string        `yaml:"openai_key"     env:"TRANSLATE_OPENAI_KEY"`
	OpenAIModel   string        `yaml:"openai_model"   env:"TRANSLATE_OPENAI_MODEL"   env-default:"gpt-4o-mini"`
	GeminiKey     string        `yaml:"gemini_key"     env:"TRANSLATE_GEMINI_KEY"`
	GeminiModel   string        `yaml:"gemini_model"   env:"TRANSLATE_GEMINI_MODEL"   env-default:"gemini-2.0-flash"`

	// Circuit breaker around the provider.
	BreakerFailures uint32        `yaml:"breaker_failures" env:"TRANSLATE_BREAKER_FAILURES" env-default:"5"`
	BreakerTimeout  time.Duration `yaml:"breaker_timeout"  env:"TRANSLATE_BREAKER_TIMEOUT"  env-default:"30s"`
}

// StorageConfig holds S3-compatible object storage settings for e-book files.
// An empty Bucket disables e-book uploads.
type StorageConfig struct {
	Bucket     string        `yaml:"bucket"      env:"STORAGE_BUCKET"`
	Region     string        `yaml:"region"      env:"STORAGE_REGION"      env-default:"us-east-1"`
	Endpoint   string        `yaml:"endpoint"    env:"STORAGE_ENDPOINT"`
	PathStyle  bool          `yaml:"path_style"  env:"STORAGE_PATH_STYLE"  env-default:"false"`
	PresignTTL time.Duration `yaml:"presign_ttl" env:"STORAGE_PRESIGN_TTL" env-default:"15m"`
	// OrphanGrace is how old an unreferenced e-book object must be before
	// cmd/cleanup removes it.
	OrphanGrace time.Duration `yaml:"orphan_grace" env:"STORAGE_ORPHAN_GRACE" env-default:"24h"`
}

// ImportConfig holds settings for importing texts from web pages.
type ImportConfig struct {
	Timeout      time.Duration `yaml:"timeout"        env:"IMPORT_TIMEOUT"        env-default:"15s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"IMPORT_MAX_BODY_BYTES" env-default:"10485760"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits for expensive endpoints.
type RateLimitConfig struct {
	TranslatePerMinute int           `yaml:"translate_per_minute" env:"RATE_LIMIT_TRANSLATE_PER_MINUTE" env-default:"60"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// StorageEnabled reports whether e-book storage is configured.
func (c StorageConfig) StorageEnabled() bool {
	return c.Bucket != ""
}

// IsKnownProvider checks if the given translation provider name is supported.
func IsKnownProvider(provider string) bool {
	return slices.Contains(knownProviders, provider)
}
