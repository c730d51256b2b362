package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
	Search   SearchConfig   `yaml:"search"`
	Curation CurationConfig `yaml:"curation"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings. The identity provider
// itself is an external collaborator; this service only verifies tokens.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"listforge"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"300"`
}

// SearchConfig holds settings for the external search index collaborator.
// Indexing is best-effort and never awaited by the transaction that
// triggered it; with Enabled=false projections are computed but dropped.
type SearchConfig struct {
	Enabled          bool          `yaml:"enabled"           env:"SEARCH_ENABLED"           env-default:"false"`
	URL              string        `yaml:"url"               env:"SEARCH_URL"               env-default:"http://localhost:8108"`
	APIKey           string        `yaml:"api_key"           env:"SEARCH_API_KEY"`
	ListsCollection  string        `yaml:"lists_collection"  env:"SEARCH_LISTS_COLLECTION"  env-default:"lists"`
	TopicsCollection string        `yaml:"topics_collection" env:"SEARCH_TOPICS_COLLECTION" env-default:"topics"`
	Timeout          time.Duration `yaml:"timeout"           env:"SEARCH_TIMEOUT"           env-default:"5s"`
}

// CurationConfig holds editorial workflow limits.
type CurationConfig struct {
	MaxItemsPerList   int           `yaml:"max_items_per_list"  env:"CURATION_MAX_ITEMS_PER_LIST"  env-default:"200"`
	SearchResultLimit int           `yaml:"search_result_limit" env:"CURATION_SEARCH_RESULT_LIMIT" env-default:"10"`
	DefaultBountyTTL  time.Duration `yaml:"default_bounty_ttl"  env:"CURATION_DEFAULT_BOUNTY_TTL"  env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
