package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	CORS   CORSConfig   `yaml:"cors"`
	Bolls  BollsConfig  `yaml:"bolls"`
	LLM    LLMConfig    `yaml:"llm"`
	Data   DataConfig   `yaml:"data"`
	Enrich EnrichConfig `yaml:"enrich"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// BollsConfig holds settings for the bolls.life text and lexicon API.
type BollsConfig struct {
	BaseURL string        `yaml:"base_url" env:"BOLLS_BASE_URL" env-default:"https://bolls.life"`
	Timeout time.Duration `yaml:"timeout"  env:"BOLLS_TIMEOUT"  env-default:"10s"`
}

// LLMConfig holds chat provider settings. A provider without an API key is
// left unconfigured and requests naming it are rejected.
type LLMConfig struct {
	GroqAPIKey    string        `yaml:"groq_api_key"    env:"GROQ_API_KEY"`
	GroqBaseURL   string        `yaml:"groq_base_url"   env:"GROQ_BASE_URL"   env-default:"https://api.groq.com/openai/v1"`
	GroqModel     string        `yaml:"groq_model"      env:"GROQ_MODEL"      env-default:"llama-3.3-70b-versatile"`
	ClaudeAPIKey  string        `yaml:"claude_api_key"  env:"ANTHROPIC_API_KEY"`
	ClaudeBaseURL string        `yaml:"claude_base_url" env:"ANTHROPIC_BASE_URL"`
	ClaudeModel   string        `yaml:"claude_model"    env:"CLAUDE_MODEL"    env-default:"claude-sonnet-4-20250514"`
	Timeout       time.Duration `yaml:"timeout"         env:"LLM_TIMEOUT"     env-default:"60s"`
}

// DataConfig locates the static cross-reference datasets.
type DataConfig struct {
	CrossRefPopularPath string `yaml:"crossref_popular_path" env:"DATA_CROSSREF_POPULAR_PATH" env-default:"data/cross-references-popular.json"`
	CrossRefFullPath    string `yaml:"crossref_full_path"    env:"DATA_CROSSREF_FULL_PATH"    env-default:"data/cross-references.json"`
}

// EnrichConfig bounds the gloss lookups made for one interlinear verse.
type EnrichConfig struct {
	Workers       int           `yaml:"workers"        env:"ENRICH_WORKERS"        env-default:"8"`
	LookupTimeout time.Duration `yaml:"lookup_timeout" env:"ENRICH_LOOKUP_TIMEOUT" env-default:"5s"`
}

// HasGroq reports whether the Groq provider has credentials.
func (c LLMConfig) HasGroq() bool { return c.GroqAPIKey != "" }

// HasClaude reports whether the Claude provider has credentials.
func (c LLMConfig) HasClaude() bool { return c.ClaudeAPIKey != "" }
