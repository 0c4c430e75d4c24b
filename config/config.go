package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Data sources
	Postgres       PostgresConfig
	Redis          RedisConfig
	ExamStore      ExamStoreConfig
	GoogleCalendar GoogleCalendarConfig

	// Pipeline
	Assistant AssistantConfig
	Persona   PersonaConfig
	FAQ       map[string]FAQEntry

	// LLM Provider Abstraction
	LLM LLMConfig

	// Channels
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	MaxClients     int
	TTL            time.Duration
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type ExamStoreConfig struct {
	Root         string
	ExcerptRunes int
}

type GoogleCalendarConfig struct {
	CredentialsPath   string
	APIKey            string
	HolidayCalendarID string
	HolidayCacheTTL   time.Duration
}

// AssistantConfig tunes the query pipeline.
type AssistantConfig struct {
	Timezone           string
	TokenEncoding      string
	ContextBudget      int
	WebTokens          int
	PersonWebTokens    int
	SourceTimeout      time.Duration
	GenerationAttempts uint
	AttemptTimeout     time.Duration
	RetryDelay         time.Duration
	Temperature        float64
	MaxTokens          int
	AllowedURLs        []string
	VideoLimit         int
	Messages           MessagesConfig
}

// MessagesConfig overrides the fixed texts of non-model answers. Empty
// values keep the built-in defaults.
type MessagesConfig struct {
	GenericGreeting string `mapstructure:"generic_greeting"`
	NamedGreeting   string `mapstructure:"named_greeting"`
	Apology         string `mapstructure:"apology"`
	Clarification   string `mapstructure:"clarification"`
	SubjectPrompt   string `mapstructure:"subject_prompt"`
	FAQFallback     string `mapstructure:"faq_fallback"`
	VideosHeading   string `mapstructure:"videos_heading"`
	NoVideos        string `mapstructure:"no_videos"`
	SignIn          string `mapstructure:"sign_in"`
	Connect         string `mapstructure:"connect"`
}

type PersonaConfig struct {
	Name            string   `mapstructure:"name"`
	SchoolName      string   `mapstructure:"school_name"`
	Facts           []string `mapstructure:"facts"`
	Tone            string   `mapstructure:"tone"`
	FormattingRules []string `mapstructure:"formatting_rules"`
}

// FAQEntry is one canned answer keyed by topic in the faq section.
type FAQEntry struct {
	Text    string `mapstructure:"text"`
	AuxKind string `mapstructure:"aux_kind"`
	AuxURL  string `mapstructure:"aux_url"`
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	SecretToken   string
	AnswerTimeout time.Duration
}

// LLMConfig configures the completion providers and how they fall back.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      string
	MaxTotalTimeout string
}

// ProviderConfig is one entry of llm.providers.
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Load loads configuration using Viper. A .env file in the working
// directory is read first when present.
// The config file is config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.TTL = viper.GetDuration("rate_limit.ttl")

	// Data sources
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")

	cfg.ExamStore.Root = viper.GetString("exam_store.root")
	cfg.ExamStore.ExcerptRunes = viper.GetInt("exam_store.excerpt_runes")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.APIKey = expandEnvVar(viper.GetString("google_calendar.api_key"))
	cfg.GoogleCalendar.HolidayCalendarID = viper.GetString("google_calendar.holiday_calendar_id")
	cfg.GoogleCalendar.HolidayCacheTTL = viper.GetDuration("google_calendar.holiday_cache_ttl")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Pipeline
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.TokenEncoding = viper.GetString("assistant.token_encoding")
	cfg.Assistant.ContextBudget = viper.GetInt("assistant.context_budget")
	cfg.Assistant.WebTokens = viper.GetInt("assistant.web_tokens")
	cfg.Assistant.PersonWebTokens = viper.GetInt("assistant.person_web_tokens")
	cfg.Assistant.SourceTimeout = viper.GetDuration("assistant.source_timeout")
	cfg.Assistant.GenerationAttempts = viper.GetUint("assistant.generation_attempts")
	cfg.Assistant.AttemptTimeout = viper.GetDuration("assistant.attempt_timeout")
	cfg.Assistant.RetryDelay = viper.GetDuration("assistant.retry_delay")
	cfg.Assistant.Temperature = viper.GetFloat64("assistant.temperature")
	cfg.Assistant.MaxTokens = viper.GetInt("assistant.max_tokens")
	cfg.Assistant.AllowedURLs = splitList(viper.GetStringSlice("assistant.allowed_urls"))
	cfg.Assistant.VideoLimit = viper.GetInt("assistant.video_limit")
	if err := viper.UnmarshalKey("assistant.messages", &cfg.Assistant.Messages); err != nil {
		return nil, fmt.Errorf("assistant.messages: %w", err)
	}
	if err := viper.UnmarshalKey("persona", &cfg.Persona); err != nil {
		return nil, fmt.Errorf("persona: %w", err)
	}
	if err := viper.UnmarshalKey("faq", &cfg.FAQ); err != nil {
		return nil, fmt.Errorf("faq: %w", err)
	}

	// Channels
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.AnswerTimeout = viper.GetDuration("telegram.answer_timeout")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("llm.providers: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "15s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.ttl", "5m")

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.key_prefix", "content")
	viper.SetDefault("exam_store.root", "./data/exams")
	viper.SetDefault("exam_store.excerpt_runes", 1200)
	viper.SetDefault("google_calendar.holiday_calendar_id", "en.indian#holiday@group.v.calendar.google.com")
	viper.SetDefault("google_calendar.holiday_cache_ttl", "12h")

	viper.SetDefault("assistant.timezone", "Asia/Kolkata")
	viper.SetDefault("assistant.token_encoding", "cl100k_base")
	viper.SetDefault("assistant.context_budget", 3000)
	viper.SetDefault("assistant.web_tokens", 600)
	viper.SetDefault("assistant.person_web_tokens", 1500)
	viper.SetDefault("assistant.source_timeout", "5s")
	viper.SetDefault("assistant.generation_attempts", 3)
	viper.SetDefault("assistant.attempt_timeout", "30s")
	viper.SetDefault("assistant.retry_delay", "500ms")
	viper.SetDefault("assistant.temperature", 0.3)
	viper.SetDefault("assistant.max_tokens", 1024)
	viper.SetDefault("assistant.video_limit", 5)

	viper.SetDefault("telegram.answer_timeout", "60s")

	// LLM defaults. The pipeline bounds attempts itself, so the manager
	// tries each provider once per attempt.
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// splitList accepts both a YAML list and a comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}
