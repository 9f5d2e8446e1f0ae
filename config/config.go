package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	TaskStore      TaskStoreConfig
	Conversation   ConversationConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig

	// LLM is optional. Without enabled providers the classifier has no fallback.
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

const (
	TaskStoreDriverREST     = "rest"
	TaskStoreDriverDocstore = "docstore"
)

type TaskStoreConfig struct {
	Driver       string
	URL          string
	AccessToken  string
	Timeout      time.Duration
	DocstorePath string
}

type ConversationConfig struct {
	Timezone     string
	HistoryLimit int
	SessionTTL   time.Duration
	MaxSessions  int
	TurnTimeout  time.Duration
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// LLMConfig configures the provider chain used for classification fallback.
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	Name     string        `mapstructure:"name"`
	Enabled  bool          `mapstructure:"enabled"`
	Priority int           `mapstructure:"priority"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-assistant/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/task-assistant/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.TaskStore.Driver = strings.ToLower(v.GetString("task_store.driver"))
	cfg.TaskStore.URL = v.GetString("task_store.url")
	cfg.TaskStore.AccessToken = expandEnvVar(v, v.GetString("task_store.access_token"))
	cfg.TaskStore.Timeout = v.GetDuration("task_store.timeout")
	cfg.TaskStore.DocstorePath = v.GetString("task_store.docstore_path")

	cfg.Conversation.Timezone = v.GetString("conversation.timezone")
	cfg.Conversation.HistoryLimit = v.GetInt("conversation.history_limit")
	cfg.Conversation.SessionTTL = v.GetDuration("conversation.session_ttl")
	cfg.Conversation.MaxSessions = v.GetInt("conversation.max_sessions")
	cfg.Conversation.TurnTimeout = v.GetDuration("conversation.turn_timeout")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	if v.IsSet("llm.providers") {
		if err := v.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
			return nil, fmt.Errorf("invalid llm.providers: %w", err)
		}
		for i := range cfg.LLM.Providers {
			cfg.LLM.Providers[i].APIKey = expandEnvVar(v, cfg.LLM.Providers[i].APIKey)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.TaskStore.Driver {
	case TaskStoreDriverREST:
		if c.TaskStore.URL == "" {
			return fmt.Errorf("task_store.url is required for the rest driver")
		}
	case TaskStoreDriverDocstore:
		if c.TaskStore.DocstorePath == "" {
			return fmt.Errorf("task_store.docstore_path is required for the docstore driver")
		}
	default:
		return fmt.Errorf("unknown task_store.driver %q", c.TaskStore.Driver)
	}

	if _, err := time.LoadLocation(c.Conversation.Timezone); err != nil {
		return fmt.Errorf("invalid conversation.timezone: %w", err)
	}
	if c.Conversation.HistoryLimit < 0 {
		return fmt.Errorf("conversation.history_limit must not be negative")
	}
	return validateLLMConfig(&c.LLM)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("task_store.driver", TaskStoreDriverDocstore)
	v.SetDefault("task_store.timeout", "10s")
	v.SetDefault("task_store.docstore_path", "./data/tasks")

	v.SetDefault("conversation.timezone", "UTC")
	v.SetDefault("conversation.history_limit", 20)
	v.SetDefault("conversation.session_ttl", "24h")
	v.SetDefault("conversation.max_sessions", 10000)
	v.SetDefault("conversation.turn_timeout", "30s")

	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "20s")
}

// expandEnvVar expands values of the form ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(name)); envValue != "" {
		return envValue
	}
	return os.Getenv(name)
}

// validateLLMConfig checks enabled providers. An empty provider list is valid.
func validateLLMConfig(cfg *LLMConfig) error {
	priorities := make(map[int]bool)
	for i, p := range cfg.Providers {
		if p.Name == "" {
			return fmt.Errorf("llm provider %d: name is required", i)
		}
		if !p.Enabled {
			continue
		}
		if p.Priority <= 0 {
			return fmt.Errorf("llm provider %s: priority must be positive", p.Name)
		}
		if priorities[p.Priority] {
			return fmt.Errorf("llm provider %s: duplicate priority %d", p.Name, p.Priority)
		}
		priorities[p.Priority] = true
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return nil
}
