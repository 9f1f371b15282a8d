// Package config loads and validates the curator service configuration
// from YAML files and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config captures the runtime configuration for the curator service.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Directory     DirectoryConfig     `mapstructure:"directory"`
	Providers     ProviderConfig      `mapstructure:"providers"`
	Scenes        ScenesConfig        `mapstructure:"scenes"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	ListenAddr            string        `mapstructure:"listen_addr"`
	ReadTimeout           time.Duration `mapstructure:"read_timeout"`
	WriteTimeout          time.Duration `mapstructure:"write_timeout"`
	ProviderTimeout       time.Duration `mapstructure:"provider_timeout"`
	GracefulShutdownDelay time.Duration `mapstructure:"graceful_shutdown_delay"`
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// DirectoryConfig controls the Radio Browser client.
type DirectoryConfig struct {
	Mirrors        []string      `mapstructure:"mirrors"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	CandidateLimit int           `mapstructure:"candidate_limit"`
	MinBitrate     int           `mapstructure:"min_bitrate"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// ProviderConfig selects and configures the scene curation backend.
type ProviderConfig struct {
	Active     string           `mapstructure:"active"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Ollama     OllamaConfig     `mapstructure:"ollama"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	APIVersion string `mapstructure:"api_version"`
}

type OllamaConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
}

type OpenRouterConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// ScenesConfig controls mock scene behavior.
type ScenesConfig struct {
	UseMock     bool `mapstructure:"use_mock"`
	MockOnError bool `mapstructure:"mock_on_error"`
}

type ObservabilityConfig struct {
	EnableOTLP    bool   `mapstructure:"enable_otlp"`
	EnableMetrics bool   `mapstructure:"enable_metrics"`
	OTLPEndpoint  string `mapstructure:"otlp_endpoint"`
	ServiceName   string `mapstructure:"service_name"`
}

// Options controls the config loader behavior.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load returns the merged configuration sourced from YAML and environment variables.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	explicitFile := false
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		explicitFile = true
	} else if cfg := os.Getenv("RADIO_CONFIG_FILE"); cfg != "" {
		v.SetConfigFile(cfg)
		explicitFile = true
	}

	if !explicitFile {
		// Allow standard lookup locations when no explicit file is provided.
		v.SetConfigName("curator")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("RADIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(timeStringToDurationHook())); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindLegacyEnv keeps the flat variable names the web app deployments
// already use working alongside the RADIO_ prefixed forms.
func bindLegacyEnv(v *viper.Viper) {
	aliases := map[string]string{
		"providers.active":             "AI_PROVIDER",
		"providers.openai.api_key":     "OPENAI_API_KEY",
		"providers.openai.model":       "OPENAI_MODEL",
		"providers.gemini.api_key":     "GEMINI_API_KEY",
		"providers.gemini.model":       "GEMINI_MODEL",
		"providers.gemini.api_version": "GEMINI_API_VERSION",
		"providers.ollama.url":         "OLLAMA_URL",
		"providers.ollama.model":       "OLLAMA_MODEL",
		"providers.openrouter.api_key": "OPENROUTER_API_KEY",
		"scenes.use_mock":              "USE_MOCK",
	}
	for key, env := range aliases {
		_ = v.BindEnv(key, "RADIO_"+strings.ToUpper(strings.NewReplacer(".", "_").Replace(key)), env)
	}
}

// Validate ensures required values are set and normalizes derived ones.
func (c *Config) Validate() error {
	c.Providers.Active = strings.ToLower(strings.TrimSpace(c.Providers.Active))

	if c.Directory.CandidateLimit <= 0 {
		return fmt.Errorf("directory.candidate_limit must be > 0")
	}
	if c.Directory.MinBitrate < 0 {
		return fmt.Errorf("directory.min_bitrate must be >= 0")
	}
	if len(c.Directory.Mirrors) == 0 {
		return fmt.Errorf("directory.mirrors must list at least one mirror")
	}
	if c.Server.ProviderTimeout <= 0 {
		return fmt.Errorf("server.provider_timeout must be > 0")
	}

	switch c.Providers.Active {
	case "", "openai", "gemini", "ollama", "openrouter", "mock":
	default:
		// Unknown selectors are served by the default adapter downstream.
		slog.Warn("unknown provider selector, defaulting to openai", "provider", c.Providers.Active)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.provider_timeout", "60s")
	v.SetDefault("server.graceful_shutdown_delay", "5s")

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)

	v.SetDefault("directory.mirrors", []string{
		"https://de2.api.radio-browser.info",
		"https://fi1.api.radio-browser.info",
		"https://de1.api.radio-browser.info",
		"https://fr1.api.radio-browser.info",
		"https://nl1.api.radio-browser.info",
		"https://gb1.api.radio-browser.info",
		"https://us1.api.radio-browser.info",
		"https://api.radio-browser.info",
	})
	v.SetDefault("directory.request_timeout", "8s")
	v.SetDefault("directory.cache_ttl", "90s")
	v.SetDefault("directory.candidate_limit", 60)
	v.SetDefault("directory.min_bitrate", 64)
	v.SetDefault("directory.user_agent", "radio-passport/1.0")

	v.SetDefault("providers.active", "openai")
	v.SetDefault("providers.openai.model", "gpt-4o-mini")
	v.SetDefault("providers.gemini.model", "gemini-2.0-flash")
	v.SetDefault("providers.gemini.api_version", "v1beta")
	v.SetDefault("providers.ollama.url", "http://localhost:11434")
	v.SetDefault("providers.ollama.model", "radio-passport")

	v.SetDefault("scenes.use_mock", false)
	v.SetDefault("scenes.mock_on_error", true)

	v.SetDefault("observability.enable_otlp", false)
	v.SetDefault("observability.enable_metrics", true)
	v.SetDefault("observability.otlp_endpoint", "http://localhost:4317")
	v.SetDefault("observability.service_name", "radio-passport-curator")
}

func timeStringToDurationHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case time.Duration:
			return v, nil
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, err
			}
			return d, nil
		default:
			return nil, fmt.Errorf("cannot decode %T into time.Duration", data)
		}
	}
}
