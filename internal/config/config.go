package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable consulted when the config file has no provider key.
const APIKeyEnv = "GROQ_API_KEY"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Provider ProviderConfig `mapstructure:"provider"`
	Advisor  AdvisorConfig  `mapstructure:"advisor"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

// ProviderConfig describes the OpenAI-compatible completion endpoint.
type ProviderConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Model        string        `mapstructure:"model"`
	Temperature  float32       `mapstructure:"temperature"`
	MaxTokens    int           `mapstructure:"max_tokens"`
	Timeout      time.Duration `mapstructure:"timeout"`
	JSONMode     bool          `mapstructure:"json_mode"`
	DebugRequest bool          `mapstructure:"debug_request"`
}

type AdvisorConfig struct {
	EnforceVideoPolicy bool `mapstructure:"enforce_video_policy"`
	RequireAPIKey      bool `mapstructure:"require_api_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.max_header_bytes", 1<<20)

	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("provider.model", "llama-3.3-70b-versatile")
	v.SetDefault("provider.temperature", 0.3)
	v.SetDefault("provider.max_tokens", 0)
	v.SetDefault("provider.timeout", 60*time.Second)
	v.SetDefault("provider.json_mode", false)
	v.SetDefault("provider.debug_request", false)

	v.SetDefault("advisor.enforce_video_policy", true)
	v.SetDefault("advisor.require_api_key", true)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept", "X-Request-Id"})
	v.SetDefault("cors.exposed_headers", []string{"X-Request-Id"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration from an optional YAML file, the environment and an
// optional .env file. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", configPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// config file wins; the provider's conventional variable is the fallback
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = os.Getenv(APIKeyEnv)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Provider.BaseURL) == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if strings.TrimSpace(c.Provider.Model) == "" {
		return fmt.Errorf("provider.model is required")
	}
	// 0 is dropped from the request body (omitempty) and the provider default applies
	if c.Provider.Temperature <= 0 || c.Provider.Temperature > 2 {
		return fmt.Errorf("provider.temperature must be within (0, 2], got %v", c.Provider.Temperature)
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive")
	}
	if c.Provider.MaxTokens < 0 {
		return fmt.Errorf("provider.max_tokens must not be negative")
	}
	return nil
}

// HasAPIKey reports whether a provider credential was resolved at load time.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.Provider.APIKey) != ""
}
