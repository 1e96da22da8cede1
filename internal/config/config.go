package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOllamaHost        = "http://localhost:11434"
	DefaultOpenRouterModels  = "https://openrouter.ai/api/v1/models"
	DefaultOpenRouterResults = 50

	DefaultOllamaTimeout     = 15 * time.Second
	DefaultOpenRouterTimeout = 30 * time.Second
	DefaultGitHubTimeout     = 30 * time.Second
	DefaultChatTimeout       = 120 * time.Second
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			Ollama: OllamaConfig{
				Host:    "", // empty means DefaultOllamaHost
				Timeout: DefaultOllamaTimeout,
			},
			OpenRouter: OpenRouterConfig{
				Endpoint:   DefaultOpenRouterModels,
				Timeout:    DefaultOpenRouterTimeout,
				MaxResults: DefaultOpenRouterResults,
			},
			GitHub: GitHubConfig{
				Timeout: DefaultGitHubTimeout,
			},
			Chat: ChatConfig{
				Backend: "openai",
				Timeout: DefaultChatTimeout,
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogDir:     "./logs",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			FileOutput: false,
		},
	}
}

// Load loads configuration from file and environment variables. Changes to
// the config file are pushed into the returned Store; readers always see a
// consistent snapshot.
func Load() (*Store, error) {
	config := DefaultConfig()

	viper.SetConfigName("maestro")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("MAESTRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if configFile := os.Getenv("MAESTRO_CONFIG_FILE"); configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	store := NewStore(config)

	viper.OnConfigChange(func(e fsnotify.Event) {
		updated := DefaultConfig()
		if err := viper.Unmarshal(updated); err != nil {
			return
		}
		store.Replace(updated)
	})
	viper.WatchConfig()

	return store, nil
}

// DumpEffective renders the effective configuration as YAML with credential
// fields redacted, for `maestro config show`.
func DumpEffective(cfg Config) (string, error) {
	redacted := cfg
	redacted.Providers.GitHub.Token = redact(cfg.Providers.GitHub.Token)
	redacted.Providers.Chat.OpenAIKey = redact(cfg.Providers.Chat.OpenAIKey)
	redacted.Providers.Chat.AnthropicKey = redact(cfg.Providers.Chat.AnthropicKey)

	out, err := yaml.Marshal(redacted)
	if err != nil {
		return "", fmt.Errorf("unable to render config: %w", err)
	}
	return string(out), nil
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[redacted]"
}
