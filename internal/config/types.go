package config

import "time"

type Config struct {
	Providers ProvidersConfig `mapstructure:"providers"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ProvidersConfig struct {
	Ollama     OllamaConfig     `mapstructure:"ollama"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	GitHub     GitHubConfig     `mapstructure:"github"`
	Chat       ChatConfig       `mapstructure:"chat"`
}

type OllamaConfig struct {
	// Host overrides the local daemon address; empty means the default.
	Host    string        `mapstructure:"host"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type OpenRouterConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxResults int           `mapstructure:"max_results"`
}

type GitHubConfig struct {
	Token   string        `mapstructure:"token"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ChatConfig struct {
	Backend      string        `mapstructure:"backend"`
	OpenAIKey    string        `mapstructure:"openai_key"`
	AnthropicKey string        `mapstructure:"anthropic_key"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	LogDir     string `mapstructure:"log_dir"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	FileOutput bool   `mapstructure:"file_output"`
}
