package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	Responder ResponderConfig `yaml:"responder"`
	History   HistoryConfig   `yaml:"history"`
	Log       LogConfig       `yaml:"log"`
}

type ResponderConfig struct {
	Plugin string       `yaml:"plugin" env:"RESPONDER_PLUGIN" env-default:"openai"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Gemini GeminiConfig `yaml:"gemini"`
	Ollama OllamaConfig `yaml:"ollama"`

	// MaxSteps bounds the decide/invoke cycle per run
	MaxSteps int `yaml:"max_steps" env:"MAX_STEPS" env-default:"10"`

	// DecisionTimeout caps each responder call; zero disables it
	DecisionTimeout time.Duration `yaml:"decision_timeout" env:"DECISION_TIMEOUT" env-default:"0s"`
}

type OpenAIConfig struct {
	APIKey      string  `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model       string  `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	Temperature float64 `yaml:"temperature" env:"OPENAI_TEMPERATURE" env-default:"0"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type OllamaConfig struct {
	Model   string `yaml:"model" env:"OLLAMA_MODEL" env-default:"qwen3:4b"`
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
}

// HistoryConfig controls the optional run-history store. An empty driver
// disables persistence entirely.
type HistoryConfig struct {
	Driver string `yaml:"driver" env:"HISTORY_DRIVER" env-default:""`
	DSN    string `yaml:"dsn" env:"HISTORY_DSN" env-default:"footfall.db"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		// If file doesn't exist, just read env vars
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
