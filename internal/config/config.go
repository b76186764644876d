package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"shotbook/internal/logger"
)

type Config struct {
	Identity      string    `mapstructure:"identity"`
	InputDir      string    `mapstructure:"input_dir"`
	OutputDir     string    `mapstructure:"output_dir"`
	ImagesPerPage int       `mapstructure:"images_per_page"`
	LLM           LLMConfig `mapstructure:"llm"`
	OCR           OCRConfig `mapstructure:"ocr"`
	Log           LogConfig `mapstructure:"log"`
}

type LLMConfig struct {
	BaseURL   string `mapstructure:"base_url"` // OpenAI-compatible endpoint, defaults to local Ollama
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
	Timeout   string `mapstructure:"timeout"` // per-call timeout, e.g. "2m"
}

type OCRConfig struct {
	TesseractCmd  string   `mapstructure:"tesseract_cmd"`
	Languages     string   `mapstructure:"languages"`
	Timeout       string   `mapstructure:"timeout"`
	NoisePatterns []string `mapstructure:"noise_patterns"` // regexes stripped from OCR output
}

type LogConfig struct {
	Level        string `mapstructure:"level"`
	File         string `mapstructure:"file"`
	RotationTime string `mapstructure:"rotation_time"`
	MaxSize      int    `mapstructure:"max_size"`
	MaxBackups   int    `mapstructure:"max_backups"`
	MaxAge       int    `mapstructure:"max_age"`
	Compress     bool   `mapstructure:"compress"`
}

// DefaultNoisePatterns is the stock list of Facebook UI artifacts removed
// from OCR text. It is data, not contract: any entry can be replaced through
// the ocr.noise_patterns config key.
var DefaultNoisePatterns = []string{
	`(?i)^\s*(like|comment|share|follow|send|reply|save)\s*$`,
	`(?i)\bsponsored\b`,
	`(?i)\b\d+\s*(mins?|hrs?|hours?|days?|weeks?|[hmdw])\s*(ago)?\s*$`,
	`(?i)\bjust now\b`,
	`(?i)\b\d+(\.\d+)?[KM]?\s+(likes?|comments?|shares?|reactions?|views?)\b`,
	`(?i)^\s*(see more|see translation|see all|view more comments|most relevant|top comments)\s*$`,
	`(?i)view\s+\d+\s+(more\s+)?(replies|comments)`,
	`\b\d{1,2}:\d{2}\s*([AP]M)?\b`,
	`[·•]`,
}

// Load reads configuration from the given path, or from the default search
// locations when path is empty, and applies defaults and validation.
func Load(configPath string) (*Config, error) {
	// Secrets (e.g. SHOTBOOK_LLM_API_KEY) may live in a .env next to the
	// binary; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".shotbook"))
		}
	}

	v.SetDefault("identity", "Screenshots")
	v.SetDefault("input_dir", "screenshots")
	v.SetDefault("output_dir", ".")
	v.SetDefault("images_per_page", 3)
	v.SetDefault("llm.base_url", "http://localhost:11434/v1")
	v.SetDefault("llm.api_key", "ollama")
	v.SetDefault("llm.model", "mistral:latest")
	v.SetDefault("llm.max_tokens", 512)
	v.SetDefault("llm.timeout", "2m")
	v.SetDefault("ocr.tesseract_cmd", "tesseract")
	v.SetDefault("ocr.languages", "eng")
	v.SetDefault("ocr.timeout", "30s")
	v.SetDefault("ocr.noise_patterns", DefaultNoisePatterns)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("SHOTBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file found in the search path: run on defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("identity must not be empty")
	}
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.ImagesPerPage < 1 {
		return fmt.Errorf("images_per_page must be at least 1, got %d", c.ImagesPerPage)
	}
	if _, err := c.LLM.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid llm.timeout: %w", err)
	}
	if _, err := c.OCR.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid ocr.timeout: %w", err)
	}
	for _, p := range c.OCR.NoisePatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid ocr.noise_patterns entry %q: %w", p, err)
		}
	}
	return nil
}

// TimeoutDuration parses the LLM per-call timeout.
func (c *LLMConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 2 * time.Minute, nil
	}
	return time.ParseDuration(c.Timeout)
}

// TimeoutDuration parses the OCR per-call timeout.
func (c *OCRConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 30 * time.Second, nil
	}
	return time.ParseDuration(c.Timeout)
}

// EnsureOutputDir creates the output directory if it does not exist.
func (c *Config) EnsureOutputDir() error {
	if c.OutputDir == "" || c.OutputDir == "." {
		return nil
	}
	return os.MkdirAll(c.OutputDir, 0755)
}

// LoggerConfig converts the log section into the logger package's config.
func (c *Config) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:        c.Log.Level,
		FilePath:     c.Log.File,
		RotationTime: c.Log.RotationTime,
		MaxSize:      c.Log.MaxSize,
		MaxBackups:   c.Log.MaxBackups,
		MaxAge:       c.Log.MaxAge,
		Compress:     c.Log.Compress,
	}
}
