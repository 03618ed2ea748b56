package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Multilingual chat specifics
	Model     ModelConfig
	Translate TranslateConfig
	Chat      ChatConfig
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

// ModelConfig configures the optional model-backed response backend.
// An empty URL means the deterministic template responder serves all chat.
type ModelConfig struct {
	URL              string
	GenerationConfig map[string]any
}

type TranslateConfig struct {
	// CredentialsPath points at Google credentials JSON for real language
	// detection; empty means the static detector answers "en".
	CredentialsPath string
}

type ChatConfig struct {
	RateLimitPerMin int
	IndexFile       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Model backend
	cfg.Model.URL = viper.GetString("model.url")
	if modelURL := viper.GetString("model_url"); modelURL != "" {
		cfg.Model.URL = modelURL
	}
	if modelURL := viper.GetString("fine_tuned_model_url"); modelURL != "" {
		cfg.Model.URL = modelURL
	}

	rawGeneration := viper.GetString("model.generation_config")
	if raw := viper.GetString("orchestrator_generation_config"); raw != "" {
		rawGeneration = raw
	}
	generation, err := ParseGenerationConfig(rawGeneration)
	if err != nil {
		// Malformed overrides are ignored, not fatal.
		fmt.Printf("Warning: ignoring generation config: %v\n", err)
	}
	cfg.Model.GenerationConfig = generation

	// Translate
	cfg.Translate.CredentialsPath = viper.GetString("translate.credentials_path")
	if creds := viper.GetString("google_translate_credentials"); creds != "" {
		cfg.Translate.CredentialsPath = creds
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.IndexFile = viper.GetString("chat.index_file")

	return cfg, nil
}

// ParseGenerationConfig decodes a JSON object of generation overrides.
// Empty input yields nil without error; anything that is not a JSON object
// is an error.
func ParseGenerationConfig(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("generation config must be a JSON object: %w", err)
	}
	return parsed, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.index_file", "./web/index.html")
}
