// Package config loads runtime settings from the environment and an optional
// YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAppName = "agents"
	DefaultUserID  = "default_user"
	DefaultWorkers = 3
)

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY not found in environment or .env file")

// Config holds the settings of one pipeline run.
type Config struct {
	APIKey  string `yaml:"-" validate:"required"`
	Model   string `yaml:"model" validate:"required"`
	AppName string `yaml:"app_name" validate:"required"`
	UserID  string `yaml:"user_id" validate:"required"`

	// Parallel runs the résumé and job-description chains side by side.
	Parallel bool `yaml:"parallel"`
	// Search gives the research and rewrite steps the Google Search tool.
	Search bool `yaml:"search"`

	// Models overrides the model of individual steps, keyed by step name.
	Models map[string]string `yaml:"models"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Model:    DefaultModel,
		AppName:  DefaultAppName,
		UserID:   DefaultUserID,
		Parallel: true,
		Search:   true,
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is not empty) and finally the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.APIKey = os.Getenv("GOOGLE_API_KEY")
	if v := os.Getenv("MODEL_NAME"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		c.AppName = v
	}
	if v := os.Getenv("USER_ID"); v != "" {
		c.UserID = v
	}
}

// IsConfigured reports whether an API key is present.
func (c *Config) IsConfigured() bool {
	return c.APIKey != ""
}

// Validate checks the configuration before any model is created.
func (c *Config) Validate() error {
	if !c.IsConfigured() {
		return ErrMissingAPIKey
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// WorkerConfig holds the settings of the queue worker.
type WorkerConfig struct {
	DatabaseURL string `validate:"required"`
	RabbitMQURL string `validate:"required"`
	Workers     int    `validate:"min=1"`
	R2          R2Config
}

// R2Config holds the Cloudflare R2 bucket credentials.
type R2Config struct {
	AccountID string `validate:"required"`
	Bucket    string `validate:"required"`
	AccessKey string `validate:"required"`
	SecretKey string `validate:"required"`
}

// LoadWorker reads the worker settings from the environment.
func LoadWorker() (*WorkerConfig, error) {
	cfg := &WorkerConfig{
		DatabaseURL: os.Getenv("DB_URL"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		Workers:     DefaultWorkers,
		R2: R2Config{
			AccountID: os.Getenv("R2_ACCCOUNT_ID"),
			Bucket:    os.Getenv("R2_BUCKET"),
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
		},
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKER_COUNT %q: %w", v, err)
		}
		cfg.Workers = n
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("worker config error: %w", envError(err))
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var envNames = map[string]string{
	"DatabaseURL": "DB_URL",
	"RabbitMQURL": "RABBITMQ_URL",
	"Workers":     "WORKER_COUNT",
	"AccountID":   "R2_ACCCOUNT_ID",
	"Bucket":      "R2_BUCKET",
	"AccessKey":   "R2_ACCESS_KEY",
	"SecretKey":   "R2_SECRET_KEY",
}

// envError rewrites validation failures in terms of environment variables.
func envError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	name := envNames[fe.Field()]
	if fe.Tag() == "required" {
		return fmt.Errorf("empty %s in environment", name)
	}
	return fmt.Errorf("invalid %s in environment", name)
}
