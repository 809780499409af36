package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/graceolivia/ToDoistChoreQueue/internal/domain/queue"
	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

// ErrMissingToken indicates no Todoist credential was supplied. Nothing can
// run without one, so callers treat this as fatal.
var ErrMissingToken = errors.New("TODOIST_TOKEN is required")

// Config defines process configuration.
type Config struct {
	Token  string    `yaml:"-"`
	API    APIConfig `yaml:"api"`
	Log    LogConfig `yaml:"log"`
	Queues []Queue   `yaml:"queues"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Queue is one managed queue as written in the config file. Omitted fields
// take the classic defaults: due "today", lang "en", clear-on-rest true.
type Queue struct {
	Project        string `yaml:"project"`
	DueString      string `yaml:"due_string"`
	DueLang        string `yaml:"due_lang"`
	PromoteLabel   string `yaml:"promote_label"`
	ClearDueOnRest *bool  `yaml:"clear_due_on_rest"`
}

// Load reads configuration from an optional YAML file and environment
// variables. When no queues are configured, a single default queue is
// synthesized from PROJECT_NAME with the "@next" promote label.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{BaseURL: todoist.DefaultBaseURL},
		Log: LogConfig{Level: "info"},
	}

	if path := os.Getenv("CHOREQUEUE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if baseURL := os.Getenv("TODOIST_API_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if level := os.Getenv("CHOREQUEUE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	cfg.Token = os.Getenv("TODOIST_TOKEN")

	if len(cfg.Queues) == 0 {
		name := os.Getenv("PROJECT_NAME")
		if name == "" {
			name = "chore queue"
		}
		cfg.Queues = []Queue{{Project: name, PromoteLabel: "@next"}}
	}

	if strings.TrimSpace(cfg.Token) == "" {
		return Config{}, ErrMissingToken
	}

	return cfg, nil
}

// QueueConfigs maps the configured queues onto engine configs, filling
// defaults for omitted fields.
func (c Config) QueueConfigs() []queue.Config {
	configs := make([]queue.Config, 0, len(c.Queues))
	for _, q := range c.Queues {
		cfg := queue.Config{
			Project:        q.Project,
			DueString:      q.DueString,
			DueLang:        q.DueLang,
			PromoteLabel:   q.PromoteLabel,
			ClearDueOnRest: true,
		}
		if cfg.DueString == "" {
			cfg.DueString = "today"
		}
		if cfg.DueLang == "" {
			cfg.DueLang = "en"
		}
		if q.ClearDueOnRest != nil {
			cfg.ClearDueOnRest = *q.ClearDueOnRest
		}
		configs = append(configs, cfg)
	}
	return configs
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
