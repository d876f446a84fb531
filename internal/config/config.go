package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabasePath string        `yaml:"database_path"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"`
}

// Load builds a Config from defaults, environment variables and, when path
// is non-empty, a YAML file. File values override the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DatabasePath: getEnv("AAQ_DATABASE_PATH", "questions.db"),
		BusyTimeout:  5 * time.Second,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DSN renders the driver connection string for the configured database file.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", c.DatabasePath, c.BusyTimeout.Milliseconds())
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
