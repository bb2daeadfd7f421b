package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-rat/pkg/rat"
)

// EnvPath names the environment variable holding the configuration file path.
const EnvPath = "RAT_CONFIG"

// EnvLogLevel overrides the log level of the configuration file.
const EnvLogLevel = "RAT_LOG_LEVEL"

type Config struct {
	Env      string    `yaml:"env"`
	LogLevel string    `yaml:"log_level"`
	Defaults rat.Flags `yaml:"defaults"`
	Stats    bool      `yaml:"stats"`
	Graph    string    `yaml:"graph"`
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{Env: "dev"}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read configuration")
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to parse configuration %s", path)
	}

	return cfg, nil
}

// Load reads the file named by RAT_CONFIG, if any, and applies RAT_LOG_LEVEL.
func Load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path := getenv(EnvPath); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if level := getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
