package schipperke

/*------------------------------------------------------------------
 *
 * Purpose:	Optional YAML configuration for the receiver CLI.
 *
 *		Everything here has a sensible default; command line
 *		flags override file values.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Message log: LogFile for a single file, LogDir for daily names.
	LogFile         string `yaml:"logfile"`
	LogDir          string `yaml:"logdir"`
	TimestampFormat string `yaml:"timestamp_format"`

	MetricsAddr string `yaml:"metrics_addr"`

	Color bool `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Host: "127.0.0.1",
		Port: 2345,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// An empty path just returns the defaults.

func LoadConfig(path string) (*Config, error) {
	var c = DefaultConfig()

	if len(path) == 0 {
		return c, nil
	}

	var data, readErr = os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("read config: %w", readErr)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.LogFile != "" && c.LogDir != "" {
		return nil, fmt.Errorf("config %s: logfile and logdir are mutually exclusive", path)
	}

	return c, nil
}
