package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Client configuration keys. Each maps to a READER_* environment variable,
// a key in the client config file and, where the CLI binds one, a flag.
const (
	KeyServerURL  = "server-url"
	KeyToken      = "token"
	KeySourceLang = "source-lang"
	KeyTargetLang = "target-lang"
	KeyTimeout    = "timeout"
	KeyLogLevel   = "log-level"
)

// ClientConfig configures the reader CLI.
// Priority: flags > READER_* env > ~/.lingoreader.yaml > defaults.
type ClientConfig struct {
	ServerURL  string        `mapstructure:"server-url"`
	Token      string        `mapstructure:"token"`
	SourceLang string        `mapstructure:"source-lang"`
	TargetLang string        `mapstructure:"target-lang"`
	Timeout    time.Duration `mapstructure:"timeout"`
	LogLevel   string        `mapstructure:"log-level"`
}

// NewClientViper returns a viper instance with client defaults and READER_*
// environment binding. cfgFile may be empty to search $HOME and the working
// directory for .lingoreader.yaml.
func NewClientViper(cfgFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyServerURL, "http://localhost:8080")
	v.SetDefault(KeyToken, "")
	v.SetDefault(KeySourceLang, "en")
	v.SetDefault(KeyTargetLang, "es")
	v.SetDefault(KeyTimeout, "15s")
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix("READER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".lingoreader")
	}

	return v
}

// LoadClient reads the config file (if any) into v and decodes ClientConfig.
// A missing config file is not an error unless it was named explicitly.
func LoadClient(v *viper.Viper) (*ClientConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read client config: %w", err)
		}
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode client config: %w", err)
	}

	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("config: %s is required", KeyServerURL)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("config: %s must be > 0 (got %v)", KeyTimeout, cfg.Timeout)
	}

	return &cfg, nil
}
