package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/sven/internal/lexicon"
)

type Config struct {
	DefaultLanguage string          `mapstructure:"default_language" validate:"required,direction"`
	Cache           CacheConfig     `mapstructure:"cache"`
	Fetch           FetchConfig     `mapstructure:"fetch"`
	Database        DatabaseConfig  `mapstructure:"database"`
	Templates       TemplatesConfig `mapstructure:"templates"`
}

type CacheConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
	Driver    string `mapstructure:"driver" validate:"oneof=file mysql"`
	Format    string `mapstructure:"format" validate:"oneof=json yaml"`
}

type FetchConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent     string        `mapstructure:"user_agent" validate:"required"`
	RetryAttempts uint          `mapstructure:"retry_attempts" validate:"lte=10"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type TemplatesConfig struct {
	EntryTemplate string `mapstructure:"entry_template" validate:"omitempty,file"`
}

// DatabaseConfig is only used when cache.driver is mysql.
type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sven")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("default_language", lexicon.EnglishToSwedish.Name())
	v.SetDefault("cache.directory", defaultCacheDirectory())
	v.SetDefault("cache.driver", "file")
	v.SetDefault("cache.format", string(lexicon.FormatJSON))
	v.SetDefault("fetch.base_url", lexicon.DefaultBaseURL)
	v.SetDefault("fetch.user_agent", "sven")
	v.SetDefault("fetch.retry_attempts", 0)
	v.SetDefault("fetch.timeout", "0s")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "sven")
	v.SetDefault("database.username", "user")
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.entry_template", "")

	if err := v.BindEnv("cache.directory", "SVEN_CACHE_DIRECTORY"); err != nil {
		return nil, fmt.Errorf("failed to bind SVEN_CACHE_DIRECTORY environment variable: %w", err)
	}
	if err := v.BindEnv("default_language", "SVEN_LANGUAGE"); err != nil {
		return nil, fmt.Errorf("failed to bind SVEN_LANGUAGE environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "SVEN_DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind SVEN_DATABASE_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Direction returns the parsed default_language.
func (cfg Config) Direction() (lexicon.Direction, error) {
	return lexicon.ParseDirection(cfg.DefaultLanguage)
}

// defaultCacheDirectory follows the XDG base directory layout, falling back to a relative directory.
func defaultCacheDirectory() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "sven")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lexicons"
	}
	return filepath.Join(home, ".local", "share", "sven")
}
