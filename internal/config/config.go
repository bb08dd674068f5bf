// Package config resolves runtime settings from the config file, GARDEN_*
// environment variables and flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".memory-garden"
	envPrefix  = "GARDEN"

	SourceAPI  = "api"
	SourceFile = "file"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	UserID   int64          `mapstructure:"user_id" validate:"gte=0"`
	Source   string         `mapstructure:"source" validate:"oneof=api file"`
	GroupBy  string         `mapstructure:"group_by" validate:"oneof=date emotion"`
	Grid     GridConfig     `mapstructure:"grid"`
	Lotus    LotusConfig    `mapstructure:"lotus"`
	Log      LogConfig      `mapstructure:"log"`
	Memories MemoriesConfig `mapstructure:"memories"`
}

type APIConfig struct {
	Base    string        `mapstructure:"base" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type GridConfig struct {
	Rows       int      `mapstructure:"rows" validate:"gt=0"`
	Cols       int      `mapstructure:"cols" validate:"gt=0"`
	SpacingX   float64  `mapstructure:"spacing_x" validate:"gt=0"`
	SpacingZ   float64  `mapstructure:"spacing_z" validate:"gt=0"`
	RingRadius float64  `mapstructure:"ring_radius" validate:"gte=0"`
	Reserved   [][2]int `mapstructure:"reserved"`
}

type LotusConfig struct {
	Count   int     `mapstructure:"count" validate:"gte=0"`
	Radius  float64 `mapstructure:"radius" validate:"gt=0"`
	CenterX float64 `mapstructure:"center_x"`
	CenterZ float64 `mapstructure:"center_z"`
	Seed    uint64  `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type MemoriesConfig struct {
	Path string `mapstructure:"path"`
}

var validate = newValidator()

// newValidator reports fields by their config key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return v
}

// SetDefaults registers every key so environment variables bind even when no
// config file is present.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base", "http://127.0.0.1:8000/api")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("user_id", 2)
	v.SetDefault("source", SourceAPI)
	v.SetDefault("group_by", "date")
	v.SetDefault("grid.rows", 11)
	v.SetDefault("grid.cols", 10)
	v.SetDefault("grid.spacing_x", 3.0)
	v.SetDefault("grid.spacing_z", 4.0)
	v.SetDefault("grid.ring_radius", 2.0)
	v.SetDefault("grid.reserved", [][2]int{})
	v.SetDefault("lotus.count", 6)
	v.SetDefault("lotus.radius", 4.0)
	v.SetDefault("lotus.center_x", 15.0)
	v.SetDefault("lotus.center_z", 15.0)
	v.SetDefault("lotus.seed", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("memories.path", "")
}

// Load reads the optional config file into v and returns the validated result.
// An explicit path must exist; the default location may be absent.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.API.Base = strings.TrimSpace(cfg.API.Base)
	cfg.GroupBy = strings.ToLower(strings.TrimSpace(cfg.GroupBy))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	for _, cell := range c.Grid.Reserved {
		if cell[0] < 0 || cell[0] >= c.Grid.Cols || cell[1] < 0 || cell[1] >= c.Grid.Rows {
			return fmt.Errorf("invalid config: grid.reserved cell %v is outside the %dx%d grid", cell, c.Grid.Rows, c.Grid.Cols)
		}
	}

	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
