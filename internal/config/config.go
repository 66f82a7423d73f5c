package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Anonymity AnonymityConfig `yaml:"anonymity" mapstructure:"anonymity"`
	Geomask   GeomaskConfig   `yaml:"geomask" mapstructure:"geomask"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// AnonymityConfig holds spatial k-anonymity defaults.
type AnonymityConfig struct {
	K      int    `yaml:"k" mapstructure:"k"`
	Region string `yaml:"region" mapstructure:"region"`
}

// GeomaskConfig holds annulus sampling defaults. Radii are meters.
type GeomaskConfig struct {
	MinRadius    float64 `yaml:"min_radius" mapstructure:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius" mapstructure:"max_radius"`
	BufferRadius float64 `yaml:"buffer_radius" mapstructure:"buffer_radius"`
	Segments     int     `yaml:"segments" mapstructure:"segments"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOPRIV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("anonymity.k", 5)
	v.SetDefault("anonymity.region", "hull")
	v.SetDefault("geomask.min_radius", 10.0)
	v.SetDefault("geomask.max_radius", 500.0)
	v.SetDefault("geomask.buffer_radius", 500.0)
	v.SetDefault("geomask.segments", 64)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
