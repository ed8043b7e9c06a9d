package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of all environment variables that override configuration keys,
// e.g. RDSCTL_SERIAL_PORT for serial.port.
const EnvPrefix = "RDSCTL"

type SerialConfig struct {
	Port     string        `mapstructure:"port" yaml:"port"`
	Detect   string        `mapstructure:"detect" yaml:"detect"`
	BaudRate uint          `mapstructure:"baudRate" yaml:"baudRate"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Trace    bool          `mapstructure:"trace" yaml:"trace"`
}

type EncoderConfig struct {
	Protocol       string `mapstructure:"protocol" yaml:"protocol"`
	SiteAddress    uint16 `mapstructure:"siteAddress" yaml:"siteAddress"`
	EncoderAddress uint16 `mapstructure:"encoderAddress" yaml:"encoderAddress"`
	DynamicPS      bool   `mapstructure:"dynamicPS" yaml:"dynamicPS"`
}

type PacingConfig struct {
	FramesPerSecond float64 `mapstructure:"framesPerSecond" yaml:"framesPerSecond"`
	Burst           int     `mapstructure:"burst" yaml:"burst"`
}

type LumberjackConfig struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize" yaml:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge" yaml:"maxAge"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

type LoggingConfig struct {
	Level  string           `mapstructure:"level" yaml:"level"`
	Format string           `mapstructure:"format" yaml:"format"`
	File   LumberjackConfig `mapstructure:"file" yaml:"file"`
}

type MetricsConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

type Config struct {
	Serial  SerialConfig  `mapstructure:"serial" yaml:"serial"`
	Encoder EncoderConfig `mapstructure:"encoder" yaml:"encoder"`
	Pacing  PacingConfig  `mapstructure:"pacing" yaml:"pacing"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// Load reads the configuration from the given file, the environment and the given flags, in increasing order
// of precedence. Without a path, rdsctl.yaml is searched in the working directory and in ~/.config/rdsctl;
// a missing file is not an error then. Flags are bound by their names, e.g. --serial.port.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/rdsctl")
		v.SetConfigName("rdsctl")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serial.port", "")
	v.SetDefault("serial.detect", "")
	v.SetDefault("serial.baudRate", 9600)
	v.SetDefault("serial.timeout", "1s")
	v.SetDefault("serial.trace", false)

	v.SetDefault("encoder.protocol", "prais")
	v.SetDefault("encoder.siteAddress", 0)
	v.SetDefault("encoder.encoderAddress", 1)
	v.SetDefault("encoder.dynamicPS", false)

	v.SetDefault("pacing.framesPerSecond", 0)
	v.SetDefault("pacing.burst", 1)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 30)
	v.SetDefault("logging.file.compress", false)

	v.SetDefault("metrics.file", "")
}

// YAML returns the configuration as YAML document.
func (c *Config) YAML() (string, error) {
	bytes, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(bytes), nil
}
