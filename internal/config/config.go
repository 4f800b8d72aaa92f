// Package config loads roadmap settings from file, environment and flags via viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/TudorHulban/roadmap/internal/logging"
	"github.com/TudorHulban/roadmap/internal/render"
)

// EnvPrefix scopes environment overrides, e.g. ROADMAP_TEAM_SIZE.
const EnvPrefix = "ROADMAP"

const (
	KeyTeamSize      = "team.size"
	KeyStartDate     = "team.start_date"
	KeyBacklogPath   = "backlog.path"
	KeyOutputFormat  = "output.format"
	KeyOutputPalette = "output.palette"
	KeyLogLevel      = "logging.level"
	KeyLogDir        = "logging.dir"
)

type Config struct {
	Team    TeamConfig    `mapstructure:"team"`
	Backlog BacklogConfig `mapstructure:"backlog"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type TeamConfig struct {
	// StartDate is YYYY-MM-DD, empty means the current day.
	StartDate string `mapstructure:"start_date"`
	Size      int    `mapstructure:"size"`
}

type BacklogConfig struct {
	// Path picks the codec by extension: .json, .yaml or .yml.
	Path string `mapstructure:"path"`
}

type OutputConfig struct {
	Format  string   `mapstructure:"format"`
	Palette []string `mapstructure:"palette"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// Dir receives roadmap.log, empty logs to stderr.
	Dir string `mapstructure:"dir"`
}

func Default() *Config {
	return &Config{
		Backlog: BacklogConfig{
			Path: "backlog.yaml",
		},
		Output: OutputConfig{
			Format:  string(render.FormatTable),
			Palette: append([]string(nil), render.DefaultPalette...),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers every key so that environment overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault(KeyTeamSize, defaults.Team.Size)
	v.SetDefault(KeyStartDate, defaults.Team.StartDate)
	v.SetDefault(KeyBacklogPath, defaults.Backlog.Path)
	v.SetDefault(KeyOutputFormat, defaults.Output.Format)
	v.SetDefault(KeyOutputPalette, defaults.Output.Palette)
	v.SetDefault(KeyLogLevel, defaults.Logging.Level)
	v.SetDefault(KeyLogDir, defaults.Logging.Dir)
}

// New prepares a viper instance with defaults and environment overrides.
// An explicit configFile must exist; otherwise ConfigFile() is read when present.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)

		if errRead := v.ReadInConfig(); errRead != nil {
			return nil, errRead
		}

		return v, nil
	}

	if _, errStat := os.Stat(ConfigFile()); errStat == nil {
		v.SetConfigFile(ConfigFile())

		if errRead := v.ReadInConfig(); errRead != nil {
			return nil, errRead
		}
	}

	return v, nil
}

// Load reads the configuration from viper into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	if errUnmarshal := v.Unmarshal(&cfg); errUnmarshal != nil {
		return nil, errUnmarshal
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// StartDate parses team.start_date, falling back to today at midnight UTC.
func (c *Config) StartDate(now time.Time) (time.Time, error) {
	if strings.TrimSpace(c.Team.StartDate) == "" {
		year, month, day := now.Date()

		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			nil
	}

	return time.Parse(render.DateLayout, strings.TrimSpace(c.Team.StartDate))
}

func (c *Config) Format() (render.Format, error) {
	return render.ParseFormat(c.Output.Format)
}

func (c *Config) NewLogger() (*logging.Logger, error) {
	return logging.NewLogger(c.Logging.Dir, c.Logging.Level)
}

// ConfigDir honours XDG_CONFIG_HOME, then ~/.config/roadmap.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "roadmap")
	}

	home, errHome := os.UserHomeDir()
	if errHome != nil {
		return ".roadmap"
	}

	return filepath.Join(home, ".config", "roadmap")
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
