package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level dayline configuration.
type Config struct {
	DataDir       string   `mapstructure:"data_dir"`
	DefaultTarget int      `mapstructure:"default_target"`
	Insights      Insights `mapstructure:"insights"`
	Output        Output   `mapstructure:"output"`
}

// Insights defines the trigger thresholds for habit insight rules.
type Insights struct {
	HighCompletionRate float64 `mapstructure:"high_completion_rate"`
	LowCompletionRate  float64 `mapstructure:"low_completion_rate"`
	StreakConfidence   float64 `mapstructure:"streak_confidence"`
	WeatherDominance   float64 `mapstructure:"weather_dominance"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("default_target", DefaultTarget)
	v.SetDefault("insights.high_completion_rate", DefaultInsights.HighCompletionRate)
	v.SetDefault("insights.low_completion_rate", DefaultInsights.LowCompletionRate)
	v.SetDefault("insights.streak_confidence", DefaultInsights.StreakConfidence)
	v.SetDefault("insights.weather_dominance", DefaultInsights.WeatherDominance)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultDataDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DAYLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is not an error; defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}
