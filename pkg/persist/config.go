package persist

import (
	"log"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/streak/pkg/timeutil"
)

// Config exposes the settings the persistence and sync layers need.
type Config interface {
	BasePath() string
	RemoteURL() string
	RemoteAnonKey() string
	GracePeriod() time.Duration
}

// LoadConfig reads .streak.yaml (cwd or STREAK_CONFIG_PATH) with STREAK_*
// env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.streak.db")
	viper.SetDefault("grace-period", timeutil.DefaultSpan)
	viper.SetConfigName(".streak") // .yaml is implicit
	viper.SetEnvPrefix("STREAK")
	viper.AutomaticEnv()

	if override := os.Getenv("STREAK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:    viper.GetString("path"),
		Remote:  viper.GetString("remote.url"),
		AnonKey: viper.GetString("remote.anon-key"),
		Grace:   viper.GetString("grace-period"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Remote  string `json:"remote"`
	AnonKey string `json:"anonKey"`
	Grace   string `json:"grace"`
}

func (f *fileConfig) BasePath() string {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return expanded
}

func (f *fileConfig) RemoteURL() string {
	return f.Remote
}

func (f *fileConfig) RemoteAnonKey() string {
	return f.AnonKey
}

func (f *fileConfig) GracePeriod() time.Duration {
	d, _, err := timeutil.ParseSpan(f.Grace)
	if err != nil {
		d, _, _ = timeutil.ParseSpan(timeutil.DefaultSpan)
	}
	return d
}
