package config

import (
	"strings"
	"time"

	"exoplayerlcevc/internal/logger"

	"github.com/spf13/viper"
)

// Settings is a typed snapshot of the configuration.
type Settings struct {
	RemoteURL      string
	TagPrefix      string
	RemoteTimeout  time.Duration
	GitBackend     string
	DecoderSource  string
	DecoderExclude []string
	LogLevel       string
	Progress       string
}

func Init() {
	viper.SetConfigName("config") // config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("EXOLCEVC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Log.Info("No config file found; using defaults.")
	}
}

func setDefaults() {
	viper.SetDefault("remote.url", "https://github.com/google/ExoPlayer.git")
	viper.SetDefault("remote.tag_prefix", "r")
	viper.SetDefault("remote.timeout", "0s")
	viper.SetDefault("git.backend", "exec")
	viper.SetDefault("decoder.source", "libraries/decoder_lcevc")
	viper.SetDefault("decoder.exclude", []string{".cxx", "buildout"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("ui.progress", "auto")
}

// Current reads the settings from viper. Call Init first.
func Current() Settings {
	return Settings{
		RemoteURL:      viper.GetString("remote.url"),
		TagPrefix:      viper.GetString("remote.tag_prefix"),
		RemoteTimeout:  viper.GetDuration("remote.timeout"),
		GitBackend:     strings.ToLower(viper.GetString("git.backend")),
		DecoderSource:  viper.GetString("decoder.source"),
		DecoderExclude: viper.GetStringSlice("decoder.exclude"),
		LogLevel:       viper.GetString("log.level"),
		Progress:       strings.ToLower(viper.GetString("ui.progress")),
	}
}
