// Package config resolves abisync's build properties and file locations.
//
// Properties are layered by viper: built-in defaults, then the optional
// .abisync.yaml config file, then ABISYNC_* environment variables, then
// command-line flags bound by the CLI.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Property keys.
const (
	KeyTargetPlatform = "target_platform"
	KeySplitPerABI    = "split_per_abi"
	KeySupportArmeabi = "support_armeabi"
	KeyProject        = "project"
	KeyVerbose        = "verbose"
	KeyJSON           = "json"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ABISYNC"

// Config holds the build properties for one abisync invocation.
type Config struct {
	// TargetPlatform is the raw comma-separated platform list, nil when not configured.
	TargetPlatform *string `mapstructure:"-"`

	// SupportArmeabi is the raw convenience strategy value, nil when not configured.
	SupportArmeabi *string `mapstructure:"-"`

	SplitPerABI bool   `mapstructure:"split_per_abi"`
	Project     string `mapstructure:"project"`
	Verbose     int    `mapstructure:"verbose"`
	JSON        bool   `mapstructure:"json"`
}

// Setup points viper at the config file and environment. An empty cfgFile
// searches for .abisync.yaml in the working directory.
func Setup(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".abisync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// a missing default config file is fine; an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. Optional properties
// stay nil unless some layer sets them, so "absent" survives loading.
func Load() (Config, error) {
	viper.SetDefault(KeySplitPerABI, false)
	viper.SetDefault(KeyProject, "")
	viper.SetDefault(KeyVerbose, 0)
	viper.SetDefault(KeyJSON, false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	cfg.TargetPlatform = optionalString(KeyTargetPlatform)
	cfg.SupportArmeabi = optionalString(KeySupportArmeabi)
	return cfg, nil
}

func optionalString(key string) *string {
	if !viper.IsSet(key) {
		return nil
	}
	v := viper.GetString(key)
	return &v
}
