package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultAPIPath  = "sdk/api-reference.mdx"
	defaultSDKIndex = "../sdk/src/index.ts"
	defaultLogLevel = "warn"
	configFileName  = ".sdk-exports"
	envPrefix       = "SDK_EXPORTS"
	keyAPI          = "api"
	keySDKIndex     = "sdk-index"
	keyLogLevel     = "log-level"
	keyUpdate       = "update"
)

// settings are the resolved parameters of one invocation.
type settings struct {
	update   bool
	api      string
	sdkIndex string
	logLevel string
}

// loadSettings resolves paths and log level with the precedence
// flag > environment > .sdk-exports.yaml > flag default.
//
// The update switch is only ever taken from the command line so that a stray
// environment variable cannot turn a CI check into a rewrite.
func loadSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{keyAPI, keySDKIndex} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return settings{}, fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	v.SetDefault(keyLogLevel, defaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	update, err := flags.GetBool(keyUpdate)
	if err != nil {
		return settings{}, err
	}
	return settings{
		update:   update,
		api:      v.GetString(keyAPI),
		sdkIndex: v.GetString(keySDKIndex),
		logLevel: v.GetString(keyLogLevel),
	}, nil
}
