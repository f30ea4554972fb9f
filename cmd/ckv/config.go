// Config loading for the ckv CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configDirName  = ".ckv"
	envPrefix      = "CKV"

	// Config keys.
	cfgKeyFile        = "file"
	cfgKeyStrict      = "strict_keys"
	cfgKeyBlankCloses = "blank_closes"

	// Default ckv file when neither flag, config nor environment names one.
	defaultFile = "config.ckv"
)

// loadConfig reads the optional CLI configuration using Viper. Lookup
// order: $CWD/.ckv/config.yaml, then $HOME/.config/ckv/config.yaml.
// Environment variables prefixed CKV_ override file settings. A missing
// config file is not an error.
func loadConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFile, defaultFile)
	v.SetDefault(cfgKeyStrict, false)
	v.SetDefault(cfgKeyBlankCloses, false)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDirName)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ckv"))
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
