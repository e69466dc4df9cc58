package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// LoadFromFile merges the YAML file at path into c. A missing file is not an
// error; keys absent from the file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil
		}
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}

	if err := v.Unmarshal(c); err != nil {
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}

	return nil
}
