package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder is a set of related configuration parameters. Bind
// declares its flags before parsing and Configure reads the
// resolved values once flags, environment and config file
// have been merged by viper
type Binder interface {
	Bind(v *viper.Viper, cmd *cobra.Command) error
	Configure(v *viper.Viper) error
}

// ConfigFile is the Binder for the --config flag. When set, the
// file is read by viper and its values become the defaults of
// every other parameter
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a configuration file (json, yaml or toml)")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfigFile{Path: f.Path, Cause: err}
	}

	return nil
}
