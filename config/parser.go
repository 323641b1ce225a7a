package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config describes the parameters of an application
type Config interface {
	Use() string
	EnvPrefix() string
	Binders() []Binder
}

// Parser resolves the parameters of a Config from the command
// line, the environment and an optional configuration file
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses args, which must not include the program name,
// and lets every binder read its values
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Usage prints the usage of the application
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Command returns the command that holds the flags of the
// application
func (p *Parser) Command() *cobra.Command {
	return p.cmd
}

// Generate creates a Parser for config. Environment variables are
// looked up with config.EnvPrefix() as prefix and `.` and `-`
// replaced by `_`
func Generate(config Config) (*Parser, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: config.Use()}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}

// GetList reads key as a list of strings. Items can be given
// either as separate values or as a single comma separated
// string, which is how they arrive from the environment
func GetList(v *viper.Viper, key string) []string {
	var items []string
	for _, value := range v.GetStringSlice(key) {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}

	return items
}
