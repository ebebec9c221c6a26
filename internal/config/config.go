// Package config loads the x12map CLI settings from a config file,
// X12MAP_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by New.
const EnvPrefix = "X12MAP"

// Setting keys.
const (
	KeyFieldTerminator = "field_terminator"
	KeyLineTerminator  = "line_terminator"
	KeyDebug           = "debug"
	KeyOutput          = "output"
	KeyColor           = "color"
	KeyLogDir          = "log_dir"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

const defaultFileName = ".x12map.yaml"

// Config holds the resolved CLI settings.
type Config struct {
	FieldTerminator string `mapstructure:"field_terminator"`
	LineTerminator  string `mapstructure:"line_terminator"`
	Debug           bool   `mapstructure:"debug"`
	Output          string `mapstructure:"output"`
	Color           string `mapstructure:"color"`
	LogDir          string `mapstructure:"log_dir"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyFieldTerminator, "*")
	v.SetDefault(KeyLineTerminator, "\n")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyOutput, OutputJSON)
	v.SetDefault(KeyColor, "always")
	v.SetDefault(KeyLogDir, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultPath returns ~/.x12map.yaml, or a path relative to the working
// directory when the home directory cannot be found.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return defaultFileName
	}

	return filepath.Join(home, defaultFileName)
}

// Load reads path into v and resolves the settings. An empty path reads
// DefaultPath and tolerates its absence; an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %s: %w", path, err)
	}

	v.SetConfigFile(expanded)

	err = v.ReadInConfig()
	if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("failed to read config file %s: %w", expanded, err)
	}

	var c Config

	err = v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	c.FieldTerminator = Unescape(c.FieldTerminator)
	c.LineTerminator = Unescape(c.LineTerminator)

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q, want %s or %s", c.Output, OutputJSON, OutputYAML)
	}

	if c.FieldTerminator == c.LineTerminator {
		return fmt.Errorf("field and line terminators must differ, both are %q", c.FieldTerminator)
	}

	return nil
}

// Unescape interprets Go escape sequences such as \n and \r\n typed on a
// command line. Strings that are not valid escapes are returned unchanged.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}

	return out
}
