// Package config loads user overrides for the capability resolution.
//
// Precedence (highest to lowest):
//  1. TERMCAPS_PROGRAM and TERMCAPS_CONFIG environment variables
//  2. config file, $XDG_CONFIG_HOME/termcaps/config.yaml by default
//  3. detection
package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/rkoesters/xdg/basedir"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/termcaps/caps"
	"github.com/srlehn/termcaps/internal/consts"
	"github.com/srlehn/termcaps/internal/environ"
	"github.com/srlehn/termcaps/internal/envkeys"
	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/terminals"
)

const fileName = `config.yaml`

// Config is the content of the config file.
type Config struct {
	// Program forces the program identity instead of detecting it.
	Program string `yaml:"program,omitempty"`
	// Overrides is applied after all database overlays.
	Overrides caps.Overlay `yaml:"overrides,omitempty"`

	// File is the path the config was read from, empty if none.
	File string `yaml:"-"`
}

// DefaultPath returns the config file location for env.
func DefaultPath(env termenv.Environ) string {
	e := environ.Of(env)
	if p, ok := e.LookupEnv(envkeys.ConfigFile); ok {
		return p
	}
	dir := basedir.ConfigHome
	if d, ok := e.LookupEnv(envkeys.XDGConfigHome); ok && filepath.IsAbs(d) {
		dir = d
	}
	if len(dir) == 0 {
		return ``
	}
	return filepath.Join(dir, consts.LibraryName, fileName)
}

// Load reads the config file of env. A missing file at the default
// location is not an error, a missing file named by TERMCAPS_CONFIG is.
func Load(env termenv.Environ) (*Config, error) {
	e := environ.Of(env)
	path := DefaultPath(e)
	_, explicit := e.LookupEnv(envkeys.ConfigFile)
	cfg := &Config{}
	if len(path) > 0 {
		c, err := LoadFile(path)
		switch {
		case err == nil:
			cfg = c
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}
	if p, ok := e.LookupEnv(envkeys.Program); ok {
		cfg.Program = p
	}
	if _, _, err := cfg.ProgramOverride(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the config at path. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(err)
	}
	cfg := &Config{}
	if len(bytes.TrimSpace(b)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, errors.WrapPrefix(err, `config `+path, 0)
		}
	}
	cfg.File = path
	return cfg, nil
}

// ProgramOverride returns the forced program, if any.
func (c *Config) ProgramOverride() (terminals.Program, bool, error) {
	if c == nil || len(c.Program) == 0 {
		return terminals.Unknown, false, nil
	}
	p, ok := terminals.ParseProgram(c.Program)
	if !ok {
		return terminals.Unknown, false, errors.New(&terminals.UnknownProgramError{Name: c.Program})
	}
	return p, true, nil
}
