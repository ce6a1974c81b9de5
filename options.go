package termcaps

import (
	"log/slog"
	"os"

	"github.com/srlehn/termcaps/caps"
	"github.com/srlehn/termcaps/internal/consts"
	"github.com/srlehn/termcaps/internal/environ"
	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/terminals"
)

type Option interface {
	ApplyOption(s *Session) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Session) error

func (o OptFunc) ApplyOption(s *Session) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Session) error { return s.setOptions([]Option(o)...) }

func (s *Session) setOptions(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetEnviron replaces the process environment as detection input.
// env holds "KEY=value" entries like os.Environ.
func SetEnviron(env []string) Option {
	return OptFunc(func(s *Session) error {
		e := environ.FromList(env)
		s.env = &e
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(s *Session) error {
		if enable {
			if h == nil {
				s.logger = slog.Default()
			} else {
				s.logger = slog.New(h)
			}
		} else {
			s.logger = nil
		}
		return nil
	})
}

// SetProgram skips detection. It wins over the config file.
func SetProgram(p terminals.Program) Option {
	return OptFunc(func(s *Session) error {
		if !p.IsValid() {
			return errors.Errorf(`invalid program %d`, int(p))
		}
		s.forced = &p
		return nil
	})
}

// SetOverlay adds o after the multiplexer overlays and the config overrides.
func SetOverlay(o caps.Overlay) Option {
	return OptFunc(func(s *Session) error { s.overlays = append(s.overlays, o); return nil })
}

// SetDatabase resolves against db instead of the embedded database.
func SetDatabase(db *caps.Database) Option {
	return OptFunc(func(s *Session) error {
		if db == nil {
			return errors.New(consts.ErrNilParam)
		}
		s.db = db
		return nil
	})
}

// SetConfigFile reads overrides from path. A missing file is an error.
func SetConfigFile(path string) Option {
	return OptFunc(func(s *Session) error {
		s.configFile = path
		s.useConfig = true
		return nil
	})
}

// SetTTYFile sets the file Report probes the size of. The default is stdout.
func SetTTYFile(f *os.File) Option {
	return OptFunc(func(s *Session) error { s.ttyFile = f; return nil })
}

// UserConfig reads the config file at its default location if it exists.
var UserConfig Option = OptFunc(func(s *Session) error { s.useConfig = true; return nil })
