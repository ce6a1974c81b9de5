// Package termcaps detects the terminal program hosting the process and
// resolves which escape sequence families may be used with it.
//
// Detection only reads environment variables; nothing is written to or read from the terminal.
package termcaps

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/srlehn/termcaps/caps"
	"github.com/srlehn/termcaps/internal/config"
	"github.com/srlehn/termcaps/internal/environ"
	"github.com/srlehn/termcaps/internal/envkeys"
	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/internal/logx"
	"github.com/srlehn/termcaps/mouse"
	"github.com/srlehn/termcaps/mux"
	"github.com/srlehn/termcaps/report"
	"github.com/srlehn/termcaps/size"
	"github.com/srlehn/termcaps/terminals"
)

var _ logx.LoggerProvider = (*Session)(nil)

// Session holds the profiles resolved at creation. It is immutable;
// create a new Session to pick up a changed environment.
type Session struct {
	env        *environ.Env
	logger     *slog.Logger
	db         *caps.Database
	forced     *terminals.Program
	overlays   []caps.Overlay
	useConfig  bool
	configFile string
	ttyFile    *os.File

	program    terminals.Program
	detectedBy string
	muxers     mux.Muxers
	caps       caps.Profile
	mouse      mouse.Profile
}

// New snapshots the environment and resolves both profiles.
func New(opts ...Option) (*Session, error) {
	s := &Session{}
	if err := s.setOptions(opts...); err != nil {
		return nil, err
	}
	if s.env == nil {
		e := environ.FromOS()
		s.env = &e
	}
	if s.db == nil {
		s.db = caps.Default()
	}

	var overlays []caps.Overlay
	var cfgProgram *terminals.Program
	if s.useConfig {
		cfg, err := s.loadConfig()
		if err != nil {
			return nil, err
		}
		if p, ok, _ := cfg.ProgramOverride(); ok {
			cfgProgram = &p
		}
		if !cfg.Overrides.IsEmpty() {
			overlays = append(overlays, cfg.Overrides)
		}
		if len(cfg.File) > 0 {
			logx.Debug(`config loaded`, s, `file`, cfg.File)
		}
	}
	overlays = append(overlays, s.overlays...)

	switch {
	case s.forced != nil:
		s.program, s.detectedBy = *s.forced, `forced by option`
	case cfgProgram != nil:
		s.program, s.detectedBy = *cfgProgram, `forced by config`
	default:
		s.program, s.detectedBy = terminals.Explain(s.env)
	}
	s.muxers = mux.Detect(s.env)
	s.caps = s.db.ResolveWith(s.program, s.env, overlays...)
	s.mouse = mouse.Resolve(s.program)

	if s.logger != nil {
		var layers []string
		for _, l := range s.db.Layers(s.program, s.env) {
			layers = append(layers, l.Name)
		}
		logx.Debug(`terminal detected`, s,
			`program`, s.program.String(),
			`signal`, s.detectedBy,
			`muxers`, s.muxers.String(),
			`layers`, layers,
			`user_overlays`, len(overlays),
			`mouse_protocol`, s.mouse.Preferred.String(),
		)
	}
	return s, nil
}

func (s *Session) loadConfig() (*config.Config, error) {
	if len(s.configFile) > 0 {
		cfg, err := config.LoadFile(s.configFile)
		if err != nil {
			return nil, err
		}
		if p, ok := s.env.LookupEnv(envkeys.Program); ok {
			cfg.Program = p
		}
		if _, _, err := cfg.ProgramOverride(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(s.env)
}

func (s *Session) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.logger
}

func (s *Session) Program() terminals.Program { return s.program }

// DetectedBy describes the signal the program was recognized from.
func (s *Session) DetectedBy() string { return s.detectedBy }

func (s *Session) Family() terminals.Family { return s.program.Family() }

func (s *Session) Muxers() mux.Muxers {
	return append(mux.Muxers(nil), s.muxers...)
}

// Capabilities returns a copy of the resolved profile.
func (s *Session) Capabilities() caps.Profile { return s.caps }

// Mouse returns a copy of the mouse profile.
func (s *Session) Mouse() mouse.Profile { return s.mouse }

// Environ returns the environment snapshot detection ran on.
func (s *Session) Environ() termenv.Environ {
	if s.env == nil {
		return environ.Env{}
	}
	return *s.env
}

// Wrap wraps seq for the multiplexers that require passthrough,
// the innermost multiplexer first.
func (s *Session) Wrap(seq string) string {
	for i := len(s.muxers) - 1; i >= 0; i-- {
		switch m := s.muxers[i]; m.Kind() {
		case mux.KindTmux:
			if caps.NeedsTmuxWrap(&s.caps) {
				seq = mux.WrapTmux(seq)
			}
		case mux.KindScreen:
			if caps.NeedsScreenWrap(&s.caps) {
				seq = mux.WrapScreen(seq, caps.ScreenChunkLimit(&s.caps))
			}
		}
	}
	return seq
}

// EnableMouse requests the preferred mouse protocol and bracketed paste if available.
func (s *Session) EnableMouse(w io.Writer) error {
	p := s.mouse
	if !caps.CanUseBracketedPaste(&s.caps) {
		p.BracketedPaste = false
	}
	if err := mouse.Enable(w, p); err != nil {
		return err
	}
	logx.Debug(`mouse enabled`, s, `protocol`, p.Preferred.String())
	return nil
}

// DisableMouse resets all mouse modes and bracketed paste.
func (s *Session) DisableMouse(w io.Writer) error { return mouse.Disable(w) }

// Size probes the current terminal size. No fallback is applied.
func (s *Session) Size() (size.Size, error) {
	if s.ttyFile != nil {
		return size.ProbeFile(s.ttyFile)
	}
	return size.Probe()
}

// ReportInput collects the report fields of s.
func (s *Session) ReportInput(withSize bool) report.Input {
	in := report.Input{
		Program:      s.program,
		Family:       s.Family(),
		Muxers:       s.Muxers(),
		Capabilities: s.caps,
		Mouse:        s.mouse,
	}
	if withSize {
		if sz, err := s.Size(); err != nil {
			in.SizeErr = err
			logx.IsErr(err, s, slog.LevelDebug)
		} else {
			in.Size = &sz
		}
	}
	return in
}

// Report writes the diagnostic report of s to w.
func (s *Session) Report(w io.Writer, withSize bool) error {
	if w == nil {
		return errors.NilParam(w)
	}
	return report.Write(w, s.ReportInput(withSize))
}
