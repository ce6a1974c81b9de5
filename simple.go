package termcaps

import (
	"io"
	"sync"

	"github.com/srlehn/termcaps/caps"
	"github.com/srlehn/termcaps/mouse"
	"github.com/srlehn/termcaps/terminals"
)

var (
	sessionActive *Session
	sessionOnce   sync.Once
)

// Detect returns a new session for the process environment.
// It never fails; on error the session of an unknown terminal is returned.
func Detect() *Session {
	s, err := New()
	if err == nil {
		return s
	}
	return fallbackSession()
}

func fallbackSession() *Session {
	return &Session{
		program:    terminals.Unknown,
		detectedBy: `fallback`,
		caps:       caps.Default().Baseline(),
		mouse:      mouse.Resolve(terminals.Unknown),
	}
}

// Default returns the session of the process, detected on first use.
func Default() *Session {
	sessionOnce.Do(func() { sessionActive = Detect() })
	return sessionActive
}

// Capabilities ...
func Capabilities() caps.Profile { return Default().Capabilities() }

// Wrap ...
func Wrap(seq string) string { return Default().Wrap(seq) }

// EnableMouse ...
func EnableMouse(w io.Writer) error { return Default().EnableMouse(w) }

// DisableMouse ...
func DisableMouse(w io.Writer) error { return Default().DisableMouse(w) }
