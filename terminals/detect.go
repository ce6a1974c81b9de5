package terminals

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/termcaps/internal/environ"
	"github.com/srlehn/termcaps/internal/envkeys"
)

// Dedicated variables are set by the terminal itself and outrank TERM,
// which many terminals set to a shared value like "xterm-256color".
// Within TERM the specific substrings come before the broad ones.
var rules = []rule{
	{Kitty, present(envkeys.KittyPID)},
	{WezTerm, present(envkeys.WezTermExecutable)},
	{WindowsTerminal, present(envkeys.WTSession)},
	{VSCode, present(envkeys.VSCodeGitIPCHandle)},
	{Ghostty, present(envkeys.GhosttyResourcesDir)},
	{WezTerm, equals(envkeys.TermProgram, `WezTerm`)},
	{ITerm2, equals(envkeys.TermProgram, `iTerm.app`)},
	{AppleTerminal, equals(envkeys.TermProgram, `Apple_Terminal`)},
	{VSCode, equalsFold(envkeys.TermProgram, `vscode`)},
	{Konsole, present(envkeys.KonsoleVersion)},
	{VTE, present(envkeys.VTEVersion)},
	{LinuxConsole, equals(envkeys.Term, `linux`)},
	{Kitty, contains(envkeys.Term, `xterm-kitty`)},
	{Alacritty, contains(envkeys.Term, `alacritty`)},
	{Ghostty, hasPrefix(envkeys.Term, `xterm-ghostty`)},
	{XTerm, contains(envkeys.Term, `xterm`)},
	{VTE, contains(envkeys.Term, `gnome`)},
	{Konsole, contains(envkeys.Term, `konsole`)},
}

type rule struct {
	program Program
	signal  signal
}

type signal struct {
	desc  string
	match func(environ.Env) bool
}

func present(key string) signal {
	return signal{
		desc:  key + ` is set`,
		match: func(e environ.Env) bool { return e.Has(key) },
	}
}

func equals(key, val string) signal {
	return signal{
		desc:  key + `=` + val,
		match: func(e environ.Env) bool { return e.Getenv(key) == val },
	}
}

func equalsFold(key, val string) signal {
	return signal{
		desc: key + `=` + val + ` (any case)`,
		match: func(e environ.Env) bool {
			v, ok := e.LookupEnv(key)
			return ok && strings.EqualFold(v, val)
		},
	}
}

func contains(key, sub string) signal {
	return signal{
		desc:  key + ` contains "` + sub + `"`,
		match: func(e environ.Env) bool { return strings.Contains(e.Getenv(key), sub) },
	}
}

func hasPrefix(key, prefix string) signal {
	return signal{
		desc:  key + ` starts with "` + prefix + `"`,
		match: func(e environ.Env) bool { return strings.HasPrefix(e.Getenv(key), prefix) },
	}
}

// Detect classifies the hosting terminal program from env.
// The first matching rule wins. A nil env is treated as empty.
func Detect(env termenv.Environ) Program {
	p, _ := Explain(env)
	return p
}

// Explain is Detect, additionally describing the signal that decided.
// For Unknown the description is empty.
func Explain(env termenv.Environ) (Program, string) {
	e := environ.Of(env)
	for _, r := range rules {
		if r.signal.match(e) {
			return r.program, r.signal.desc
		}
	}
	return Unknown, ``
}
