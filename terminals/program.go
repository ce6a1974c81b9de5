package terminals

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Program identifies the terminal emulator hosting the session.
type Program int

const (
	Unknown Program = iota
	Kitty
	WezTerm
	ITerm2
	AppleTerminal
	VTE // gnome-terminal, tilix, terminator, ... (libvte based)
	Alacritty
	Ghostty
	Konsole
	XTerm
	VSCode // integrated terminal (xterm.js)
	WindowsTerminal
	LinuxConsole
	programCount
)

var programNames = [programCount]string{
	Unknown:         `unknown`,
	Kitty:           `kitty`,
	WezTerm:         `wezterm`,
	ITerm2:          `iterm2`,
	AppleTerminal:   `apple_terminal`,
	VTE:             `vte`,
	Alacritty:       `alacritty`,
	Ghostty:         `ghostty`,
	Konsole:         `konsole`,
	XTerm:           `xterm`,
	VSCode:          `vscode`,
	WindowsTerminal: `windows_terminal`,
	LinuxConsole:    `linux_console`,
}

func (p Program) String() string {
	if !p.IsValid() {
		return programNames[Unknown]
	}
	return programNames[p]
}

func (p Program) IsValid() bool { return p >= Unknown && p < programCount }

// Programs lists every Program, Unknown first.
func Programs() []Program {
	ps := make([]Program, 0, programCount)
	for p := Unknown; p < programCount; p++ {
		ps = append(ps, p)
	}
	return ps
}

// ParseProgram is the inverse of Program.String. Matching ignores case.
func ParseProgram(name string) (Program, bool) {
	name = strings.TrimSpace(name)
	idx := slices.IndexFunc(programNames[:], func(n string) bool { return strings.EqualFold(n, name) })
	if idx < 0 {
		return Unknown, false
	}
	return Program(idx), true
}

func (p Program) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Program) UnmarshalText(text []byte) error {
	prog, ok := ParseProgram(string(text))
	if !ok {
		return &UnknownProgramError{Name: string(text)}
	}
	*p = prog
	return nil
}

type UnknownProgramError struct{ Name string }

func (e *UnknownProgramError) Error() string {
	return `unknown terminal program "` + e.Name + `"`
}
