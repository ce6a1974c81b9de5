// Package envkeys names the environment variables consulted during detection.
package envkeys

// terminal programs
const (
	KittyPID            = `KITTY_PID`
	WezTermExecutable   = `WEZTERM_EXECUTABLE`
	WTSession           = `WT_SESSION`
	VSCodeGitIPCHandle  = `VSCODE_GIT_IPC_HANDLE`
	GhosttyResourcesDir = `GHOSTTY_RESOURCES_DIR`
	TermProgram         = `TERM_PROGRAM`
	KonsoleVersion      = `KONSOLE_VERSION`
	VTEVersion          = `VTE_VERSION`
	Term                = `TERM`
)

// multiplexers
const (
	Tmux   = `TMUX`
	STY    = `STY` // GNU screen session name
	Screen = `SCREEN`
)

// termcaps settings
const (
	ConfigFile = `TERMCAPS_CONFIG`
	Program    = `TERMCAPS_PROGRAM`

	XDGConfigHome = `XDG_CONFIG_HOME`
)

// Detection lists the variables read by program and multiplexer detection.
var Detection = []string{
	KittyPID,
	WezTermExecutable,
	WTSession,
	VSCodeGitIPCHandle,
	GhosttyResourcesDir,
	TermProgram,
	KonsoleVersion,
	VTEVersion,
	Term,
	Tmux,
	STY,
	Screen,
}
