package queries

import (
	"strconv"
	"strings"
)

const (
	ESC = "\x1B"     // Escape
	DCS = ESC + "P"  // "\x90" // Device Control String - Terminated by ST
	CSI = ESC + "["  // "\x9B" // Control Sequence Introducer
	ST  = ESC + "\\" // "\x9C" // String Terminator
	OSC = ESC + "]"  // "\x9D" // Operating System Command
)

// DEC private modes
// https://invisible-island.net/xterm/ctlseqs/ctlseqs.html#h2-Mouse-Tracking
const (
	ModeMouseX10          = 9
	ModeMouseVT200        = 1000
	ModeMouseHilite       = 1001
	ModeMouseButtonEvent  = 1002
	ModeMouseAnyEvent     = 1003
	ModeFocusEvents       = 1004
	ModeMouseUTF8         = 1005
	ModeMouseSGR          = 1006
	ModeAlternateScroll   = 1007
	ModeMouseURXVT        = 1015
	ModeMouseSGRPixel     = 1016
	ModeBracketedPaste    = 2004
	decPrivateModeSet     = 'h'
	decPrivateModeReset   = 'l'
	decPrivateModeMarker  = "?"
	decPrivateModeListSep = ";"
)

// DECSET returns the sequence setting all modes.
func DECSET(modes ...int) string { return decPrivateMode(decPrivateModeSet, modes) }

// DECRST returns the sequence resetting all modes.
func DECRST(modes ...int) string { return decPrivateMode(decPrivateModeReset, modes) }

func decPrivateMode(final byte, modes []int) string {
	if len(modes) == 0 {
		return ``
	}
	strs := make([]string, 0, len(modes))
	for _, m := range modes {
		strs = append(strs, strconv.Itoa(m))
	}
	return CSI + decPrivateModeMarker + strings.Join(strs, decPrivateModeListSep) + string(final)
}
