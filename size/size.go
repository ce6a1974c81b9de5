// Package size queries the current dimensions of a terminal in character cells.
package size

import (
	"errors"
	"os"
	"strconv"
)

var (
	// ErrNotATerminal is returned when the file is not an interactive terminal.
	ErrNotATerminal = errors.New(`not a terminal`)
	// ErrQueryFailed is returned when the platform call fails or reports a zero dimension.
	ErrQueryFailed = errors.New(`terminal size query failed`)
)

// Size is the terminal size in cells. Both fields are at least 1.
type Size struct {
	Width  uint
	Height uint
}

func (s Size) String() string {
	return strconv.FormatUint(uint64(s.Width), 10) + `x` + strconv.FormatUint(uint64(s.Height), 10)
}

// Probe queries the size of the terminal attached to stdout.
// No default is substituted on failure.
func Probe() (Size, error) { return ProbeFile(os.Stdout) }

// ProbeFile queries the size of the terminal f refers to.
func ProbeFile(f *os.File) (Size, error) {
	if f == nil {
		return Size{}, newErr(ErrNotATerminal, nil)
	}
	return probe(f)
}

func fromDims(width, height int) (Size, error) {
	if width <= 0 || height <= 0 {
		return Size{}, newErr(ErrQueryFailed, errors.New(`zero sized terminal: `+strconv.Itoa(width)+`x`+strconv.Itoa(height)))
	}
	return Size{Width: uint(width), Height: uint(height)}, nil
}
