//go:build windows

package size

import (
	"os"

	"golang.org/x/sys/windows"
)

func probe(f *os.File) (Size, error) {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return Size{}, newErr(ErrNotATerminal, err)
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return Size{}, newErr(ErrQueryFailed, err)
	}
	// the visible window, not the scrollback buffer
	w := int(info.Window.Right) - int(info.Window.Left) + 1
	hgt := int(info.Window.Bottom) - int(info.Window.Top) + 1
	return fromDims(w, hgt)
}
