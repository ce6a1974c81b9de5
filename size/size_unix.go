//go:build unix

package size

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"

	"github.com/srlehn/termcaps/internal/errors"
)

func probe(f *os.File) (Size, error) {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) {
		return Size{}, newErr(ErrNotATerminal, nil)
	}
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		if errors.Is(err, unix.ENOTTY) {
			return Size{}, newErr(ErrNotATerminal, err)
		}
		return Size{}, newErr(ErrQueryFailed, err)
	}
	return fromDims(int(ws.Col), int(ws.Row))
}
