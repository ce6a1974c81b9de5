//go:build !unix && !windows

package size

import (
	"os"

	"github.com/srlehn/termcaps/internal/consts"
)

func probe(f *os.File) (Size, error) {
	return Size{}, newErr(ErrQueryFailed, consts.ErrPlatformNotSupported)
}
