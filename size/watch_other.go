//go:build !unix

package size

import (
	"github.com/srlehn/termcaps/internal/consts"
	"github.com/srlehn/termcaps/internal/errors"
)

// Watch is only available on unix.
func Watch() (_ <-chan struct{}, stop func(), _ error) {
	return nil, func() {}, errors.New(consts.ErrPlatformNotSupported)
}
