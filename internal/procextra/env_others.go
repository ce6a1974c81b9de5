//go:build !darwin

package procextra

import (
	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/termcaps/internal/errors"
)

func envOfProcPlatform(proc *process.Process) ([]string, error) {
	return nil, errors.New(errors.ErrUnsupported)
}
