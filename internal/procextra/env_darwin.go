//go:build darwin

package procextra

import (
	"os/exec"
	"strconv"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/internal/exc"
)

func envOfProcPlatform(proc *process.Process) ([]string, error) {
	psAbs, err := exc.LookSystemDirs(`ps`)
	if err != nil {
		return nil, err
	}
	pidStr := strconv.Itoa(int(proc.Pid))
	withEnv, err := exec.Command(psAbs, `-Eww`, `-o`, `command=`, pidStr).Output()
	if err != nil {
		return nil, errors.New(err)
	}
	withoutEnv, err := exec.Command(psAbs, `-ww`, `-o`, `command=`, pidStr).Output()
	if err != nil {
		return nil, errors.New(err)
	}
	return parsePSEnv(string(withEnv), string(withoutEnv)), nil
}
