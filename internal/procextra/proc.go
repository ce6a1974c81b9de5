// Package procextra reads the environment of other processes.
package procextra

import (
	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/termcaps/internal/environ"
	"github.com/srlehn/termcaps/internal/errors"
)

// EnvOfPID snapshots the environment of process pid.
// Reading the environment of another user's process usually fails.
func EnvOfPID(pid int32) (environ.Env, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return environ.Env{}, errors.New(err)
	}
	env, err := EnvOfProc(proc)
	if err != nil {
		return environ.Env{}, err
	}
	return environ.FromList(env), nil
}

func EnvOfProc(proc *process.Process) ([]string, error) {
	if proc == nil {
		return nil, errors.New(`nil process`)
	}
	env, err := proc.Environ()
	if err == nil {
		return env, nil
	}
	// github.com/shirou/gopsutil/internal/common.ErrNotImplementedError
	if err.Error() != `not implemented yet` {
		return nil, errors.New(err)
	}
	return envOfProcPlatform(proc)
}

// ParentOfProc returns the parent process, e.g. the shell of a command.
func ParentOfProc(proc *process.Process) (*process.Process, error) {
	if proc == nil {
		return nil, errors.New(`nil process`)
	}
	pproc, err := proc.Parent()
	if err != nil {
		return nil, errors.New(err)
	}
	if pproc == nil {
		return nil, errors.New(`received nil parent process`)
	}
	return pproc, nil
}
