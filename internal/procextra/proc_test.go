package procextra

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePSEnv(t *testing.T) {
	const cmd = `/bin/zsh -l`
	got := parsePSEnv(cmd+" TERM_PROGRAM=iTerm.app TERM=xterm-256color PS1=a b c LANG=en_US.UTF-8\n", cmd+"\n")
	assert.Equal(t, []string{
		`TERM_PROGRAM=iTerm.app`,
		`TERM=xterm-256color`,
		`PS1=a b c`,
		`LANG=en_US.UTF-8`,
	}, got)
	assert.Empty(t, parsePSEnv(cmd, cmd))
}

func TestEnvOfPIDSelf(t *testing.T) {
	if runtime.GOOS != `linux` {
		t.Skip(`reads /proc`)
	}
	env, err := EnvOfPID(int32(os.Getpid()))
	require.NoError(t, err)
	// /proc/<pid>/environ holds the environment at exec time
	if v, ok := os.LookupEnv(`PATH`); ok && len(v) > 0 {
		assert.Equal(t, v, env.Getenv(`PATH`))
	}
}
