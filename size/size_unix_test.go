//go:build unix

package size_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/srlehn/termcaps/size"
)

func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf(`no pty available: %v`, err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestProbePTY(t *testing.T) {
	ptmx, tty := openPTY(t)
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))
	sz, err := size.ProbeFile(tty)
	require.NoError(t, err)
	assert.Equal(t, size.Size{Width: 80, Height: 24}, sz)
	assert.Equal(t, `80x24`, sz.String())

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 50, Cols: 132}))
	sz, err = size.ProbeFile(tty)
	require.NoError(t, err)
	assert.Equal(t, size.Size{Width: 132, Height: 50}, sz)
}

func TestProbeZeroSize(t *testing.T) {
	ptmx, tty := openPTY(t)
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 0, Cols: 0}))
	_, err := size.ProbeFile(tty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, size.ErrQueryFailed))
	assert.False(t, errors.Is(err, size.ErrNotATerminal))
}

func TestProbeNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), `size`)
	require.NoError(t, err)
	defer f.Close()
	_, err = size.ProbeFile(f)
	assert.True(t, errors.Is(err, size.ErrNotATerminal))

	_, err = size.ProbeFile(nil)
	assert.True(t, errors.Is(err, size.ErrNotATerminal))
}

func TestWatch(t *testing.T) {
	resized, stop, err := size.Watch()
	require.NoError(t, err)
	defer stop()
	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGWINCH))
	select {
	case <-resized:
	case <-time.After(5 * time.Second):
		t.Fatal(`no resize notification`)
	}
	stop()
	stop()
	_, ok := <-resized
	assert.False(t, ok)
}
