//go:build unix

package exc_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/termcaps/internal/exc"
)

func TestLookSystemDirs(t *testing.T) {
	_, err := exc.LookSystemDirs(``)
	assert.Error(t, err)

	p, err := exc.LookSystemDirs(`sh`)
	if os.Getuid() == 0 {
		assert.EqualError(t, err, exc.ErrRootExecStr)
		return
	}
	if err != nil {
		t.Skipf(`no sh in system directories: %v`, err)
	}
	assert.Contains(t, []string{`/usr/bin/sh`, `/bin/sh`}, p)

	_, err = exc.LookSystemDirs(`surely-not-an-installed-executable`)
	assert.Error(t, err)
}
