package terminals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/termcaps/terminals"
)

func TestFromSecondaryID(t *testing.T) {
	tests := map[int]terminals.Family{
		0:    terminals.FamilyXTerm,
		1:    terminals.FamilyVT100,
		65:   terminals.FamilyGnomeTerminal,
		41:   terminals.FamilyVT420,
		84:   terminals.FamilyTmux,
		83:   terminals.FamilyScreen,
		-1:   terminals.FamilyUnknown,
		4000: terminals.FamilyUnknown,
	}
	for id, want := range tests {
		assert.Equal(t, want, terminals.FromSecondaryID(id), `id %d`, id)
	}
	assert.Equal(t, `gnome_terminal`, terminals.FromSecondaryID(65).String())
}

func TestProgramFamily(t *testing.T) {
	assert.Equal(t, terminals.FamilyKitty, terminals.Kitty.Family())
	assert.Equal(t, terminals.FamilyTerminalApp, terminals.AppleTerminal.Family())
	assert.Equal(t, terminals.FamilyGnomeTerminal, terminals.VTE.Family())
	assert.Equal(t, terminals.FamilyXTerm, terminals.VSCode.Family())
	assert.Equal(t, terminals.FamilyUnknown, terminals.Unknown.Family())
	for _, p := range terminals.Programs() {
		if p == terminals.Unknown {
			continue
		}
		assert.NotEqual(t, terminals.FamilyUnknown, p.Family(), p.String())
	}
}
