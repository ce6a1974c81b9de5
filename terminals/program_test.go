package terminals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termcaps/terminals"
)

func TestProgramsRoundTrip(t *testing.T) {
	progs := terminals.Programs()
	require.Len(t, progs, 13)
	assert.Equal(t, terminals.Unknown, progs[0])
	seen := map[string]bool{}
	for _, p := range progs {
		name := p.String()
		assert.False(t, seen[name], `duplicate name %q`, name)
		seen[name] = true
		parsed, ok := terminals.ParseProgram(name)
		assert.True(t, ok)
		assert.Equal(t, p, parsed)
	}
}

func TestParseProgram(t *testing.T) {
	p, ok := terminals.ParseProgram(` ITerm2 `)
	assert.True(t, ok)
	assert.Equal(t, terminals.ITerm2, p)

	p, ok = terminals.ParseProgram(`hyper`)
	assert.False(t, ok)
	assert.Equal(t, terminals.Unknown, p)
}

func TestProgramText(t *testing.T) {
	var p terminals.Program
	assert.NoError(t, p.UnmarshalText([]byte(`windows_terminal`)))
	assert.Equal(t, terminals.WindowsTerminal, p)
	assert.Error(t, p.UnmarshalText([]byte(`nope`)))
	assert.Equal(t, terminals.WindowsTerminal, p)

	b, err := terminals.Ghostty.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, `ghostty`, string(b))
	assert.Equal(t, `unknown`, terminals.Program(99).String())
}
