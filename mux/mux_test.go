package mux_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termcaps/internal/testutil"
	"github.com/srlehn/termcaps/mux"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		kv     []string
		want   string
		tmux   bool
		screen bool
	}{
		{`none`, nil, ``, false, false},
		{`tmux`, []string{`TMUX`, `/tmp/tmux-1000/default,4321,0`}, `tmux`, true, false},
		{`screen sty`, []string{`STY`, `4321.pts-0.host`}, `screen`, false, true},
		{`screen var`, []string{`SCREEN`, `1`}, `screen`, false, true},
		{`both`, []string{`STY`, `1.x`, `TMUX`, `/tmp/t,1,0`}, `tmux>screen`, true, true},
		{`empty values`, []string{`TMUX`, ``, `STY`, ``}, ``, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mux.Detect(testutil.Env(tt.kv...))
			assert.Equal(t, tt.want, m.String())
			assert.Equal(t, tt.tmux, m.Has(mux.KindTmux))
			assert.Equal(t, tt.screen, m.Has(mux.KindScreen))
		})
	}
	assert.Empty(t, mux.Detect(nil))
}

func TestMuxerSession(t *testing.T) {
	m := mux.Detect(testutil.Env(`TMUX`, `/tmp/tmux-1000/default,4321,0`))
	require.Len(t, m, 1)
	assert.Equal(t, `/tmp/tmux-1000/default,4321,0`, m[0].Session())
	var nilMuxer *mux.Muxer
	assert.Empty(t, nilMuxer.Session())
	assert.Equal(t, `x`, nilMuxer.Wrap(`x`, 0))
}

func TestWrapTmux(t *testing.T) {
	osc8 := "\033]8;;https://example.com\033\\link\033]8;;\033\\"
	got := mux.WrapTmux(osc8)
	assert.Equal(t, "\033Ptmux;\033\033]8;;https://example.com\033\033\\link\033\033]8;;\033\033\\\033\\", got)
}

// unwrapScreen mimics screen: DCS strings are stripped, their contents forwarded.
func unwrapScreen(t *testing.T, s string, limit int) string {
	t.Helper()
	b := &strings.Builder{}
	for len(s) > 0 {
		require.True(t, strings.HasPrefix(s, "\033P"), `chunk must start with DCS: %q`, s)
		end := strings.Index(s, "\033\\")
		require.GreaterOrEqual(t, end, 0)
		chunk := s[:end+2]
		if limit > 0 {
			assert.LessOrEqual(t, len(chunk), limit)
		}
		b.WriteString(s[2:end])
		s = s[end+2:]
	}
	return b.String()
}

func TestWrapScreen(t *testing.T) {
	inner := "\033]52;c;" + strings.Repeat(`QUJD`, 500) + "\033\\"
	for _, limit := range []int{0, 64, 256, mux.ScreenChunkLimit} {
		wrapped := mux.WrapScreen(inner, limit)
		assert.Equal(t, inner, unwrapScreen(t, wrapped, limit), `limit %d`, limit)
	}
	assert.Equal(t, "\033Pabc\033\\", mux.WrapScreen(`abc`, 0))
}

func TestMuxersWrapOrder(t *testing.T) {
	m := mux.Detect(testutil.Env(`TMUX`, `/t,1,0`, `STY`, `1.x`))
	got := m.Wrap(`x`, 0)
	assert.Equal(t, mux.WrapTmux(mux.WrapScreen(`x`, 0)), got)
}
