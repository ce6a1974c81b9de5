package report_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termcaps/caps"
	"github.com/srlehn/termcaps/internal/testutil"
	"github.com/srlehn/termcaps/mouse"
	"github.com/srlehn/termcaps/mux"
	"github.com/srlehn/termcaps/report"
	"github.com/srlehn/termcaps/size"
	"github.com/srlehn/termcaps/terminals"
)

func input() report.Input {
	env := testutil.Env(`TERM_PROGRAM`, `iTerm.app`, `TMUX`, `/tmp/tmux-501/default,1,0`)
	p := terminals.Detect(env)
	return report.Input{
		Program:      p,
		Family:       p.Family(),
		Muxers:       mux.Detect(env),
		Capabilities: caps.Resolve(p, env),
		Mouse:        mouse.Resolve(p),
		Size:         &size.Size{Width: 120, Height: 40},
	}
}

func TestReport(t *testing.T) {
	out := report.String(input())
	for _, re := range []string{
		`(?m)^program:\s+iterm2$`,
		`(?m)^family:\s+iterm2$`,
		`(?m)^muxers:\s+tmux$`,
		`(?m)^size:\s+120x40$`,
		`(?m)^  true_color:\s+true$`,
		`(?m)^  hyperlinks_osc8:\s+true$`,
		`(?m)^  needs_tmux_passthrough:\s+true$`,
		`(?m)^  screen_chunk_limit:\s+0$`,
		`(?m)^  width_method:\s+wcwidth$`,
		`(?m)^  button_event:\s+true$`,
		`(?m)^  sgr_pixel:\s+false$`,
		`(?m)^  max_x:\s+65535$`,
		`(?m)^  preferred:\s+sgr$`,
	} {
		assert.Regexp(t, regexp.MustCompile(re), out)
	}
}

func TestReportDeterministic(t *testing.T) {
	assert.Equal(t, report.String(input()), report.String(input()))
}

func TestReportListsEveryField(t *testing.T) {
	in := input()
	out := report.String(in)
	lines := strings.Count(out, "\n  ")
	assert.Equal(t, 28+19, lines)
}

func TestReportSizeUnavailable(t *testing.T) {
	in := input()
	in.Size = nil
	in.SizeErr = size.ErrNotATerminal
	in.Muxers = nil
	out := report.String(in)
	assert.Contains(t, out, `unavailable (not a terminal)`)
	assert.Regexp(t, `(?m)^muxers:\s+none$`, out)
}

func TestWriteNil(t *testing.T) {
	require.Error(t, report.Write(nil, input()))
}
