package mux

import (
	"strings"

	"github.com/srlehn/termcaps/internal/queries"
)

const tmuxPassthroughPrefix = queries.DCS + `tmux;`

// WrapTmux encloses s in a tmux DCS passthrough with every ESC doubled.
// tmux only forwards it with "set -g allow-passthrough on" (tmux >= 3.3).
func WrapTmux(s string) string {
	return tmuxPassthroughPrefix + strings.ReplaceAll(s, queries.ESC, queries.ESC+queries.ESC) + queries.ST
}
