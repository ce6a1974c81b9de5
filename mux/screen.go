package mux

import (
	"strings"

	"github.com/srlehn/termcaps/internal/queries"
)

// ScreenChunkLimit is the DCS string length forwarded by GNU screen since v4.2.1.
//
//	(v4.2.1) Apr 2014 - today: 768 bytes
//	Aug 2008 - Apr 2014 (v4.2.0): 512 bytes
//	??? - Aug 2008 (v4.0.3): 256 bytes
//
// https://github.com/chromium/hterm/blob/6846a85/etc/osc52.sh#L23
const ScreenChunkLimit = 768

// WrapScreen splits s into DCS strings of at most limit bytes each.
// A limit of 0 or less produces a single DCS string.
//
// An ST contained in s would end the DCS string early. It is split so that the
// ESC closes one chunk and the backslash opens the next, screen passes both on
// and the outer terminal sees the ST again.
func WrapScreen(s string, limit int) string {
	payload := limit - len(queries.DCS) - len(queries.ST)
	if limit <= 0 || payload < 1 {
		payload = len(s) + 1
	}
	parts := strings.Split(s, queries.ST)
	b := &strings.Builder{}
	b.Grow(len(s) + (len(parts)+len(s)/payload+1)*len(queries.DCS+queries.ST))
	for i, part := range parts {
		if i > 0 {
			part = `\` + part
		}
		if i < len(parts)-1 {
			part += queries.ESC
		}
		if len(part) == 0 {
			continue
		}
		for len(part) > 0 {
			n := min(payload, len(part))
			b.WriteString(queries.DCS)
			b.WriteString(part[:n])
			b.WriteString(queries.ST)
			part = part[n:]
		}
	}
	return b.String()
}
