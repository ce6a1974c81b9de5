// <Copyright> 2019 Simon Robin Lehn. All rights reserved.
// Use of this source code is governed by a MIT license that can
// be found in the LICENSE file.

package mux

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/termcaps/internal/environ"
	"github.com/srlehn/termcaps/internal/envkeys"
)

// Kind is a terminal multiplexer sitting between the program and the real terminal.
type Kind int

const (
	KindTmux Kind = iota + 1
	KindScreen
)

func (k Kind) String() string {
	switch k {
	case KindTmux:
		return `tmux`
	case KindScreen:
		return `screen`
	default:
		return ``
	}
}

// Kinds lists the known multiplexers in the order their overlays are applied.
func Kinds() []Kind { return []Kind{KindTmux, KindScreen} }

type Muxer struct {
	kind    Kind
	session string // value of the announcing variable
}

func (m *Muxer) Kind() Kind {
	if m == nil {
		return 0
	}
	return m.kind
}

func (m *Muxer) Name() string { return m.Kind().String() }

// Session returns the raw value of the variable that announced the multiplexer,
// e.g. "/tmp/tmux-1000/default,4321,0" for tmux or "4321.pts-0.host" for screen.
func (m *Muxer) Session() string {
	if m == nil {
		return ``
	}
	return m.session
}

// Wrap encloses s for passthrough to the terminal outside of the multiplexer.
// screenLimit is the maximum length of a single screen DCS string, 0 for no limit.
func (m *Muxer) Wrap(s string, screenLimit int) string {
	switch m.Kind() {
	case KindTmux:
		return WrapTmux(s)
	case KindScreen:
		return WrapScreen(s, screenLimit)
	default:
		return s
	}
}

type Muxers []*Muxer

// Detect lists the multiplexers announced by env, tmux before screen.
func Detect(env termenv.Environ) Muxers {
	e := environ.Of(env)
	var m Muxers
	if v, ok := e.LookupEnv(envkeys.Tmux); ok {
		m = append(m, &Muxer{kind: KindTmux, session: v})
	}
	if v, ok := e.LookupEnv(envkeys.STY); ok {
		m = append(m, &Muxer{kind: KindScreen, session: v})
	} else if v, ok := e.LookupEnv(envkeys.Screen); ok {
		m = append(m, &Muxer{kind: KindScreen, session: v})
	}
	return m
}

func (m Muxers) Has(k Kind) bool {
	for _, muxer := range m {
		if muxer.Kind() == k {
			return true
		}
	}
	return false
}

// Wrap applies the passthrough of every multiplexer, the last one innermost.
func (m Muxers) Wrap(s string, screenLimit int) string {
	for i := len(m) - 1; i >= 0; i-- {
		s = m[i].Wrap(s, screenLimit)
	}
	return s
}

func (m Muxers) String() string {
	b := &strings.Builder{}
	for _, muxer := range m {
		if muxer == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(`>`)
		}
		b.WriteString(muxer.Name())
	}
	return b.String()
}
