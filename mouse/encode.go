package mouse

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/termcaps/internal/errors"
	"github.com/srlehn/termcaps/internal/queries"
)

// EnableSequence returns the private mode sets for the preferred protocol of p
// and for bracketed paste if p supports it. It is empty for ProtocolNone.
func EnableSequence(p Profile) string {
	b := &strings.Builder{}
	switch p.Preferred {
	case ProtocolNone:
	case ProtocolX10:
		b.WriteString(termenv.CSI + termenv.EnableMousePressSeq)
	default:
		b.WriteString(termenv.CSI + trackingSeq(p))
		switch p.Preferred {
		case ProtocolUTF8:
			b.WriteString(queries.DECSET(queries.ModeMouseUTF8))
		case ProtocolURXVT:
			b.WriteString(queries.DECSET(queries.ModeMouseURXVT))
		case ProtocolSGR:
			b.WriteString(termenv.CSI + termenv.EnableMouseExtendedModeSeq)
		case ProtocolSGRPixel:
			b.WriteString(termenv.CSI + termenv.EnableMousePixelsModeSeq)
		case ProtocolKitty:
			// kitty reports through the SGR encoding, with pixel precision if enabled
			b.WriteString(termenv.CSI + termenv.EnableMouseExtendedModeSeq)
		}
	}
	if p.BracketedPaste {
		b.WriteString(termenv.CSI + termenv.EnableBracketedPasteSeq)
	}
	return b.String()
}

func trackingSeq(p Profile) string {
	switch {
	case p.AnyEvent:
		return termenv.EnableMouseAllMotionSeq
	case p.ButtonEvent:
		return termenv.EnableMouseCellMotionSeq
	default:
		return termenv.EnableMouseSeq
	}
}

// disableSequence resets every mouse mode and bracketed paste.
var disableSequence = termenv.CSI + termenv.DisableMousePressSeq +
	termenv.CSI + termenv.DisableMouseSeq +
	termenv.CSI + termenv.DisableMouseHiliteSeq +
	termenv.CSI + termenv.DisableMouseCellMotionSeq +
	termenv.CSI + termenv.DisableMouseAllMotionSeq +
	queries.DECRST(queries.ModeMouseUTF8) +
	termenv.CSI + termenv.DisableMouseExtendedModeSeq +
	queries.DECRST(queries.ModeMouseURXVT) +
	termenv.CSI + termenv.DisableMousePixelsModeSeq +
	termenv.CSI + termenv.DisableBracketedPasteSeq

// DisableSequence returns the resets of all mouse modes and bracketed paste,
// independent of what was enabled before.
func DisableSequence() string { return disableSequence }

// Enable writes EnableSequence(p) to w.
func Enable(w io.Writer, p Profile) error {
	if w == nil {
		return errors.NilParam(w)
	}
	seq := EnableSequence(p)
	if len(seq) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, seq); err != nil {
		return errors.New(err)
	}
	return nil
}

// Disable writes DisableSequence to w.
func Disable(w io.Writer) error {
	if w == nil {
		return errors.NilParam(w)
	}
	if _, err := io.WriteString(w, disableSequence); err != nil {
		return errors.New(err)
	}
	return nil
}
