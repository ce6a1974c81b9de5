// Package mouse derives which mouse reporting protocols a terminal program
// understands and which single one to request.
package mouse

import (
	"github.com/srlehn/termcaps/terminals"
)

// coordinate bounds
const (
	MaxLegacyCoordinate  = 223   // 255 - 32, one byte per coordinate
	MaxDecimalCoordinate = 65535 // decimal ASCII encodings
)

// Protocol is a mouse wire protocol. Only one can be active at a time.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolX10
	ProtocolNormal
	ProtocolUTF8
	ProtocolURXVT
	ProtocolSGR
	ProtocolSGRPixel
	ProtocolKitty
)

func (p Protocol) String() string {
	switch p {
	case ProtocolNone:
		return `none`
	case ProtocolX10:
		return `x10`
	case ProtocolNormal:
		return `normal`
	case ProtocolUTF8:
		return `utf8`
	case ProtocolURXVT:
		return `urxvt`
	case ProtocolSGR:
		return `sgr`
	case ProtocolSGRPixel:
		return `sgr_pixel`
	case ProtocolKitty:
		return `kitty`
	default:
		return `invalid`
	}
}

func (p Protocol) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Profile lists the mouse protocols of a terminal program.
type Profile struct {
	X10         bool
	VT200       bool
	ButtonEvent bool
	AnyEvent    bool
	SGR         bool
	SGRPixel    bool
	URXVT       bool
	UTF8        bool
	Kitty       bool

	// branded variants, diagnostics only
	ITerm2    bool
	WezTerm   bool
	Ghostty   bool
	Alacritty bool

	FocusEvents     bool
	AlternateScroll bool
	BracketedPaste  bool

	MaxX uint
	MaxY uint

	// Preferred is derived from the flags above by Preferred.
	Preferred Protocol
}

// Preferred picks the protocol to request by fixed priority:
// kitty, sgr_pixel, sgr, urxvt, utf8, normal (any-event, button-event or vt200), x10.
func Preferred(p Profile) Protocol {
	switch {
	case p.Kitty:
		return ProtocolKitty
	case p.SGRPixel:
		return ProtocolSGRPixel
	case p.SGR:
		return ProtocolSGR
	case p.URXVT:
		return ProtocolURXVT
	case p.UTF8:
		return ProtocolUTF8
	case p.AnyEvent, p.ButtonEvent, p.VT200:
		return ProtocolNormal
	case p.X10:
		return ProtocolX10
	default:
		return ProtocolNone
	}
}

// Resolve returns the mouse profile of program prog.
func Resolve(prog terminals.Program) Profile {
	p := table(prog)
	p.Preferred = Preferred(p)
	return p
}

// modern is the common base of terminals with decimal encodings.
func modern() Profile {
	return Profile{
		X10:             true,
		VT200:           true,
		ButtonEvent:     true,
		AnyEvent:        true,
		SGR:             true,
		FocusEvents:     true,
		AlternateScroll: true,
		BracketedPaste:  true,
		MaxX:            MaxDecimalCoordinate,
		MaxY:            MaxDecimalCoordinate,
	}
}

func legacy() Profile {
	return Profile{
		X10:   true,
		VT200: true,
		MaxX:  MaxLegacyCoordinate,
		MaxY:  MaxLegacyCoordinate,
	}
}

func table(prog terminals.Program) Profile {
	var p Profile
	switch prog {
	case terminals.Kitty:
		p = modern()
		p.SGRPixel = true
		p.Kitty = true
	case terminals.WezTerm:
		p = modern()
		p.SGRPixel = true
		p.WezTerm = true
	case terminals.Ghostty:
		p = modern()
		p.SGRPixel = true
		p.Ghostty = true
	case terminals.ITerm2:
		p = modern()
		p.UTF8 = true
		p.ITerm2 = true
	case terminals.Alacritty:
		p = modern()
		p.UTF8 = true
		p.Alacritty = true
	case terminals.XTerm:
		p = modern()
		p.SGRPixel = true
		p.URXVT = true
		p.UTF8 = true
	case terminals.VTE, terminals.Konsole:
		p = modern()
		p.URXVT = true
		p.UTF8 = true
	case terminals.AppleTerminal:
		p = modern()
		p.UTF8 = true
		p.AlternateScroll = false
	case terminals.VSCode, terminals.WindowsTerminal:
		p = modern()
	default:
		// linux console and unknown programs
		p = legacy()
	}
	return p
}
