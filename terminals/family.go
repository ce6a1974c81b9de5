package terminals

// Family is the protocol lineage a terminal follows.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyVT100
	FamilyVT220
	FamilyVT240
	FamilyVT320
	FamilyVT340
	FamilyVT420
	FamilyVT510
	FamilyVT520
	FamilyXTerm
	FamilyGnomeTerminal
	FamilyKonsole
	FamilyTerminalApp
	FamilyITerm2
	FamilyWezTerm
	FamilyAlacritty
	FamilyKitty
	FamilyGhostty
	FamilyRxvt
	FamilyTmux
	FamilyScreen
	familyCount
)

var familyNames = [familyCount]string{
	FamilyUnknown:       `unknown`,
	FamilyVT100:         `vt100`,
	FamilyVT220:         `vt220`,
	FamilyVT240:         `vt240`,
	FamilyVT320:         `vt320`,
	FamilyVT340:         `vt340`,
	FamilyVT420:         `vt420`,
	FamilyVT510:         `vt510`,
	FamilyVT520:         `vt520`,
	FamilyXTerm:         `xterm`,
	FamilyGnomeTerminal: `gnome_terminal`,
	FamilyKonsole:       `konsole`,
	FamilyTerminalApp:   `terminal_app`,
	FamilyITerm2:        `iterm2`,
	FamilyWezTerm:       `wezterm`,
	FamilyAlacritty:     `alacritty`,
	FamilyKitty:         `kitty`,
	FamilyGhostty:       `ghostty`,
	FamilyRxvt:          `rxvt`,
	FamilyTmux:          `tmux`,
	FamilyScreen:        `screen`,
}

func (f Family) String() string {
	if f < FamilyUnknown || f >= familyCount {
		return familyNames[FamilyUnknown]
	}
	return familyNames[f]
}

// secondary device attribute (DA2) terminal type ids: CSI > Pp ; Pv ; Pc c
var secondaryIDs = map[int]Family{
	0:  FamilyXTerm,
	1:  FamilyVT100,
	2:  FamilyVT240,
	19: FamilyVT340,
	24: FamilyVT320,
	41: FamilyVT420,
	61: FamilyVT510,
	64: FamilyVT520,
	65: FamilyGnomeTerminal,
	82: FamilyRxvt,   // 'R'
	83: FamilyScreen, // 'S'
	84: FamilyTmux,   // 'T'
	85: FamilyRxvt,   // 'U', urxvt
}

// FromSecondaryID maps a DA2 terminal type id to its Family.
// Unmapped ids yield FamilyUnknown.
func FromSecondaryID(id int) Family {
	if f, ok := secondaryIDs[id]; ok {
		return f
	}
	return FamilyUnknown
}

// Family returns the protocol lineage of p.
func (p Program) Family() Family {
	switch p {
	case Kitty:
		return FamilyKitty
	case WezTerm:
		return FamilyWezTerm
	case ITerm2:
		return FamilyITerm2
	case AppleTerminal:
		return FamilyTerminalApp
	case VTE:
		return FamilyGnomeTerminal
	case Alacritty:
		return FamilyAlacritty
	case Ghostty:
		return FamilyGhostty
	case Konsole:
		return FamilyKonsole
	case XTerm, VSCode, WindowsTerminal:
		return FamilyXTerm
	case LinuxConsole:
		return FamilyVT100
	default:
		return FamilyUnknown
	}
}
