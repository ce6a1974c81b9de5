package caps

import (
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/termcaps/internal/consts"
	"github.com/srlehn/termcaps/internal/errors"
)

// Profile is the fully resolved set of protocol features of a session.
// Every field holds a concrete value; a Profile returned by Resolve is never partial.
type Profile struct {
	TrueColor            bool `yaml:"true_color"`
	Hyperlinks           bool `yaml:"hyperlinks_osc8"`
	Clipboard            bool `yaml:"clipboard_osc52"`
	WorkingDirectory     bool `yaml:"working_directory_osc7"`
	Title                bool `yaml:"title_osc"`
	Notifications        bool `yaml:"notifications_osc9"`
	PromptMarking        bool `yaml:"prompt_marking_osc133"`
	ITerm2               bool `yaml:"iterm2_osc1337"`
	ColorQueries         bool `yaml:"color_queries"`
	KittyKeyboard        bool `yaml:"kitty_keyboard"`
	KittyGraphics        bool `yaml:"kitty_graphics"`
	Sixel                bool `yaml:"sixel"`
	ModifyOtherKeys      bool `yaml:"modify_other_keys"`
	XTWinOps             bool `yaml:"xtwinops"`
	BracketedPaste       bool `yaml:"bracketed_paste"`
	FocusEvents          bool `yaml:"focus_events"`
	SGRMouse             bool `yaml:"sgr_mouse"`
	SGRPixelMouse        bool `yaml:"sgr_pixel_mouse"`
	ThemeReport          bool `yaml:"theme_report"`
	LinuxPalette         bool `yaml:"linux_palette"`
	DeviceAttributes     bool `yaml:"device_attributes"`
	CursorStyle          bool `yaml:"cursor_style"`
	CursorPositionReport bool `yaml:"cursor_position_report"`
	PointerShape         bool `yaml:"pointer_shape"`

	NeedsTmuxPassthrough   bool `yaml:"needs_tmux_passthrough"`
	NeedsScreenPassthrough bool `yaml:"needs_screen_passthrough"`
	// ScreenChunkLimit is the longest DCS string GNU screen forwards unbroken.
	ScreenChunkLimit int         `yaml:"screen_chunk_limit"`
	WidthMethod      WidthMethod `yaml:"width_method"`
}

// WidthMethod selects how the cell width of text is measured.
type WidthMethod int

const (
	widthMethodInvalid WidthMethod = iota
	WidthWCWidth
	WidthGrapheme
)

func (m WidthMethod) String() string {
	switch m {
	case WidthWCWidth:
		return `wcwidth`
	case WidthGrapheme:
		return `grapheme`
	default:
		return `invalid`
	}
}

func (m WidthMethod) IsValid() bool { return m == WidthWCWidth || m == WidthGrapheme }

// StringWidth returns the number of cells s occupies under method m.
func (m WidthMethod) StringWidth(s string) int {
	if m == WidthGrapheme {
		return uniseg.StringWidth(s)
	}
	return runewidth.StringWidth(s)
}

func (m WidthMethod) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, errors.Errorf(`invalid width method %d`, int(m))
	}
	return []byte(m.String()), nil
}

func (m *WidthMethod) UnmarshalText(text []byte) error {
	if m == nil {
		return errors.New(consts.ErrNilParam)
	}
	switch string(text) {
	case `wcwidth`:
		*m = WidthWCWidth
	case `grapheme`:
		*m = WidthGrapheme
	default:
		return errors.Errorf(`unknown width method %q`, string(text))
	}
	return nil
}

var _ yaml.Unmarshaler = (*WidthMethod)(nil)

func (m *WidthMethod) UnmarshalYAML(value *yaml.Node) error {
	if value == nil || value.Kind != yaml.ScalarNode {
		return errors.New(`width method: expected a scalar`)
	}
	if err := m.UnmarshalText([]byte(value.Value)); err != nil {
		return errors.WrapPrefix(err, `line `+strconv.Itoa(value.Line), 0)
	}
	return nil
}

var _ yaml.Marshaler = WidthMethod(0)

func (m WidthMethod) MarshalYAML() (any, error) {
	b, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
