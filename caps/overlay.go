package caps

// Overlay is a sparse Profile: nil fields are absent and leave the
// underlying value untouched when applied.
type Overlay struct {
	TrueColor            *bool `yaml:"true_color,omitempty"`
	Hyperlinks           *bool `yaml:"hyperlinks_osc8,omitempty"`
	Clipboard            *bool `yaml:"clipboard_osc52,omitempty"`
	WorkingDirectory     *bool `yaml:"working_directory_osc7,omitempty"`
	Title                *bool `yaml:"title_osc,omitempty"`
	Notifications        *bool `yaml:"notifications_osc9,omitempty"`
	PromptMarking        *bool `yaml:"prompt_marking_osc133,omitempty"`
	ITerm2               *bool `yaml:"iterm2_osc1337,omitempty"`
	ColorQueries         *bool `yaml:"color_queries,omitempty"`
	KittyKeyboard        *bool `yaml:"kitty_keyboard,omitempty"`
	KittyGraphics        *bool `yaml:"kitty_graphics,omitempty"`
	Sixel                *bool `yaml:"sixel,omitempty"`
	ModifyOtherKeys      *bool `yaml:"modify_other_keys,omitempty"`
	XTWinOps             *bool `yaml:"xtwinops,omitempty"`
	BracketedPaste       *bool `yaml:"bracketed_paste,omitempty"`
	FocusEvents          *bool `yaml:"focus_events,omitempty"`
	SGRMouse             *bool `yaml:"sgr_mouse,omitempty"`
	SGRPixelMouse        *bool `yaml:"sgr_pixel_mouse,omitempty"`
	ThemeReport          *bool `yaml:"theme_report,omitempty"`
	LinuxPalette         *bool `yaml:"linux_palette,omitempty"`
	DeviceAttributes     *bool `yaml:"device_attributes,omitempty"`
	CursorStyle          *bool `yaml:"cursor_style,omitempty"`
	CursorPositionReport *bool `yaml:"cursor_position_report,omitempty"`
	PointerShape         *bool `yaml:"pointer_shape,omitempty"`

	NeedsTmuxPassthrough   *bool        `yaml:"needs_tmux_passthrough,omitempty"`
	NeedsScreenPassthrough *bool        `yaml:"needs_screen_passthrough,omitempty"`
	ScreenChunkLimit       *int         `yaml:"screen_chunk_limit,omitempty"`
	WidthMethod            *WidthMethod `yaml:"width_method,omitempty"`
}

// Apply copies the fields present in o onto p.
func (o *Overlay) Apply(p *Profile) {
	if o == nil || p == nil {
		return
	}
	setIf(&p.TrueColor, o.TrueColor)
	setIf(&p.Hyperlinks, o.Hyperlinks)
	setIf(&p.Clipboard, o.Clipboard)
	setIf(&p.WorkingDirectory, o.WorkingDirectory)
	setIf(&p.Title, o.Title)
	setIf(&p.Notifications, o.Notifications)
	setIf(&p.PromptMarking, o.PromptMarking)
	setIf(&p.ITerm2, o.ITerm2)
	setIf(&p.ColorQueries, o.ColorQueries)
	setIf(&p.KittyKeyboard, o.KittyKeyboard)
	setIf(&p.KittyGraphics, o.KittyGraphics)
	setIf(&p.Sixel, o.Sixel)
	setIf(&p.ModifyOtherKeys, o.ModifyOtherKeys)
	setIf(&p.XTWinOps, o.XTWinOps)
	setIf(&p.BracketedPaste, o.BracketedPaste)
	setIf(&p.FocusEvents, o.FocusEvents)
	setIf(&p.SGRMouse, o.SGRMouse)
	setIf(&p.SGRPixelMouse, o.SGRPixelMouse)
	setIf(&p.ThemeReport, o.ThemeReport)
	setIf(&p.LinuxPalette, o.LinuxPalette)
	setIf(&p.DeviceAttributes, o.DeviceAttributes)
	setIf(&p.CursorStyle, o.CursorStyle)
	setIf(&p.CursorPositionReport, o.CursorPositionReport)
	setIf(&p.PointerShape, o.PointerShape)
	setIf(&p.NeedsTmuxPassthrough, o.NeedsTmuxPassthrough)
	setIf(&p.NeedsScreenPassthrough, o.NeedsScreenPassthrough)
	setIf(&p.ScreenChunkLimit, o.ScreenChunkLimit)
	setIf(&p.WidthMethod, o.WidthMethod)
}

// IsEmpty reports whether o has no field present.
func (o *Overlay) IsEmpty() bool { return o == nil || *o == (Overlay{}) }

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Bool returns a pointer to v for building overlays in code.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Width returns a pointer to m.
func Width(m WidthMethod) *WidthMethod { return &m }
