package caps

// Encoders ask these predicates before emitting a sequence family.
// All of them accept a nil profile and report false then.

func CanUseTrueColor(p *Profile) bool           { return p != nil && p.TrueColor }
func CanUseHyperlinks(p *Profile) bool          { return p != nil && p.Hyperlinks }
func CanUseClipboardOSC52(p *Profile) bool      { return p != nil && p.Clipboard }
func CanReportWorkingDirectory(p *Profile) bool { return p != nil && p.WorkingDirectory }
func CanSetTitle(p *Profile) bool               { return p != nil && p.Title }
func CanNotify(p *Profile) bool                 { return p != nil && p.Notifications }
func CanMarkPrompts(p *Profile) bool            { return p != nil && p.PromptMarking }
func CanUseITerm2(p *Profile) bool              { return p != nil && p.ITerm2 }
func CanQueryColors(p *Profile) bool            { return p != nil && p.ColorQueries }
func CanUseKittyKeyboard(p *Profile) bool       { return p != nil && p.KittyKeyboard }
func CanUseKittyGraphics(p *Profile) bool       { return p != nil && p.KittyGraphics }
func CanUseSixel(p *Profile) bool               { return p != nil && p.Sixel }
func CanModifyOtherKeys(p *Profile) bool        { return p != nil && p.ModifyOtherKeys }
func CanUseXTWinOps(p *Profile) bool            { return p != nil && p.XTWinOps }
func CanUseBracketedPaste(p *Profile) bool      { return p != nil && p.BracketedPaste }
func CanReportFocus(p *Profile) bool            { return p != nil && p.FocusEvents }
func CanUseSGRMouse(p *Profile) bool            { return p != nil && p.SGRMouse }
func CanUseSGRPixelMouse(p *Profile) bool       { return p != nil && p.SGRPixelMouse }
func CanReportTheme(p *Profile) bool            { return p != nil && p.ThemeReport }
func CanSetLinuxPalette(p *Profile) bool        { return p != nil && p.LinuxPalette }
func CanQueryDeviceAttributes(p *Profile) bool  { return p != nil && p.DeviceAttributes }
func CanSetCursorStyle(p *Profile) bool         { return p != nil && p.CursorStyle }
func CanUseCursorPositionReport(p *Profile) bool {
	return p != nil && p.CursorPositionReport
}
func CanSetPointerShape(p *Profile) bool { return p != nil && p.PointerShape }

func NeedsTmuxWrap(p *Profile) bool   { return p != nil && p.NeedsTmuxPassthrough }
func NeedsScreenWrap(p *Profile) bool { return p != nil && p.NeedsScreenPassthrough }

// ScreenChunkLimit returns the chunk size for screen passthrough, 0 for unlimited.
func ScreenChunkLimit(p *Profile) int {
	if p == nil {
		return 0
	}
	return p.ScreenChunkLimit
}

func UsesGraphemeWidth(p *Profile) bool { return p != nil && p.WidthMethod == WidthGrapheme }
