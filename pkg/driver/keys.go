package driver

// Key codes reported in RawEvent.Key. Codes below 0x80 coincide with the
// ASCII control characters they are produced by; codes counting down from
// 0xFFFF are function and navigation keys. Several Ctrl combinations share a
// code because the terminal cannot distinguish them.
const (
	KeyCtrlTilde      uint16 = 0x00
	KeyCtrl2          uint16 = 0x00
	KeyCtrlA          uint16 = 0x01
	KeyCtrlB          uint16 = 0x02
	KeyCtrlC          uint16 = 0x03
	KeyCtrlD          uint16 = 0x04
	KeyCtrlE          uint16 = 0x05
	KeyCtrlF          uint16 = 0x06
	KeyCtrlG          uint16 = 0x07
	KeyBackspace      uint16 = 0x08
	KeyCtrlH          uint16 = 0x08
	KeyTab            uint16 = 0x09
	KeyCtrlI          uint16 = 0x09
	KeyCtrlJ          uint16 = 0x0a
	KeyCtrlK          uint16 = 0x0b
	KeyCtrlL          uint16 = 0x0c
	KeyEnter          uint16 = 0x0d
	KeyCtrlM          uint16 = 0x0d
	KeyCtrlN          uint16 = 0x0e
	KeyCtrlO          uint16 = 0x0f
	KeyCtrlP          uint16 = 0x10
	KeyCtrlQ          uint16 = 0x11
	KeyCtrlR          uint16 = 0x12
	KeyCtrlS          uint16 = 0x13
	KeyCtrlT          uint16 = 0x14
	KeyCtrlU          uint16 = 0x15
	KeyCtrlV          uint16 = 0x16
	KeyCtrlW          uint16 = 0x17
	KeyCtrlX          uint16 = 0x18
	KeyCtrlY          uint16 = 0x19
	KeyCtrlZ          uint16 = 0x1a
	KeyEsc            uint16 = 0x1b
	KeyCtrlLsqBracket uint16 = 0x1b
	KeyCtrl3          uint16 = 0x1b
	KeyCtrl4          uint16 = 0x1c
	KeyCtrlBackslash  uint16 = 0x1c
	KeyCtrl5          uint16 = 0x1d
	KeyCtrlRsqBracket uint16 = 0x1d
	KeyCtrl6          uint16 = 0x1e
	KeyCtrl7          uint16 = 0x1f
	KeyCtrlSlash      uint16 = 0x1f
	KeyCtrlUnderscore uint16 = 0x1f
	KeySpace          uint16 = 0x20
	KeyBackspace2     uint16 = 0x7f
	KeyCtrl8          uint16 = 0x7f

	KeyF1         uint16 = 0xffff - 0
	KeyF2         uint16 = 0xffff - 1
	KeyF3         uint16 = 0xffff - 2
	KeyF4         uint16 = 0xffff - 3
	KeyF5         uint16 = 0xffff - 4
	KeyF6         uint16 = 0xffff - 5
	KeyF7         uint16 = 0xffff - 6
	KeyF8         uint16 = 0xffff - 7
	KeyF9         uint16 = 0xffff - 8
	KeyF10        uint16 = 0xffff - 9
	KeyF11        uint16 = 0xffff - 10
	KeyF12        uint16 = 0xffff - 11
	KeyInsert     uint16 = 0xffff - 12
	KeyDelete     uint16 = 0xffff - 13
	KeyHome       uint16 = 0xffff - 14
	KeyEnd        uint16 = 0xffff - 15
	KeyPgUp       uint16 = 0xffff - 16
	KeyPgDn       uint16 = 0xffff - 17
	KeyArrowUp    uint16 = 0xffff - 18
	KeyArrowDown  uint16 = 0xffff - 19
	KeyArrowLeft  uint16 = 0xffff - 20
	KeyArrowRight uint16 = 0xffff - 21

	// Mouse buttons are reported as key codes inside mouse events.
	KeyMouseLeft      uint16 = 0xffff - 22
	KeyMouseRight     uint16 = 0xffff - 23
	KeyMouseMiddle    uint16 = 0xffff - 24
	KeyMouseRelease   uint16 = 0xffff - 25
	KeyMouseWheelUp   uint16 = 0xffff - 26
	KeyMouseWheelDown uint16 = 0xffff - 27
)

// Attribute codes, valid for the normal output mode. One color value may be
// OR'd with any combination of the style bits. Other output modes interpret
// the numeric range differently (palette indices).
const (
	AttrDefault uint16 = 0x00
	AttrBlack   uint16 = 0x01
	AttrRed     uint16 = 0x02
	AttrGreen   uint16 = 0x03
	AttrYellow  uint16 = 0x04
	AttrBlue    uint16 = 0x05
	AttrMagenta uint16 = 0x06
	AttrCyan    uint16 = 0x07
	AttrWhite   uint16 = 0x08

	AttrBold      uint16 = 0x0100
	AttrUnderline uint16 = 0x0200
	AttrReverse   uint16 = 0x0400
)
