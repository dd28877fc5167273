package termgrid

import "termgrid/pkg/driver"

// Key identifies a non-printable key in a KeyEvent.
type Key = uint16

const (
	KeyCtrlTilde      Key = driver.KeyCtrlTilde
	KeyCtrl2          Key = driver.KeyCtrl2
	KeyCtrlA          Key = driver.KeyCtrlA
	KeyCtrlB          Key = driver.KeyCtrlB
	KeyCtrlC          Key = driver.KeyCtrlC
	KeyCtrlD          Key = driver.KeyCtrlD
	KeyCtrlE          Key = driver.KeyCtrlE
	KeyCtrlF          Key = driver.KeyCtrlF
	KeyCtrlG          Key = driver.KeyCtrlG
	KeyBackspace      Key = driver.KeyBackspace
	KeyCtrlH          Key = driver.KeyCtrlH
	KeyTab            Key = driver.KeyTab
	KeyCtrlI          Key = driver.KeyCtrlI
	KeyCtrlJ          Key = driver.KeyCtrlJ
	KeyCtrlK          Key = driver.KeyCtrlK
	KeyCtrlL          Key = driver.KeyCtrlL
	KeyEnter          Key = driver.KeyEnter
	KeyCtrlM          Key = driver.KeyCtrlM
	KeyCtrlN          Key = driver.KeyCtrlN
	KeyCtrlO          Key = driver.KeyCtrlO
	KeyCtrlP          Key = driver.KeyCtrlP
	KeyCtrlQ          Key = driver.KeyCtrlQ
	KeyCtrlR          Key = driver.KeyCtrlR
	KeyCtrlS          Key = driver.KeyCtrlS
	KeyCtrlT          Key = driver.KeyCtrlT
	KeyCtrlU          Key = driver.KeyCtrlU
	KeyCtrlV          Key = driver.KeyCtrlV
	KeyCtrlW          Key = driver.KeyCtrlW
	KeyCtrlX          Key = driver.KeyCtrlX
	KeyCtrlY          Key = driver.KeyCtrlY
	KeyCtrlZ          Key = driver.KeyCtrlZ
	KeyEsc            Key = driver.KeyEsc
	KeyCtrlLsqBracket Key = driver.KeyCtrlLsqBracket
	KeyCtrl3          Key = driver.KeyCtrl3
	KeyCtrl4          Key = driver.KeyCtrl4
	KeyCtrlBackslash  Key = driver.KeyCtrlBackslash
	KeyCtrl5          Key = driver.KeyCtrl5
	KeyCtrlRsqBracket Key = driver.KeyCtrlRsqBracket
	KeyCtrl6          Key = driver.KeyCtrl6
	KeyCtrl7          Key = driver.KeyCtrl7
	KeyCtrlSlash      Key = driver.KeyCtrlSlash
	KeyCtrlUnderscore Key = driver.KeyCtrlUnderscore
	KeySpace          Key = driver.KeySpace
	KeyBackspace2     Key = driver.KeyBackspace2
	KeyCtrl8          Key = driver.KeyCtrl8

	KeyF1         Key = driver.KeyF1
	KeyF2         Key = driver.KeyF2
	KeyF3         Key = driver.KeyF3
	KeyF4         Key = driver.KeyF4
	KeyF5         Key = driver.KeyF5
	KeyF6         Key = driver.KeyF6
	KeyF7         Key = driver.KeyF7
	KeyF8         Key = driver.KeyF8
	KeyF9         Key = driver.KeyF9
	KeyF10        Key = driver.KeyF10
	KeyF11        Key = driver.KeyF11
	KeyF12        Key = driver.KeyF12
	KeyInsert     Key = driver.KeyInsert
	KeyDelete     Key = driver.KeyDelete
	KeyHome       Key = driver.KeyHome
	KeyEnd        Key = driver.KeyEnd
	KeyPgUp       Key = driver.KeyPgUp
	KeyPgDn       Key = driver.KeyPgDn
	KeyArrowUp    Key = driver.KeyArrowUp
	KeyArrowDown  Key = driver.KeyArrowDown
	KeyArrowLeft  Key = driver.KeyArrowLeft
	KeyArrowRight Key = driver.KeyArrowRight
)
