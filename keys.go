package pui

// Key is a key symbol. Printable keys are their rune, special keys are in
// the private use area.
type Key rune

const (
	KeyTab       Key = '\t'
	KeyReturn    Key = '\n'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x08
	KeyDelete    Key = 0x7f
)

const (
	KeyFn Key = 0xF000 + iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyKP2
	KeyKP4
	KeyKP6
	KeyKP8
	KeyKPEnter
)

// KeyMod is a set of modifier keys held during a key event.
type KeyMod uint16

const (
	ModShift KeyMod = 1 << iota
	ModCtrl
	ModAlt
	ModGUI
	ModNum
	ModCaps
	ModMode
	ModScroll

	ModNone KeyMod = 0
)

// InterestingMods strips the lock modifiers that have no bearing on
// menu and dialog key handling.
func InterestingMods(m KeyMod) KeyMod {
	return m &^ (ModNum | ModScroll)
}
