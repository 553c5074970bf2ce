package terminal

// Key identifies a decoded key press
type Key uint16

// Keys produced by the input decoder and the tcell mapping
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so KeyCtrlA+n is Ctrl+('a'+n)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// csiLetterKeys maps the final byte of "ESC [ [1;m] X" sequences
var csiLetterKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// csiTildeKeys maps the first parameter of "ESC [ n [;m] ~" sequences
var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// ss3Keys maps "ESC O X" sequences
var ss3Keys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'M': KeyEnter, // Keypad Enter
}

// lookupCSI decodes the bytes after "ESC [" up to and including the final byte.
// Parameters are "n;m" with m the xterm modifier code (1 + shift|alt<<1|ctrl<<2).
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if len(seq) == 0 {
		return KeyNone, ModNone, false
	}
	final := seq[len(seq)-1]
	body := seq[:len(seq)-1]

	// Linux console F1-F5: "[A" .. "[E"
	if len(body) == 1 && body[0] == '[' {
		if final >= 'A' && final <= 'E' {
			return KeyF1 + Key(final-'A'), ModNone, true
		}
		return KeyNone, ModNone, false
	}
	if final == 'Z' && len(body) == 0 {
		return KeyBacktab, ModShift, true
	}

	first, second, ok := csiParams(body)
	if !ok {
		return KeyNone, ModNone, false
	}
	mod, ok := xtermModifier(second)
	if !ok {
		return KeyNone, ModNone, false
	}

	if final == '~' {
		key, ok := csiTildeKeys[first]
		return key, mod, ok
	}
	key, ok := csiLetterKeys[final]
	if !ok {
		return KeyNone, ModNone, false
	}
	// A letter sequence carries parameters only as "1;m"
	if len(body) > 0 && first != 1 {
		return KeyNone, ModNone, false
	}
	return key, mod, true
}

// csiParams parses up to two ';' separated decimal parameters; missing ones are 0
func csiParams(body []byte) (first, second int, ok bool) {
	idx := 0
	for _, b := range body {
		switch {
		case b >= '0' && b <= '9':
			v := int(b - '0')
			if idx == 0 {
				first = first*10 + v
			} else {
				second = second*10 + v
			}
			if first > 255 || second > 255 {
				return 0, 0, false
			}
		case b == ';' && idx == 0:
			idx++
		default:
			return 0, 0, false
		}
	}
	return first, second, true
}

// xtermModifier converts a modifier parameter; 0 means none was sent
func xtermModifier(code int) (Modifier, bool) {
	switch {
	case code == 0 || code == 1:
		return ModNone, true
	case code >= 2 && code <= 8:
		return Modifier(code - 1), true
	}
	return ModNone, false
}

// lookupSS3 decodes the single byte after "ESC O"
func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if len(seq) != 1 {
		return KeyNone, ModNone, false
	}
	if key, ok := ss3Keys[seq[0]]; ok {
		return key, ModNone, true
	}
	return KeyNone, ModNone, false
}
