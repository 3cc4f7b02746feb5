package keymap

import "strconv"

// X11 keysyms.
var linuxLabels = map[int]string{
	8:  LabelBackspace,
	9:  LabelTab,
	13: LabelEnter,
	27: LabelEscape,
	32: LabelSpace,

	65056: LabelTab, // ISO_Left_Tab
	65288: LabelBackspace,
	65289: LabelTab,
	65293: LabelEnter,
	65299: "Pause",
	65300: "Scrl",
	65301: "SysRq",
	65307: LabelEscape,
	65360: "Home",
	65361: "←",
	65362: "↑",
	65363: "→",
	65364: "↓",
	65365: "PgUp",
	65366: "PgDn",
	65367: "End",
	65377: "Print",
	65379: "Ins",
	65387: "Break",
	65407: "Num",
	65421: "Num ⏎",
	65429: "Num Home",
	65430: "Num ←",
	65431: "Num ↑",
	65432: "Num →",
	65433: "Num ↓",
	65434: "Num PgUp",
	65435: "Num PgDn",
	65436: "Num End",
	65437: "Num Clear",
	65438: "Num Ins",
	65439: "Num Del",
	65450: "Num *",
	65451: "Num +",
	65452: "Num Sep",
	65453: "Num -",
	65454: "Num .",
	65455: "Num /",
	65509: "Caps",
	65535: "Del",
}

var linuxModifiers = map[int]Handed{
	65505: ShiftLeft,
	65506: ShiftRight,
	65507: CtrlLeft,
	65508: CtrlRight,
	// 65511 and 65512 are the shifted alt codes (meta).
	65511: AltLeft,
	65512: AltRight,
	65513: AltLeft,
	65514: AltRight,
}

// Windows virtual-key codes. Letters and digits are left to the hook's own
// character lookup.
var windowsLabels = map[int]string{
	0x08: LabelBackspace,
	0x09: LabelTab,
	0x0D: LabelEnter,
	0x13: "Pause",
	0x14: "Caps",
	0x1B: LabelEscape,
	0x20: LabelSpace,
	0x21: "PgUp",
	0x22: "PgDn",
	0x23: "End",
	0x24: "Home",
	0x25: "←",
	0x26: "↑",
	0x27: "→",
	0x28: "↓",
	0x2C: "Print",
	0x2D: "Ins",
	0x2E: "Del",
	0x5B: "Win",
	0x5C: "Win",
	0x5D: "Menu",
	0x6A: "Num *",
	0x6B: "Num +",
	0x6C: "Num Sep",
	0x6D: "Num -",
	0x6E: "Num .",
	0x6F: "Num /",
	0x90: "Num",
	0x91: "Scrl",
}

var windowsModifiers = map[int]Handed{
	0xA0: ShiftLeft,
	0xA1: ShiftRight,
	0xA2: CtrlLeft,
	0xA3: CtrlRight,
	0xA4: AltLeft,
	0xA5: AltRight,
}

// macOS virtual keycodes (kVK_*).
var darwinLabels = map[int]string{
	0x24: LabelEnter,
	0x30: LabelTab,
	0x31: LabelSpace,
	0x33: LabelBackspace,
	0x35: LabelEscape,
	0x37: "Cmd",
	0x36: "Cmd",
	0x39: "Caps",
	0x41: "Num .",
	0x43: "Num *",
	0x45: "Num +",
	0x47: "Num Clear",
	0x4B: "Num /",
	0x4C: "Num ⏎",
	0x4E: "Num -",
	0x51: "Num =",
	0x52: "Num 0",
	0x53: "Num 1",
	0x54: "Num 2",
	0x55: "Num 3",
	0x56: "Num 4",
	0x57: "Num 5",
	0x58: "Num 6",
	0x59: "Num 7",
	0x5B: "Num 8",
	0x5C: "Num 9",
	0x60: "F5",
	0x61: "F6",
	0x62: "F7",
	0x63: "F3",
	0x64: "F8",
	0x65: "F9",
	0x67: "F11",
	0x6D: "F10",
	0x6F: "F12",
	0x73: "Home",
	0x74: "PgUp",
	0x75: "Del",
	0x76: "F4",
	0x77: "End",
	0x78: "F2",
	0x79: "PgDn",
	0x7A: "F1",
	0x7B: "←",
	0x7C: "→",
	0x7D: "↓",
	0x7E: "↑",
}

var darwinModifiers = map[int]Handed{
	0x38: ShiftLeft,
	0x3C: ShiftRight,
	0x3B: CtrlLeft,
	0x3E: CtrlRight,
	0x3A: AltLeft,
	0x3D: AltRight,
}

// Linux kernel input codes (KEY_*). Letters and digits come from the
// backend's code names.
var evdevLabels = map[int]string{
	1:   LabelEscape,
	14:  LabelBackspace,
	15:  LabelTab,
	28:  LabelEnter,
	57:  LabelSpace,
	58:  "Caps",
	69:  "Num",
	70:  "Scrl",
	71:  "Num 7",
	72:  "Num 8",
	73:  "Num 9",
	74:  "Num -",
	75:  "Num 4",
	76:  "Num 5",
	77:  "Num 6",
	78:  "Num +",
	79:  "Num 1",
	80:  "Num 2",
	81:  "Num 3",
	82:  "Num 0",
	83:  "Num .",
	96:  "Num ⏎",
	98:  "Num /",
	99:  "SysRq",
	102: "Home",
	103: "↑",
	104: "PgUp",
	105: "←",
	106: "→",
	107: "End",
	108: "↓",
	109: "PgDn",
	110: "Ins",
	111: "Del",
	119: "Pause",
	125: "Super",
	126: "Super",
}

var evdevModifiers = map[int]Handed{
	42:  ShiftLeft,
	54:  ShiftRight,
	29:  CtrlLeft,
	97:  CtrlRight,
	56:  AltLeft,
	100: AltRight,
}

func init() {
	// X11 keysyms for printable Latin-1 match their code points.
	for c := 33; c <= 126; c++ {
		linuxLabels[c] = string(rune(c))
	}
	for i := 0; i < 12; i++ {
		f := "F" + strconv.Itoa(i+1)
		linuxLabels[65470+i] = f
		windowsLabels[0x70+i] = f
	}
	for i := 0; i < 10; i++ {
		n := "Num " + strconv.Itoa(i)
		linuxLabels[65456+i] = n
		windowsLabels[0x60+i] = n
	}
	for i := 0; i < 10; i++ {
		evdevLabels[59+i] = "F" + strconv.Itoa(i+1)
	}
	evdevLabels[87] = "F11"
	evdevLabels[88] = "F12"
}
