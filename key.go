package scr

// Key codes returned by the keyboard decoder. Ordinary keys come back as
// their plain ASCII value; special keys carry the IBM keyboard scan code
// offset by XF so the two spaces never overlap.

// XF is the extended flag. Special keys have codes above XF.
const XF = 0x100

// Function keys.
const (
	KeyF1  = 59 + XF
	KeyF2  = 60 + XF
	KeyF3  = 61 + XF
	KeyF4  = 62 + XF
	KeyF5  = 63 + XF
	KeyF6  = 64 + XF
	KeyF7  = 65 + XF
	KeyF8  = 66 + XF
	KeyF9  = 67 + XF
	KeyF10 = 68 + XF
	KeyF11 = 133 + XF
	KeyF12 = 134 + XF
)

// Shifted function keys.
const (
	KeyShiftF1  = 84 + XF
	KeyShiftF2  = 85 + XF
	KeyShiftF3  = 86 + XF
	KeyShiftF4  = 87 + XF
	KeyShiftF5  = 88 + XF
	KeyShiftF6  = 89 + XF
	KeyShiftF7  = 90 + XF
	KeyShiftF8  = 91 + XF
	KeyShiftF9  = 92 + XF
	KeyShiftF10 = 93 + XF
	KeyShiftF11 = 135 + XF
	KeyShiftF12 = 136 + XF
)

// Control function keys.
const (
	KeyCtrlF1  = 94 + XF
	KeyCtrlF2  = 95 + XF
	KeyCtrlF3  = 96 + XF
	KeyCtrlF4  = 97 + XF
	KeyCtrlF5  = 98 + XF
	KeyCtrlF6  = 99 + XF
	KeyCtrlF7  = 100 + XF
	KeyCtrlF8  = 101 + XF
	KeyCtrlF9  = 102 + XF
	KeyCtrlF10 = 103 + XF
	KeyCtrlF11 = 137 + XF
	KeyCtrlF12 = 138 + XF
)

// Alt function keys.
const (
	KeyAltF1  = 104 + XF
	KeyAltF2  = 105 + XF
	KeyAltF3  = 106 + XF
	KeyAltF4  = 107 + XF
	KeyAltF5  = 108 + XF
	KeyAltF6  = 109 + XF
	KeyAltF7  = 110 + XF
	KeyAltF8  = 111 + XF
	KeyAltF9  = 112 + XF
	KeyAltF10 = 113 + XF
	KeyAltF11 = 139 + XF
	KeyAltF12 = 140 + XF
)

// Cursor pad.
const (
	KeyHome   = 71 + XF
	KeyEnd    = 79 + XF
	KeyPgUp   = 73 + XF
	KeyPgDn   = 81 + XF
	KeyLeft   = 75 + XF
	KeyRight  = 77 + XF
	KeyUp     = 72 + XF
	KeyDown   = 80 + XF
	KeyInsert = 82 + XF
	KeyDelete = 83 + XF
)

// Control cursor pad. The traditional PC BIOS table assigned Ctrl+PgUp the
// same code as F12; KeyCtrlPgUp gets an unused code instead so the two keys
// stay distinguishable.
const (
	KeyCtrlHome   = 119 + XF
	KeyCtrlEnd    = 117 + XF
	KeyCtrlPgUp   = 148 + XF
	KeyCtrlPgDn   = 118 + XF
	KeyCtrlLeft   = 115 + XF
	KeyCtrlRight  = 116 + XF
	KeyCtrlUp     = 141 + XF
	KeyCtrlDown   = 145 + XF
	KeyCtrlInsert = 146 + XF
	KeyCtrlDelete = 147 + XF
)

// ASCII control keys.
const (
	KeyCtrlA = 1 + iota
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
	KeyEsc
)

const (
	KeySpace      = 32
	KeyTab        = KeyCtrlI
	KeyBackspace  = KeyCtrlH
	KeyReturn     = KeyCtrlM // carriage return
	KeyCtrlReturn = KeyCtrlJ // line feed
)

// Alt letter keys. The codes follow the physical rows of the PC keyboard
// rather than the alphabet.
const (
	KeyAltA = 30 + XF
	KeyAltB = 48 + XF
	KeyAltC = 46 + XF
	KeyAltD = 32 + XF
	KeyAltE = 18 + XF
	KeyAltF = 33 + XF
	KeyAltG = 34 + XF
	KeyAltH = 35 + XF
	KeyAltI = 23 + XF
	KeyAltJ = 36 + XF
	KeyAltK = 37 + XF
	KeyAltL = 38 + XF
	KeyAltM = 50 + XF
	KeyAltN = 49 + XF
	KeyAltO = 24 + XF
	KeyAltP = 25 + XF
	KeyAltQ = 16 + XF
	KeyAltR = 19 + XF
	KeyAltS = 31 + XF
	KeyAltT = 20 + XF
	KeyAltU = 22 + XF
	KeyAltV = 47 + XF
	KeyAltW = 17 + XF
	KeyAltX = 45 + XF
	KeyAltY = 21 + XF
	KeyAltZ = 44 + XF
)

// Alt number keys.
const (
	KeyAlt1 = 120 + XF
	KeyAlt2 = 121 + XF
	KeyAlt3 = 122 + XF
	KeyAlt4 = 123 + XF
	KeyAlt5 = 124 + XF
	KeyAlt6 = 125 + XF
	KeyAlt7 = 126 + XF
	KeyAlt8 = 127 + XF
	KeyAlt9 = 128 + XF
	KeyAlt0 = 129 + XF
)

// altLetters maps lowercase letters to their Alt key codes, for decoders
// that see Alt as an ESC prefix.
var altLetters = map[byte]int{
	'a': KeyAltA, 'b': KeyAltB, 'c': KeyAltC, 'd': KeyAltD,
	'e': KeyAltE, 'f': KeyAltF, 'g': KeyAltG, 'h': KeyAltH,
	'i': KeyAltI, 'j': KeyAltJ, 'k': KeyAltK, 'l': KeyAltL,
	'm': KeyAltM, 'n': KeyAltN, 'o': KeyAltO, 'p': KeyAltP,
	'q': KeyAltQ, 'r': KeyAltR, 's': KeyAltS, 't': KeyAltT,
	'u': KeyAltU, 'v': KeyAltV, 'w': KeyAltW, 'x': KeyAltX,
	'y': KeyAltY, 'z': KeyAltZ,
}

// altDigits maps digits to their Alt key codes.
var altDigits = map[byte]int{
	'1': KeyAlt1, '2': KeyAlt2, '3': KeyAlt3, '4': KeyAlt4,
	'5': KeyAlt5, '6': KeyAlt6, '7': KeyAlt7, '8': KeyAlt8,
	'9': KeyAlt9, '0': KeyAlt0,
}
