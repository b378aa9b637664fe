package font7s

// Tables are indexed by the low 7 bits of the character. Bit layout is
// pgfedcba: bit 0 is segment a, bit 7 the decimal point (always clear here).

// lookAlike renders every character as close as possible to its usual shape.
// Several characters share a pattern (5, S and s for example).
var lookAlike = [0x80]byte{
	// 0x00-0x1F are control characters and stay blank.
	0x20: 0b00000000, // space
	0x21: 0b00101000, // !
	0x22: 0b00100010, // "
	0x23: 0b01100011, // #
	0x24: 0b01001001, // $
	0x25: 0b00100100, // %
	0x26: 0b01111110, // &
	0x27: 0b00000010, // '
	0x28: 0b00111001, // (
	0x29: 0b00001111, // )
	0x2A: 0b00000001, // *
	0x2B: 0b01000010, // +
	0x2C: 0b00001100, // ,
	0x2D: 0b01000000, // -
	0x2E: 0b00010000, // .
	0x2F: 0b01010010, // /
	0x30: 0b00111111, // 0
	0x31: 0b00000110, // 1
	0x32: 0b01011011, // 2
	0x33: 0b01001111, // 3
	0x34: 0b01100110, // 4
	0x35: 0b01101101, // 5
	0x36: 0b01111101, // 6
	0x37: 0b00000111, // 7
	0x38: 0b01111111, // 8
	0x39: 0b01101111, // 9
	0x3A: 0b00001001, // :
	0x3B: 0b00001010, // ;
	0x3C: 0b01011000, // <
	0x3D: 0b01001000, // =
	0x3E: 0b01001100, // >
	0x3F: 0b01001011, // ?
	0x40: 0b00111011, // @
	0x41: 0b01110111, // A
	0x42: 0b01111100, // B
	0x43: 0b00111001, // C
	0x44: 0b01011110, // D
	0x45: 0b01111001, // E
	0x46: 0b01110001, // F
	0x47: 0b00111101, // G
	0x48: 0b01110110, // H
	0x49: 0b00110000, // I
	0x4A: 0b00011110, // J
	0x4B: 0b01110101, // K
	0x4C: 0b00111100, // L
	0x4D: 0b01010101, // M
	0x4E: 0b00110111, // N
	0x4F: 0b00111111, // O
	0x50: 0b01110011, // P
	0x51: 0b01101011, // Q
	0x52: 0b00110011, // R
	0x53: 0b01101101, // S
	0x54: 0b01111000, // T
	0x55: 0b00111110, // U
	0x56: 0b01110010, // V
	0x57: 0b01101010, // W
	0x58: 0b00110110, // X
	0x59: 0b01101110, // Y
	0x5A: 0b01011011, // Z
	0x5B: 0b00111001, // [
	0x5C: 0b01100100, // backslash
	0x5D: 0b00001111, // ]
	0x5E: 0b00100011, // ^
	0x5F: 0b00001000, // _
	0x60: 0b00100000, // `
	0x61: 0b01011111, // a
	0x62: 0b01111100, // b
	0x63: 0b01011000, // c
	0x64: 0b01011110, // d
	0x65: 0b01111011, // e
	0x66: 0b01110001, // f
	0x67: 0b01101111, // g
	0x68: 0b01110100, // h
	0x69: 0b00000101, // i
	0x6A: 0b00001101, // j
	0x6B: 0b01110101, // k
	0x6C: 0b00111000, // l
	0x6D: 0b01010101, // m
	0x6E: 0b01010100, // n
	0x6F: 0b01011100, // o
	0x70: 0b01110011, // p
	0x71: 0b01100111, // q
	0x72: 0b01010000, // r
	0x73: 0b01101101, // s
	0x74: 0b01111000, // t
	0x75: 0b00011100, // u
	0x76: 0b01110010, // v
	0x77: 0b01101010, // w
	0x78: 0b00010100, // x
	0x79: 0b00101110, // y
	0x7A: 0b01011011, // z
	0x7B: 0b01000110, // {
	0x7C: 0b00000110, // |
	0x7D: 0b01110000, // }
	0x7E: 0b01000001, // ~
	0x7F: 0b01011101, // DEL
}

// unique gives every character its own pattern, at the cost of some odd
// shapes (S, f).
var unique = [0x80]byte{
	// 0x00-0x1F are control characters and stay blank.
	0x20: 0b00000000, // space
	0x21: 0b00101000, // !
	0x22: 0b00100010, // "
	0x23: 0b01100011, // #
	0x24: 0b01001001, // $
	0x25: 0b00100100, // %
	0x26: 0b01111110, // &
	0x27: 0b00000010, // '
	0x28: 0b00101001, // (
	0x29: 0b00001011, // )
	0x2A: 0b00000001, // *
	0x2B: 0b01000010, // +
	0x2C: 0b00001100, // ,
	0x2D: 0b01000000, // -
	0x2E: 0b00010000, // .
	0x2F: 0b01010010, // /
	0x30: 0b00111111, // 0
	0x31: 0b00000110, // 1
	0x32: 0b01011011, // 2
	0x33: 0b01001111, // 3
	0x34: 0b01100110, // 4
	0x35: 0b01101101, // 5
	0x36: 0b01111101, // 6
	0x37: 0b00000111, // 7
	0x38: 0b01111111, // 8
	0x39: 0b01101111, // 9
	0x3A: 0b00001001, // :
	0x3B: 0b00001010, // ;
	0x3C: 0b00100001, // <
	0x3D: 0b01001000, // =
	0x3E: 0b00000011, // >
	0x3F: 0b01001011, // ?
	0x40: 0b00111011, // @
	0x41: 0b01110111, // A
	0x42: 0b01111100, // B
	0x43: 0b00111001, // C
	0x44: 0b00011111, // D
	0x45: 0b01111001, // E
	0x46: 0b01110001, // F
	0x47: 0b00111101, // G
	0x48: 0b01110110, // H
	0x49: 0b00110000, // I
	0x4A: 0b00011110, // J
	0x4B: 0b01110101, // K
	0x4C: 0b00111100, // L
	0x4D: 0b01010101, // M
	0x4E: 0b00110111, // N
	0x4F: 0b00101111, // O
	0x50: 0b01110011, // P
	0x51: 0b01101011, // Q
	0x52: 0b00110011, // R
	0x53: 0b00101101, // S
	0x54: 0b00101011, // T
	0x55: 0b00111110, // U
	0x56: 0b01110010, // V
	0x57: 0b01101010, // W
	0x58: 0b00110110, // X
	0x59: 0b01101110, // Y
	0x5A: 0b00011011, // Z
	0x5B: 0b00110001, // [
	0x5C: 0b01100100, // backslash
	0x5D: 0b00001110, // ]
	0x5E: 0b00100011, // ^
	0x5F: 0b00001000, // _
	0x60: 0b00100000, // `
	0x61: 0b01011111, // a
	0x62: 0b01101100, // b
	0x63: 0b01011000, // c
	0x64: 0b01011110, // d
	0x65: 0b01111011, // e
	0x66: 0b01010001, // f
	0x67: 0b01100111, // g
	0x68: 0b01110100, // h
	0x69: 0b00000101, // i
	0x6A: 0b00001101, // j
	0x6B: 0b01111010, // k
	0x6C: 0b00111000, // l
	0x6D: 0b00010101, // m
	0x6E: 0b01010100, // n
	0x6F: 0b01011100, // o
	0x70: 0b01010011, // p
	0x71: 0b01100101, // q
	0x72: 0b01010000, // r
	0x73: 0b00100101, // s
	0x74: 0b01111000, // t
	0x75: 0b00011100, // u
	0x76: 0b00110010, // v
	0x77: 0b00101010, // w
	0x78: 0b00010100, // x
	0x79: 0b00101110, // y
	0x7A: 0b00010011, // z
	0x7B: 0b01000110, // {
	0x7C: 0b00000100, // |
	0x7D: 0b01110000, // }
	0x7E: 0b01000001, // ~
	0x7F: 0b01011101, // DEL
}
