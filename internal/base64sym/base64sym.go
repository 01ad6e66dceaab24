// Package base64sym implements the fumen wire alphabet: a 6-bit value
// maps to one ASCII symbol and back. This is not standard base64 (no
// padding, no line wrapping); the alphabet order matches RFC 4648's
// "A-Za-z0-9+/" table but values are combined into little-endian
// multi-symbol numerals by the callers in this module.
package base64sym

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Sym returns the ASCII symbol for a 6-bit value n (0..63). Only the
// low six bits of n are used, so an out-of-range n never panics.
func Sym(n int) byte {
	return alphabet[n&0x3F]
}

// val maps each alphabet byte to its 6-bit value, or -1 if the byte is
// not part of the alphabet.
var val [256]int8

func init() {
	for i := range val {
		val[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		val[alphabet[i]] = int8(i)
	}
}

// Val returns the 6-bit value for c and true, or (0, false) if c is not
// an alphabet symbol.
func Val(c byte) (int, bool) {
	v := val[c]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}
