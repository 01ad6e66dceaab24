// Package jsescape implements the classic JavaScript escape/unescape
// pair used by fumen comments: a narrow pass-through alphabet, %HH for
// code points up to 0xFF, and %uHHHH (per UTF-16 code unit) above that.
package jsescape

import "unicode/utf16"

const hexDigits = "0123456789ABCDEF"

// passThrough reports whether c is emitted as-is by Escape.
func passThrough(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '@', '*', '_', '+', '-', '.', '/':
		return true
	}
	return false
}

// Escape implements JavaScript's escape() exactly: ASCII letters and
// digits and the narrow punctuation set @*_+-./ pass through unchanged; everything else
// becomes %HH (code points <= 0xFF) or one %uHHHH per UTF-16 code unit.
func Escape(s string) []byte {
	var out []byte
	for _, c := range s {
		switch {
		case passThrough(c):
			out = append(out, byte(c))
		case c <= 0xFF:
			out = append(out, '%', hexDigits[(c>>4)&0xF], hexDigits[c&0xF])
		default:
			for _, u := range utf16.Encode([]rune{c}) {
				out = append(out, '%', 'u',
					hexDigits[(u>>12)&0xF], hexDigits[(u>>8)&0xF],
					hexDigits[(u>>4)&0xF], hexDigits[u&0xF])
			}
		}
	}
	return out
}

// hexVal returns the value of a hex digit, or 0 (not an error) for
// anything else: Unescape is total, matching the reference
// unescape()'s leniency toward malformed escapes.
func hexVal(c rune) uint16 {
	switch {
	case c >= '0' && c <= '9':
		return uint16(c - '0')
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return uint16(c-'A') + 10
	}
	return 0
}

// Unescape implements JavaScript's unescape() followed by a UTF-16
// decode: %uHHHH consumes four hex digits, %HH consumes two, anything
// else contributes its own code point as a UTF-16 unit. Invalid or
// short escapes contribute 0, never an error. Unpaired surrogates in
// the resulting UTF-16 buffer are replaced with U+FFFD.
func Unescape(s string) string {
	runes := []rune(s)
	var units []uint16

	readHex := func(i *int, n int) uint16 {
		var v uint16
		for j := 0; j < n; j++ {
			v *= 16
			if *i < len(runes) {
				v += hexVal(runes[*i])
				*i++
			}
		}
		return v
	}

	for i := 0; i < len(runes); {
		c := runes[i]
		if c != '%' {
			units = append(units, uint16(c))
			i++
			continue
		}
		i++
		if i < len(runes) && runes[i] == 'u' {
			i++
			units = append(units, readHex(&i, 4))
		} else {
			units = append(units, readHex(&i, 2))
		}
	}

	return string(utf16.Decode(units))
}
