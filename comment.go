package fumen

import (
	"github.com/bdwalton/fumen/internal/base64sym"
	"github.com/bdwalton/fumen/internal/jsescape"
)

// maxCommentBytes is the maximum length, in escaped bytes, a comment
// is truncated to before encoding.
const maxCommentBytes = 4095

// encodeComment JS-escapes comment, truncates the result to
// maxCommentBytes, and appends its comment block to dst: a 12-bit
// length of the escaped bytes, then groups of
// four escaped bytes packed into 30-bit little-endian base64 runs of
// five symbols each.
func encodeComment(dst []byte, comment string) []byte {
	escaped := jsescape.Escape(comment)
	if len(escaped) > maxCommentBytes {
		escaped = escaped[:maxCommentBytes]
	}

	n := len(escaped)
	dst = append(dst, base64sym.Sym(n&0x3F), base64sym.Sym((n>>6)&0x3F))

	for i := 0; i < len(escaped); i += 4 {
		group := escaped[i:min(i+4, len(escaped))]
		v := 0
		for j := len(group) - 1; j >= 0; j-- {
			v = v*96 + int(group[j]) - 0x20
		}
		for k := 0; k < 5; k++ {
			dst = append(dst, base64sym.Sym(v&0x3F))
			v >>= 6
		}
	}

	return dst
}

// decodeComment reads a comment block via next (a stream of already
// base64-decoded 6-bit values) and returns the unescaped comment text.
func decodeComment(next func() (int, bool)) (string, error) {
	lo, ok := next()
	if !ok {
		return "", errMalformed
	}
	hi, ok := next()
	if !ok {
		return "", errMalformed
	}
	length := lo + 64*hi

	var escaped []byte
	for length > 0 {
		v := 0
		for k := 0; k < 5; k++ {
			s, ok := next()
			if !ok {
				return "", errMalformed
			}
			v |= s << (6 * k)
		}
		n := length
		if n > 4 {
			n = 4
		}
		for i := 0; i < n; i++ {
			escaped = append(escaped, byte(v%96+0x20))
			length--
			v /= 96
		}
	}

	return jsescape.Unescape(string(escaped)), nil
}
