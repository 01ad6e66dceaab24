package fumen

import (
	"strings"
	"testing"

	"github.com/bdwalton/fumen/internal/base64sym"
	"github.com/stretchr/testify/assert"
)

func symbolStream(s string) func() (int, bool) {
	i := 0
	return func() (int, bool) {
		if i >= len(s) {
			return 0, false
		}
		v, ok := base64sym.Val(s[i])
		i++
		return v, ok
	}
}

func TestCommentRoundTrip(t *testing.T) {
	cases := []string{
		"Hello World!",
		"",
		"こんにちは世界",
		"\U0001F0A1\U0001F19B\U0001F3CD\U0001F635",
	}

	for _, s := range cases {
		encoded := encodeComment(nil, s)
		got, err := decodeComment(symbolStream(string(encoded)))
		assert.NoError(t, err)
		assert.Equal(t, s, got, "round trip of %q", s)
	}
}

func TestCommentTruncation(t *testing.T) {
	long := strings.Repeat("a", 5000)
	encoded := encodeComment(nil, long)
	got, err := decodeComment(symbolStream(string(encoded)))
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(got), maxCommentBytes)
	assert.True(t, strings.HasPrefix(long, got))
}

