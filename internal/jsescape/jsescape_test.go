package jsescape

import "testing"

func TestEscape(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World!", "Hello%20World%21"},
		{"abcXYZ019", "abcXYZ019"},
		{"@*_+-./", "@*_+-./"},
		{" ", "%20"},
		{"\x00", "%00"},
		{"é", "%E9"},
		{"こ", "%u3053"},
	}

	for i, tc := range cases {
		if got := string(Escape(tc.in)); got != tc.want {
			t.Errorf("%d: Escape(%q) = %q, wanted %q", i, tc.in, got, tc.want)
		}
	}
}

func TestEscapeSurrogatePair(t *testing.T) {
	// U+1F0A1 ("🂡") needs a surrogate pair: D83C DCA1.
	got := string(Escape("\U0001F0A1"))
	want := "%uD83C%uDCA1"
	if got != want {
		t.Errorf("Escape(surrogate) = %q, wanted %q", got, want)
	}
}

func TestUnescapeRoundTrip(t *testing.T) {
	cases := []string{
		"Hello World!",
		"こんにちは世界",
		"\U0001F0A1\U0001F19B\U0001F3CD\U0001F635",
		"",
		"@*_+-./",
	}

	for i, s := range cases {
		if got := Unescape(string(Escape(s))); got != s {
			t.Errorf("%d: round trip of %q got %q", i, s, got)
		}
	}
}

func TestUnescapeLenientOnBadEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"%", "\x00"},
		{"%u", "\x00"},
		{"%uZZZZ", "\x00"},
		{"%GG", "\x00"},
		{"100%", "100\x00"},
	}

	for i, tc := range cases {
		if got := Unescape(tc.in); got != tc.want {
			t.Errorf("%d: Unescape(%q) = %q, wanted %q", i, tc.in, got, tc.want)
		}
	}
}
