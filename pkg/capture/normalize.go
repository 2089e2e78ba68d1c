// Package capture intercepts console writes made during a test and stores
// them as normalized text.
//
// The proxies in this package hold a single mutable target. They serve one
// test at a time: the owner rebinds the target before a test starts and
// reads the buffer after it ends. Running tests concurrently through the
// same proxies is not supported; concurrent callers need one proxy pair
// and one buffer per test.
package capture

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// NormalizeToText converts a raw chunk into valid UTF-8 text.
//
// Valid UTF-8 is returned unchanged. Otherwise every byte that does not
// start a valid rune is decoded as ISO 8859-1, so arbitrary binary output
// never fails and never loses a byte.
func NormalizeToText(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}

	var b strings.Builder

	b.Grow(len(p) + len(p)/2)

	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(charmap.ISO8859_1.DecodeByte(p[0]))
			p = p[1:]

			continue
		}

		b.Write(p[:size])
		p = p[size:]
	}

	return b.String()
}

// NormalizeString is NormalizeToText for text already held in a string.
func NormalizeString(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return NormalizeToText([]byte(s))
}

// splitIncomplete separates a trailing partial UTF-8 sequence from p so it
// can be completed by the next chunk.
func splitIncomplete(p []byte) (complete, rest []byte) {
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(p[i]) {
			continue
		}

		if utf8.FullRune(p[i:]) {
			return p, nil
		}

		return p[:i], p[i:]
	}

	return p, nil
}
