package render

import (
	"strings"
	"unicode/utf8"
)

// Clean strips control characters (including ESC) from user-supplied text
// before it is embedded in terminal output. Profile fields are free-form
// input, so they must never be able to smuggle escape sequences into the
// rendered views. Newlines and tabs flatten to single spaces. Bytes that
// are not valid UTF-8 are dropped too: a raw 0x9b is a CSI to the
// terminal even though it never decodes to a C1 rune.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '\n' || r == '\t':
			b.WriteByte(' ')
		case r == utf8.RuneError && size == 1: // invalid encoding
		case r < 0x20 || r == 0x7f:
		case r >= 0x80 && r <= 0x9f: // C1 controls
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
