package stego

import (
	"fmt"
	"strconv"
	"strings"
)

// TextToBits renders text as the concatenation of each character's 8-bit
// codepoint value. The input is interpreted as UTF-8; only codepoints up to
// U+00FF are representable, and anything above — including bytes that do
// not form valid UTF-8 — is rejected rather than silently producing an
// undecodable stream.
func TextToBits(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text) * 8)
	for _, r := range text {
		if r > 0xFF {
			return "", fmt.Errorf("message must contain only single-byte characters (got %q)", r)
		}
		fmt.Fprintf(&b, "%08b", r)
	}
	return b.String(), nil
}

// BitsToText consumes 8-bit groups in order and renders each as a
// character. A trailing group shorter than 8 bits is discarded; this
// truncation is a normal outcome, not an error.
func BitsToText(bits string) string {
	var b strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		n, err := strconv.ParseUint(bits[i:i+8], 2, 8)
		if err != nil {
			break
		}
		b.WriteRune(rune(n))
	}
	return b.String()
}
