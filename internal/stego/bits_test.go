package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToBits(t *testing.T) {
	bits, err := TextToBits("AB")
	require.NoError(t, err)
	assert.Equal(t, "0100000101000010", bits)
}

func TestTextToBitsMultipleOfEight(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "café", "\x00ÿ"} {
		bits, err := TextToBits(s)
		require.NoError(t, err, "input %q", s)
		assert.Zero(t, len(bits)%8, "bit length of %q must be a multiple of 8", s)
	}
}

func TestTextToBitsRejectsWideRunes(t *testing.T) {
	_, err := TextToBits("☃")
	require.Error(t, err)
}

func TestTextToBitsRejectsInvalidUTF8(t *testing.T) {
	// Raw Latin-1 bytes are not valid UTF-8; they decode to U+FFFD and are
	// rejected like any other wide rune. Callers must send "ÿ", not 0xFF.
	for _, s := range []string{"\xff", "\x00\xff"} {
		_, err := TextToBits(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestBitsTextRoundTrip(t *testing.T) {
	for _, s := range []string{"A", "AB", "hello world", "\x00", "ÿ\x01", "péniche"} {
		bits, err := TextToBits(s)
		require.NoError(t, err)
		assert.Equal(t, s, BitsToText(bits), "round trip of %q", s)
	}
}

func TestBitsToTextTruncatesPartialByte(t *testing.T) {
	// "A" plus a dangling 5-bit group; the tail is discarded, not an error.
	assert.Equal(t, "A", BitsToText("01000001"+"10111"))
	assert.Equal(t, "", BitsToText("0101"))
	assert.Equal(t, "", BitsToText(""))
}
