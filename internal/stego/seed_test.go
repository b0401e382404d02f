package stego

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceSeedTable(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		want  *int64
		isErr bool
	}{
		{name: "zero int", in: 0, want: seedOf(0)},
		{name: "numeric string", in: "42", want: seedOf(42)},
		{name: "padded numeric string", in: "  7 ", want: seedOf(7)},
		{name: "empty bytes", in: []byte{}, want: seedOf(0)},
		{name: "big endian bytes", in: []byte{0x01, 0x00}, want: seedOf(256)},
		{name: "nil", in: nil, want: nil},
		{name: "empty string", in: "", want: nil},
		{name: "json number", in: json.Number("42"), want: seedOf(42)},
		{name: "float", in: 3.0, want: seedOf(3)},
		{name: "non numeric string", in: "abc", isErr: true},
		{name: "unsupported type", in: []string{"42"}, isErr: true},
		{name: "oversized bytes", in: make([]byte, 9), isErr: true},
		{name: "negative int", in: -5, isErr: true},
		{name: "negative string", in: "-5", isErr: true},
		{name: "negative float", in: -3.0, isErr: true},
		{name: "bytes above int64 range", in: []byte{0xFF, 0, 0, 0, 0, 0, 0, 0}, isErr: true},
		{name: "max int64 bytes", in: []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, want: seedOf(math.MaxInt64)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CoerceSeed(tc.in)
			if tc.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}
