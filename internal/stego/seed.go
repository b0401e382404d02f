package stego

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errSeedNotInteger = fmt.Errorf("settings.seed must be a non-negative integer")

// CoerceSeed normalizes the free-form seed value from a request into either
// a concrete seed or nil (unset). Accepted forms:
//
//   - nil: unset
//   - []byte: big-endian unsigned integer; an empty slice coerces to 0
//   - string: trimmed and parsed base-10; an empty string is unset
//   - json.Number / float64 / integer kinds: truncated to an integer
//
// A seed is always non-negative: negative values, and byte sequences whose
// unsigned value does not fit in an int64, are validation failures, as is
// anything of an unsupported type.
func CoerceSeed(value any) (*int64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) > 8 {
			return nil, errSeedNotInteger
		}
		var n uint64
		for _, b := range v {
			n = n<<8 | uint64(b)
		}
		if n > math.MaxInt64 {
			return nil, errSeedNotInteger
		}
		return checked(int64(n))
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errSeedNotInteger
		}
		return checked(n)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return checked(n)
		}
		if f, err := v.Float64(); err == nil {
			return checked(int64(f))
		}
		return nil, errSeedNotInteger
	case float64:
		return checked(int64(v))
	case float32:
		return checked(int64(v))
	case int:
		return checked(int64(v))
	case int32:
		return checked(int64(v))
	case int64:
		return checked(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, errSeedNotInteger
		}
		return checked(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return nil, errSeedNotInteger
		}
		return checked(int64(v))
	default:
		return nil, errSeedNotInteger
	}
}

func checked(n int64) (*int64, error) {
	if n < 0 {
		return nil, errSeedNotInteger
	}
	return seedOf(n), nil
}

func seedOf(n int64) *int64 { return &n }
