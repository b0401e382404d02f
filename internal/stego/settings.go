package stego

import (
	"math"

	"stegod/pkg/types"
)

// Defaults applied to every request before per-request overrides.
const (
	DefaultAlgo   = "discop"
	DefaultTemp   = 1.0
	DefaultTopP   = 0.92
	DefaultDevice = "cpu"
)

// Length auto-suggestion constants. The target rate approximates the bits
// a sampled token can carry; the margin guards against unlucky draws.
const (
	targetEmbeddingRate = 3.6
	safetyTokens        = 8
	minLength           = 32
)

// Settings holds the generation parameters for one codec invocation.
// A zero Length means "unset" and is auto-suggested from the payload size;
// a nil Seed lets the codec derive one from the context.
type Settings struct {
	Algo   string
	Temp   float64
	TopP   float64
	Length int
	Seed   *int64
	Device string
}

// Defaults returns a fresh default settings value. Callers always receive
// their own copy; there is no shared mutable default.
func Defaults() Settings {
	return Settings{
		Algo:   DefaultAlgo,
		Temp:   DefaultTemp,
		TopP:   DefaultTopP,
		Device: DefaultDevice,
	}
}

// Clone returns a copy that shares no pointers with the receiver.
func (s Settings) Clone() Settings {
	out := s
	if s.Seed != nil {
		v := *s.Seed
		out.Seed = &v
	}
	return out
}

// Merge applies a per-request patch on top of base and returns a fresh
// value. Each recognized field is merged explicitly: a nil patch field
// leaves the base value intact, a set field overwrites it. The base is
// never mutated.
func Merge(base Settings, patch *types.SettingsPatch) (Settings, error) {
	out := base.Clone()
	if patch == nil {
		return out, nil
	}
	if patch.Algo != nil {
		out.Algo = *patch.Algo
	}
	if patch.Temp != nil {
		out.Temp = *patch.Temp
	}
	if patch.TopP != nil {
		out.TopP = *patch.TopP
	}
	if patch.Length != nil {
		out.Length = *patch.Length
	}
	if patch.Seed != nil {
		seed, err := CoerceSeed(patch.Seed)
		if err != nil {
			return Settings{}, err
		}
		out.Seed = seed
	}
	return out, nil
}

// Effective renders the settings for echoing back to the caller.
func (s Settings) Effective() types.EffectiveSettings {
	var seed *int64
	if s.Seed != nil {
		v := *s.Seed
		seed = &v
	}
	return types.EffectiveSettings{
		Algo:   s.Algo,
		Temp:   s.Temp,
		TopP:   s.TopP,
		Length: s.Length,
		Seed:   seed,
	}
}

// SuggestLength returns a generation budget for a payload of bitLen bits,
// floored so degenerate too-short generations cannot occur.
func SuggestLength(bitLen int) int {
	base := int(math.Ceil(float64(bitLen) / targetEmbeddingRate))
	if base+safetyTokens < minLength {
		return minLength
	}
	return base + safetyTokens
}
