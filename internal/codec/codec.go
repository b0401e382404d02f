package codec

import "stegod/internal/stego"

// EncodeOutput summarizes one codec encode invocation.
type EncodeOutput struct {
	// Generated text carrying the payload.
	StegoText string
	// Payload bits actually embedded (may be short of the payload length).
	EmbeddedBits int
	// Generated token count.
	TokenCount int
	// Bits per generated token.
	EmbeddingRate float64
	// Fraction of theoretical capacity used.
	UtilizationRate float64
	// Fluency of the generated text (lower = more natural).
	Perplexity float64
	// Generated token ids, in order.
	TokenIDs []int
}

// Model is the minimal surface the state manager needs from a loaded
// generative model: hygiene hooks plus reseeding of its sampling RNG.
// The codec implementation is expected to know the concrete type it
// operates on.
type Model interface {
	SetEvalMode()
	ClearGradients()
	ClearAcceleratorCache()
	Reseed(seed int64)
}

// Tokenizer converts between text and token ids.
type Tokenizer interface {
	Encode(text string) []int
	Decode(ids []int) string
}

// Provider constructs model and tokenizer instances for given settings.
type Provider interface {
	Model(st stego.Settings) (Model, error)
	Tokenizer(st stego.Settings) (Tokenizer, error)
}

// Codec hides a bit string inside text sampled from a generative model and
// recovers it again. Decoding is only correct with the same context and
// settings used at encode time.
type Codec interface {
	Encode(m Model, tok Tokenizer, bits, context string, st stego.Settings) (EncodeOutput, error)
	Decode(m Model, tok Tokenizer, tokenIDs []int, context string, st stego.Settings) (string, error)
}
