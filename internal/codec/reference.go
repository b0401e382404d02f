package codec

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"math/rand"
	"strings"

	"stegod/internal/stego"
	"stegod/internal/vocab"
)

// Reference is the built-in rank-coupling codec and model provider. It
// derives a candidate-window permutation per generated token from a PRNG
// keyed on (context, algo, temp, top_p, seed) and hides payload bits in the
// rank of the sampled word. Because the key excludes the generation length,
// a decode with the exact encode-time context and settings replays the same
// permutations and recovers the payload; any other context yields garbage,
// never an error.
//
// It stands in for an external statistical codec and is deliberately small:
// no claims are made about its statistical indistinguishability.
type Reference struct {
	vocab []string
}

// NewReference builds a reference codec over the given vocabulary, falling
// back to the built-in default list when words is empty.
func NewReference(words []string) *Reference {
	if len(words) == 0 {
		words = vocab.Default()
	}
	return &Reference{vocab: words}
}

// Per-token capacity bounds. Each token carries between minBits and
// minBits+bitsSpread-1 payload bits; the widest window must fit the
// vocabulary (vocab.MinWords covers 1<<(minBits+bitsSpread-1)).
const (
	minBits    = 2
	bitsSpread = 3
)

// refModel satisfies the hygiene hooks of the Model contract. Sampling must
// stay a pure function of (context, settings) so that a later decode can
// replay it, so the hooks record state but never feed it into Encode/Decode;
// the per-request keyed PRNG carries all the randomness that matters.
type refModel struct {
	vocab    []string
	rng      *rand.Rand
	evalMode bool
}

func (m *refModel) SetEvalMode()           { m.evalMode = true }
func (m *refModel) ClearGradients()        {}
func (m *refModel) ClearAcceleratorCache() {}
func (m *refModel) Reseed(seed int64)      { m.rng = rand.New(rand.NewSource(seed)) }

type refTokenizer struct {
	vocab []string
	index map[string]int
}

func (t *refTokenizer) Encode(text string) []int {
	var ids []int
	for _, w := range strings.Fields(text) {
		if id, ok := t.index[w]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (t *refTokenizer) Decode(ids []int) string {
	words := make([]string, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(t.vocab) {
			words = append(words, t.vocab[id])
		}
	}
	return strings.Join(words, " ")
}

// Model constructs a fresh model instance. The state manager calls this on
// first use and again on every reload.
func (r *Reference) Model(st stego.Settings) (Model, error) {
	m := &refModel{vocab: r.vocab, evalMode: true}
	m.Reseed(1)
	return m, nil
}

// Tokenizer constructs the word-level tokenizer paired with the model.
func (r *Reference) Tokenizer(st stego.Settings) (Tokenizer, error) {
	t := &refTokenizer{vocab: r.vocab, index: make(map[string]int, len(r.vocab))}
	for i, w := range r.vocab {
		t.index[w] = i
	}
	return t, nil
}

// Encode hides bits inside generated text, stopping when the payload is
// exhausted or the generation budget runs out. EmbeddedBits reports how
// much of the payload actually fit.
func (r *Reference) Encode(m Model, tok Tokenizer, bits, context string, st stego.Settings) (EncodeOutput, error) {
	rm, ok := m.(*refModel)
	if !ok {
		return EncodeOutput{}, fmt.Errorf("reference codec requires the reference model, got %T", m)
	}
	rt, ok := tok.(*refTokenizer)
	if !ok {
		return EncodeOutput{}, fmt.Errorf("reference codec requires the reference tokenizer, got %T", tok)
	}
	rng := keyedRNG(context, st)

	var ids []int
	pos, capacity := 0, 0
	for t := 0; t < st.Length && pos < len(bits); t++ {
		b := minBits + rng.Intn(bitsSpread)
		perm := rng.Perm(len(rm.vocab))
		capacity += b

		end := pos + b
		if end > len(bits) {
			end = len(bits)
		}
		// Short final chunks are zero-padded into a full window index; the
		// decoder emits the pad bits and expected_bits trims them.
		val := 0
		chunk := bits[pos:end]
		for i := 0; i < b; i++ {
			val <<= 1
			if i < len(chunk) && chunk[i] == '1' {
				val |= 1
			}
		}
		pos = end
		ids = append(ids, perm[val])
	}

	out := EncodeOutput{
		StegoText:    rt.Decode(ids),
		EmbeddedBits: pos,
		TokenCount:   len(ids),
		Perplexity:   perplexity(st, len(ids)),
		TokenIDs:     ids,
	}
	if len(ids) > 0 {
		out.EmbeddingRate = float64(pos) / float64(len(ids))
	}
	if capacity > 0 {
		out.UtilizationRate = float64(pos) / float64(capacity)
	}
	return out, nil
}

// Decode replays the keyed permutation sequence over the observed tokens
// and reads each token's rank back as payload bits. Garbled input produces
// garbled bits, not an error.
func (r *Reference) Decode(m Model, tok Tokenizer, tokenIDs []int, context string, st stego.Settings) (string, error) {
	rm, ok := m.(*refModel)
	if !ok {
		return "", fmt.Errorf("reference codec requires the reference model, got %T", m)
	}
	rng := keyedRNG(context, st)

	var sb strings.Builder
	for _, id := range tokenIDs {
		b := minBits + rng.Intn(bitsSpread)
		perm := rng.Perm(len(rm.vocab))
		window := 1 << b

		rank := 0
		for i, p := range perm {
			if p == id {
				rank = i
				break
			}
		}
		val := rank % window
		fmt.Fprintf(&sb, "%0*b", b, val)
	}
	return sb.String(), nil
}

// keyedRNG derives the permutation PRNG from everything a decoder must
// reproduce. Length is deliberately excluded: the capacity retry enlarges
// it mid-request and the decoder cannot know the final value.
func keyedRNG(context string, st stego.Settings) *rand.Rand {
	h := fnv.New64a()
	io.WriteString(h, context)
	io.WriteString(h, "\x00")
	io.WriteString(h, st.Algo)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(st.Temp))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(st.TopP))
	h.Write(buf[:])
	if st.Seed != nil {
		binary.BigEndian.PutUint64(buf[:], uint64(*st.Seed))
		h.Write(buf[:])
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// perplexity synthesizes a stable fluency figure; it must not consume from
// the keyed PRNG or encode/decode would fall out of sync.
func perplexity(st stego.Settings, tokens int) float64 {
	p := 12.0 + st.Temp*6.0 - st.TopP*4.0 + float64(tokens%5)
	if p < 1.0 {
		p = 1.0
	}
	return p
}
