package manager

import (
	"context"

	"stegod/internal/stego"
	"stegod/pkg/types"
)

// Decode recovers the embedded bit string from previously generated text.
// The context must exactly match the one used at encode time; a mismatch
// yields garbled bits, which is an expected outcome of the probabilistic
// codec, never an error.
func (m *Manager) Decode(ctx context.Context, req types.DecodeRequest) (types.DecodeResponse, error) {
	st, err := stego.Merge(m.defaults, req.Settings)
	if err != nil {
		return types.DecodeResponse{}, ErrValidation(err.Error())
	}
	if req.ExpectedBits != nil && *req.ExpectedBits <= 0 {
		return types.DecodeResponse{}, ErrValidation("expected_bits must be positive")
	}

	bits, err := m.decodeLocked(req.StegoText, req.Context, st)
	if err != nil {
		return types.DecodeResponse{}, err
	}

	if req.ExpectedBits != nil && len(bits) > *req.ExpectedBits {
		bits = bits[:*req.ExpectedBits]
	}
	var text *string
	if bits != "" {
		if s := stego.BitsToText(bits); s != "" {
			text = &s
		}
	}
	return types.DecodeResponse{
		RecoveredBits: bits,
		RecoveredText: text,
		UsedBits:      len(bits),
	}, nil
}

// decodeLocked is the critical section of a decode request. Tokenization
// happens before the hygiene action so a reload never tokenizes with a
// different tokenizer generation than the one that validated the input.
func (m *Manager) decodeLocked(stegoText, genCtx string, st stego.Settings) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureLoaded(); err != nil {
		return "", err
	}
	tokenIDs := m.tokenizer.Encode(stegoText)
	if len(tokenIDs) == 0 {
		return "", ErrValidation("unable to tokenize stego text; verify the input content")
	}
	if err := m.applyHygiene(); err != nil {
		return "", err
	}

	bits, err := m.codec.Decode(m.model, m.tokenizer, tokenIDs, genCtx, st)
	if err != nil {
		return "", err
	}

	m.opCount++
	operationsTotal.WithLabelValues("decode").Inc()
	return bits, nil
}
