package manager

import (
	"context"

	"stegod/internal/codec"
	"stegod/internal/stego"
	"stegod/pkg/types"
)

// Encode hides the request payload inside generated text. Validation and
// settings merging happen before the lock; the codec invocation, hygiene
// action, capacity negotiation, and counter increment all run inside one
// critical section. The ctx is accepted for interface symmetry only: once
// the lock is held the request runs to completion.
func (m *Manager) Encode(ctx context.Context, req types.EncodeRequest) (types.EncodeResponse, error) {
	bits, err := stego.TextToBits(req.Message)
	if err != nil {
		return types.EncodeResponse{}, ErrValidation(err.Error())
	}
	if bits == "" {
		return types.EncodeResponse{}, ErrValidation("message must not be empty")
	}
	st, err := stego.Merge(m.defaults, req.Settings)
	if err != nil {
		return types.EncodeResponse{}, ErrValidation(err.Error())
	}
	if st.Length <= 0 {
		st.Length = stego.SuggestLength(len(bits))
	}
	genCtx := req.Context
	if genCtx == "" {
		genCtx = m.defaultContext
	}

	out, err := m.encodeLocked(bits, genCtx, &st)
	if err != nil {
		return types.EncodeResponse{}, err
	}
	if out.EmbeddedBits < len(bits) {
		capacityFailuresTotal.Inc()
		return types.EncodeResponse{}, ErrCapacity(
			"failed to embed the entire payload; increase settings.length or reduce the message size")
	}

	return types.EncodeResponse{
		StegoText:       out.StegoText,
		EmbeddedBits:    out.EmbeddedBits,
		PayloadBits:     len(bits),
		TokenCount:      out.TokenCount,
		EmbeddingRate:   out.EmbeddingRate,
		UtilizationRate: out.UtilizationRate,
		Perplexity:      out.Perplexity,
		Settings:        st.Effective(),
	}, nil
}

// encodeLocked is the critical section of an encode request. On shortfall
// it enlarges the generation budget once, mutating st so the caller can
// echo the effective settings.
func (m *Manager) encodeLocked(bits, genCtx string, st *stego.Settings) (codec.EncodeOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureLoaded(); err != nil {
		return codec.EncodeOutput{}, err
	}
	if err := m.applyHygiene(); err != nil {
		return codec.EncodeOutput{}, err
	}

	out, err := m.codec.Encode(m.model, m.tokenizer, bits, genCtx, *st)
	if err != nil {
		return codec.EncodeOutput{}, err
	}
	if out.EmbeddedBits < len(bits) {
		// Embedding capacity is stochastic; one enlarged-budget retry
		// materially improves the odds without unbounded looping.
		next := st.Length + 16
		if half := len(bits) / 2; half > next {
			next = half
		}
		st.Length = next
		if m.strategy == StrategyReset || m.strategy == StrategyReload {
			m.resetState()
		}
		capacityRetriesTotal.Inc()
		out, err = m.codec.Encode(m.model, m.tokenizer, bits, genCtx, *st)
		if err != nil {
			return codec.EncodeOutput{}, err
		}
	}

	m.opCount++
	operationsTotal.WithLabelValues("encode").Inc()
	return out, nil
}
