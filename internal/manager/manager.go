package manager

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"stegod/internal/codec"
	"stegod/internal/stego"
)

// Manager serializes all stateful work on the shared model: lazy loading,
// hygiene actions, codec invocations, and the operation counter all happen
// inside its single mutex.
type Manager struct {
	mu sync.Mutex

	codec    codec.Codec
	provider codec.Provider

	strategy     Strategy
	reloadEveryN int

	// Read-only after construction; requests merge into their own copy.
	defaults       stego.Settings
	defaultContext string

	// Guarded by mu.
	model     codec.Model
	tokenizer codec.Tokenizer
	opCount   uint64
	err       string

	// Local RNG feeding model reseeds; itself reseeded from fresh entropy
	// by every hygiene action. Guarded by mu.
	rng *rand.Rand
}

// New constructs a Manager with default policy settings.
func New(c codec.Codec, p codec.Provider, strategy Strategy) *Manager {
	return NewWithConfig(ManagerConfig{Codec: c, Provider: p, Strategy: strategy})
}

// Ready reports whether the service can take requests. The model loads
// lazily, so readiness only degrades after a failed load or reload.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err == ""
}

// DefaultSettings returns a copy of the process-wide default settings.
func (m *Manager) DefaultSettings() stego.Settings {
	return m.defaults.Clone()
}

// reseedLocal replaces the local RNG with one seeded from fresh entropy.
func (m *Manager) reseedLocal() {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Entropy read failures are effectively impossible on supported
		// platforms; fall back to the previous RNG if one exists.
		if m.rng != nil {
			return
		}
		m.rng = rand.New(rand.NewSource(1))
		return
	}
	m.rng = rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(b[:]))))
}
