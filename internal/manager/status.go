package manager

import "stegod/pkg/types"

// Health reports the manager's externally observable state. Read-only and
// idempotent, but it still takes the shared lock so the snapshot is
// consistent with the operation order.
func (m *Manager) Health() types.HealthResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := "ok"
	if m.err != "" {
		status = "error"
	}
	return types.HealthResponse{
		Status:          status,
		Device:          m.defaults.Device,
		ModelLoaded:     m.model != nil,
		ReloadStrategy:  string(m.strategy),
		OperationsCount: m.opCount,
	}
}

// Reload discards and rebuilds the model and tokenizer under the shared
// lock, so it never interleaves with in-flight inference.
func (m *Manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reloadModel()
}

// Reset runs the in-place state reset under the shared lock. Safe to call
// before the model has ever loaded; only the RNG reseed happens then.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetState()
	return nil
}
