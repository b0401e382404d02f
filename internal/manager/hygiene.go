package manager

import (
	"fmt"
	"runtime"
)

// ensureLoaded lazily constructs model and tokenizer on first use. It is a
// no-op when both already exist. Caller must hold mu.
func (m *Manager) ensureLoaded() error {
	if m.model != nil && m.tokenizer != nil {
		return nil
	}
	model, err := m.provider.Model(m.defaults)
	if err != nil {
		m.err = err.Error()
		return fmt.Errorf("load model: %w", err)
	}
	tok, err := m.provider.Tokenizer(m.defaults)
	if err != nil {
		m.err = err.Error()
		return fmt.Errorf("load tokenizer: %w", err)
	}
	m.model = model
	m.tokenizer = tok
	m.err = ""
	return nil
}

// resetState reseeds the local and model-level RNGs from fresh entropy,
// restores inference mode, and clears accumulated gradient and accelerator
// state. The model and tokenizer objects survive, so isolation is partial
// but cheap. Caller must hold mu.
func (m *Manager) resetState() {
	m.reseedLocal()
	if m.model != nil {
		m.model.Reseed(m.rng.Int63())
		m.model.SetEvalMode()
		m.model.ClearGradients()
		m.model.ClearAcceleratorCache()
	}
	runtime.GC()
	hygieneTotal.WithLabelValues("reset").Inc()
}

// reloadModel discards and reconstructs both model and tokenizer for the
// strongest isolation. Caller must hold mu.
func (m *Manager) reloadModel() error {
	m.reseedLocal()
	if m.model != nil {
		m.model.ClearAcceleratorCache()
	}
	m.model = nil
	m.tokenizer = nil
	runtime.GC()

	model, err := m.provider.Model(m.defaults)
	if err != nil {
		m.err = err.Error()
		return fmt.Errorf("reload model: %w", err)
	}
	tok, err := m.provider.Tokenizer(m.defaults)
	if err != nil {
		m.err = err.Error()
		return fmt.Errorf("reload tokenizer: %w", err)
	}
	model.Reseed(m.rng.Int63())
	m.model = model
	m.tokenizer = tok
	m.err = ""
	hygieneTotal.WithLabelValues("reload").Inc()
	return nil
}

// applyHygiene runs the configured policy's action for the request about to
// execute. Periodic mode acts only on counter multiples and otherwise does
// nothing at all (see the package doc caveat). Caller must hold mu.
func (m *Manager) applyHygiene() error {
	switch m.strategy {
	case StrategyReload:
		return m.reloadModel()
	case StrategyReset:
		m.resetState()
	case StrategyPeriodic:
		if m.opCount%uint64(m.reloadEveryN) == 0 {
			return m.reloadModel()
		}
	}
	return nil
}
