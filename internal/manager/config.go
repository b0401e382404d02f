package manager

import (
	"stegod/internal/codec"
	"stegod/internal/stego"
)

// Strategy selects the hygiene action applied around every stateful request.
type Strategy string

const (
	// StrategyNone performs no hygiene action ever.
	StrategyNone Strategy = "none"
	// StrategyReset runs the in-place state reset before every request.
	StrategyReset Strategy = "reset"
	// StrategyReload rebuilds model and tokenizer before every request.
	StrategyReload Strategy = "reload"
	// StrategyPeriodic rebuilds only when the operation counter is a
	// multiple of ReloadEveryN, and does nothing otherwise.
	StrategyPeriodic Strategy = "periodic"
)

// ParseStrategy validates a strategy string, defaulting empty to reset.
func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(s) {
	case "":
		return StrategyReset, true
	case StrategyNone, StrategyReset, StrategyReload, StrategyPeriodic:
		return Strategy(s), true
	default:
		return "", false
	}
}

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultReloadEveryN = 10

	// Neutral priming context used when an encode request omits one.
	defaultContext = "We were both young when I first saw you, I close my eyes and the flashback starts."
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Codec    codec.Codec
	Provider codec.Provider
	// Hygiene policy; empty means reset.
	Strategy Strategy
	// Interval for the periodic strategy; <=0 uses the package default.
	ReloadEveryN int
	// Default generation settings; zero value uses stego.Defaults().
	Defaults *stego.Settings
	// Context used when an encode request omits one.
	DefaultContext string
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		codec:    cfg.Codec,
		provider: cfg.Provider,
		strategy: cfg.Strategy,
	}
	if m.strategy == "" {
		m.strategy = StrategyReset
	}
	if cfg.ReloadEveryN > 0 {
		m.reloadEveryN = cfg.ReloadEveryN
	} else {
		m.reloadEveryN = defaultReloadEveryN
	}
	if cfg.Defaults != nil {
		m.defaults = cfg.Defaults.Clone()
	} else {
		m.defaults = stego.Defaults()
	}
	if cfg.DefaultContext != "" {
		m.defaultContext = cfg.DefaultContext
	} else {
		m.defaultContext = defaultContext
	}
	m.reseedLocal()
	return m
}
