// Package manager owns the single shared model+tokenizer instance and the
// discipline around it. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - hygiene.go: ensureLoaded/resetState/reloadModel and the reload policy.
//   - encode.go: encode entry point and the capacity negotiation.
//   - decode.go: decode entry point.
//   - errors.go: error types and helpers (IsValidation, IsCapacity).
//   - status.go: Health reporting and the manual admin operations.
//   - metrics.go: Prometheus counters for operations, hygiene, and retries.
//
// Every stateful operation (lazy load, hygiene action, codec invocation,
// counter increment) runs inside one mutex critical section, so there is
// never parallel inference and the operation counter increases in lock
// order. A request that holds the lock runs to completion; cancellation is
// not supported inside the critical section.
//
// Caveat on the periodic policy: it reloads the model only when the
// operation counter is a multiple of the configured interval and performs
// no hygiene action at all on other requests. reset and reload, by
// contrast, act before every request. The asymmetry is intentional and
// load-bearing for anyone tuning state isolation against throughput.
package manager
