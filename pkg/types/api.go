package types

// SettingsPatch carries optional per-request overrides applied on top of the
// server's default generation settings. Nil fields leave the default intact.
type SettingsPatch struct {
	// Algorithm variant to use (discop, discop_baseline, sample).
	// example: discop
	Algo *string `json:"algo,omitempty" example:"discop"`
	// Softmax temperature (higher = more random).
	// example: 1.0
	Temp *float64 `json:"temp,omitempty" example:"1.0"`
	// Nucleus sampling threshold.
	// example: 0.92
	TopP *float64 `json:"top_p,omitempty" example:"0.92"`
	// Maximum number of tokens to generate.
	// example: 96
	Length *int `json:"length,omitempty" example:"96"`
	// PRNG seed used during sampling. Accepts a non-negative JSON number or
	// a base-10 numeric string; omitted or null leaves the seed unset.
	// example: 42
	Seed any `json:"seed,omitempty" swaggertype:"integer" example:"42"`
}

// EffectiveSettings echoes the settings a request actually ran with.
type EffectiveSettings struct {
	// example: discop
	Algo string `json:"algo" example:"discop"`
	// example: 1.0
	Temp float64 `json:"temp" example:"1.0"`
	// example: 0.92
	TopP float64 `json:"top_p" example:"0.92"`
	// example: 96
	Length int `json:"length" example:"96"`
	// Seed the generation ran with; null when the codec chose its own.
	// example: 42
	Seed *int64 `json:"seed" example:"42"`
}

// EncodeRequest is the payload for POST /encode.
type EncodeRequest struct {
	// Plain text payload that should be hidden. Required, non-empty.
	// example: AB
	Message string `json:"message" example:"AB"`
	// Optional priming context for the language model. A neutral default is
	// used when omitted.
	Context string `json:"context,omitempty"`
	// Overrides applied on top of the default text settings.
	Settings *SettingsPatch `json:"settings,omitempty"`
}

// EncodeResponse is returned by POST /encode.
type EncodeResponse struct {
	// Generated text carrying the hidden payload.
	StegoText string `json:"stego_text"`
	// Number of payload bits actually embedded.
	// example: 16
	EmbeddedBits int `json:"embedded_bits" example:"16"`
	// Bit length of the original payload.
	// example: 16
	PayloadBits int `json:"payload_bits" example:"16"`
	// Number of generated tokens.
	// example: 24
	TokenCount int `json:"token_count" example:"24"`
	// Bits hidden per generated token.
	// example: 2.9
	EmbeddingRate float64 `json:"embedding_rate" example:"2.9"`
	// Fraction of theoretical codec capacity actually used.
	// example: 0.81
	UtilizationRate float64 `json:"utilization_rate" example:"0.81"`
	// Fluency measure of the generated text (lower = more natural).
	// example: 19.4
	Perplexity float64 `json:"perplexity" example:"19.4"`
	// Settings the encode actually ran with, for reproducing at decode time.
	Settings EffectiveSettings `json:"settings"`
}

// DecodeRequest is the payload for POST /decode.
type DecodeRequest struct {
	// Generated text that potentially carries a hidden payload. Required.
	StegoText string `json:"stego_text"`
	// Context that was used when encoding the payload. Required; decoding is
	// only correct with the exact context used at encode time.
	Context string `json:"context"`
	// Optional bit length of the original payload for trimming the decoded
	// output.
	// example: 16
	ExpectedBits *int `json:"expected_bits,omitempty" example:"16"`
	// Overrides that reproduce the encoder configuration.
	Settings *SettingsPatch `json:"settings,omitempty"`
}

// DecodeResponse is returned by POST /decode.
type DecodeResponse struct {
	// Recovered payload as a bit string.
	// example: 0100000101000010
	RecoveredBits string `json:"recovered_bits" example:"0100000101000010"`
	// Recovered bits rendered as text; null when nothing was recovered.
	// example: AB
	RecoveredText *string `json:"recovered_text" example:"AB"`
	// Number of recovered bits after trimming.
	// example: 16
	UsedBits int `json:"used_bits" example:"16"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// example: ok
	Status string `json:"status" example:"ok"`
	// Device the model runs on.
	// example: cpu
	Device string `json:"device" example:"cpu"`
	// Whether the model singleton has been constructed.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
	// Configured hygiene policy (none, reset, reload, periodic).
	// example: reset
	ReloadStrategy string `json:"reload_strategy" example:"reset"`
	// Total operations completed since process start.
	// example: 12
	OperationsCount uint64 `json:"operations_count" example:"12"`
}

// AdminResponse acknowledges a manual reload or reset.
type AdminResponse struct {
	// example: reloaded
	Status string `json:"status" example:"reloaded"`
	// example: Model has been completely reloaded
	Message string `json:"message" example:"Model has been completely reloaded"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
