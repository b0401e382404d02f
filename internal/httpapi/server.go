package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stegod/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Encode(ctx context.Context, req types.EncodeRequest) (types.EncodeResponse, error)
	Decode(ctx context.Context, req types.DecodeRequest) (types.DecodeResponse, error)
	Health() types.HealthResponse
	Reload() error
	Reset() error
	Ready() bool
}

// NewMux builds the router. All API routes sit behind the shared-secret
// middleware; the operational endpoints (/healthz, /readyz, /metrics) stay
// open for probes and scrapers.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAPIKey)
		r.Post("/encode", handleEncode(svc))
		r.Post("/decode", handleDecode(svc))
		r.Get("/health", handleHealth(svc))
		r.Post("/reload", handleReload(svc))
		r.Post("/reset", handleReset(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("degraded"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleEncode godoc
// @Summary      Hide a payload inside generated text
// @Accept       json
// @Produce      json
// @Param        request body types.EncodeRequest true "Encode request"
// @Success      200 {object} types.EncodeResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      401 {object} types.ErrorResponse
// @Failure      422 {object} types.ErrorResponse
// @Router       /encode [post]
func handleEncode(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EncodeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		// Whitespace-only messages are legitimate payloads; only the truly
		// empty message is rejected here.
		if req.Message == "" {
			writeJSONError(w, http.StatusBadRequest, "message is required")
			return
		}
		start := time.Now()
		resp, err := svc.Encode(r.Context(), req)
		if err != nil {
			failWith(w, r, "encode", err, start)
			return
		}
		logEnd(r, "encode", http.StatusOK, start, nil)
		writeJSON(w, resp)
	}
}

// handleDecode godoc
// @Summary      Recover a hidden payload from stego text
// @Accept       json
// @Produce      json
// @Param        request body types.DecodeRequest true "Decode request"
// @Success      200 {object} types.DecodeResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      401 {object} types.ErrorResponse
// @Router       /decode [post]
func handleDecode(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DecodeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.StegoText) == "" {
			writeJSONError(w, http.StatusBadRequest, "stego_text is required")
			return
		}
		if req.Context == "" {
			writeJSONError(w, http.StatusBadRequest, "context is required")
			return
		}
		start := time.Now()
		resp, err := svc.Decode(r.Context(), req)
		if err != nil {
			failWith(w, r, "decode", err, start)
			return
		}
		logEnd(r, "decode", http.StatusOK, start, nil)
		writeJSON(w, resp)
	}
}

// handleHealth godoc
// @Summary      Service and model state
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      401 {object} types.ErrorResponse
// @Router       /health [get]
func handleHealth(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Health())
	}
}

// handleReload godoc
// @Summary      Discard and rebuild the model
// @Produce      json
// @Success      200 {object} types.AdminResponse
// @Failure      401 {object} types.ErrorResponse
// @Router       /reload [post]
func handleReload(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if err := svc.Reload(); err != nil {
			failWith(w, r, "reload", err, start)
			return
		}
		logEnd(r, "reload", http.StatusOK, start, nil)
		writeJSON(w, types.AdminResponse{
			Status:  "reloaded",
			Message: "Model has been completely reloaded",
		})
	}
}

// handleReset godoc
// @Summary      Reset model state in place
// @Produce      json
// @Success      200 {object} types.AdminResponse
// @Failure      401 {object} types.ErrorResponse
// @Router       /reset [post]
func handleReset(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if err := svc.Reset(); err != nil {
			failWith(w, r, "reset", err, start)
			return
		}
		logEnd(r, "reset", http.StatusOK, start, nil)
		writeJSON(w, types.AdminResponse{
			Status:  "reset",
			Message: "Model state has been reset",
		})
	}
}

// decodeJSON enforces the Content-Type and body-size limits, then decodes
// into dst. Numbers decode as json.Number so seed values keep precision.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// failWith maps service errors to HTTP statuses via the HTTPError
// interface; anything unrecognized is a server-side failure.
func failWith(w http.ResponseWriter, r *http.Request, op string, err error, start time.Time) {
	status := http.StatusInternalServerError
	if he, ok := err.(HTTPError); ok {
		status = he.StatusCode()
	}
	writeJSONError(w, status, err.Error())
	logEnd(r, op, status, start, err)
}

func logEnd(r *http.Request, op string, status int, start time.Time, err error) {
	if requestLogLevel(r) < LevelInfo {
		return
	}
	if zlog == nil {
		log.Printf("%s end status=%d dur=%s err=%v", op, status, time.Since(start), err)
		return
	}
	z := zlog.Info().Str("op", op).Int("status", status).Dur("dur", time.Since(start))
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg(op + " end")
}
