package app

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"

	"wordlife/internal/platform/errors"
	"wordlife/internal/platform/timeouts"
	"wordlife/internal/prompt"
	"wordlife/internal/storage/resultcache"
	"wordlife/internal/word"
	"wordlife/pkg/sims/life"
)

const tracerName = "wordlife/internal/services/simulate"

// HandlerConfig holds the per-request policy of the HTTP routes.
type HandlerConfig struct {
	// Run holds grid size and generation cap defaults for /simulate.
	Run life.Config
	// Limits bounds the rows, cols and max_generations a request may ask
	// for. The zero value applies life.DefaultLimits.
	Limits life.Limits
	// CaseMode is applied to words received on /simulate.
	CaseMode word.CaseMode
	// Tool answers /prompt requests.
	Tool *prompt.Tool
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
	// PromptTimeout bounds a single /prompt request.
	PromptTimeout time.Duration
	// Cache, when set, serves repeated /simulate runs from disk.
	Cache *resultcache.Store
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type promptResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHandler builds the HTTP routes.
func NewHandler(cfg HandlerConfig) http.Handler {
	if cfg.Run.MaxGenerations == 0 {
		cfg.Run = life.DefaultConfig()
	}
	if cfg.Limits == (life.Limits{}) {
		cfg.Limits = life.DefaultLimits()
	}
	if cfg.CaseMode == "" {
		cfg.CaseMode = word.CaseLower
	}
	if cfg.Tool == nil {
		cfg.Tool = prompt.NewTool(prompt.Options{Config: cfg.Run})
	}
	if cfg.PromptTimeout <= 0 {
		cfg.PromptTimeout = timeouts.Request
	}
	h := &handler{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.health)
	mux.HandleFunc("GET /up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /simulate", h.simulate)
	mux.HandleFunc("POST /prompt", h.prompt)
	return withCORS(cfg.AllowedOrigins, mux)
}

type handler struct {
	cfg HandlerConfig
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK", Message: "Conway service is running"})
}

func (h *handler) simulate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "simulate")
	defer span.End()

	query := r.URL.Query()
	res, err := h.runWord(ctx, query.Get("word"), query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		writeError(w, err)
		return
	}
	span.SetAttributes(
		attribute.Int("simulation.generations", res.Generations),
		attribute.Int("simulation.score", res.Score),
		attribute.String("simulation.state", res.State.String()),
	)
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) runWord(ctx context.Context, raw string, query url.Values) (life.Result, error) {
	prepared, err := word.Prepare(raw, h.cfg.CaseMode)
	switch {
	case stderrors.Is(err, word.ErrEmpty):
		return life.Result{}, errors.Wrap(errors.CodeWordRequired, "word is required", err)
	case stderrors.Is(err, word.ErrNotASCII):
		return life.Result{}, errors.Wrap(errors.CodeWordNotASCII, "Word must contain only ASCII characters", err)
	case err != nil:
		return life.Result{}, errors.Wrap(errors.CodeInvalidArgument, "invalid word", err)
	}

	cfg, err := runConfig(h.cfg.Run, query)
	if err != nil {
		return life.Result{}, err
	}
	if err := h.cfg.Limits.Check(cfg); err != nil {
		return life.Result{}, errors.Wrap(errors.CodeInvalidArgument, err.Error(), err)
	}
	res, err := h.cfg.Cache.Simulate(ctx, prepared, cfg)
	var writeErr *resultcache.WriteError
	if stderrors.As(err, &writeErr) {
		log.Printf("simulate %q: %v", prepared, err)
		err = nil
	}
	if err != nil {
		return life.Result{}, errors.Wrap(errors.CodeSimulationFailed, "simulation failed", err).
			WithMetadata(map[string]string{"word_length": strconv.Itoa(len(prepared)), "grid": cfg.Size.String()})
	}
	return res, nil
}

// runConfig applies optional rows, cols and max_generations overrides.
func runConfig(base life.Config, query url.Values) (life.Config, error) {
	cfg := base
	fields := []struct {
		key string
		dst *int
	}{
		{"rows", &cfg.Size.Rows},
		{"cols", &cfg.Size.Cols},
		{"max_generations", &cfg.MaxGenerations},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(query.Get(f.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return life.Config{}, errors.New(errors.CodeInvalidArgument, f.key+" must be a positive integer")
		}
		*f.dst = v
	}
	return cfg, nil
}

func (h *handler) prompt(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "prompt")
	defer span.End()

	text := strings.TrimSpace(r.URL.Query().Get("prompt"))
	if text == "" {
		writeError(w, errors.New(errors.CodePromptRequired, "prompt is required"))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, h.cfg.PromptTimeout)
	defer cancel()

	writeJSON(w, http.StatusOK, promptResponse{Response: h.cfg.Tool.Handle(ctx, text)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	domainErr := errors.As(err)
	status := domainErr.Code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Printf("request failed: code=%s err=%v metadata=%v", domainErr.Code, err, domainErr.Metadata)
	}
	writeJSON(w, status, errorResponse{Detail: domainErr.Message})
}

// withCORS answers preflight requests and tags responses for allowed origins.
func withCORS(origins []string, next http.Handler) http.Handler {
	allowAll := len(origins) == 0 || slices.Contains(origins, "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !(allowAll || slices.Contains(origins, origin)) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
