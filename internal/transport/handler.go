package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/engine"
	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Handler serves the JSON control API.
type Handler struct {
	control Control
	matches MatchLister
	metrics Metrics
	logger  *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(control Control, matches MatchLister, metrics Metrics, logger *zap.Logger) (*Handler, error) {
	if control == nil {
		return nil, errors.New("control is required")
	}
	if matches == nil {
		return nil, errors.New("match lister is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	return &Handler{
		control: control,
		matches: matches,
		metrics: metrics,
		logger:  logger.Named("http_api"),
	}, nil
}

// Routes registers the API on a new mux. The websocket hub is mounted at /ws
// when it is not nil.
func (h *Handler) Routes(hub http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stats", h.observe("/api/stats", h.stats))
	mux.HandleFunc("GET /api/matches", h.observe("/api/matches", h.recentMatches))
	mux.HandleFunc("POST /api/start", h.observe("/api/start", h.start))
	mux.HandleFunc("POST /api/stop", h.observe("/api/stop", h.stop))
	mux.HandleFunc("GET /health", h.observe("/health", h.health))
	if hub != nil {
		mux.Handle("GET /ws", hub)
	}
	return cors.Default().Handler(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *Handler) observe(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		h.metrics.Observe(route, rec.code, start)
	}
}

func (h *Handler) stats(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.control.Snapshot())
}

func (h *Handler) recentMatches(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	matches, err := h.matches.RecentMatches(r.Context(), limit)
	if err != nil {
		h.logger.Error("list matches", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "matches unavailable"})
		return
	}
	if matches == nil {
		matches = []model.MatchRecord{}
	}
	h.writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) start(w http.ResponseWriter, _ *http.Request) {
	started, err := h.control.Start()
	if err != nil {
		h.writeJSON(w, controlErrorCode(err), errorResponse{Error: err.Error()})
		return
	}
	status := startStatus(started, nil)
	h.writeJSON(w, http.StatusOK, ControlResponse{
		Changed: started,
		State:   h.control.Snapshot().State,
		Message: status.Message,
	})
}

func (h *Handler) stop(w http.ResponseWriter, _ *http.Request) {
	stopped := h.control.Stop()
	h.writeJSON(w, http.StatusOK, ControlResponse{
		Changed: stopped,
		State:   h.control.Snapshot().State,
		Message: MessageStopped,
	})
}

// health reports 503 until the target set is loaded.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	health := h.control.Health()
	code := http.StatusOK
	if !health.TargetsLoaded {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, health)
}

func controlErrorCode(err error) int {
	switch {
	case errors.Is(err, engine.ErrStopping):
		return http.StatusConflict
	case errors.Is(err, engine.ErrNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
