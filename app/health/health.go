package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mytheresa/product-catalog/app/api"
)

// Checker reports whether a dependency is usable.
type Checker func(ctx context.Context) error

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

type Response struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

type CheckResult struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Handler serves liveness and readiness probes.
type Handler struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	timeout  time.Duration
	logger   *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		checkers: make(map[string]Checker),
		timeout:  5 * time.Second,
		logger:   logger,
	}
}

func (h *Handler) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Live always reports up while the process serves requests.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	h.write(w, http.StatusOK, Response{Status: StatusUp, Timestamp: time.Now().UTC()})
}

// Ready runs every registered checker and answers 503 if any fails.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	resp := Response{Status: StatusUp, Checks: make(map[string]CheckResult, len(names))}
	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		if err := checker(ctx); err != nil {
			h.logger.Warn("readiness check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = CheckResult{Status: StatusDown, Error: err.Error()}
			resp.Status = StatusDown
			continue
		}
		resp.Checks[name] = CheckResult{Status: StatusUp}
	}
	resp.Timestamp = time.Now().UTC()

	status := http.StatusOK
	if resp.Status == StatusDown {
		status = http.StatusServiceUnavailable
	}
	h.write(w, status, resp)
}

func (h *Handler) write(w http.ResponseWriter, status int, resp Response) {
	if err := api.WriteJSON(w, status, resp); err != nil {
		h.logger.Warn("failed to write health response", zap.Error(err))
	}
}
