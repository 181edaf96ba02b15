package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aidchain/contract"
	"aidchain/internal/gateway/stats"
)

// Service is the read-model surface the HTTP layer depends on.
type Service interface {
	Overview(ctx context.Context) (stats.Overview, error)
	Packages(ctx context.Context) ([]contract.AidPackageView, error)
	Recipients(ctx context.Context) ([]contract.RecipientProfileView, error)
}

// Handler wires the dashboard routes onto a chi router.
type Handler struct {
	logger *slog.Logger
	svc    Service
}

func New(logger *slog.Logger, svc Service) *Handler {
	return &Handler{logger: logger, svc: svc}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/v1/stats", h.getStats)
	r.Get("/api/v1/packages", h.getPackages)
	r.Get("/api/v1/recipients", h.getRecipients)
	r.Get("/healthz", h.getHealth)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		h.upstreamError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) getPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.svc.Packages(r.Context())
	if err != nil {
		h.upstreamError(w, "packages", err)
		return
	}
	if packages == nil {
		packages = []contract.AidPackageView{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"packages": packages})
}

func (h *Handler) getRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.svc.Recipients(r.Context())
	if err != nil {
		h.upstreamError(w, "recipients", err)
		return
	}
	if recipients == nil {
		recipients = []contract.RecipientProfileView{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"recipients": recipients})
}

func (h *Handler) getHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) upstreamError(w http.ResponseWriter, route string, err error) {
	h.logger.Error("upstream read failed", "route", route, "error", err)
	h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "chain read failed"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response", "error", err)
	}
}
