package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LocationRecorder interface {
	RecordLocation(ctx context.Context, req domain.RecordLocationRequest) (domain.RecordLocationResponse, error)
}

type AlertCreator interface {
	Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.SOSAlert, error)
}

type AnalysisStarter interface {
	Start(ctx context.Context, touristID uuid.UUID) (uuid.UUID, error)
}

type Handler struct {
	logger   *slog.Logger
	Tracker  LocationRecorder
	Alerts   AlertCreator
	Analysis AnalysisStarter
}

func NewHandler(logger *slog.Logger, tracker LocationRecorder, alerts AlertCreator, analysis AnalysisStarter) *Handler {
	return &Handler{
		logger:   logger,
		Tracker:  tracker,
		Alerts:   alerts,
		Analysis: analysis,
	}
}

func (h *Handler) PublicLocationCheck(w http.ResponseWriter, r *http.Request) {
	var req domain.RecordLocationRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// reject trailing data after the first JSON object
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	resp, err := h.Tracker.RecordLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PublicAlertCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateAlertRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	alert, err := h.Alerts.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	l.Info("sos alert accepted",
		slog.String("id", alert.ID.String()),
		slog.String("tourist_id", alert.TouristID.String()),
	)
	h.writeJSON(w, http.StatusCreated, alert)
}

func (h *Handler) PublicAnalysisStart(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "touristId")
	touristID, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid tourist id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	analysisID, err := h.Analysis.Start(r.Context(), touristID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	// 202: scoring happens in the worker, poll the admin analysis listing
	h.writeJSON(w, http.StatusAccepted, map[string]string{
		"analysis_id": analysisID.String(),
		"status":      string(domain.AnalysisStatusPending),
	})
}
