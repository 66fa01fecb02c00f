package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneCatalog interface {
	Create(ctx context.Context, req domain.CreateZoneRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, state string) ([]*domain.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TouristLister interface {
	ListTourists(ctx context.Context) ([]*domain.TouristLocation, error)
}

type AlertAdmin interface {
	List(ctx context.Context, req domain.ListAlertsRequest) ([]*domain.SOSAlert, error)
	ListByTourist(ctx context.Context, touristID uuid.UUID) ([]*domain.SOSAlert, error)
	Respond(ctx context.Context, id uuid.UUID, response string) (*domain.SOSAlert, error)
	RequestConfirmation(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	Resolve(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateAlertRequest) (*domain.SOSAlert, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTourist(ctx context.Context, touristID uuid.UUID) (int64, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DashboardStats, error)
	ZoneOccupancy(ctx context.Context, zoneID uuid.UUID) (int64, error)
}

type AnalysisReader interface {
	ListCompleted(ctx context.Context, limit int) ([]*domain.AnalysisResult, error)
}

type Handler struct {
	logger   *slog.Logger
	Zones    ZoneCatalog
	Tourists TouristLister
	Alerts   AlertAdmin
	Stats    StatsGetter
	Analysis AnalysisReader
}

func NewHandler(logger *slog.Logger, zones ZoneCatalog, tourists TouristLister, alerts AlertAdmin, stats StatsGetter, analysis AnalysisReader) *Handler {
	return &Handler{
		logger:   logger,
		Zones:    zones,
		Tourists: tourists,
		Alerts:   alerts,
		Stats:    stats,
		Analysis: analysis,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// --- zones ---

func (h *Handler) AdminZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating zone",
		slog.String("name", req.Name),
		slog.String("state", req.State),
		slog.Int("vertices", len(req.Boundary)),
	)

	id, err := h.Zones.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminZoneList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	state := r.URL.Query().Get("state")

	zones, err := h.Zones.List(r.Context(), state)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zones listed", slog.Int("count", len(zones)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": zones,
		"total": len(zones),
	})
}

func (h *Handler) AdminZoneGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	zone, err := h.Zones.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) AdminZoneDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Zones.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminZoneOccupancy(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneOccupancy", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	count, err := h.Stats.ZoneOccupancy(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"zone_id":  id.String(),
		"tourists": count,
	})
}

// --- tourists ---

func (h *Handler) AdminTouristList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminTouristList", slog.String("remote", r.RemoteAddr))

	tourists, err := h.Tourists.ListTourists(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("tourists listed", slog.Int("count", len(tourists)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"tourists": tourists,
		"total":    len(tourists),
	})
}

// --- alerts ---

func (h *Handler) AdminAlertList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	req := domain.ListAlertsRequest{
		Status: domain.AlertStatus(q.Get("status")),
		Search: q.Get("q"),
		Sort:   q.Get("sort"),
	}
	if req.Status != "" && !req.Status.Valid() {
		l.Warn("invalid status filter", slog.String("status", string(req.Status)))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	alerts, err := h.Alerts.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alerts listed", slog.Int("count", len(alerts)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

func (h *Handler) AdminAlertListByTourist(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertListByTourist", slog.String("remote", r.RemoteAddr))

	touristID, ok := h.parseID(w, r, "touristId")
	if !ok {
		return
	}

	alerts, err := h.Alerts.ListByTourist(r.Context(), touristID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

func (h *Handler) AdminAlertUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	alert, err := h.Alerts.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) AdminAlertRespond(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertRespond", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	alert, err := h.Alerts.Respond(r.Context(), id, body.Response)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert responded", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) AdminAlertConfirm(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertConfirm", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	alert, err := h.Alerts.RequestConfirmation(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) AdminAlertResolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertResolve", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	alert, err := h.Alerts.Resolve(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert resolved", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) AdminAlertDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Alerts.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminAlertDeleteByTourist(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAlertDeleteByTourist", slog.String("remote", r.RemoteAddr))

	touristID, ok := h.parseID(w, r, "touristId")
	if !ok {
		return
	}

	deleted, err := h.Alerts.DeleteByTourist(r.Context(), touristID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("tourist alerts purged",
		slog.String("tourist_id", touristID.String()),
		slog.Int64("deleted", deleted),
	)
	h.writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// --- stats / analysis ---

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	days := parseInt(r.URL.Query().Get("days"), 0)

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{WindowDays: days})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("window_days", stats.WindowDays))
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) AdminAnalysisList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminAnalysisList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	limit := parseInt(r.URL.Query().Get("limit"), 10)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	results, err := h.Analysis.ListCompleted(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"total":   len(results),
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
