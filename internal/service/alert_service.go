package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/geo"
	"github.com/Ompatel28102004/travel-saathi/internal/metrics"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
	"github.com/Ompatel28102004/travel-saathi/pkg/validator"
)

type alertService struct {
	alerts   AlertRepository
	tourists TouristRepository
	zones    ZoneRepository
	logger   *slog.Logger
}

func NewAlertLifecycleService(alerts AlertRepository, tourists TouristRepository, zones ZoneRepository, logger *slog.Logger) AlertLifecycleService {
	return &alertService{alerts: alerts, tourists: tourists, zones: zones, logger: logger}
}

// Create raises a new SOS alert. Tourist identity and the zone evaluation are
// snapshotted into the alert at creation time; later catalog or profile edits
// never rewrite an existing alert. The SOS fix is also appended to the
// tourist's location history so the map reflects the emergency position.
func (s *alertService) Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.SOSAlert, error) {
	const op = "service.Alerts.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	touristID, err := uuid.Parse(req.TouristID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tourist, err := s.tourists.Get(ctx, touristID)
	if err != nil {
		return nil, err
	}

	zones, err := s.zones.List(ctx, "")
	if err != nil {
		return nil, err
	}
	hits := geo.Evaluate(geo.Point{Lat: req.Lat, Lng: req.Lng}, zones)
	snaps := geo.Snapshots(hits)

	category := req.Category
	if category == "" {
		category = domain.CategorySOS
	}

	now := time.Now().UTC()
	alert := &domain.SOSAlert{
		ID:             uuid.New(),
		TouristID:      touristID,
		TouristName:    tourist.Name,
		TouristContact: tourist.Contact,
		Lat:            req.Lat,
		Lng:            req.Lng,
		Address:        req.Address,
		InsideZone:     len(snaps) > 0,
		Zones:          snaps,
		Category:       category,
		Status:         domain.AlertStatusActive,
		CreatedAt:      now,
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	fix := &domain.LocationFix{
		ID:         uuid.New(),
		TouristID:  touristID,
		Lat:        req.Lat,
		Lng:        req.Lng,
		InsideZone: alert.InsideZone,
		Zones:      snaps,
		RecordedAt: now,
	}
	if err := s.tourists.AppendFix(ctx, fix); err != nil {
		// The alert itself is already durable; a failed history append must
		// not fail the SOS.
		s.logger.Error("sos fix append failed",
			slog.String("alert_id", alert.ID.String()),
			slog.Any("error", err),
		)
	}

	metrics.AlertsCreatedTotal.WithLabelValues(category).Inc()
	s.logger.Info("sos alert created",
		slog.String("id", alert.ID.String()),
		slog.String("tourist_id", touristID.String()),
		slog.String("category", category),
		slog.Bool("inside_zone", alert.InsideZone),
	)
	return alert, nil
}

func (s *alertService) List(ctx context.Context, req domain.ListAlertsRequest) ([]*domain.SOSAlert, error) {
	return s.alerts.List(ctx, req)
}

func (s *alertService) ListByTourist(ctx context.Context, touristID uuid.UUID) ([]*domain.SOSAlert, error) {
	return s.alerts.ListByTourist(ctx, touristID)
}

// Respond moves the alert to investigating and records the responder's
// message. A response without text is rejected.
func (s *alertService) Respond(ctx context.Context, id uuid.UUID, response string) (*domain.SOSAlert, error) {
	const op = "service.Alerts.Respond"

	if response == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	return s.transition(ctx, id, domain.AlertStatusInvestigating, &response, nil)
}

func (s *alertService) RequestConfirmation(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error) {
	return s.transition(ctx, id, domain.AlertStatusPendingConfirmation, nil, nil)
}

// Resolve is idempotent: resolving an already-resolved alert returns it
// unchanged.
func (s *alertService) Resolve(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error) {
	alert, err := s.alerts.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.AlertTransitionsTotal.WithLabelValues(string(domain.AlertStatusResolved)).Inc()
	s.logger.Info("sos alert resolved", slog.String("id", id.String()))
	return alert, nil
}

// Update applies an admin edit. Status changes go through the transition
// table; response and assignee edits without a status change keep the current
// status.
func (s *alertService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateAlertRequest) (*domain.SOSAlert, error) {
	const op = "service.Alerts.Update"

	if req.Status == nil && req.AdminResponse == nil && req.AssignedTo == nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if req.AdminResponse != nil && *req.AdminResponse == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	current, err := s.alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	target := current.Status
	if req.Status != nil {
		target = *req.Status
		if !target.Valid() {
			return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
		}
	}

	if current.Status.Terminal() {
		if target == domain.AlertStatusResolved {
			return current, nil
		}
		return nil, fmt.Errorf("%s: %w", op, e.ErrAlertResolved)
	}

	if req.Status != nil && !domain.CanTransition(current.Status, target) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidTransition)
	}

	if target == domain.AlertStatusResolved {
		return s.Resolve(ctx, id)
	}

	return s.transition(ctx, id, target, req.AdminResponse, req.AssignedTo)
}

func (s *alertService) transition(ctx context.Context, id uuid.UUID, to domain.AlertStatus, adminResponse, assignedTo *string) (*domain.SOSAlert, error) {
	alert, err := s.alerts.Transition(ctx, id, to, adminResponse, assignedTo)
	if err != nil {
		if errors.Is(err, e.ErrAlertResolved) {
			s.logger.Warn("transition lost to resolution",
				slog.String("id", id.String()),
				slog.String("target", string(to)),
			)
		}
		return nil, err
	}

	metrics.AlertTransitionsTotal.WithLabelValues(string(to)).Inc()
	s.logger.Info("sos alert transitioned",
		slog.String("id", id.String()),
		slog.String("status", string(to)),
	)
	return alert, nil
}

func (s *alertService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.alerts.Delete(ctx, id)
}

func (s *alertService) DeleteByTourist(ctx context.Context, touristID uuid.UUID) (int64, error) {
	return s.alerts.DeleteByTourist(ctx, touristID)
}
