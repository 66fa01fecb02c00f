package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/geo"
	"github.com/Ompatel28102004/travel-saathi/internal/metrics"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

type trackerService struct {
	zones    ZoneRepository
	tourists TouristRepository
	logger   *slog.Logger
}

func NewLocationTrackerService(zones ZoneRepository, tourists TouristRepository, logger *slog.Logger) LocationTrackerService {
	return &trackerService{zones: zones, tourists: tourists, logger: logger}
}

// RecordLocation evaluates the fix against the live catalog and persists the
// current-location update together with the history append in one atomic
// repository call. The supplied timestamp is trusted; absent one, server
// time is used.
func (s *trackerService) RecordLocation(ctx context.Context, req domain.RecordLocationRequest) (domain.RecordLocationResponse, error) {
	const op = "service.Tracker.RecordLocation"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		s.logger.Warn("invalid coordinates",
			slog.String("tourist_id", req.TouristID),
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return domain.RecordLocationResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	touristID, err := uuid.Parse(req.TouristID)
	if err != nil {
		return domain.RecordLocationResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	zones, err := s.zones.List(ctx, "")
	if err != nil {
		s.logger.Error("zone catalog read failed", slog.Any("error", err))
		return domain.RecordLocationResponse{}, err
	}

	hits := geo.Evaluate(geo.Point{Lat: req.Lat, Lng: req.Lng}, zones)
	snaps := geo.Snapshots(hits)

	recordedAt := time.Now().UTC()
	if req.Timestamp != nil {
		recordedAt = req.Timestamp.UTC()
	}

	fix := &domain.LocationFix{
		ID:         uuid.New(),
		TouristID:  touristID,
		Lat:        req.Lat,
		Lng:        req.Lng,
		InsideZone: len(snaps) > 0,
		Zones:      snaps,
		RecordedAt: recordedAt,
	}

	if err := s.tourists.AppendFix(ctx, fix); err != nil {
		return domain.RecordLocationResponse{}, err
	}

	metrics.LocationChecksTotal.Inc()
	if fix.InsideZone {
		metrics.InsideZoneTotal.Inc()
		s.logger.Info("tourist inside restricted zone",
			slog.String("tourist_id", touristID.String()),
			slog.Int("zones", len(snaps)),
		)
	}

	return domain.RecordLocationResponse{InsideZone: fix.InsideZone, Zones: snaps}, nil
}

func (s *trackerService) ListTourists(ctx context.Context) ([]*domain.TouristLocation, error) {
	return s.tourists.ListWithLastLocation(ctx)
}
