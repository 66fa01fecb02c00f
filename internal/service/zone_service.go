package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/geo"
	"github.com/Ompatel28102004/travel-saathi/pkg/validator"
)

type zoneCatalogService struct {
	zones  ZoneRepository
	logger *slog.Logger
}

func NewZoneCatalogService(zones ZoneRepository, logger *slog.Logger) ZoneCatalogService {
	return &zoneCatalogService{zones: zones, logger: logger}
}

func (s *zoneCatalogService) Create(ctx context.Context, req domain.CreateZoneRequest) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, err
	}

	// Geometry is canonicalized once here; evaluations read the stored ring
	// as-is.
	ring, err := geo.NormalizeRing(req.Boundary)
	if err != nil {
		s.logger.Warn("zone geometry rejected",
			slog.String("name", req.Name),
			slog.Int("vertices", len(req.Boundary)),
			slog.Any("error", err),
		)
		return uuid.Nil, err
	}

	gender := req.AllowedGender
	if gender == "" {
		gender = domain.GenderBoth
	}

	zone := &domain.Zone{
		ID:            uuid.New(),
		Name:          req.Name,
		State:         req.State,
		CountryType:   req.CountryType,
		AllowedGender: gender,
		Boundary:      ring,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.zones.Create(ctx, zone); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("zone created",
		slog.String("id", zone.ID.String()),
		slog.String("name", zone.Name),
		slog.String("state", zone.State),
	)
	return zone.ID, nil
}

func (s *zoneCatalogService) Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	return s.zones.Get(ctx, id)
}

func (s *zoneCatalogService) List(ctx context.Context, state string) ([]*domain.Zone, error) {
	return s.zones.List(ctx, state)
}

func (s *zoneCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.zones.Delete(ctx, id)
}
