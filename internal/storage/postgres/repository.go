package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
)

type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, state string) ([]*domain.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TouristRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Tourist, error)
	AppendFix(ctx context.Context, fix *domain.LocationFix) error
	ListWithLastLocation(ctx context.Context) ([]*domain.TouristLocation, error)
	RecentFixes(ctx context.Context, touristID uuid.UUID, limit int) ([]*domain.LocationFix, error)
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.SOSAlert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	List(ctx context.Context, req domain.ListAlertsRequest) ([]*domain.SOSAlert, error)
	ListByTourist(ctx context.Context, touristID uuid.UUID) ([]*domain.SOSAlert, error)
	Transition(ctx context.Context, id uuid.UUID, to domain.AlertStatus, adminResponse, assignedTo *string) (*domain.SOSAlert, error)
	Resolve(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTourist(ctx context.Context, touristID uuid.UUID) (int64, error)
}

type AnalysisRepository interface {
	Create(ctx context.Context, res *domain.AnalysisResult) error
	Complete(ctx context.Context, id uuid.UUID, severity int, reasoning string) error
	Fail(ctx context.Context, id uuid.UUID, reasoning string) error
	ListByStatus(ctx context.Context, status domain.AnalysisStatus, limit int) ([]*domain.AnalysisResult, error)
}

type StatsRepository interface {
	CountActiveTourists(ctx context.Context, window time.Duration) (int64, error)
	CountAlertsByStatus(ctx context.Context) (map[domain.AlertStatus]int64, error)
	CountZoneOccupancy(ctx context.Context, zoneID uuid.UUID) (int64, error)
}

func (p *Postgres) Zones() ZoneRepository        { return p.Zone }
func (p *Postgres) Tourists() TouristRepository  { return p.Tourist }
func (p *Postgres) Alerts() AlertRepository      { return p.Alert }
func (p *Postgres) Analyses() AnalysisRepository { return p.Analysis }
func (p *Postgres) Stats() StatsRepository       { return p.Stat }
