package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ZoneCatalogService is the admin-facing zone catalog: geometry is validated
// and canonicalized at creation, and every mutation is immediately visible to
// the next evaluation.
type ZoneCatalogService interface {
	Create(ctx context.Context, req domain.CreateZoneRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, state string) ([]*domain.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationTrackerService records position fixes and serves the map
// projection.
type LocationTrackerService interface {
	RecordLocation(ctx context.Context, req domain.RecordLocationRequest) (domain.RecordLocationResponse, error)
	ListTourists(ctx context.Context) ([]*domain.TouristLocation, error)
}

// AlertLifecycleService drives SOS alerts from creation through resolution.
type AlertLifecycleService interface {
	Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.SOSAlert, error)
	List(ctx context.Context, req domain.ListAlertsRequest) ([]*domain.SOSAlert, error)
	ListByTourist(ctx context.Context, touristID uuid.UUID) ([]*domain.SOSAlert, error)
	Respond(ctx context.Context, id uuid.UUID, response string) (*domain.SOSAlert, error)
	RequestConfirmation(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	Resolve(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateAlertRequest) (*domain.SOSAlert, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByTourist(ctx context.Context, touristID uuid.UUID) (int64, error)
}

// StatsService is the read-only dashboard projection.
type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DashboardStats, error)
	ZoneOccupancy(ctx context.Context, zoneID uuid.UUID) (int64, error)
}

// AnalysisService starts fire-and-forget anomaly analyses and exposes their
// results.
type AnalysisService interface {
	Start(ctx context.Context, touristID uuid.UUID) (uuid.UUID, error)
	ListCompleted(ctx context.Context, limit int) ([]*domain.AnalysisResult, error)
}

// Repository interfaces consumed by the services. Implemented by
// internal/storage/postgres; mocked in unit tests.

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

type AnalysisQueue interface {
	Enqueue(ctx context.Context, job domain.AnalysisJob) error
}

type AnalysisDequeuer interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.AnalysisJob, error)
}

// SeverityScorer is the collaborator contract for the anomaly-scoring model.
// The production model call lives outside this core; HeuristicScorer is the
// local default.
type SeverityScorer interface {
	Score(ctx context.Context, profile domain.BehaviorProfile) (severity int, reasoning string, err error)
}

type Service struct {
	ZoneCatalog ZoneCatalogService
	Tracker     LocationTrackerService
	Alerts      AlertLifecycleService
	Stats       StatsService
	Analysis    AnalysisService
}

func NewService(
	zoneCatalog ZoneCatalogService,
	tracker LocationTrackerService,
	alerts AlertLifecycleService,
	stats StatsService,
	analysis AnalysisService,
) *Service {
	return &Service{
		ZoneCatalog: zoneCatalog,
		Tracker:     tracker,
		Alerts:      alerts,
		Stats:       stats,
		Analysis:    analysis,
	}
}
