package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/pkg/validator"
)

type statsService struct {
	stats             StatsRepository
	defaultWindowDays int
}

func NewStatsService(stats StatsRepository, defaultWindowDays int) StatsService {
	return &statsService{stats: stats, defaultWindowDays: defaultWindowDays}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.DashboardStats, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	days := req.WindowDays
	if days == 0 {
		days = s.defaultWindowDays
	}

	active, err := s.stats.CountActiveTourists(ctx, time.Duration(days)*24*time.Hour)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.stats.CountAlertsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		ActiveTourists: active,
		AlertsByStatus: byStatus,
		WindowDays:     days,
	}, nil
}

func (s *statsService) ZoneOccupancy(ctx context.Context, zoneID uuid.UUID) (int64, error) {
	return s.stats.CountZoneOccupancy(ctx, zoneID)
}
