package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/service"
	mock_service "github.com/Ompatel28102004/travel-saathi/internal/service/mocks"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

func TestStatsService_GetStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)

	stats.EXPECT().
		CountActiveTourists(gomock.Any(), 7*24*time.Hour).
		Return(int64(12), nil).
		Times(1)
	stats.EXPECT().
		CountAlertsByStatus(gomock.Any()).
		Return(map[domain.AlertStatus]int64{
			domain.AlertStatusActive:   3,
			domain.AlertStatusResolved: 9,
		}, nil).
		Times(1)

	svc := service.NewStatsService(stats, 7)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ActiveTourists != 12 {
		t.Fatalf("expected 12 active tourists got %d", got.ActiveTourists)
	}
	if got.WindowDays != 7 {
		t.Fatalf("expected default window=7 got %d", got.WindowDays)
	}
	if got.AlertsByStatus[domain.AlertStatusActive] != 3 {
		t.Fatalf("unexpected counts: %+v", got.AlertsByStatus)
	}
}

func TestStatsService_GetStats_ExplicitWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)

	stats.EXPECT().
		CountActiveTourists(gomock.Any(), 30*24*time.Hour).
		Return(int64(40), nil).
		Times(1)
	stats.EXPECT().
		CountAlertsByStatus(gomock.Any()).
		Return(map[domain.AlertStatus]int64{}, nil).
		Times(1)

	svc := service.NewStatsService(stats, 7)

	got, err := svc.GetStats(context.Background(), domain.StatsRequest{WindowDays: 30})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.WindowDays != 30 {
		t.Fatalf("expected window=30 got %d", got.WindowDays)
	}
}

func TestStatsService_GetStats_WindowTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	svc := service.NewStatsService(stats, 7)

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{WindowDays: 365})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	stats.EXPECT().
		CountActiveTourists(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("db down")).
		Times(1)

	svc := service.NewStatsService(stats, 7)

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestStatsService_ZoneOccupancy_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)

	zoneID := mustUUID(t)
	stats.EXPECT().CountZoneOccupancy(gomock.Any(), zoneID).Return(int64(5), nil).Times(1)

	svc := service.NewStatsService(stats, 7)

	n, err := svc.ZoneOccupancy(context.Background(), zoneID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 got %d", n)
	}
}
