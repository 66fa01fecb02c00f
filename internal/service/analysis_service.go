package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
)

type analysisService struct {
	results  AnalysisRepository
	tourists TouristRepository
	queue    AnalysisQueue
	logger   *slog.Logger
}

func NewAnalysisService(results AnalysisRepository, tourists TouristRepository, queue AnalysisQueue, logger *slog.Logger) AnalysisService {
	return &analysisService{results: results, tourists: tourists, queue: queue, logger: logger}
}

// Start registers a pending analysis result and hands the job to the queue.
// The caller gets the result ID back immediately; scoring happens in the
// worker.
func (s *analysisService) Start(ctx context.Context, touristID uuid.UUID) (uuid.UUID, error) {
	tourist, err := s.tourists.Get(ctx, touristID)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now().UTC()
	res := &domain.AnalysisResult{
		ID:          uuid.New(),
		TouristID:   touristID,
		TouristName: tourist.Name,
		Status:      domain.AnalysisStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.results.Create(ctx, res); err != nil {
		return uuid.Nil, err
	}

	job := domain.AnalysisJob{
		AnalysisID: res.ID,
		TouristID:  touristID,
		EnqueuedAt: now,
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		// The pending row stays; a later retry or a manual requeue can pick
		// it up.
		s.logger.Error("analysis enqueue failed",
			slog.String("analysis_id", res.ID.String()),
			slog.Any("error", err),
		)
		return uuid.Nil, err
	}

	s.logger.Info("analysis started",
		slog.String("analysis_id", res.ID.String()),
		slog.String("tourist_id", touristID.String()),
	)
	return res.ID, nil
}

func (s *analysisService) ListCompleted(ctx context.Context, limit int) ([]*domain.AnalysisResult, error) {
	return s.results.ListByStatus(ctx, domain.AnalysisStatusCompleted, limit)
}
