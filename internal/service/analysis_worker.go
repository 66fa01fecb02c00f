package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/metrics"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

// AnalysisWorker drains the analysis queue and writes severity verdicts back
// to storage. One worker per process is enough; the queue serializes jobs.
type AnalysisWorker struct {
	dequeuer     AnalysisDequeuer
	results      AnalysisRepository
	tourists     TouristRepository
	alerts       AlertRepository
	scorer       SeverityScorer
	logger       *slog.Logger
	timeout      time.Duration
	historyLimit int
}

func NewAnalysisWorker(
	dequeuer AnalysisDequeuer,
	results AnalysisRepository,
	tourists TouristRepository,
	alerts AlertRepository,
	scorer SeverityScorer,
	logger *slog.Logger,
	timeout time.Duration,
	historyLimit int,
) *AnalysisWorker {
	return &AnalysisWorker{
		dequeuer:     dequeuer,
		results:      results,
		tourists:     tourists,
		alerts:       alerts,
		scorer:       scorer,
		logger:       logger,
		timeout:      timeout,
		historyLimit: historyLimit,
	}
}

func (w *AnalysisWorker) Run(ctx context.Context) {
	w.logger.Info("analysis worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("analysis worker stopped")
			return
		default:
		}

		job, err := w.dequeuer.Dequeue(ctx, w.timeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Error("analysis dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.process(ctx, job)
	}
}

func (w *AnalysisWorker) process(ctx context.Context, job domain.AnalysisJob) {
	profile, err := w.buildProfile(ctx, job)
	if err != nil {
		w.fail(ctx, job, fmt.Sprintf("profile build failed: %v", err))
		return
	}

	severity, reasoning, err := w.scorer.Score(ctx, profile)
	if err != nil {
		w.fail(ctx, job, fmt.Sprintf("scoring failed: %v", err))
		return
	}

	if err := w.results.Complete(ctx, job.AnalysisID, severity, reasoning); err != nil {
		w.logger.Error("analysis completion write failed",
			slog.String("analysis_id", job.AnalysisID.String()),
			slog.Any("error", err),
		)
		return
	}

	metrics.AnalysisJobsTotal.WithLabelValues(string(domain.AnalysisStatusCompleted)).Inc()
	w.logger.Info("analysis completed",
		slog.String("analysis_id", job.AnalysisID.String()),
		slog.Int("severity", severity),
	)
}

func (w *AnalysisWorker) buildProfile(ctx context.Context, job domain.AnalysisJob) (domain.BehaviorProfile, error) {
	tourist, err := w.tourists.Get(ctx, job.TouristID)
	if err != nil {
		return domain.BehaviorProfile{}, err
	}

	fixes, err := w.tourists.RecentFixes(ctx, job.TouristID, w.historyLimit)
	if err != nil {
		return domain.BehaviorProfile{}, err
	}

	alerts, err := w.alerts.ListByTourist(ctx, job.TouristID)
	if err != nil {
		return domain.BehaviorProfile{}, err
	}
	active := 0
	for _, a := range alerts {
		if !a.Status.Terminal() {
			active++
		}
	}

	seen := make(map[string]struct{})
	var visited []string
	for _, fix := range fixes {
		for _, z := range fix.Zones {
			if _, ok := seen[z.Name]; ok {
				continue
			}
			seen[z.Name] = struct{}{}
			visited = append(visited, z.Name)
		}
	}

	return domain.BehaviorProfile{
		TouristName:  tourist.Name,
		VisitedZones: visited,
		HistoryLen:   len(fixes),
		InsideZone:   tourist.InsideRestrictedZone(),
		ActiveAlerts: active,
	}, nil
}

func (w *AnalysisWorker) fail(ctx context.Context, job domain.AnalysisJob, reason string) {
	if err := w.results.Fail(ctx, job.AnalysisID, reason); err != nil {
		w.logger.Error("analysis failure write failed",
			slog.String("analysis_id", job.AnalysisID.String()),
			slog.Any("error", err),
		)
		return
	}
	metrics.AnalysisJobsTotal.WithLabelValues(string(domain.AnalysisStatusFailed)).Inc()
	w.logger.Warn("analysis failed",
		slog.String("analysis_id", job.AnalysisID.String()),
		slog.String("reason", reason),
	)
}

// HeuristicScorer is the default local severity model: restricted-zone
// presence and open alerts dominate the score, thin history adds uncertainty.
type HeuristicScorer struct{}

func (HeuristicScorer) Score(_ context.Context, profile domain.BehaviorProfile) (int, string, error) {
	severity := 1
	reasoning := "no anomalies in recent movement"

	if profile.HistoryLen == 0 {
		return 3, "no location history available for assessment", nil
	}
	if profile.InsideZone {
		severity += 4
		reasoning = fmt.Sprintf("currently inside a restricted zone (%d visited recently)", len(profile.VisitedZones))
	} else if len(profile.VisitedZones) > 0 {
		severity += 2
		reasoning = fmt.Sprintf("entered %d restricted zone(s) recently", len(profile.VisitedZones))
	}
	if profile.ActiveAlerts > 0 {
		severity += 3
		reasoning = fmt.Sprintf("%s; %d unresolved alert(s)", reasoning, profile.ActiveAlerts)
	}
	if severity > 10 {
		severity = 10
	}
	return severity, reasoning, nil
}
