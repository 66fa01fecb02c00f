package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

type AnalysisRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAnalysisRepo(pool *pgxpool.Pool, logger *slog.Logger) *AnalysisRepo {
	return &AnalysisRepo{pool: pool, logger: logger}
}

func (p *AnalysisRepo) Create(ctx context.Context, res *domain.AnalysisResult) error {
	const op = "postgres.Analysis.Create"

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	if res.Status == "" {
		res.Status = domain.AnalysisStatusPending
	}
	now := time.Now().UTC()
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}
	res.UpdatedAt = res.CreatedAt

	const query = `
		INSERT INTO analysis_results (id, tourist_id, tourist_name, status, severity, reasoning, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := p.pool.Exec(ctx, query,
		res.ID,
		res.TouristID,
		res.TouristName,
		res.Status,
		res.Severity,
		res.Reasoning,
		res.CreatedAt,
		res.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AnalysisRepo) Complete(ctx context.Context, id uuid.UUID, severity int, reasoning string) error {
	const op = "postgres.Analysis.Complete"

	const query = `
		UPDATE analysis_results
		SET status = 'completed', severity = $2, reasoning = $3, updated_at = $4
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, severity, reasoning, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AnalysisRepo) Fail(ctx context.Context, id uuid.UUID, reasoning string) error {
	const op = "postgres.Analysis.Fail"

	const query = `
		UPDATE analysis_results
		SET status = 'failed', reasoning = $2, updated_at = $3
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, reasoning, time.Now().UTC())
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AnalysisRepo) ListByStatus(ctx context.Context, status domain.AnalysisStatus, limit int) ([]*domain.AnalysisResult, error) {
	const op = "postgres.Analysis.ListByStatus"

	if limit <= 0 || limit > 100 {
		limit = 10
	}

	const query = `
		SELECT id, tourist_id, tourist_name, status, severity, reasoning, created_at, updated_at
		FROM analysis_results
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, status, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var results []*domain.AnalysisResult
	for rows.Next() {
		var r domain.AnalysisResult
		if err := rows.Scan(&r.ID, &r.TouristID, &r.TouristName, &r.Status, &r.Severity, &r.Reasoning, &r.CreatedAt, &r.UpdatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return results, nil
}
