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

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// CountActiveTourists counts distinct tourists with at least one fix inside
// the recency window.
func (p *StatsRepo) CountActiveTourists(ctx context.Context, window time.Duration) (int64, error) {
	const op = "postgres.Stats.CountActiveTourists"

	if window <= 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(DISTINCT tourist_id)
		FROM location_fixes
		WHERE recorded_at >= NOW() - ($1 * INTERVAL '1 second')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, int64(window.Seconds())).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

func (p *StatsRepo) CountAlertsByStatus(ctx context.Context) (map[domain.AlertStatus]int64, error) {
	const op = "postgres.Stats.CountAlertsByStatus"

	rows, err := p.pool.Query(ctx, `SELECT status, COUNT(*) FROM sos_alerts GROUP BY status`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := make(map[domain.AlertStatus]int64)
	for rows.Next() {
		var (
			status domain.AlertStatus
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return counts, nil
}

// CountZoneOccupancy counts tourists whose current location lies inside the
// given zone, via jsonb containment on the denormalized zone snapshots.
func (p *StatsRepo) CountZoneOccupancy(ctx context.Context, zoneID uuid.UUID) (int64, error) {
	const op = "postgres.Stats.CountZoneOccupancy"

	const query = `
		SELECT COUNT(*)
		FROM tourists
		WHERE last_zones @> jsonb_build_array(jsonb_build_object('zone_id', $1::text))
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, zoneID.String()).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("zone_id", zoneID.String()))
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}
