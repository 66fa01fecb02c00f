package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

type TouristRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTouristRepo(pool *pgxpool.Pool, logger *slog.Logger) *TouristRepo {
	return &TouristRepo{pool: pool, logger: logger}
}

func (p *TouristRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Tourist, error) {
	const op = "postgres.Tourist.Get"

	const query = `
		SELECT id, name, contact, last_lat, last_lng, last_inside_zone, last_zones, last_fix_at
		FROM tourists
		WHERE id = $1
	`

	t, err := scanTourist(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return t, nil
}

func scanTourist(row pgx.Row) (*domain.Tourist, error) {
	var (
		t        domain.Tourist
		lat, lng *float64
		inside   *bool
		zones    []domain.ZoneSnapshot
		fixAt    *time.Time
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Contact, &lat, &lng, &inside, &zones, &fixAt); err != nil {
		return nil, err
	}
	if fixAt != nil {
		t.Current = &domain.LocationFix{
			TouristID:  t.ID,
			Lat:        *lat,
			Lng:        *lng,
			InsideZone: inside != nil && *inside,
			Zones:      zones,
			RecordedAt: *fixAt,
		}
	}
	return &t, nil
}

// AppendFix writes the history row and the denormalized current location in
// one transaction. The UPDATE takes the tourist's row lock first, so
// concurrent appends for the same tourist serialize and a reader can never
// see the current location without the matching history entry.
func (p *TouristRepo) AppendFix(ctx context.Context, fix *domain.LocationFix) error {
	const op = "postgres.Tourist.AppendFix"

	if fix == nil || fix.TouristID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if fix.ID == uuid.Nil {
		fix.ID = uuid.New()
	}
	if fix.RecordedAt.IsZero() {
		fix.RecordedAt = time.Now().UTC()
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	const updateQuery = `
		UPDATE tourists
		SET last_lat = $2,
			last_lng = $3,
			last_inside_zone = $4,
			last_zones = $5,
			last_fix_at = $6
		WHERE id = $1
	`

	cmd, err := tx.Exec(ctx, updateQuery,
		fix.TouristID,
		fix.Lat,
		fix.Lng,
		fix.InsideZone,
		fix.Zones,
		fix.RecordedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	const insertQuery = `
		INSERT INTO location_fixes (id, tourist_id, lat, lng, inside_zone, zones, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := tx.Exec(ctx, insertQuery,
		fix.ID,
		fix.TouristID,
		fix.Lat,
		fix.Lng,
		fix.InsideZone,
		fix.Zones,
		fix.RecordedAt,
	); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *TouristRepo) ListWithLastLocation(ctx context.Context) ([]*domain.TouristLocation, error) {
	const op = "postgres.Tourist.ListWithLastLocation"

	const query = `
		SELECT id, name, contact, last_lat, last_lng, last_inside_zone, last_zones, last_fix_at
		FROM tourists
		ORDER BY last_fix_at DESC NULLS LAST
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []*domain.TouristLocation
	for rows.Next() {
		t, err := scanTourist(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, &domain.TouristLocation{
			TouristID: t.ID,
			Name:      t.Name,
			Contact:   t.Contact,
			Current:   t.Current,
		})
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

// RecentFixes returns up to limit fixes for one tourist, newest first.
func (p *TouristRepo) RecentFixes(ctx context.Context, touristID uuid.UUID, limit int) ([]*domain.LocationFix, error) {
	const op = "postgres.Tourist.RecentFixes"

	if limit <= 0 || limit > 500 {
		limit = 50
	}

	const query = `
		SELECT id, tourist_id, lat, lng, inside_zone, zones, recorded_at
		FROM location_fixes
		WHERE tourist_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, touristID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var fixes []*domain.LocationFix
	for rows.Next() {
		var f domain.LocationFix
		if err := rows.Scan(&f.ID, &f.TouristID, &f.Lat, &f.Lng, &f.InsideZone, &f.Zones, &f.RecordedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		fixes = append(fixes, &f)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return fixes, nil
}
