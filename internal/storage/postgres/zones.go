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

type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

func (p *ZoneRepo) Create(ctx context.Context, zone *domain.Zone) error {
	const op = "postgres.Zone.Create"

	const query = `
		INSERT INTO zones (id, name, state, country_type, allowed_gender, boundary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.State,
		zone.CountryType,
		zone.AllowedGender,
		zone.Boundary,
		zone.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const zoneColumns = `id, name, state, country_type, allowed_gender, boundary, created_at`

func scanZone(row pgx.Row) (*domain.Zone, error) {
	var z domain.Zone
	err := row.Scan(
		&z.ID,
		&z.Name,
		&z.State,
		&z.CountryType,
		&z.AllowedGender,
		&z.Boundary,
		&z.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (p *ZoneRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	const op = "postgres.Zone.Get"

	zone, err := scanZone(p.pool.QueryRow(ctx,
		`SELECT `+zoneColumns+` FROM zones WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return zone, nil
}

// List returns every zone, or only the zones of one administrative region
// when state is non-empty. Every evaluation reads through here, so there is
// no staleness window between catalog mutation and the next location check.
func (p *ZoneRepo) List(ctx context.Context, state string) ([]*domain.Zone, error) {
	const op = "postgres.Zone.List"

	query := `SELECT ` + zoneColumns + ` FROM zones ORDER BY created_at DESC`
	args := []any{}
	if state != "" {
		query = `SELECT ` + zoneColumns + ` FROM zones WHERE state = $1 ORDER BY created_at DESC`
		args = append(args, state)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var zones []*domain.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return zones, nil
}

func (p *ZoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Zone.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}
