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

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `id, tourist_id, tourist_name, tourist_contact, lat, lng, address,
	inside_zone, zones, category, status, admin_response, assigned_to, created_at`

func scanAlert(row pgx.Row) (*domain.SOSAlert, error) {
	var a domain.SOSAlert
	err := row.Scan(
		&a.ID,
		&a.TouristID,
		&a.TouristName,
		&a.TouristContact,
		&a.Lat,
		&a.Lng,
		&a.Address,
		&a.InsideZone,
		&a.Zones,
		&a.Category,
		&a.Status,
		&a.AdminResponse,
		&a.AssignedTo,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (p *AlertRepo) Create(ctx context.Context, alert *domain.SOSAlert) error {
	const op = "postgres.Alert.Create"

	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	if alert.Status == "" {
		alert.Status = domain.AlertStatusActive
	}

	const query = `
		INSERT INTO sos_alerts (id, tourist_id, tourist_name, tourist_contact, lat, lng, address,
			inside_zone, zones, category, status, admin_response, assigned_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := p.pool.Exec(ctx, query,
		alert.ID,
		alert.TouristID,
		alert.TouristName,
		alert.TouristContact,
		alert.Lat,
		alert.Lng,
		alert.Address,
		alert.InsideZone,
		alert.Zones,
		alert.Category,
		alert.Status,
		alert.AdminResponse,
		alert.AssignedTo,
		alert.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error) {
	const op = "postgres.Alert.Get"

	a, err := scanAlert(p.pool.QueryRow(ctx,
		`SELECT `+alertColumns+` FROM sos_alerts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *AlertRepo) List(ctx context.Context, req domain.ListAlertsRequest) ([]*domain.SOSAlert, error) {
	const op = "postgres.Alert.List"

	query := `SELECT ` + alertColumns + ` FROM sos_alerts`
	var (
		where []string
		args  []any
	)
	if req.Status != "" {
		args = append(args, req.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		where = append(where, fmt.Sprintf("(tourist_name ILIKE $%d OR category ILIKE $%d)", len(args), len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}

	switch req.Sort {
	case domain.AlertSortCategory:
		query += " ORDER BY category ASC, created_at DESC"
	case domain.AlertSortStatus:
		query += " ORDER BY status ASC, created_at DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.collectAlerts(ctx, op, rows)
}

func (p *AlertRepo) ListByTourist(ctx context.Context, touristID uuid.UUID) ([]*domain.SOSAlert, error) {
	const op = "postgres.Alert.ListByTourist"

	rows, err := p.pool.Query(ctx,
		`SELECT `+alertColumns+` FROM sos_alerts WHERE tourist_id = $1 ORDER BY created_at DESC`,
		touristID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return p.collectAlerts(ctx, op, rows)
}

func (p *AlertRepo) collectAlerts(ctx context.Context, op string, rows pgx.Rows) ([]*domain.SOSAlert, error) {
	var alerts []*domain.SOSAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return alerts, nil
}

// Transition applies one state-machine step as a single conditional UPDATE.
// The `status <> 'resolved'` guard linearizes concurrent transitions in the
// database: once any writer resolves the alert, every later transition
// affects zero rows and surfaces ErrAlertResolved. adminResponse and
// assignedTo are only rewritten when non-nil, so a later transition never
// silently clears an earlier response.
func (p *AlertRepo) Transition(ctx context.Context, id uuid.UUID, to domain.AlertStatus, adminResponse, assignedTo *string) (*domain.SOSAlert, error) {
	const op = "postgres.Alert.Transition"

	const query = `
		UPDATE sos_alerts
		SET status = $2,
			admin_response = COALESCE($3, admin_response),
			assigned_to = COALESCE($4, assigned_to)
		WHERE id = $1 AND status <> 'resolved'
		RETURNING ` + alertColumns

	a, err := scanAlert(p.pool.QueryRow(ctx, query, id, to, adminResponse, assignedTo))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	// Zero rows: either the alert does not exist or it is already resolved.
	var status domain.AlertStatus
	if err := p.pool.QueryRow(ctx, `SELECT status FROM sos_alerts WHERE id = $1`, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrAlertResolved)
}

// Resolve moves the alert to resolved regardless of its current state and is
// idempotent: resolving a resolved alert rewrites the same status and keeps
// adminResponse/assignedTo untouched.
func (p *AlertRepo) Resolve(ctx context.Context, id uuid.UUID) (*domain.SOSAlert, error) {
	const op = "postgres.Alert.Resolve"

	const query = `
		UPDATE sos_alerts
		SET status = 'resolved'
		WHERE id = $1
		RETURNING ` + alertColumns

	a, err := scanAlert(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

// Delete is the administrative purge, outside the normal lifecycle.
func (p *AlertRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Alert.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM sos_alerts WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AlertRepo) DeleteByTourist(ctx context.Context, touristID uuid.UUID) (int64, error) {
	const op = "postgres.Alert.DeleteByTourist"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM sos_alerts WHERE tourist_id = $1`, touristID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return cmd.RowsAffected(), nil
}
