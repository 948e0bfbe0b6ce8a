package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

type ScheduleRepositoryInterface interface {
	FindPendingInRange(ctx context.Context, tx pgx.Tx, equipmentID uint64, from, to time.Time) (*entities.MaintenanceSchedule, error)
	FindByEquipmentAndDate(ctx context.Context, tx pgx.Tx, equipmentID uint64, date time.Time) (*entities.MaintenanceSchedule, error)
	CreateSchedule(ctx context.Context, tx pgx.Tx, s entities.MaintenanceSchedule) (uint64, error)
	CompleteSchedule(ctx context.Context, tx pgx.Tx, id uint64, date time.Time) error
	DeleteSchedule(ctx context.Context, id uint64) error
	ListByYear(ctx context.Context, year int) ([]entities.MaintenanceSchedule, error)
	ListPendingDue(ctx context.Context, until time.Time) ([]entities.MaintenanceSchedule, error)
}

type ScheduleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewScheduleRepository(storage *pgxpool.Pool, logger *zap.Logger) ScheduleRepositoryInterface {
	return &ScheduleRepository{storage: storage, logger: logger}
}

const scheduleSelectColumns = `s.id, s.equipment_id, s.scheduled_date, s.status, s.created_at,
	e.id, e.serial_number, e.type, e.brand, e.model`

func scanSchedule(row pgx.Row) (*entities.MaintenanceSchedule, error) {
	var s entities.MaintenanceSchedule
	var e entities.Equipment

	err := row.Scan(
		&s.ID, &s.EquipmentID, &s.ScheduledDate, &s.Status, &s.CreatedAt,
		&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan schedule: %w", err)
	}
	s.Equipment = &e
	return &s, nil
}

func (r *ScheduleRepository) querier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

// FindPendingInRange returns the earliest pending schedule for the equipment
// with a date inside [from, to], or ErrNotFound.
func (r *ScheduleRepository) FindPendingInRange(ctx context.Context, tx pgx.Tx, equipmentID uint64, from, to time.Time) (*entities.MaintenanceSchedule, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM maintenance_schedules s
		JOIN equipments e ON s.equipment_id = e.id
		WHERE s.equipment_id = $1
		  AND s.status = $2
		  AND s.scheduled_date BETWEEN $3 AND $4
		ORDER BY s.scheduled_date ASC
		LIMIT 1
	`, scheduleSelectColumns)
	return scanSchedule(r.querier(tx).QueryRow(ctx, query,
		equipmentID, constants.ScheduleStatusPending, from, to))
}

func (r *ScheduleRepository) FindByEquipmentAndDate(ctx context.Context, tx pgx.Tx, equipmentID uint64, date time.Time) (*entities.MaintenanceSchedule, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM maintenance_schedules s
		JOIN equipments e ON s.equipment_id = e.id
		WHERE s.equipment_id = $1 AND s.scheduled_date = $2
	`, scheduleSelectColumns)
	return scanSchedule(r.querier(tx).QueryRow(ctx, query, equipmentID, date))
}

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, tx pgx.Tx, s entities.MaintenanceSchedule) (uint64, error) {
	query := `
		INSERT INTO maintenance_schedules (equipment_id, scheduled_date, status, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`
	var newID uint64
	err := r.querier(tx).QueryRow(ctx, query, s.EquipmentID, s.ScheduledDate, s.Status).Scan(&newID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// Unique (equipment_id, scheduled_date) backstop: a racing duplicate
		// surfaces as a conflict, not an internal error.
		return 0, apperrors.ErrDuplicateSchedule
	}
	return newID, err
}

// CompleteSchedule moves the schedule onto the actual maintenance date and
// marks it completed.
func (r *ScheduleRepository) CompleteSchedule(ctx context.Context, tx pgx.Tx, id uint64, date time.Time) error {
	result, err := r.querier(tx).Exec(ctx, `
		UPDATE maintenance_schedules
		SET scheduled_date = $1, status = $2
		WHERE id = $3
	`, date, constants.ScheduleStatusCompleted, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenance_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ScheduleRepository) ListByYear(ctx context.Context, year int) ([]entities.MaintenanceSchedule, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM maintenance_schedules s
		JOIN equipments e ON s.equipment_id = e.id
		WHERE EXTRACT(YEAR FROM s.scheduled_date) = $1
		ORDER BY s.scheduled_date ASC
	`, scheduleSelectColumns)
	return r.list(ctx, query, year)
}

// ListPendingDue returns pending schedules due on or before the limit.
// Overdue slots stay in the result until completed or removed.
func (r *ScheduleRepository) ListPendingDue(ctx context.Context, until time.Time) ([]entities.MaintenanceSchedule, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM maintenance_schedules s
		JOIN equipments e ON s.equipment_id = e.id
		WHERE s.status = '%s' AND s.scheduled_date <= $1
		ORDER BY s.scheduled_date ASC
	`, scheduleSelectColumns, constants.ScheduleStatusPending)
	return r.list(ctx, query, until)
}

func (r *ScheduleRepository) list(ctx context.Context, query string, args ...any) ([]entities.MaintenanceSchedule, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []entities.MaintenanceSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, rows.Err()
}
