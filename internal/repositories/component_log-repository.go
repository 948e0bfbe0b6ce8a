package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type ComponentLogRepositoryInterface interface {
	FindComponentLog(ctx context.Context, id uint64) (*entities.ComponentLog, error)
	CreateComponentLog(ctx context.Context, tx pgx.Tx, log entities.ComponentLog) (uint64, error)
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.ComponentLog, error)
}

type ComponentLogRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewComponentLogRepository(storage *pgxpool.Pool, logger *zap.Logger) ComponentLogRepositoryInterface {
	return &ComponentLogRepository{storage: storage, logger: logger}
}

const componentLogSelectColumns = `cl.id, cl.equipment_id, cl.date, cl.action_type,
	cl.component_name, cl.description, cl.peripheral_id, cl.quantity, cl.performed_by_id,
	e.id, e.serial_number, e.type, e.brand, e.model,
	COALESCE(t.id, 0), t.name`

func scanComponentLog(row pgx.Row) (*entities.ComponentLog, error) {
	var cl entities.ComponentLog
	var e entities.Equipment
	var t entities.Technician
	var description, technicianName sql.NullString
	var peripheralID, performedByID sql.NullInt64

	err := row.Scan(
		&cl.ID, &cl.EquipmentID, &cl.Date, &cl.ActionType,
		&cl.ComponentName, &description, &peripheralID, &cl.Quantity, &performedByID,
		&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model,
		&t.ID, &technicianName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan component log: %w", err)
	}

	if description.Valid {
		cl.Description = &description.String
	}
	if peripheralID.Valid {
		id := uint64(peripheralID.Int64)
		cl.PeripheralID = &id
	}
	if performedByID.Valid {
		id := uint64(performedByID.Int64)
		cl.PerformedByID = &id
	}
	cl.Equipment = &e
	if t.ID > 0 {
		t.Name = technicianName.String
		cl.PerformedBy = &t
	}
	return &cl, nil
}

func (r *ComponentLogRepository) FindComponentLog(ctx context.Context, id uint64) (*entities.ComponentLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM component_logs cl
		JOIN equipments e ON cl.equipment_id = e.id
		LEFT JOIN technicians t ON cl.performed_by_id = t.id
		WHERE cl.id = $1
	`, componentLogSelectColumns)
	return scanComponentLog(r.storage.QueryRow(ctx, query, id))
}

func (r *ComponentLogRepository) CreateComponentLog(ctx context.Context, tx pgx.Tx, log entities.ComponentLog) (uint64, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		INSERT INTO component_logs (
			equipment_id, date, action_type, component_name, description,
			peripheral_id, quantity, performed_by_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var newID uint64
	err := querier.QueryRow(ctx, query,
		log.EquipmentID, log.Date, log.ActionType, log.ComponentName, log.Description,
		log.PeripheralID, log.Quantity, log.PerformedByID,
	).Scan(&newID)
	return newID, err
}

func (r *ComponentLogRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.ComponentLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM component_logs cl
		JOIN equipments e ON cl.equipment_id = e.id
		LEFT JOIN technicians t ON cl.performed_by_id = t.id
		WHERE cl.equipment_id = $1
		ORDER BY cl.date DESC, cl.id DESC
	`, componentLogSelectColumns)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []entities.ComponentLog
	for rows.Next() {
		cl, err := scanComponentLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *cl)
	}
	return logs, rows.Err()
}
