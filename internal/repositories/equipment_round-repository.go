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

type EquipmentRoundRepositoryInterface interface {
	FindEquipmentRound(ctx context.Context, id uint64) (*entities.EquipmentRound, error)
	CreateEquipmentRound(ctx context.Context, round entities.EquipmentRound) (uint64, error)
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentRound, error)
}

type EquipmentRoundRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRoundRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRoundRepositoryInterface {
	return &EquipmentRoundRepository{storage: storage, logger: logger}
}

const roundSelectColumns = `r.id, r.equipment_id, r.datetime, r.general_status,
	r.observations, r.performed_by_id,
	e.id, e.serial_number, e.type, e.brand, e.model,
	COALESCE(t.id, 0), t.name`

func scanEquipmentRound(row pgx.Row) (*entities.EquipmentRound, error) {
	var er entities.EquipmentRound
	var e entities.Equipment
	var t entities.Technician
	var observations, technicianName sql.NullString
	var performedByID sql.NullInt64

	err := row.Scan(
		&er.ID, &er.EquipmentID, &er.Datetime, &er.GeneralStatus,
		&observations, &performedByID,
		&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model,
		&t.ID, &technicianName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment round: %w", err)
	}

	if observations.Valid {
		er.Observations = &observations.String
	}
	if performedByID.Valid {
		id := uint64(performedByID.Int64)
		er.PerformedByID = &id
	}
	er.Equipment = &e
	if t.ID > 0 {
		t.Name = technicianName.String
		er.PerformedBy = &t
	}
	return &er, nil
}

func (r *EquipmentRoundRepository) FindEquipmentRound(ctx context.Context, id uint64) (*entities.EquipmentRound, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipment_rounds r
		JOIN equipments e ON r.equipment_id = e.id
		LEFT JOIN technicians t ON r.performed_by_id = t.id
		WHERE r.id = $1
	`, roundSelectColumns)
	return scanEquipmentRound(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentRoundRepository) CreateEquipmentRound(ctx context.Context, round entities.EquipmentRound) (uint64, error) {
	query := `
		INSERT INTO equipment_rounds (equipment_id, datetime, general_status, observations, performed_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		round.EquipmentID, round.Datetime, round.GeneralStatus, round.Observations, round.PerformedByID,
	).Scan(&newID)
	return newID, err
}

func (r *EquipmentRoundRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.EquipmentRound, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipment_rounds r
		JOIN equipments e ON r.equipment_id = e.id
		LEFT JOIN technicians t ON r.performed_by_id = t.id
		WHERE r.equipment_id = $1
		ORDER BY r.datetime DESC, r.id DESC
	`, roundSelectColumns)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []entities.EquipmentRound
	for rows.Next() {
		er, err := scanEquipmentRound(rows)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, *er)
	}
	return rounds, rows.Err()
}
