package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type PeripheralTypeRepositoryInterface interface {
	GetPeripheralTypes(ctx context.Context) ([]entities.PeripheralType, error)
	FindPeripheralType(ctx context.Context, id uint64) (*entities.PeripheralType, error)
	CreatePeripheralType(ctx context.Context, name string) (uint64, error)
	DeletePeripheralType(ctx context.Context, id uint64) error
}

type PeripheralTypeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPeripheralTypeRepository(storage *pgxpool.Pool, logger *zap.Logger) PeripheralTypeRepositoryInterface {
	return &PeripheralTypeRepository{storage: storage, logger: logger}
}

func (r *PeripheralTypeRepository) GetPeripheralTypes(ctx context.Context) ([]entities.PeripheralType, error) {
	rows, err := r.storage.Query(ctx, `SELECT id, name FROM peripheral_types ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.PeripheralType
	for rows.Next() {
		var pt entities.PeripheralType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, err
		}
		items = append(items, pt)
	}
	return items, rows.Err()
}

func (r *PeripheralTypeRepository) FindPeripheralType(ctx context.Context, id uint64) (*entities.PeripheralType, error) {
	var pt entities.PeripheralType
	err := r.storage.QueryRow(ctx, `SELECT id, name FROM peripheral_types WHERE id = $1`, id).
		Scan(&pt.ID, &pt.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *PeripheralTypeRepository) CreatePeripheralType(ctx context.Context, name string) (uint64, error) {
	var newID uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO peripheral_types (name) VALUES ($1) RETURNING id`, name,
	).Scan(&newID)
	return newID, err
}

func (r *PeripheralTypeRepository) DeletePeripheralType(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM peripheral_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
