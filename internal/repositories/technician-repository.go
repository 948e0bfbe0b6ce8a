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

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, t entities.Technician) (uint64, error)
	UpdateTechnician(ctx context.Context, id uint64, t entities.Technician) error
	DeleteTechnician(ctx context.Context, id uint64) error
}

type TechnicianRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTechnicianRepository(storage *pgxpool.Pool, logger *zap.Logger) TechnicianRepositoryInterface {
	return &TechnicianRepository{storage: storage, logger: logger}
}

func scanTechnician(row pgx.Row) (*entities.Technician, error) {
	var t entities.Technician
	var email sql.NullString
	err := row.Scan(&t.ID, &t.Name, &email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan technician: %w", err)
	}
	if email.Valid {
		t.Email = &email.String
	}
	return &t, nil
}

func (r *TechnicianRepository) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	rows, err := r.storage.Query(ctx, `SELECT id, name, email FROM technicians ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var technicians []entities.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, *t)
	}
	return technicians, rows.Err()
}

func (r *TechnicianRepository) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	return scanTechnician(r.storage.QueryRow(ctx, `SELECT id, name, email FROM technicians WHERE id = $1`, id))
}

func (r *TechnicianRepository) CreateTechnician(ctx context.Context, t entities.Technician) (uint64, error) {
	var newID uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO technicians (name, email, created_at) VALUES ($1, $2, NOW()) RETURNING id`,
		t.Name, t.Email,
	).Scan(&newID)
	return newID, err
}

func (r *TechnicianRepository) UpdateTechnician(ctx context.Context, id uint64, t entities.Technician) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE technicians SET name = $1, email = $2 WHERE id = $3`,
		t.Name, t.Email, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TechnicianRepository) DeleteTechnician(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM technicians WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
