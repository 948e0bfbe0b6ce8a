package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	db "inventory-system/internal/infrastructure/bd"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var costCenterMap = map[string]string{
	"id":   "cc.id",
	"code": "cc.code",
	"name": "cc.name",
}

type CostCenterRepositoryInterface interface {
	GetCostCenters(ctx context.Context, filter types.Filter) ([]entities.CostCenter, uint64, error)
	FindCostCenter(ctx context.Context, id uint64) (*entities.CostCenter, error)
	CreateCostCenter(ctx context.Context, cc entities.CostCenter) (uint64, error)
	UpdateCostCenter(ctx context.Context, id uint64, cc entities.CostCenter) error
	DeleteCostCenter(ctx context.Context, id uint64) error
}

type CostCenterRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCostCenterRepository(storage *pgxpool.Pool, logger *zap.Logger) CostCenterRepositoryInterface {
	return &CostCenterRepository{storage: storage, logger: logger}
}

func scanCostCenter(row pgx.Row) (*entities.CostCenter, error) {
	var cc entities.CostCenter
	err := row.Scan(&cc.ID, &cc.Code, &cc.Name, &cc.CreatedAt, &cc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan cost center: %w", err)
	}
	return &cc, nil
}

func (r *CostCenterRepository) GetCostCenters(ctx context.Context, filter types.Filter) ([]entities.CostCenter, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"cc.code": pat},
				sq.ILike{"cc.name": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(cc.id)").From("cost_centers AS cc"))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, costCenterMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.CostCenter{}, 0, nil
	}

	builder := applySearch(psql.Select(
		"cc.id", "cc.code", "cc.name", "cc.created_at", "cc.updated_at",
	).From("cost_centers AS cc"))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("cc.code ASC")
	}
	builder = db.ApplyListParams(builder, filter, costCenterMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.CostCenter, 0, filter.Limit)
	for rows.Next() {
		cc, err := scanCostCenter(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *cc)
	}
	return items, total, rows.Err()
}

func (r *CostCenterRepository) FindCostCenter(ctx context.Context, id uint64) (*entities.CostCenter, error) {
	query := `SELECT cc.id, cc.code, cc.name, cc.created_at, cc.updated_at FROM cost_centers cc WHERE cc.id = $1`
	return scanCostCenter(r.storage.QueryRow(ctx, query, id))
}

func (r *CostCenterRepository) CreateCostCenter(ctx context.Context, cc entities.CostCenter) (uint64, error) {
	query := `
		INSERT INTO cost_centers (code, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, cc.Code, cc.Name).Scan(&newID)
	return newID, err
}

func (r *CostCenterRepository) UpdateCostCenter(ctx context.Context, id uint64, cc entities.CostCenter) error {
	query := `
		UPDATE cost_centers
		SET code = $1, name = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := r.storage.Exec(ctx, query, cc.Code, cc.Name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CostCenterRepository) DeleteCostCenter(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM cost_centers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
