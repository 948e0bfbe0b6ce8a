package repositories

import (
	"context"
	"database/sql"
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

var areaMap = map[string]string{
	"id":             "a.id",
	"name":           "a.name",
	"cost_center_id": "a.cost_center_id",
}

type AreaRepositoryInterface interface {
	GetAreas(ctx context.Context, filter types.Filter) ([]entities.Area, uint64, error)
	FindArea(ctx context.Context, id uint64) (*entities.Area, error)
	CreateArea(ctx context.Context, area entities.Area) (uint64, error)
	UpdateArea(ctx context.Context, id uint64, area entities.Area) error
	DeleteArea(ctx context.Context, id uint64) error
}

type AreaRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAreaRepository(storage *pgxpool.Pool, logger *zap.Logger) AreaRepositoryInterface {
	return &AreaRepository{storage: storage, logger: logger}
}

func scanArea(row pgx.Row) (*entities.Area, error) {
	var a entities.Area
	var cc entities.CostCenter
	var description sql.NullString
	var costCenterID sql.NullInt64

	err := row.Scan(
		&a.ID, &a.Name, &description, &costCenterID,
		&a.CreatedAt, &a.UpdatedAt,
		&cc.ID, &cc.Code, &cc.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan area: %w", err)
	}

	if description.Valid {
		a.Description = &description.String
	}
	if costCenterID.Valid {
		id := uint64(costCenterID.Int64)
		a.CostCenterID = &id
	}
	if cc.ID > 0 {
		a.CostCenter = &cc
	}
	return &a, nil
}

const areaSelectColumns = `a.id, a.name, a.description, a.cost_center_id,
	a.created_at, a.updated_at,
	COALESCE(cc.id, 0), COALESCE(cc.code, ''), COALESCE(cc.name, '')`

func (r *AreaRepository) GetAreas(ctx context.Context, filter types.Filter) ([]entities.Area, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.ILike{"a.name": pat})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(a.id)").From("areas AS a"))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, areaMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Area{}, 0, nil
	}

	builder := applySearch(psql.Select(areaSelectColumns).
		From("areas AS a").
		LeftJoin("cost_centers cc ON a.cost_center_id = cc.id"))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("a.name ASC")
	}
	builder = db.ApplyListParams(builder, filter, areaMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	areas := make([]entities.Area, 0, filter.Limit)
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, 0, err
		}
		areas = append(areas, *area)
	}
	return areas, total, rows.Err()
}

func (r *AreaRepository) FindArea(ctx context.Context, id uint64) (*entities.Area, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM areas a
		LEFT JOIN cost_centers cc ON a.cost_center_id = cc.id
		WHERE a.id = $1
	`, areaSelectColumns)
	return scanArea(r.storage.QueryRow(ctx, query, id))
}

func (r *AreaRepository) CreateArea(ctx context.Context, area entities.Area) (uint64, error) {
	query := `
		INSERT INTO areas (name, description, cost_center_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, area.Name, area.Description, area.CostCenterID).Scan(&newID)
	return newID, err
}

func (r *AreaRepository) UpdateArea(ctx context.Context, id uint64, area entities.Area) error {
	query := `
		UPDATE areas
		SET name = $1, description = $2, cost_center_id = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.storage.Exec(ctx, query, area.Name, area.Description, area.CostCenterID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AreaRepository) DeleteArea(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
