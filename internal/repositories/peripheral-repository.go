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

var peripheralMap = map[string]string{
	"id":              "p.id",
	"serial_number":   "p.serial_number",
	"type_id":         "p.type_id",
	"brand":           "p.brand",
	"model":           "p.model",
	"status":          "p.status",
	"connected_to_id": "p.connected_to_id",
	"area_id":         "p.area_id",
}

type PeripheralRepositoryInterface interface {
	GetPeripherals(ctx context.Context, filter types.Filter) ([]entities.Peripheral, uint64, error)
	FindPeripheral(ctx context.Context, id uint64) (*entities.Peripheral, error)
	CreatePeripheral(ctx context.Context, p entities.Peripheral) (uint64, error)
	UpdatePeripheral(ctx context.Context, id uint64, p entities.Peripheral) error
	DeletePeripheral(ctx context.Context, id uint64) error

	StrictDecrement(ctx context.Context, tx pgx.Tx, id uint64, amount int) (bool, int, error)
	FloorDecrement(ctx context.Context, tx pgx.Tx, id uint64, amount int) (int, error)
	ListLowStock(ctx context.Context) ([]entities.Peripheral, error)
}

type PeripheralRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPeripheralRepository(storage *pgxpool.Pool, logger *zap.Logger) PeripheralRepositoryInterface {
	return &PeripheralRepository{storage: storage, logger: logger}
}

const peripheralSelectColumns = `p.id, p.serial_number, p.type_id, p.brand, p.model,
	p.status, p.quantity, p.min_stock_level, p.connected_to_id, p.area_id,
	p.created_at, p.updated_at,
	COALESCE(pt.id, 0), COALESCE(pt.name, ''),
	COALESCE(e.id, 0), e.serial_number,
	COALESCE(a.id, 0), a.name`

func scanPeripheral(row pgx.Row) (*entities.Peripheral, error) {
	var p entities.Peripheral
	var pt entities.PeripheralType
	var e entities.Equipment
	var a entities.Area
	var serialNumber, equipmentSerial, areaName sql.NullString
	var connectedToID, areaID sql.NullInt64

	err := row.Scan(
		&p.ID, &serialNumber, &p.TypeID, &p.Brand, &p.Model,
		&p.Status, &p.Quantity, &p.MinStockLevel, &connectedToID, &areaID,
		&p.CreatedAt, &p.UpdatedAt,
		&pt.ID, &pt.Name,
		&e.ID, &equipmentSerial,
		&a.ID, &areaName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan peripheral: %w", err)
	}

	if serialNumber.Valid {
		p.SerialNumber = &serialNumber.String
	}
	if connectedToID.Valid {
		id := uint64(connectedToID.Int64)
		p.ConnectedToID = &id
	}
	if areaID.Valid {
		id := uint64(areaID.Int64)
		p.AreaID = &id
	}
	if pt.ID > 0 {
		p.Type = &pt
	}
	if e.ID > 0 {
		e.SerialNumber = equipmentSerial.String
		p.ConnectedTo = &e
	}
	if a.ID > 0 {
		a.Name = areaName.String
		p.Area = &a
	}
	return &p, nil
}

func (r *PeripheralRepository) GetPeripherals(ctx context.Context, filter types.Filter) ([]entities.Peripheral, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"p.brand": pat},
				sq.ILike{"p.model": pat},
				sq.ILike{"p.serial_number": pat},
				sq.ILike{"pt.name": pat},
			})
		}
		return b
	}

	joins := func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.
			LeftJoin("peripheral_types pt ON p.type_id = pt.id").
			LeftJoin("equipments e ON p.connected_to_id = e.id").
			LeftJoin("areas a ON p.area_id = a.id")
	}

	countBuilder := applySearch(joins(psql.Select("COUNT(p.id)").From("peripherals AS p")))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, peripheralMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Peripheral{}, 0, nil
	}

	builder := applySearch(joins(psql.Select(peripheralSelectColumns).From("peripherals AS p")))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("p.id DESC")
	}
	builder = db.ApplyListParams(builder, filter, peripheralMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	peripherals := make([]entities.Peripheral, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPeripheral(rows)
		if err != nil {
			return nil, 0, err
		}
		peripherals = append(peripherals, *p)
	}
	return peripherals, total, rows.Err()
}

func (r *PeripheralRepository) FindPeripheral(ctx context.Context, id uint64) (*entities.Peripheral, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM peripherals p
		LEFT JOIN peripheral_types pt ON p.type_id = pt.id
		LEFT JOIN equipments e ON p.connected_to_id = e.id
		LEFT JOIN areas a ON p.area_id = a.id
		WHERE p.id = $1
	`, peripheralSelectColumns)
	return scanPeripheral(r.storage.QueryRow(ctx, query, id))
}

func (r *PeripheralRepository) CreatePeripheral(ctx context.Context, p entities.Peripheral) (uint64, error) {
	query := `
		INSERT INTO peripherals (
			serial_number, type_id, brand, model, status, quantity, min_stock_level,
			connected_to_id, area_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		p.SerialNumber, p.TypeID, p.Brand, p.Model, p.Status,
		p.Quantity, p.MinStockLevel, p.ConnectedToID, p.AreaID,
	).Scan(&newID)
	return newID, err
}

func (r *PeripheralRepository) UpdatePeripheral(ctx context.Context, id uint64, p entities.Peripheral) error {
	query := `
		UPDATE peripherals
		SET serial_number = $1, type_id = $2, brand = $3, model = $4, status = $5,
		    quantity = $6, min_stock_level = $7, connected_to_id = $8, area_id = $9,
		    updated_at = NOW()
		WHERE id = $10
	`
	result, err := r.storage.Exec(ctx, query,
		p.SerialNumber, p.TypeID, p.Brand, p.Model, p.Status,
		p.Quantity, p.MinStockLevel, p.ConnectedToID, p.AreaID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PeripheralRepository) DeletePeripheral(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM peripherals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// StrictDecrement takes amount units off the stock only when enough are on
// hand. The guard lives in the UPDATE itself so two concurrent decrements can
// never drive the quantity negative. Returns applied=false and the unchanged
// quantity when stock is short.
func (r *PeripheralRepository) StrictDecrement(ctx context.Context, tx pgx.Tx, id uint64, amount int) (bool, int, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}

	var remaining int
	err := querier.QueryRow(ctx, `
		UPDATE peripherals
		SET quantity = quantity - $2, updated_at = NOW()
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity
	`, id, amount).Scan(&remaining)

	if err == nil {
		return true, remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, 0, err
	}

	// Either the row is missing or stock is short. Tell the two apart.
	err = querier.QueryRow(ctx, `SELECT quantity FROM peripherals WHERE id = $1`, id).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, 0, apperrors.ErrNotFound
	}
	if err != nil {
		return false, 0, err
	}
	return false, remaining, nil
}

// FloorDecrement takes up to amount units off the stock, clamping at zero.
func (r *PeripheralRepository) FloorDecrement(ctx context.Context, tx pgx.Tx, id uint64, amount int) (int, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}

	var remaining int
	err := querier.QueryRow(ctx, `
		UPDATE peripherals
		SET quantity = GREATEST(quantity - $2, 0), updated_at = NOW()
		WHERE id = $1
		RETURNING quantity
	`, id, amount).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *PeripheralRepository) ListLowStock(ctx context.Context) ([]entities.Peripheral, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM peripherals p
		LEFT JOIN peripheral_types pt ON p.type_id = pt.id
		LEFT JOIN equipments e ON p.connected_to_id = e.id
		LEFT JOIN areas a ON p.area_id = a.id
		WHERE p.quantity <= p.min_stock_level
		ORDER BY p.quantity ASC
	`, peripheralSelectColumns)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peripherals []entities.Peripheral
	for rows.Next() {
		p, err := scanPeripheral(rows)
		if err != nil {
			return nil, err
		}
		peripherals = append(peripherals, *p)
	}
	return peripherals, rows.Err()
}
