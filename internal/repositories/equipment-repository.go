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

const equipmentTable = "equipments"

var equipmentMap = map[string]string{
	"id":             "e.id",
	"serial_number":  "e.serial_number",
	"type":           "e.type",
	"brand":          "e.brand",
	"model":          "e.model",
	"status":         "e.status",
	"ownership_type": "e.ownership_type",
	"area_id":        "e.area_id",
	"created_at":     "e.created_at",
	"updated_at":     "e.updated_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	ListAllShort(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindBySerialNumber(ctx context.Context, tx pgx.Tx, serialNumber string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, tx pgx.Tx, id uint64, equipment entities.Equipment) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

const equipmentSelectColumns = `e.id, e.serial_number, e.type, e.brand, e.model,
	e.operating_system, e.processor, e.ram, e.storage, e.voltage, e.amperage,
	e.os_user, e.screen_size, e.ip_address, e.status, e.ownership_type, e.area_id,
	e.purchase_date, e.warranty_expiry, e.lifespan_years,
	e.created_at, e.updated_at,
	COALESCE(a.id, 0), a.name`

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var a entities.Area
	var operatingSystem, processor, ram, storage, voltage, amperage sql.NullString
	var osUser, screenSize, ipAddress, ownershipType, areaName sql.NullString
	var areaID, lifespanYears sql.NullInt64
	var purchaseDate, warrantyExpiry sql.NullTime

	err := row.Scan(
		&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model,
		&operatingSystem, &processor, &ram, &storage, &voltage, &amperage,
		&osUser, &screenSize, &ipAddress, &e.Status, &ownershipType, &areaID,
		&purchaseDate, &warrantyExpiry, &lifespanYears,
		&e.CreatedAt, &e.UpdatedAt,
		&a.ID, &areaName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}

	if operatingSystem.Valid {
		e.OperatingSystem = &operatingSystem.String
	}
	if processor.Valid {
		e.Processor = &processor.String
	}
	if ram.Valid {
		e.RAM = &ram.String
	}
	if storage.Valid {
		e.Storage = &storage.String
	}
	if voltage.Valid {
		e.Voltage = &voltage.String
	}
	if amperage.Valid {
		e.Amperage = &amperage.String
	}
	if osUser.Valid {
		e.OSUser = &osUser.String
	}
	if screenSize.Valid {
		e.ScreenSize = &screenSize.String
	}
	if ipAddress.Valid {
		e.IPAddress = &ipAddress.String
	}
	if ownershipType.Valid {
		e.OwnershipType = &ownershipType.String
	}
	if areaID.Valid {
		id := uint64(areaID.Int64)
		e.AreaID = &id
	}
	if purchaseDate.Valid {
		e.PurchaseDate = &purchaseDate.Time
	}
	if warrantyExpiry.Valid {
		e.WarrantyExpiry = &warrantyExpiry.Time
	}
	if lifespanYears.Valid {
		years := int(lifespanYears.Int64)
		e.LifespanYears = &years
	}
	if a.ID > 0 {
		a.Name = areaName.String
		e.Area = &a
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.serial_number": pat},
				sq.ILike{"e.brand": pat},
				sq.ILike{"e.model": pat},
				sq.ILike{"e.os_user": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(e.id)").From("equipments AS e"))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, equipmentMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	builder := applySearch(psql.Select(equipmentSelectColumns).
		From("equipments AS e").
		LeftJoin("areas a ON e.area_id = a.id"))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("e.id DESC")
	}
	builder = db.ApplyListParams(builder, filter, equipmentMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipments := make([]entities.Equipment, 0, filter.Limit)
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		equipments = append(equipments, *equipment)
	}
	return equipments, total, rows.Err()
}

// ListAllShort returns every equipment with identity fields only, ordered by
// serial number. Used for calendar grid rows and export sheets.
func (r *EquipmentRepository) ListAllShort(ctx context.Context) ([]entities.Equipment, error) {
	query := `
		SELECT id, serial_number, type, brand, model, status
		FROM equipments
		ORDER BY serial_number ASC
	`
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipments []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model, &e.Status); err != nil {
			return nil, err
		}
		equipments = append(equipments, e)
	}
	return equipments, rows.Err()
}

func (r *EquipmentRepository) findOne(ctx context.Context, querier Querier, where string, arg any) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipments e
		LEFT JOIN areas a ON e.area_id = a.id
		WHERE %s
	`, equipmentSelectColumns, where)
	return scanEquipment(querier.QueryRow(ctx, query, arg))
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return r.findOne(ctx, r.storage, "e.id = $1", id)
}

func (r *EquipmentRepository) FindBySerialNumber(ctx context.Context, tx pgx.Tx, serialNumber string) (*entities.Equipment, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	return r.findOne(ctx, querier, "e.serial_number = $1", serialNumber)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, tx pgx.Tx, equipment entities.Equipment) (uint64, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		INSERT INTO equipments (
			serial_number, type, brand, model, operating_system, processor, ram,
			storage, voltage, amperage, os_user, screen_size, ip_address, status,
			ownership_type, area_id, purchase_date, warranty_expiry, lifespan_years,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := querier.QueryRow(ctx, query,
		equipment.SerialNumber, equipment.Type, equipment.Brand, equipment.Model,
		equipment.OperatingSystem, equipment.Processor, equipment.RAM, equipment.Storage,
		equipment.Voltage, equipment.Amperage, equipment.OSUser, equipment.ScreenSize,
		equipment.IPAddress, equipment.Status, equipment.OwnershipType, equipment.AreaID,
		equipment.PurchaseDate, equipment.WarrantyExpiry, equipment.LifespanYears,
	).Scan(&newID)
	return newID, err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, tx pgx.Tx, id uint64, equipment entities.Equipment) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		UPDATE equipments
		SET serial_number = $1, type = $2, brand = $3, model = $4,
		    operating_system = $5, processor = $6, ram = $7, storage = $8,
		    voltage = $9, amperage = $10, os_user = $11, screen_size = $12,
		    ip_address = $13, status = $14, ownership_type = $15, area_id = $16,
		    purchase_date = $17, warranty_expiry = $18, lifespan_years = $19,
		    updated_at = NOW()
		WHERE id = $20
	`
	result, err := querier.Exec(ctx, query,
		equipment.SerialNumber, equipment.Type, equipment.Brand, equipment.Model,
		equipment.OperatingSystem, equipment.Processor, equipment.RAM, equipment.Storage,
		equipment.Voltage, equipment.Amperage, equipment.OSUser, equipment.ScreenSize,
		equipment.IPAddress, equipment.Status, equipment.OwnershipType, equipment.AreaID,
		equipment.PurchaseDate, equipment.WarrantyExpiry, equipment.LifespanYears,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id uint64, status string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE equipments SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
