package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	db "inventory-system/internal/infrastructure/bd"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var maintenanceMap = map[string]string{
	"id":               "m.id",
	"equipment_id":     "m.equipment_id",
	"date":             "m.date",
	"maintenance_type": "m.maintenance_type",
	"performed_by_id":  "m.performed_by_id",
}

type MaintenanceRepositoryInterface interface {
	GetMaintenances(ctx context.Context, filter types.Filter) ([]entities.Maintenance, uint64, error)
	FindMaintenance(ctx context.Context, id uint64) (*entities.Maintenance, error)
	CreateMaintenance(ctx context.Context, tx pgx.Tx, m entities.Maintenance) (uint64, error)
	UpdateActaPath(ctx context.Context, id uint64, path string) error
	DeleteMaintenance(ctx context.Context, id uint64) error
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.Maintenance, error)
	ListUpcoming(ctx context.Context, until time.Time) ([]entities.Maintenance, error)
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaintenanceRepository(storage *pgxpool.Pool, logger *zap.Logger) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage, logger: logger}
}

const maintenanceSelectColumns = `m.id, m.equipment_id, m.date, m.maintenance_type, m.description,
	m.performed_by_id, m.next_maintenance_date, m.acta_path, m.start_time, m.end_time,
	m.type_review, m.type_software_failure, m.type_connection, m.type_updates,
	m.type_cleaning, m.type_install, m.type_peripheral, m.type_backup,
	m.cleaning_defrag, m.cleaning_cco, m.cleaning_scandisk, m.cleaning_space,
	m.hw_disassembly, m.hw_power_supply, m.hw_fans, m.hw_chassis, m.hw_thermal_paste,
	m.hw_contacts, m.hw_keyboard_mouse, m.hw_screen, m.hw_reassembly,
	m.created_at,
	e.id, e.serial_number, e.type, e.brand, e.model,
	COALESCE(t.id, 0), t.name`

func scanMaintenance(row pgx.Row) (*entities.Maintenance, error) {
	var m entities.Maintenance
	var e entities.Equipment
	var t entities.Technician
	var performedByID sql.NullInt64
	var nextDate sql.NullTime
	var actaPath, technicianName sql.NullString
	var startTime, endTime sql.NullString

	err := row.Scan(
		&m.ID, &m.EquipmentID, &m.Date, &m.MaintenanceType, &m.Description,
		&performedByID, &nextDate, &actaPath, &startTime, &endTime,
		&m.TypeReview, &m.TypeSoftwareFailure, &m.TypeConnection, &m.TypeUpdates,
		&m.TypeCleaning, &m.TypeInstall, &m.TypePeripheral, &m.TypeBackup,
		&m.CleaningDefrag, &m.CleaningCCO, &m.CleaningScandisk, &m.CleaningSpace,
		&m.HwDisassembly, &m.HwPowerSupply, &m.HwFans, &m.HwChassis, &m.HwThermalPaste,
		&m.HwContacts, &m.HwKeyboardMouse, &m.HwScreen, &m.HwReassembly,
		&m.CreatedAt,
		&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model,
		&t.ID, &technicianName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan maintenance: %w", err)
	}

	if performedByID.Valid {
		id := uint64(performedByID.Int64)
		m.PerformedByID = &id
	}
	if nextDate.Valid {
		m.NextMaintenanceDate = &nextDate.Time
	}
	if actaPath.Valid {
		m.ActaPath = &actaPath.String
	}
	if startTime.Valid {
		m.StartTime = &startTime.String
	}
	if endTime.Valid {
		m.EndTime = &endTime.String
	}
	m.Equipment = &e
	if t.ID > 0 {
		t.Name = technicianName.String
		m.PerformedBy = &t
	}
	return &m, nil
}

func (r *MaintenanceRepository) GetMaintenances(ctx context.Context, filter types.Filter) ([]entities.Maintenance, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.serial_number": pat},
				sq.ILike{"m.description": pat},
			})
		}
		return b
	}

	joins := func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.
			Join("equipments e ON m.equipment_id = e.id").
			LeftJoin("technicians t ON m.performed_by_id = t.id")
	}

	countBuilder := applySearch(joins(psql.Select("COUNT(m.id)").From("maintenances AS m")))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, maintenanceMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Maintenance{}, 0, nil
	}

	builder := applySearch(joins(psql.Select(maintenanceSelectColumns).From("maintenances AS m")))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("m.date DESC", "m.id DESC")
	}
	builder = db.ApplyListParams(builder, filter, maintenanceMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	maintenances := make([]entities.Maintenance, 0, filter.Limit)
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, 0, err
		}
		maintenances = append(maintenances, *m)
	}
	return maintenances, total, rows.Err()
}

func (r *MaintenanceRepository) FindMaintenance(ctx context.Context, id uint64) (*entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM maintenances m
		JOIN equipments e ON m.equipment_id = e.id
		LEFT JOIN technicians t ON m.performed_by_id = t.id
		WHERE m.id = $1
	`, maintenanceSelectColumns)
	return scanMaintenance(r.storage.QueryRow(ctx, query, id))
}

func (r *MaintenanceRepository) CreateMaintenance(ctx context.Context, tx pgx.Tx, m entities.Maintenance) (uint64, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		INSERT INTO maintenances (
			equipment_id, date, maintenance_type, description, performed_by_id,
			next_maintenance_date, start_time, end_time,
			type_review, type_software_failure, type_connection, type_updates,
			type_cleaning, type_install, type_peripheral, type_backup,
			cleaning_defrag, cleaning_cco, cleaning_scandisk, cleaning_space,
			hw_disassembly, hw_power_supply, hw_fans, hw_chassis, hw_thermal_paste,
			hw_contacts, hw_keyboard_mouse, hw_screen, hw_reassembly,
			created_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29,
			NOW()
		)
		RETURNING id
	`
	var newID uint64
	err := querier.QueryRow(ctx, query,
		m.EquipmentID, m.Date, m.MaintenanceType, m.Description, m.PerformedByID,
		m.NextMaintenanceDate, m.StartTime, m.EndTime,
		m.TypeReview, m.TypeSoftwareFailure, m.TypeConnection, m.TypeUpdates,
		m.TypeCleaning, m.TypeInstall, m.TypePeripheral, m.TypeBackup,
		m.CleaningDefrag, m.CleaningCCO, m.CleaningScandisk, m.CleaningSpace,
		m.HwDisassembly, m.HwPowerSupply, m.HwFans, m.HwChassis, m.HwThermalPaste,
		m.HwContacts, m.HwKeyboardMouse, m.HwScreen, m.HwReassembly,
	).Scan(&newID)
	return newID, err
}

func (r *MaintenanceRepository) UpdateActaPath(ctx context.Context, id uint64, path string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE maintenances SET acta_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) DeleteMaintenance(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM maintenances m
		JOIN equipments e ON m.equipment_id = e.id
		LEFT JOIN technicians t ON m.performed_by_id = t.id
		WHERE m.equipment_id = $1
		ORDER BY m.date DESC, m.id DESC
	`, maintenanceSelectColumns)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var maintenances []entities.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		maintenances = append(maintenances, *m)
	}
	return maintenances, rows.Err()
}

// ListUpcoming returns, per equipment, the latest maintenance whose
// next_maintenance_date is due on or before the limit. No lower bound:
// overdue dates keep alerting until a newer maintenance clears them.
func (r *MaintenanceRepository) ListUpcoming(ctx context.Context, until time.Time) ([]entities.Maintenance, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM (
			SELECT DISTINCT ON (equipment_id) *
			FROM maintenances
			ORDER BY equipment_id, date DESC, id DESC
		) m
		JOIN equipments e ON m.equipment_id = e.id
		LEFT JOIN technicians t ON m.performed_by_id = t.id
		WHERE m.next_maintenance_date <= $1
		ORDER BY m.next_maintenance_date ASC
	`, maintenanceSelectColumns)

	rows, err := r.storage.Query(ctx, query, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var maintenances []entities.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		maintenances = append(maintenances, *m)
	}
	return maintenances, rows.Err()
}
