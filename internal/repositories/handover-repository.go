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

var handoverMap = map[string]string{
	"id":                  "h.id",
	"type":                "h.type",
	"date":                "h.date",
	"source_area_id":      "h.source_area_id",
	"destination_area_id": "h.destination_area_id",
	"technician_id":       "h.technician_id",
	"client_id":           "h.client_id",
}

type HandoverRepositoryInterface interface {
	GetHandovers(ctx context.Context, filter types.Filter) ([]entities.Handover, uint64, error)
	FindHandover(ctx context.Context, id uint64) (*entities.Handover, error)
	CreateHandover(ctx context.Context, tx pgx.Tx, h entities.Handover) (uint64, error)
	AddEquipment(ctx context.Context, tx pgx.Tx, handoverID, equipmentID uint64) error
	AddPeripheralLine(ctx context.Context, tx pgx.Tx, handoverID, peripheralID uint64, quantity int) error
	UpdateActaPath(ctx context.Context, id uint64, path string) error
	DeleteHandover(ctx context.Context, id uint64) error
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.Handover, error)
}

type HandoverRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewHandoverRepository(storage *pgxpool.Pool, logger *zap.Logger) HandoverRepositoryInterface {
	return &HandoverRepository{storage: storage, logger: logger}
}

const handoverSelectColumns = `h.id, h.date, h.type, h.source_area_id, h.destination_area_id,
	h.technician_id, h.client_id, h.receiver_name, h.observations, h.acta_path, h.created_at,
	COALESCE(sa.id, 0), sa.name,
	COALESCE(da.id, 0), da.name,
	COALESCE(t.id, 0), t.name,
	COALESCE(c.id, 0), c.name`

func scanHandover(row pgx.Row) (*entities.Handover, error) {
	var h entities.Handover
	var sourceArea, destArea entities.Area
	var technician entities.Technician
	var client entities.Client
	var sourceAreaID, destAreaID, technicianID, clientID sql.NullInt64
	var receiverName, observations, actaPath sql.NullString
	var sourceAreaName, destAreaName, technicianName, clientName sql.NullString

	err := row.Scan(
		&h.ID, &h.Date, &h.Type, &sourceAreaID, &destAreaID,
		&technicianID, &clientID, &receiverName, &observations, &actaPath, &h.CreatedAt,
		&sourceArea.ID, &sourceAreaName,
		&destArea.ID, &destAreaName,
		&technician.ID, &technicianName,
		&client.ID, &clientName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan handover: %w", err)
	}

	if sourceAreaID.Valid {
		id := uint64(sourceAreaID.Int64)
		h.SourceAreaID = &id
	}
	if destAreaID.Valid {
		id := uint64(destAreaID.Int64)
		h.DestinationAreaID = &id
	}
	if technicianID.Valid {
		id := uint64(technicianID.Int64)
		h.TechnicianID = &id
	}
	if clientID.Valid {
		id := uint64(clientID.Int64)
		h.ClientID = &id
	}
	if receiverName.Valid {
		h.ReceiverName = &receiverName.String
	}
	if observations.Valid {
		h.Observations = &observations.String
	}
	if actaPath.Valid {
		h.ActaPath = &actaPath.String
	}
	if sourceArea.ID > 0 {
		sourceArea.Name = sourceAreaName.String
		h.SourceArea = &sourceArea
	}
	if destArea.ID > 0 {
		destArea.Name = destAreaName.String
		h.DestinationArea = &destArea
	}
	if technician.ID > 0 {
		technician.Name = technicianName.String
		h.Technician = &technician
	}
	if client.ID > 0 {
		client.Name = clientName.String
		h.Client = &client
	}
	return &h, nil
}

func (r *HandoverRepository) joins(b sq.SelectBuilder) sq.SelectBuilder {
	return b.
		LeftJoin("areas sa ON h.source_area_id = sa.id").
		LeftJoin("areas da ON h.destination_area_id = da.id").
		LeftJoin("technicians t ON h.technician_id = t.id").
		LeftJoin("clients c ON h.client_id = c.id")
}

func (r *HandoverRepository) GetHandovers(ctx context.Context, filter types.Filter) ([]entities.Handover, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"h.receiver_name": pat},
				sq.ILike{"c.name": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(r.joins(psql.Select("COUNT(h.id)").From("handovers AS h")))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, handoverMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Handover{}, 0, nil
	}

	builder := applySearch(r.joins(psql.Select(handoverSelectColumns).From("handovers AS h")))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("h.date DESC", "h.id DESC")
	}
	builder = db.ApplyListParams(builder, filter, handoverMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	handovers := make([]entities.Handover, 0, filter.Limit)
	for rows.Next() {
		h, err := scanHandover(rows)
		if err != nil {
			return nil, 0, err
		}
		handovers = append(handovers, *h)
	}
	return handovers, total, rows.Err()
}

func (r *HandoverRepository) FindHandover(ctx context.Context, id uint64) (*entities.Handover, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM handovers h
		LEFT JOIN areas sa ON h.source_area_id = sa.id
		LEFT JOIN areas da ON h.destination_area_id = da.id
		LEFT JOIN technicians t ON h.technician_id = t.id
		LEFT JOIN clients c ON h.client_id = c.id
		WHERE h.id = $1
	`, handoverSelectColumns)

	h, err := scanHandover(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	equipment, err := r.listEquipment(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	h.Equipment = equipment

	peripherals, err := r.listPeripheralLines(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	h.Peripherals = peripherals

	return h, nil
}

func (r *HandoverRepository) listEquipment(ctx context.Context, handoverID uint64) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT e.id, e.serial_number, e.type, e.brand, e.model
		FROM handover_equipments he
		JOIN equipments e ON he.equipment_id = e.id
		WHERE he.handover_id = $1
		ORDER BY e.serial_number ASC
	`, handoverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipment []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.SerialNumber, &e.Type, &e.Brand, &e.Model); err != nil {
			return nil, err
		}
		equipment = append(equipment, e)
	}
	return equipment, rows.Err()
}

func (r *HandoverRepository) listPeripheralLines(ctx context.Context, handoverID uint64) ([]entities.HandoverPeripheral, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT hp.id, hp.handover_id, hp.peripheral_id, hp.quantity, p.brand, p.model
		FROM handover_peripherals hp
		JOIN peripherals p ON hp.peripheral_id = p.id
		WHERE hp.handover_id = $1
		ORDER BY hp.id ASC
	`, handoverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []entities.HandoverPeripheral
	for rows.Next() {
		var line entities.HandoverPeripheral
		var p entities.Peripheral
		if err := rows.Scan(&line.ID, &line.HandoverID, &line.PeripheralID, &line.Quantity, &p.Brand, &p.Model); err != nil {
			return nil, err
		}
		p.ID = line.PeripheralID
		line.Peripheral = &p
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *HandoverRepository) CreateHandover(ctx context.Context, tx pgx.Tx, h entities.Handover) (uint64, error) {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	query := `
		INSERT INTO handovers (
			date, type, source_area_id, destination_area_id, technician_id,
			client_id, receiver_name, observations, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`
	var newID uint64
	err := querier.QueryRow(ctx, query,
		h.Date, h.Type, h.SourceAreaID, h.DestinationAreaID, h.TechnicianID,
		h.ClientID, h.ReceiverName, h.Observations,
	).Scan(&newID)
	return newID, err
}

func (r *HandoverRepository) AddEquipment(ctx context.Context, tx pgx.Tx, handoverID, equipmentID uint64) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	_, err := querier.Exec(ctx,
		`INSERT INTO handover_equipments (handover_id, equipment_id) VALUES ($1, $2)`,
		handoverID, equipmentID,
	)
	return err
}

func (r *HandoverRepository) AddPeripheralLine(ctx context.Context, tx pgx.Tx, handoverID, peripheralID uint64, quantity int) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	_, err := querier.Exec(ctx,
		`INSERT INTO handover_peripherals (handover_id, peripheral_id, quantity) VALUES ($1, $2, $3)`,
		handoverID, peripheralID, quantity,
	)
	return err
}

func (r *HandoverRepository) UpdateActaPath(ctx context.Context, id uint64, path string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE handovers SET acta_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *HandoverRepository) DeleteHandover(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM handovers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *HandoverRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.Handover, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM handover_equipments he
		JOIN handovers h ON he.handover_id = h.id
		LEFT JOIN areas sa ON h.source_area_id = sa.id
		LEFT JOIN areas da ON h.destination_area_id = da.id
		LEFT JOIN technicians t ON h.technician_id = t.id
		LEFT JOIN clients c ON h.client_id = c.id
		WHERE he.equipment_id = $1
		ORDER BY h.date DESC, h.id DESC
	`, handoverSelectColumns)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var handovers []entities.Handover
	for rows.Next() {
		h, err := scanHandover(rows)
		if err != nil {
			return nil, err
		}
		handovers = append(handovers, *h)
	}
	return handovers, rows.Err()
}
