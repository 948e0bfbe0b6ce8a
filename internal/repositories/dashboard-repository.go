package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

type DashboardRepositoryInterface interface {
	GetKPIs(ctx context.Context) (*types.DashboardKPIs, error)
	CountEquipmentByStatus(ctx context.Context) ([]types.DashboardCountByGroup, error)
	CountEquipmentByType(ctx context.Context) ([]types.DashboardCountByGroup, error)
	CountEquipmentByArea(ctx context.Context) ([]types.DashboardCountByGroup, error)
	ListLifespanExpired(ctx context.Context, today time.Time) ([]entities.Equipment, error)
	ListWarrantyExpired(ctx context.Context, today time.Time) ([]entities.Equipment, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) GetKPIs(ctx context.Context) (*types.DashboardKPIs, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM equipments),
			(SELECT COUNT(*) FROM equipments WHERE status = $1),
			(SELECT COUNT(*) FROM maintenances),
			(SELECT COUNT(*) FROM handovers)
	`
	var kpis types.DashboardKPIs
	err := r.storage.QueryRow(ctx, query, constants.EquipmentStatusActive).Scan(
		&kpis.TotalEquipment,
		&kpis.ActiveEquipment,
		&kpis.MaintenanceCount,
		&kpis.HandoverCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard KPIs: %w", err)
	}
	return &kpis, nil
}

func (r *DashboardRepository) countByGroup(ctx context.Context, query string) ([]types.DashboardCountByGroup, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []types.DashboardCountByGroup
	for rows.Next() {
		var g types.DashboardCountByGroup
		if err := rows.Scan(&g.GroupName, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *DashboardRepository) CountEquipmentByStatus(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return r.countByGroup(ctx, `
		SELECT status, COUNT(*) FROM equipments
		GROUP BY status ORDER BY COUNT(*) DESC
	`)
}

func (r *DashboardRepository) CountEquipmentByType(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return r.countByGroup(ctx, `
		SELECT type, COUNT(*) FROM equipments
		GROUP BY type ORDER BY COUNT(*) DESC
	`)
}

func (r *DashboardRepository) CountEquipmentByArea(ctx context.Context) ([]types.DashboardCountByGroup, error) {
	return r.countByGroup(ctx, `
		SELECT COALESCE(a.name, 'Unassigned'), COUNT(*)
		FROM equipments e
		LEFT JOIN areas a ON e.area_id = a.id
		GROUP BY a.name ORDER BY COUNT(*) DESC
	`)
}

// ListLifespanExpired pushes the lifespan cutoff into SQL with 365-day years,
// so the filter stays a single indexable scan. The exact calendar-year date
// shown per item comes from Equipment.EndOfLifeDate.
func (r *DashboardRepository) ListLifespanExpired(ctx context.Context, today time.Time) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipments e
		LEFT JOIN areas a ON e.area_id = a.id
		WHERE e.purchase_date IS NOT NULL
		  AND e.lifespan_years IS NOT NULL
		  AND e.status <> $2
		  AND e.purchase_date + (INTERVAL '365 days' * e.lifespan_years) <= $1
		ORDER BY e.purchase_date ASC
	`, equipmentSelectColumns)
	return r.listEquipments(ctx, query, today, constants.EquipmentStatusRetired)
}

func (r *DashboardRepository) ListWarrantyExpired(ctx context.Context, today time.Time) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM equipments e
		LEFT JOIN areas a ON e.area_id = a.id
		WHERE e.warranty_expiry IS NOT NULL
		  AND e.warranty_expiry < $1
		  AND e.status <> $2
		ORDER BY e.warranty_expiry ASC
	`, equipmentSelectColumns)
	return r.listEquipments(ctx, query, today, constants.EquipmentStatusRetired)
}

func (r *DashboardRepository) listEquipments(ctx context.Context, query string, args ...any) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipments []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipments = append(equipments, *e)
	}
	return equipments, rows.Err()
}
