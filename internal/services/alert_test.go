package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type fakeDashboardRepo struct {
	lifespanExpired []entities.Equipment
	warrantyExpired []entities.Equipment
}

func (r *fakeDashboardRepo) GetKPIs(_ context.Context) (*types.DashboardKPIs, error) {
	return &types.DashboardKPIs{}, nil
}

func (r *fakeDashboardRepo) CountEquipmentByStatus(_ context.Context) ([]types.DashboardCountByGroup, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) CountEquipmentByType(_ context.Context) ([]types.DashboardCountByGroup, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) CountEquipmentByArea(_ context.Context) ([]types.DashboardCountByGroup, error) {
	return nil, nil
}

func (r *fakeDashboardRepo) ListLifespanExpired(_ context.Context, _ time.Time) ([]entities.Equipment, error) {
	return r.lifespanExpired, nil
}

func (r *fakeDashboardRepo) ListWarrantyExpired(_ context.Context, _ time.Time) ([]entities.Equipment, error) {
	return r.warrantyExpired, nil
}

type fakeMaintenanceRepo struct {
	maintenances []entities.Maintenance
}

func (r *fakeMaintenanceRepo) GetMaintenances(_ context.Context, _ types.Filter) ([]entities.Maintenance, uint64, error) {
	return r.maintenances, uint64(len(r.maintenances)), nil
}

func (r *fakeMaintenanceRepo) FindMaintenance(_ context.Context, _ uint64) (*entities.Maintenance, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeMaintenanceRepo) CreateMaintenance(_ context.Context, _ pgx.Tx, _ entities.Maintenance) (uint64, error) {
	return 0, nil
}

func (r *fakeMaintenanceRepo) UpdateActaPath(_ context.Context, _ uint64, _ string) error {
	return nil
}

func (r *fakeMaintenanceRepo) DeleteMaintenance(_ context.Context, _ uint64) error {
	return nil
}

func (r *fakeMaintenanceRepo) ListByEquipment(_ context.Context, _ uint64) ([]entities.Maintenance, error) {
	return nil, nil
}

func (r *fakeMaintenanceRepo) ListUpcoming(_ context.Context, until time.Time) ([]entities.Maintenance, error) {
	var out []entities.Maintenance
	for _, m := range r.maintenances {
		if m.NextMaintenanceDate != nil && !m.NextMaintenanceDate.After(until) {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestGetAlertsKeepsOverdueItems(t *testing.T) {
	now := time.Now()
	overdueSlot := now.AddDate(0, 0, -10)
	slotInWindow := now.AddDate(0, 0, 10)
	slotBeyondWindow := now.AddDate(0, 0, 90)
	overdueNext := now.AddDate(0, 0, -5)

	scheduleRepo := newFakeScheduleRepo()
	for i, date := range []time.Time{overdueSlot, slotInWindow, slotBeyondWindow} {
		id := uint64(i + 1)
		_, err := scheduleRepo.CreateSchedule(context.Background(), nil, entities.MaintenanceSchedule{
			EquipmentID:   id,
			ScheduledDate: date,
			Status:        constants.ScheduleStatusPending,
			Equipment:     &entities.Equipment{ID: id},
		})
		require.NoError(t, err)
	}

	maintenanceRepo := &fakeMaintenanceRepo{maintenances: []entities.Maintenance{
		{
			EquipmentID:         4,
			NextMaintenanceDate: &overdueNext,
			Equipment:           &entities.Equipment{ID: 4, SerialNumber: "SN-4"},
		},
		{
			EquipmentID:         5,
			NextMaintenanceDate: &slotBeyondWindow,
			Equipment:           &entities.Equipment{ID: 5, SerialNumber: "SN-5"},
		},
	}}

	svc := NewAlertService(
		&fakeDashboardRepo{}, newFakePeripheralRepo(), maintenanceRepo, scheduleRepo, 30, zap.NewNop())

	alerts, err := svc.GetAlerts(context.Background())
	require.NoError(t, err)

	sources := make(map[string]string)
	for _, u := range alerts.UpcomingMaintenances {
		sources[u.Date] = u.Source
	}
	assert.Len(t, alerts.UpcomingMaintenances, 3)
	assert.Equal(t, "schedule", sources[overdueSlot.Format("2006-01-02")],
		"an overdue pending slot keeps alerting")
	assert.Equal(t, "schedule", sources[slotInWindow.Format("2006-01-02")])
	assert.Equal(t, "maintenance", sources[overdueNext.Format("2006-01-02")],
		"a past-due next maintenance date keeps alerting")
	assert.NotContains(t, sources, slotBeyondWindow.Format("2006-01-02"),
		"dates past the window stay out")
}

func TestGetAlertsCollectsExpiredAndLowStock(t *testing.T) {
	warranty := time.Now().AddDate(0, 0, -1)
	dashboardRepo := &fakeDashboardRepo{
		lifespanExpired: []entities.Equipment{{ID: 1, SerialNumber: "SN-1"}},
		warrantyExpired: []entities.Equipment{{ID: 2, SerialNumber: "SN-2", WarrantyExpiry: &warranty}},
	}
	peripheralRepo := newFakePeripheralRepo(entities.Peripheral{ID: 3, Quantity: 1, MinStockLevel: 2})

	svc := NewAlertService(
		dashboardRepo, peripheralRepo, &fakeMaintenanceRepo{}, newFakeScheduleRepo(), 30, zap.NewNop())

	alerts, err := svc.GetAlerts(context.Background())
	require.NoError(t, err)

	require.Len(t, alerts.LifespanExpired, 1)
	assert.Equal(t, "SN-1", alerts.LifespanExpired[0].SerialNumber)
	require.Len(t, alerts.WarrantyExpired, 1)
	assert.Equal(t, "SN-2", alerts.WarrantyExpired[0].SerialNumber)
	require.Len(t, alerts.LowStock, 1)
	assert.Equal(t, uint64(3), alerts.LowStock[0].ID)
	assert.Empty(t, alerts.UpcomingMaintenances)
}
