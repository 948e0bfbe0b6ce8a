package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/migrations"
	"inventory-system/pkg/constants"
)

// connectTestDB applies the embedded migrations against TEST_DATABASE_URL and
// truncates the tables touched by these tests. Skips when no test database is
// configured.
func connectTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, migrations.Up(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE TABLE maintenance_schedules, maintenances, equipments RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func seedEquipment(t *testing.T, pool *pgxpool.Pool, serial, status string, warrantyExpiry *time.Time) uint64 {
	t.Helper()
	var id uint64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO equipments (serial_number, type, brand, model, status, warranty_expiry)
		VALUES ($1, 'PC', 'HP', 'ProDesk', $2, $3)
		RETURNING id
	`, serial, status, warrantyExpiry).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestListWarrantyExpired(t *testing.T) {
	pool := connectTestDB(t)
	repo := NewDashboardRepository(pool, zap.NewNop())

	today := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	seedEquipment(t, pool, "EXPIRED", constants.EquipmentStatusActive, &yesterday)
	seedEquipment(t, pool, "EXPIRES-TODAY", constants.EquipmentStatusActive, &today)
	seedEquipment(t, pool, "STILL-COVERED", constants.EquipmentStatusActive, &tomorrow)
	seedEquipment(t, pool, "RETIRED-EXPIRED", constants.EquipmentStatusRetired, &yesterday)
	seedEquipment(t, pool, "NO-WARRANTY", constants.EquipmentStatusActive, nil)

	expired, err := repo.ListWarrantyExpired(context.Background(), today)
	require.NoError(t, err)

	require.Len(t, expired, 1, "only strictly-before-today, non-retired equipment expires")
	assert.Equal(t, "EXPIRED", expired[0].SerialNumber)
}

func TestListPendingDueIncludesOverdue(t *testing.T) {
	pool := connectTestDB(t)
	repo := NewScheduleRepository(pool, zap.NewNop())

	today := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	until := today.AddDate(0, 0, 30)

	equipmentID := seedEquipment(t, pool, "SN-1", constants.EquipmentStatusActive, nil)
	seedSchedule := func(date time.Time, status string) {
		_, err := pool.Exec(context.Background(), `
			INSERT INTO maintenance_schedules (equipment_id, scheduled_date, status)
			VALUES ($1, $2, $3)
		`, equipmentID, date, status)
		require.NoError(t, err)
	}
	seedSchedule(today.AddDate(0, 0, -20), constants.ScheduleStatusPending)
	seedSchedule(today.AddDate(0, 0, 10), constants.ScheduleStatusPending)
	seedSchedule(today.AddDate(0, 0, 60), constants.ScheduleStatusPending)
	seedSchedule(today.AddDate(0, 0, -5), constants.ScheduleStatusCompleted)

	due, err := repo.ListPendingDue(context.Background(), until)
	require.NoError(t, err)

	require.Len(t, due, 2, "overdue and in-window pending slots, nothing completed or beyond")
	assert.True(t, due[0].ScheduledDate.Before(today), "overdue slot comes first")
}

func TestListUpcomingIncludesPastDue(t *testing.T) {
	pool := connectTestDB(t)
	repo := NewMaintenanceRepository(pool, zap.NewNop())

	today := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	until := today.AddDate(0, 0, 30)

	seedMaintenance := func(serial string, next time.Time) {
		equipmentID := seedEquipment(t, pool, serial, constants.EquipmentStatusActive, nil)
		_, err := pool.Exec(context.Background(), `
			INSERT INTO maintenances (equipment_id, maintenance_type, description, next_maintenance_date)
			VALUES ($1, 'PREVENTIVE', $2, $3)
		`, equipmentID, fmt.Sprintf("check %s", serial), next)
		require.NoError(t, err)
	}
	seedMaintenance("PAST-DUE", today.AddDate(0, 0, -15))
	seedMaintenance("IN-WINDOW", today.AddDate(0, 0, 15))
	seedMaintenance("BEYOND", today.AddDate(0, 0, 45))

	upcoming, err := repo.ListUpcoming(context.Background(), until)
	require.NoError(t, err)

	require.Len(t, upcoming, 2)
	require.NotNil(t, upcoming[0].Equipment)
	assert.Equal(t, "PAST-DUE", upcoming[0].Equipment.SerialNumber,
		"a past-due next maintenance date still alerts, ordered first")
	assert.Equal(t, "IN-WINDOW", upcoming[1].Equipment.SerialNumber)
}
