package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type fakeScheduleRepo struct {
	schedules map[uint64]*entities.MaintenanceSchedule
	nextID    uint64
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[uint64]*entities.MaintenanceSchedule), nextID: 1}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func (r *fakeScheduleRepo) FindPendingInRange(_ context.Context, _ pgx.Tx, equipmentID uint64, from, to time.Time) (*entities.MaintenanceSchedule, error) {
	var best *entities.MaintenanceSchedule
	for _, s := range r.schedules {
		if s.EquipmentID != equipmentID || s.Status != constants.ScheduleStatusPending {
			continue
		}
		if s.ScheduledDate.Before(from) || s.ScheduledDate.After(to) {
			continue
		}
		if best == nil || s.ScheduledDate.Before(best.ScheduledDate) {
			best = s
		}
	}
	if best == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *best
	return &copied, nil
}

func (r *fakeScheduleRepo) FindByEquipmentAndDate(_ context.Context, _ pgx.Tx, equipmentID uint64, date time.Time) (*entities.MaintenanceSchedule, error) {
	for _, s := range r.schedules {
		if s.EquipmentID == equipmentID && sameDay(s.ScheduledDate, date) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeScheduleRepo) CreateSchedule(_ context.Context, _ pgx.Tx, s entities.MaintenanceSchedule) (uint64, error) {
	s.ID = r.nextID
	r.nextID++
	r.schedules[s.ID] = &s
	return s.ID, nil
}

func (r *fakeScheduleRepo) CompleteSchedule(_ context.Context, _ pgx.Tx, id uint64, date time.Time) error {
	s, ok := r.schedules[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.ScheduledDate = date
	s.Status = constants.ScheduleStatusCompleted
	return nil
}

func (r *fakeScheduleRepo) DeleteSchedule(_ context.Context, id uint64) error {
	if _, ok := r.schedules[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *fakeScheduleRepo) ListByYear(_ context.Context, year int) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	for _, s := range r.schedules {
		if s.ScheduledDate.Year() == year {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) ListPendingDue(_ context.Context, until time.Time) ([]entities.MaintenanceSchedule, error) {
	var out []entities.MaintenanceSchedule
	for _, s := range r.schedules {
		if s.Status != constants.ScheduleStatusPending || s.ScheduledDate.After(until) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

type fakeEquipmentRepo struct {
	equipments map[uint64]*entities.Equipment
}

func newFakeEquipmentRepo(equipments ...entities.Equipment) *fakeEquipmentRepo {
	r := &fakeEquipmentRepo{equipments: make(map[uint64]*entities.Equipment)}
	for i := range equipments {
		e := equipments[i]
		r.equipments[e.ID] = &e
	}
	return r
}

func (r *fakeEquipmentRepo) GetEquipments(_ context.Context, _ types.Filter) ([]entities.Equipment, uint64, error) {
	list, err := r.ListAllShort(context.Background())
	return list, uint64(len(list)), err
}

func (r *fakeEquipmentRepo) ListAllShort(_ context.Context) ([]entities.Equipment, error) {
	out := make([]entities.Equipment, 0, len(r.equipments))
	for _, e := range r.equipments {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEquipmentRepo) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := r.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEquipmentRepo) FindBySerialNumber(_ context.Context, _ pgx.Tx, serial string) (*entities.Equipment, error) {
	for _, e := range r.equipments {
		if e.SerialNumber == serial {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) CreateEquipment(_ context.Context, _ pgx.Tx, e entities.Equipment) (uint64, error) {
	e.ID = uint64(len(r.equipments) + 1)
	r.equipments[e.ID] = &e
	return e.ID, nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(_ context.Context, _ pgx.Tx, id uint64, e entities.Equipment) error {
	if _, ok := r.equipments[id]; !ok {
		return apperrors.ErrNotFound
	}
	e.ID = id
	r.equipments[id] = &e
	return nil
}

func (r *fakeEquipmentRepo) UpdateStatus(_ context.Context, id uint64, status string) error {
	e, ok := r.equipments[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.Status = status
	return nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(_ context.Context, id uint64) error {
	delete(r.equipments, id)
	return nil
}

func newSyncService(scheduleRepo *fakeScheduleRepo, equipmentRepo *fakeEquipmentRepo) *ScheduleSyncService {
	return NewScheduleSyncService(scheduleRepo, equipmentRepo, zap.NewNop())
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSyncCompletesPendingSlotInSameMonth(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1, SerialNumber: "SN-1"})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	id, err := scheduleRepo.CreateSchedule(context.Background(), nil, entities.MaintenanceSchedule{
		EquipmentID:   1,
		ScheduledDate: day(2026, time.March, 1),
		Status:        constants.ScheduleStatusPending,
	})
	require.NoError(t, err)

	svc.SyncWithMaintenance(context.Background(), 1, day(2026, time.March, 20))

	slot := scheduleRepo.schedules[id]
	assert.Equal(t, constants.ScheduleStatusCompleted, slot.Status)
	assert.True(t, sameDay(slot.ScheduledDate, day(2026, time.March, 20)),
		"pending slot must move onto the actual maintenance date")
	assert.Len(t, scheduleRepo.schedules, 1, "no extra slot may be created")
}

func TestSyncBackfillsCompletedSlotWhenNothingPlanned(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	svc.SyncWithMaintenance(context.Background(), 1, day(2026, time.July, 9))

	require.Len(t, scheduleRepo.schedules, 1)
	for _, s := range scheduleRepo.schedules {
		assert.Equal(t, constants.ScheduleStatusCompleted, s.Status)
		assert.True(t, sameDay(s.ScheduledDate, day(2026, time.July, 9)))
	}
}

func TestSyncIsIdempotentOnExactDate(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	svc.SyncWithMaintenance(context.Background(), 1, day(2026, time.July, 9))
	svc.SyncWithMaintenance(context.Background(), 1, day(2026, time.July, 9))

	assert.Len(t, scheduleRepo.schedules, 1, "second sync on the same date must be a noop")
}

func TestSyncIgnoresPendingSlotInOtherMonth(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	pendingID, err := scheduleRepo.CreateSchedule(context.Background(), nil, entities.MaintenanceSchedule{
		EquipmentID:   1,
		ScheduledDate: day(2026, time.April, 2),
		Status:        constants.ScheduleStatusPending,
	})
	require.NoError(t, err)

	svc.SyncWithMaintenance(context.Background(), 1, day(2026, time.March, 20))

	assert.Equal(t, constants.ScheduleStatusPending, scheduleRepo.schedules[pendingID].Status,
		"a pending slot in another month stays untouched")
	assert.Len(t, scheduleRepo.schedules, 2, "the March maintenance gets its own backfilled slot")
}

func TestToggleAddsAndRemovesPendingSlot(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	res, err := svc.Toggle(context.Background(), dto.ScheduleToggleDTO{EquipmentID: 1, Date: "2026-05-14"})
	require.NoError(t, err)
	assert.Equal(t, "added", res.Status)
	assert.Len(t, scheduleRepo.schedules, 1)

	res, err = svc.Toggle(context.Background(), dto.ScheduleToggleDTO{EquipmentID: 1, Date: "2026-05-14"})
	require.NoError(t, err)
	assert.Equal(t, "removed", res.Status)
	assert.Empty(t, scheduleRepo.schedules)
}

func TestToggleRemovesCompletedSlot(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	_, err := scheduleRepo.CreateSchedule(context.Background(), nil, entities.MaintenanceSchedule{
		EquipmentID:   1,
		ScheduledDate: day(2026, time.May, 14),
		Status:        constants.ScheduleStatusCompleted,
	})
	require.NoError(t, err)

	res, err := svc.Toggle(context.Background(), dto.ScheduleToggleDTO{EquipmentID: 1, Date: "2026-05-14"})
	require.NoError(t, err)
	assert.Equal(t, "removed", res.Status, "toggle deletes whatever slot sits on the date, completed included")
	assert.Empty(t, scheduleRepo.schedules)
}

func TestToggleRejectsUnknownEquipment(t *testing.T) {
	svc := newSyncService(newFakeScheduleRepo(), newFakeEquipmentRepo())

	_, err := svc.Toggle(context.Background(), dto.ScheduleToggleDTO{EquipmentID: 99, Date: "2026-05-14"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVisualWeekBuckets(t *testing.T) {
	assert.Equal(t, 1, VisualWeek(1))
	assert.Equal(t, 1, VisualWeek(7))
	assert.Equal(t, 2, VisualWeek(8))
	assert.Equal(t, 2, VisualWeek(14))
	assert.Equal(t, 3, VisualWeek(15))
	assert.Equal(t, 3, VisualWeek(21))
	assert.Equal(t, 4, VisualWeek(22))
	assert.Equal(t, 4, VisualWeek(31))
}

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(day(2026, time.February, 17))
	assert.True(t, sameDay(from, day(2026, time.February, 1)))
	assert.True(t, sameDay(to, day(2026, time.February, 28)))

	from, to = MonthWindow(day(2024, time.February, 5))
	assert.True(t, sameDay(from, day(2024, time.February, 1)))
	assert.True(t, sameDay(to, day(2024, time.February, 29)), "leap February runs through the 29th")
}

func TestYearGridPlacesMarkers(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1, SerialNumber: "SN-1"})
	svc := newSyncService(scheduleRepo, equipmentRepo)

	_, err := scheduleRepo.CreateSchedule(context.Background(), nil, entities.MaintenanceSchedule{
		EquipmentID:   1,
		ScheduledDate: day(2026, time.March, 18),
		Status:        constants.ScheduleStatusPending,
	})
	require.NoError(t, err)

	grid, err := svc.YearGrid(context.Background(), 2026, nil)
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	require.Len(t, grid.Rows[0].Months, 12)

	march := grid.Rows[0].Months[2]
	require.Len(t, march.Weeks, 1)
	assert.Equal(t, 3, march.Weeks[0].Week)
	assert.Equal(t, 18, march.Weeks[0].Day)
	assert.Equal(t, constants.ScheduleStatusPending, march.Weeks[0].Status)

	for i, cell := range grid.Rows[0].Months {
		if i == 2 {
			continue
		}
		assert.Empty(t, cell.Weeks)
	}
}

func TestYearGridFiltersByArea(t *testing.T) {
	areaOne, areaTwo := uint64(1), uint64(2)
	equipmentRepo := newFakeEquipmentRepo(
		entities.Equipment{ID: 1, SerialNumber: "SN-1", AreaID: &areaOne},
		entities.Equipment{ID: 2, SerialNumber: "SN-2", AreaID: &areaTwo},
		entities.Equipment{ID: 3, SerialNumber: "SN-3"},
	)
	svc := newSyncService(newFakeScheduleRepo(), equipmentRepo)

	grid, err := svc.YearGrid(context.Background(), 2026, &areaTwo)
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, uint64(2), grid.Rows[0].Equipment.ID)

	grid, err = svc.YearGrid(context.Background(), 2026, nil)
	require.NoError(t, err)
	assert.Len(t, grid.Rows, 3)
}
