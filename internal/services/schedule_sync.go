package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/metrics"
)

// ScheduleSyncService keeps the yearly maintenance calendar consistent with
// the maintenances that actually happened. Recording a maintenance completes
// the matching planned slot for that month, or backfills a completed slot
// when nothing was planned.
type ScheduleSyncService struct {
	scheduleRepository  repositories.ScheduleRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewScheduleSyncService(
	scheduleRepository repositories.ScheduleRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *ScheduleSyncService {
	return &ScheduleSyncService{
		scheduleRepository:  scheduleRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

// MonthWindow returns the first and last day of the month containing date.
func MonthWindow(date time.Time) (time.Time, time.Time) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// VisualWeek maps a day of month onto the calendar's four visual week
// buckets: 1-7, 8-14, 15-21 and everything after.
func VisualWeek(day int) int {
	switch {
	case day <= 7:
		return 1
	case day <= 14:
		return 2
	case day <= 21:
		return 3
	default:
		return 4
	}
}

// SyncWithMaintenance reconciles the calendar after a maintenance was
// recorded. A pending slot anywhere in the maintenance's month is moved onto
// the actual date and completed; otherwise a completed slot is backfilled,
// unless one already sits on that exact date. Runs after the maintenance
// commits: any failure here is logged and swallowed so the maintenance
// itself never rolls back over calendar bookkeeping.
func (s *ScheduleSyncService) SyncWithMaintenance(ctx context.Context, equipmentID uint64, maintenanceDate time.Time) {
	outcome := s.sync(ctx, equipmentID, maintenanceDate)
	metrics.ScheduleSyncs.WithLabelValues(outcome).Inc()
}

func (s *ScheduleSyncService) sync(ctx context.Context, equipmentID uint64, maintenanceDate time.Time) string {
	from, to := MonthWindow(maintenanceDate)

	pending, err := s.scheduleRepository.FindPendingInRange(ctx, nil, equipmentID, from, to)
	if err == nil {
		if err := s.scheduleRepository.CompleteSchedule(ctx, nil, pending.ID, maintenanceDate); err != nil {
			s.logger.Error("schedule sync: completing pending slot failed",
				zap.Uint64("equipment_id", equipmentID),
				zap.Time("date", maintenanceDate),
				zap.Error(err),
			)
			return "error"
		}
		return "completed"
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Error("schedule sync: pending lookup failed",
			zap.Uint64("equipment_id", equipmentID),
			zap.Error(err),
		)
		return "error"
	}

	// No pending slot this month. Backfill a completed one unless the exact
	// date is already taken.
	_, err = s.scheduleRepository.FindByEquipmentAndDate(ctx, nil, equipmentID, maintenanceDate)
	if err == nil {
		return "noop"
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Error("schedule sync: exact date lookup failed",
			zap.Uint64("equipment_id", equipmentID),
			zap.Error(err),
		)
		return "error"
	}

	_, err = s.scheduleRepository.CreateSchedule(ctx, nil, entities.MaintenanceSchedule{
		EquipmentID:   equipmentID,
		ScheduledDate: maintenanceDate,
		Status:        constants.ScheduleStatusCompleted,
	})
	if err != nil {
		s.logger.Error("schedule sync: backfill failed",
			zap.Uint64("equipment_id", equipmentID),
			zap.Time("date", maintenanceDate),
			zap.Error(err),
		)
		return "error"
	}
	return "created"
}

// Toggle marks a planned maintenance day for the equipment, or removes the
// slot already sitting on that date, whatever its status.
func (s *ScheduleSyncService) Toggle(ctx context.Context, payload dto.ScheduleToggleDTO) (*dto.ScheduleToggleResultDTO, error) {
	date, err := parseDate(payload.Date)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", payload.Date)
	}

	existing, err := s.scheduleRepository.FindByEquipmentAndDate(ctx, nil, payload.EquipmentID, date)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err == nil {
		if err := s.scheduleRepository.DeleteSchedule(ctx, existing.ID); err != nil {
			return nil, err
		}
		return &dto.ScheduleToggleResultDTO{Status: "removed"}, nil
	}

	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}
	_, err = s.scheduleRepository.CreateSchedule(ctx, nil, entities.MaintenanceSchedule{
		EquipmentID:   payload.EquipmentID,
		ScheduledDate: date,
		Status:        constants.ScheduleStatusPending,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleToggleResultDTO{Status: "added"}, nil
}

// YearGrid builds the equipment-by-month calendar for a year. Every
// equipment gets a row; schedules land in their month cell with the visual
// week bucket precomputed for rendering. A non-nil areaID narrows the rows
// to that area's equipment.
func (s *ScheduleSyncService) YearGrid(ctx context.Context, year int, areaID *uint64) (*dto.ScheduleGridDTO, error) {
	equipments, err := s.equipmentRepository.ListAllShort(ctx)
	if err != nil {
		return nil, err
	}
	if areaID != nil {
		kept := equipments[:0]
		for _, e := range equipments {
			if e.AreaID != nil && *e.AreaID == *areaID {
				kept = append(kept, e)
			}
		}
		equipments = kept
	}
	schedules, err := s.scheduleRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	markersByEquipment := make(map[uint64]map[int][]dto.ScheduleGridMarkerDTO)
	for _, schedule := range schedules {
		month := int(schedule.ScheduledDate.Month())
		day := schedule.ScheduledDate.Day()
		byMonth, ok := markersByEquipment[schedule.EquipmentID]
		if !ok {
			byMonth = make(map[int][]dto.ScheduleGridMarkerDTO)
			markersByEquipment[schedule.EquipmentID] = byMonth
		}
		byMonth[month] = append(byMonth[month], dto.ScheduleGridMarkerDTO{
			Week:   VisualWeek(day),
			Day:    day,
			Date:   formatDate(schedule.ScheduledDate),
			Status: schedule.Status,
		})
	}

	grid := &dto.ScheduleGridDTO{
		Year: year,
		Rows: make([]dto.ScheduleGridRowDTO, 0, len(equipments)),
	}
	for i := range equipments {
		equipment := &equipments[i]
		row := dto.ScheduleGridRowDTO{
			Equipment: shortEquipmentDTO(equipment),
			Months:    make([]dto.ScheduleGridCellDTO, 0, 12),
		}
		for month := 1; month <= 12; month++ {
			row.Months = append(row.Months, dto.ScheduleGridCellDTO{
				Month: month,
				Weeks: markersByEquipment[equipment.ID][month],
			})
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid, nil
}
