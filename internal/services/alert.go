package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
)

// AlertService assembles the attention lists for the dashboard: equipment past
// its useful life or warranty, peripherals at or below their minimum stock and
// maintenances coming up inside the configured window.
type AlertService struct {
	dashboardRepository   repositories.DashboardRepositoryInterface
	peripheralRepository  repositories.PeripheralRepositoryInterface
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	scheduleRepository    repositories.ScheduleRepositoryInterface
	upcomingWindowDays    int
	logger                *zap.Logger
}

func NewAlertService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	peripheralRepository repositories.PeripheralRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	scheduleRepository repositories.ScheduleRepositoryInterface,
	upcomingWindowDays int,
	logger *zap.Logger,
) *AlertService {
	return &AlertService{
		dashboardRepository:   dashboardRepository,
		peripheralRepository:  peripheralRepository,
		maintenanceRepository: maintenanceRepository,
		scheduleRepository:    scheduleRepository,
		upcomingWindowDays:    upcomingWindowDays,
		logger:                logger,
	}
}

func (s *AlertService) GetAlerts(ctx context.Context) (*dto.AlertsDTO, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	lifespanExpired, err := s.dashboardRepository.ListLifespanExpired(ctx, today)
	if err != nil {
		return nil, err
	}
	warrantyExpired, err := s.dashboardRepository.ListWarrantyExpired(ctx, today)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.peripheralRepository.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.listUpcoming(ctx, today)
	if err != nil {
		return nil, err
	}

	alerts := dto.AlertsDTO{
		LifespanExpired:      make([]dto.EquipmentDTO, 0, len(lifespanExpired)),
		WarrantyExpired:      make([]dto.EquipmentDTO, 0, len(warrantyExpired)),
		LowStock:             make([]dto.PeripheralDTO, 0, len(lowStock)),
		UpcomingMaintenances: upcoming,
	}
	for i := range lifespanExpired {
		alerts.LifespanExpired = append(alerts.LifespanExpired, equipmentToDTO(&lifespanExpired[i]))
	}
	for i := range warrantyExpired {
		alerts.WarrantyExpired = append(alerts.WarrantyExpired, equipmentToDTO(&warrantyExpired[i]))
	}
	for i := range lowStock {
		alerts.LowStock = append(alerts.LowStock, peripheralToDTO(&lowStock[i]))
	}
	return &alerts, nil
}

// listUpcoming merges two sources: next_maintenance_date set on the latest
// maintenance per equipment, and PENDING schedule entries due within the
// window. Both are bounded above only, so overdue items keep alerting.
func (s *AlertService) listUpcoming(ctx context.Context, today time.Time) ([]dto.UpcomingMaintenance, error) {
	until := today.AddDate(0, 0, s.upcomingWindowDays)

	out := make([]dto.UpcomingMaintenance, 0)

	maintenances, err := s.maintenanceRepository.ListUpcoming(ctx, until)
	if err != nil {
		return nil, err
	}
	for i := range maintenances {
		m := &maintenances[i]
		if m.NextMaintenanceDate == nil || m.Equipment == nil {
			continue
		}
		out = append(out, dto.UpcomingMaintenance{
			Equipment: shortEquipmentDTO(m.Equipment),
			Date:      m.NextMaintenanceDate.Format(dateLayout),
			Source:    "maintenance",
		})
	}

	schedules, err := s.scheduleRepository.ListPendingDue(ctx, until)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		sch := &schedules[i]
		if sch.Equipment == nil {
			continue
		}
		out = append(out, dto.UpcomingMaintenance{
			Equipment: shortEquipmentDTO(sch.Equipment),
			Date:      sch.ScheduledDate.Format(dateLayout),
			Source:    "schedule",
		})
	}
	return out, nil
}
