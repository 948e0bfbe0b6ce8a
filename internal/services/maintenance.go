package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/pdfgen"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/filestorage"
	"inventory-system/pkg/metrics"
	"inventory-system/pkg/types"
)

type MaintenanceService struct {
	maintenanceRepository repositories.MaintenanceRepositoryInterface
	equipmentRepository   repositories.EquipmentRepositoryInterface
	scheduleSync          *ScheduleSyncService
	storage               filestorage.FileStorageInterface
	branding              pdfgen.Branding
	logger                *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	scheduleSync *ScheduleSyncService,
	storage filestorage.FileStorageInterface,
	branding pdfgen.Branding,
	logger *zap.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepository: maintenanceRepository,
		equipmentRepository:   equipmentRepository,
		scheduleSync:          scheduleSync,
		storage:               storage,
		branding:              branding,
		logger:                logger,
	}
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	maintenances, total, err := s.maintenanceRepository.GetMaintenances(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.MaintenanceDTO, 0, len(maintenances))
	for i := range maintenances {
		out = append(out, maintenanceToDTO(&maintenances[i]))
	}
	return out, total, nil
}

func (s *MaintenanceService) FindMaintenance(ctx context.Context, id uint64) (*dto.MaintenanceDTO, error) {
	m, err := s.maintenanceRepository.FindMaintenance(ctx, id)
	if err != nil {
		return nil, err
	}
	out := maintenanceToDTO(m)
	return &out, nil
}

// CreateMaintenance records a maintenance visit, then reconciles the yearly
// calendar and renders the acta. Both follow-ups run after the insert and
// never fail the creation.
func (s *MaintenanceService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	date, err := parseDate(payload.Date)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", payload.Date)
	}

	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	m := entities.Maintenance{
		EquipmentID:          payload.EquipmentID,
		Date:                 date,
		MaintenanceType:      payload.MaintenanceType,
		Description:          payload.Description,
		PerformedByID:        payload.PerformedByID,
		StartTime:            payload.StartTime,
		EndTime:              payload.EndTime,
		MaintenanceChecklist: checklistFromDTO(payload.Checklist),
	}
	if payload.NextMaintenanceDate != nil {
		next, err := parseDate(*payload.NextMaintenanceDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid next_maintenance_date %q", *payload.NextMaintenanceDate)
		}
		m.NextMaintenanceDate = &next
	}

	newID, err := s.maintenanceRepository.CreateMaintenance(ctx, nil, m)
	if err != nil {
		s.logger.Error("maintenance creation failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("maintenance recorded",
		zap.Uint64("id", newID),
		zap.Uint64("equipment_id", payload.EquipmentID),
		zap.String("date", payload.Date),
	)

	s.scheduleSync.SyncWithMaintenance(ctx, payload.EquipmentID, date)

	if _, err := s.EnsureActa(ctx, newID); err != nil {
		s.logger.Error("maintenance acta generation failed", zap.Uint64("id", newID), zap.Error(err))
	}

	return s.FindMaintenance(ctx, newID)
}

// EnsureActa renders and persists the acta PDF exactly once. A maintenance
// that already carries an artifact path keeps it untouched.
func (s *MaintenanceService) EnsureActa(ctx context.Context, id uint64) (string, error) {
	m, err := s.maintenanceRepository.FindMaintenance(ctx, id)
	if err != nil {
		return "", err
	}
	if m.ActaPath != nil && *m.ActaPath != "" {
		return *m.ActaPath, nil
	}

	content, err := pdfgen.MaintenanceActa(s.branding, m)
	if err != nil {
		return "", err
	}
	path, err := filestorage.SaveBytes(s.storage, content, fmt.Sprintf("maintenance-%d.pdf", m.ID), "actas/maintenance")
	if err != nil {
		return "", err
	}
	if err := s.maintenanceRepository.UpdateActaPath(ctx, m.ID, path); err != nil {
		return "", err
	}
	metrics.ActasGenerated.WithLabelValues("maintenance").Inc()
	return path, nil
}

func (s *MaintenanceService) DeleteMaintenance(ctx context.Context, id uint64) error {
	return s.maintenanceRepository.DeleteMaintenance(ctx, id)
}
