package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/pdfgen"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type EquipmentService struct {
	equipmentRepository    repositories.EquipmentRepositoryInterface
	maintenanceRepository  repositories.MaintenanceRepositoryInterface
	handoverRepository     repositories.HandoverRepositoryInterface
	componentLogRepository repositories.ComponentLogRepositoryInterface
	roundRepository        repositories.EquipmentRoundRepositoryInterface
	branding               pdfgen.Branding
	logger                 *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
	componentLogRepository repositories.ComponentLogRepositoryInterface,
	roundRepository repositories.EquipmentRoundRepositoryInterface,
	branding pdfgen.Branding,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository:    equipmentRepository,
		maintenanceRepository:  maintenanceRepository,
		handoverRepository:     handoverRepository,
		componentLogRepository: componentLogRepository,
		roundRepository:        roundRepository,
		branding:               branding,
		logger:                 logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	equipments, total, err := s.equipmentRepository.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.EquipmentDTO, 0, len(equipments))
	for i := range equipments {
		out = append(out, equipmentToDTO(&equipments[i]))
	}
	return out, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	out := equipmentToDTO(e)
	return &out, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	e := entities.Equipment{
		SerialNumber:    payload.SerialNumber,
		Type:            payload.Type,
		Brand:           payload.Brand,
		Model:           payload.Model,
		Status:          payload.Status,
		OperatingSystem: payload.OperatingSystem,
		Processor:       payload.Processor,
		RAM:             payload.RAM,
		Storage:         payload.Storage,
		Voltage:         payload.Voltage,
		Amperage:        payload.Amperage,
		OSUser:          payload.OSUser,
		ScreenSize:      payload.ScreenSize,
		IPAddress:       payload.IPAddress,
		OwnershipType:   payload.OwnershipType,
		AreaID:          payload.AreaID,
		LifespanYears:   payload.LifespanYears,
	}
	if e.Status == "" {
		e.Status = constants.EquipmentStatusActive
	}
	if payload.PurchaseDate != nil {
		d, err := parseDate(*payload.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid purchase_date %q", *payload.PurchaseDate)
		}
		e.PurchaseDate = &d
	}
	if payload.WarrantyExpiry != nil {
		d, err := parseDate(*payload.WarrantyExpiry)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid warranty_expiry %q", *payload.WarrantyExpiry)
		}
		e.WarrantyExpiry = &d
	}

	newID, err := s.equipmentRepository.CreateEquipment(ctx, nil, e)
	if err != nil {
		s.logger.Error("equipment creation failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipment registered", zap.Uint64("id", newID), zap.String("serial", payload.SerialNumber))
	return s.FindEquipment(ctx, newID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	e, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.SerialNumber != nil {
		e.SerialNumber = *payload.SerialNumber
	}
	if payload.Type != nil {
		e.Type = *payload.Type
	}
	if payload.Brand != nil {
		e.Brand = *payload.Brand
	}
	if payload.Model != nil {
		e.Model = *payload.Model
	}
	if payload.Status != nil {
		e.Status = *payload.Status
	}
	if payload.OperatingSystem != nil {
		e.OperatingSystem = payload.OperatingSystem
	}
	if payload.Processor != nil {
		e.Processor = payload.Processor
	}
	if payload.RAM != nil {
		e.RAM = payload.RAM
	}
	if payload.Storage != nil {
		e.Storage = payload.Storage
	}
	if payload.Voltage != nil {
		e.Voltage = payload.Voltage
	}
	if payload.Amperage != nil {
		e.Amperage = payload.Amperage
	}
	if payload.OSUser != nil {
		e.OSUser = payload.OSUser
	}
	if payload.ScreenSize != nil {
		e.ScreenSize = payload.ScreenSize
	}
	if payload.IPAddress != nil {
		e.IPAddress = payload.IPAddress
	}
	if payload.OwnershipType != nil {
		e.OwnershipType = payload.OwnershipType
	}
	if payload.AreaID != nil {
		e.AreaID = payload.AreaID
	}
	if payload.LifespanYears != nil {
		e.LifespanYears = payload.LifespanYears
	}
	if payload.PurchaseDate != nil {
		d, err := parseDate(*payload.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid purchase_date %q", *payload.PurchaseDate)
		}
		e.PurchaseDate = &d
	}
	if payload.WarrantyExpiry != nil {
		d, err := parseDate(*payload.WarrantyExpiry)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid warranty_expiry %q", *payload.WarrantyExpiry)
		}
		e.WarrantyExpiry = &d
	}

	if err := s.equipmentRepository.UpdateEquipment(ctx, nil, id, *e); err != nil {
		return nil, err
	}
	return s.FindEquipment(ctx, id)
}

// Retire takes the equipment out of circulation without deleting its
// history.
func (s *EquipmentService) Retire(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	if err := s.equipmentRepository.UpdateStatus(ctx, id, constants.EquipmentStatusRetired); err != nil {
		return nil, err
	}
	s.logger.Info("equipment retired", zap.Uint64("id", id))
	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepository.DeleteEquipment(ctx, id)
}

type historyEntry struct {
	kind    string
	date    time.Time
	summary string
	refID   uint64
}

// History merges everything that ever happened to the equipment into one
// timeline, newest first.
func (s *EquipmentService) History(ctx context.Context, id uint64) ([]dto.EquipmentHistoryEntryDTO, error) {
	entries, _, err := s.collectHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentHistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.EquipmentHistoryEntryDTO{
			Kind:        entry.kind,
			Date:        formatDate(entry.date),
			Summary:     entry.summary,
			ReferenceID: entry.refID,
		})
	}
	return out, nil
}

// HistoryPDF renders the equipment's lifecycle sheet.
func (s *EquipmentService) HistoryPDF(ctx context.Context, id uint64) ([]byte, string, error) {
	entries, equipment, err := s.collectHistory(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdfEntries := make([]pdfgen.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		pdfEntries = append(pdfEntries, pdfgen.HistoryEntry{
			Kind:    entry.kind,
			Date:    entry.date,
			Summary: entry.summary,
		})
	}
	content, err := pdfgen.EquipmentHistory(s.branding, equipment, pdfEntries)
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("history-%s.pdf", equipment.SerialNumber)
	return content, fileName, nil
}

func (s *EquipmentService) collectHistory(ctx context.Context, id uint64) ([]historyEntry, *entities.Equipment, error) {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var entries []historyEntry
	if equipment.CreatedAt != nil {
		entries = append(entries, historyEntry{
			kind:    "REGISTERED",
			date:    *equipment.CreatedAt,
			summary: fmt.Sprintf("Registered as %s %s", equipment.Brand, equipment.Model),
			refID:   equipment.ID,
		})
	}

	maintenances, err := s.maintenanceRepository.ListByEquipment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	for _, m := range maintenances {
		entries = append(entries, historyEntry{
			kind:    "MAINTENANCE",
			date:    m.Date,
			summary: fmt.Sprintf("%s: %s", m.MaintenanceType, m.Description),
			refID:   m.ID,
		})
	}

	handovers, err := s.handoverRepository.ListByEquipment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	for _, h := range handovers {
		summary := h.Type
		if h.DestinationArea != nil {
			summary = fmt.Sprintf("%s to %s", h.Type, h.DestinationArea.Name)
		}
		entries = append(entries, historyEntry{
			kind:    "HANDOVER",
			date:    h.Date,
			summary: summary,
			refID:   h.ID,
		})
	}

	componentLogs, err := s.componentLogRepository.ListByEquipment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	for _, cl := range componentLogs {
		entries = append(entries, historyEntry{
			kind:    "COMPONENT",
			date:    cl.Date,
			summary: fmt.Sprintf("%s %s", cl.ActionType, cl.ComponentName),
			refID:   cl.ID,
		})
	}

	rounds, err := s.roundRepository.ListByEquipment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	for _, round := range rounds {
		entries = append(entries, historyEntry{
			kind:    "ROUND",
			date:    round.Datetime,
			summary: fmt.Sprintf("Round check: %s", round.GeneralStatus),
			refID:   round.ID,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.After(entries[j].date)
	})
	return entries, equipment, nil
}
