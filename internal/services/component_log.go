package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type ComponentLogService struct {
	componentLogRepository repositories.ComponentLogRepositoryInterface
	peripheralRepository   repositories.PeripheralRepositoryInterface
	equipmentRepository    repositories.EquipmentRepositoryInterface
	stock                  *StockService
	txManager              repositories.TxManagerInterface
	logger                 *zap.Logger
}

func NewComponentLogService(
	componentLogRepository repositories.ComponentLogRepositoryInterface,
	peripheralRepository repositories.PeripheralRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	stock *StockService,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *ComponentLogService {
	return &ComponentLogService{
		componentLogRepository: componentLogRepository,
		peripheralRepository:   peripheralRepository,
		equipmentRepository:    equipmentRepository,
		stock:                  stock,
		txManager:              txManager,
		logger:                 logger,
	}
}

func (s *ComponentLogService) ListByEquipment(ctx context.Context, equipmentID uint64) ([]dto.ComponentLogDTO, error) {
	logs, err := s.componentLogRepository.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComponentLogDTO, 0, len(logs))
	for i := range logs {
		out = append(out, s.toDTO(&logs[i]))
	}
	return out, nil
}

// CreateComponentLog records a component swap. When the swap consumes a
// stocked peripheral, the decrement is strict: short stock aborts the whole
// operation with a typed error, nothing is written.
func (s *ComponentLogService) CreateComponentLog(ctx context.Context, payload dto.CreateComponentLogDTO) (*dto.ComponentLogDTO, error) {
	date, err := parseDate(payload.Date)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", payload.Date)
	}
	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	quantity := payload.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	log := entities.ComponentLog{
		EquipmentID:   payload.EquipmentID,
		Date:          date,
		ActionType:    payload.ActionType,
		ComponentName: payload.ComponentName,
		Description:   payload.Description,
		PeripheralID:  payload.PeripheralID,
		Quantity:      quantity,
		PerformedByID: payload.PerformedByID,
	}

	var newID uint64
	var remaining int
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if payload.PeripheralID != nil {
			applied, left, err := s.peripheralRepository.StrictDecrement(ctx, tx, *payload.PeripheralID, quantity)
			if err != nil {
				return err
			}
			if !applied {
				return apperrors.ErrInsufficientStock
			}
			remaining = left
		}
		id, err := s.componentLogRepository.CreateComponentLog(ctx, tx, log)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("component swap recorded",
		zap.Uint64("id", newID),
		zap.Uint64("equipment_id", payload.EquipmentID),
		zap.String("component", payload.ComponentName),
	)

	if payload.PeripheralID != nil {
		s.stock.NotifyIfLowStock(ctx, *payload.PeripheralID, remaining)
	}

	created, err := s.componentLogRepository.FindComponentLog(ctx, newID)
	if err != nil {
		return nil, err
	}
	out := s.toDTO(created)
	return &out, nil
}

func (s *ComponentLogService) toDTO(cl *entities.ComponentLog) dto.ComponentLogDTO {
	out := dto.ComponentLogDTO{
		ID:            cl.ID,
		Date:          formatDate(cl.Date),
		ActionType:    cl.ActionType,
		ComponentName: cl.ComponentName,
		Description:   cl.Description,
		Quantity:      cl.Quantity,
		Equipment:     shortEquipmentDTO(cl.Equipment),
		PerformedBy:   shortTechnicianDTO(cl.PerformedBy),
	}
	if cl.Peripheral != nil {
		p := peripheralToDTO(cl.Peripheral)
		out.Peripheral = &p
	}
	return out
}
