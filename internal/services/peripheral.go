package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

type PeripheralService struct {
	peripheralRepository repositories.PeripheralRepositoryInterface
	typeRepository       repositories.PeripheralTypeRepositoryInterface
	logger               *zap.Logger
}

func NewPeripheralService(
	peripheralRepository repositories.PeripheralRepositoryInterface,
	typeRepository repositories.PeripheralTypeRepositoryInterface,
	logger *zap.Logger,
) *PeripheralService {
	return &PeripheralService{
		peripheralRepository: peripheralRepository,
		typeRepository:       typeRepository,
		logger:               logger,
	}
}

func (s *PeripheralService) GetPeripherals(ctx context.Context, filter types.Filter) ([]dto.PeripheralDTO, uint64, error) {
	peripherals, total, err := s.peripheralRepository.GetPeripherals(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.PeripheralDTO, 0, len(peripherals))
	for i := range peripherals {
		out = append(out, peripheralToDTO(&peripherals[i]))
	}
	return out, total, nil
}

func (s *PeripheralService) FindPeripheral(ctx context.Context, id uint64) (*dto.PeripheralDTO, error) {
	p, err := s.peripheralRepository.FindPeripheral(ctx, id)
	if err != nil {
		return nil, err
	}
	out := peripheralToDTO(p)
	return &out, nil
}

func (s *PeripheralService) CreatePeripheral(ctx context.Context, payload dto.CreatePeripheralDTO) (*dto.PeripheralDTO, error) {
	if _, err := s.typeRepository.FindPeripheralType(ctx, payload.TypeID); err != nil {
		return nil, err
	}

	p := entities.Peripheral{
		SerialNumber:  payload.SerialNumber,
		TypeID:        payload.TypeID,
		Brand:         payload.Brand,
		Model:         payload.Model,
		Status:        payload.Status,
		Quantity:      payload.Quantity,
		MinStockLevel: payload.MinStockLevel,
		ConnectedToID: payload.ConnectedToID,
		AreaID:        payload.AreaID,
	}
	if p.Status == "" {
		p.Status = constants.PeripheralStatusActive
	}

	newID, err := s.peripheralRepository.CreatePeripheral(ctx, p)
	if err != nil {
		s.logger.Error("peripheral creation failed", zap.Error(err))
		return nil, err
	}
	return s.FindPeripheral(ctx, newID)
}

func (s *PeripheralService) UpdatePeripheral(ctx context.Context, id uint64, payload dto.UpdatePeripheralDTO) (*dto.PeripheralDTO, error) {
	p, err := s.peripheralRepository.FindPeripheral(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.TypeID.Valid {
		p.TypeID = payload.TypeID.Uint64
	}
	if payload.Brand.Valid {
		p.Brand = payload.Brand.String
	}
	if payload.Model.Valid {
		p.Model = payload.Model.String
	}
	if payload.SerialNumber.Valid {
		p.SerialNumber = &payload.SerialNumber.String
	}
	if payload.Status.Valid {
		p.Status = payload.Status.String
	}
	if payload.Quantity.Valid {
		p.Quantity = payload.Quantity.Int
	}
	if payload.MinStockLevel.Valid {
		p.MinStockLevel = payload.MinStockLevel.Int
	}
	if payload.ConnectedToID.Valid {
		p.ConnectedToID = &payload.ConnectedToID.Uint64
	}
	if payload.AreaID.Valid {
		p.AreaID = &payload.AreaID.Uint64
	}

	if err := s.peripheralRepository.UpdatePeripheral(ctx, id, *p); err != nil {
		return nil, err
	}
	return s.FindPeripheral(ctx, id)
}

func (s *PeripheralService) DeletePeripheral(ctx context.Context, id uint64) error {
	return s.peripheralRepository.DeletePeripheral(ctx, id)
}

func (s *PeripheralService) GetPeripheralTypes(ctx context.Context) ([]entities.PeripheralType, error) {
	return s.typeRepository.GetPeripheralTypes(ctx)
}

func (s *PeripheralService) CreatePeripheralType(ctx context.Context, payload dto.CreatePeripheralTypeDTO) (*entities.PeripheralType, error) {
	newID, err := s.typeRepository.CreatePeripheralType(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	return s.typeRepository.FindPeripheralType(ctx, newID)
}

func (s *PeripheralService) DeletePeripheralType(ctx context.Context, id uint64) error {
	return s.typeRepository.DeletePeripheralType(ctx, id)
}
