package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type CostCenterService struct {
	costCenterRepository repositories.CostCenterRepositoryInterface
}

func NewCostCenterService(costCenterRepository repositories.CostCenterRepositoryInterface) *CostCenterService {
	return &CostCenterService{costCenterRepository: costCenterRepository}
}

func (s *CostCenterService) GetCostCenters(ctx context.Context, filter types.Filter) ([]dto.CostCenterDTO, uint64, error) {
	items, total, err := s.costCenterRepository.GetCostCenters(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.CostCenterDTO, 0, len(items))
	for _, cc := range items {
		out = append(out, dto.CostCenterDTO{ID: cc.ID, Code: cc.Code, Name: cc.Name})
	}
	return out, total, nil
}

func (s *CostCenterService) FindCostCenter(ctx context.Context, id uint64) (*dto.CostCenterDTO, error) {
	cc, err := s.costCenterRepository.FindCostCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CostCenterDTO{ID: cc.ID, Code: cc.Code, Name: cc.Name}, nil
}

func (s *CostCenterService) CreateCostCenter(ctx context.Context, payload dto.CreateCostCenterDTO) (*dto.CostCenterDTO, error) {
	newID, err := s.costCenterRepository.CreateCostCenter(ctx, entities.CostCenter{
		Code: payload.Code,
		Name: payload.Name,
	})
	if err != nil {
		return nil, err
	}
	return s.FindCostCenter(ctx, newID)
}

func (s *CostCenterService) UpdateCostCenter(ctx context.Context, id uint64, payload dto.UpdateCostCenterDTO) (*dto.CostCenterDTO, error) {
	cc, err := s.costCenterRepository.FindCostCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Code != nil {
		cc.Code = *payload.Code
	}
	if payload.Name != nil {
		cc.Name = *payload.Name
	}
	if err := s.costCenterRepository.UpdateCostCenter(ctx, id, *cc); err != nil {
		return nil, err
	}
	return s.FindCostCenter(ctx, id)
}

func (s *CostCenterService) DeleteCostCenter(ctx context.Context, id uint64) error {
	return s.costCenterRepository.DeleteCostCenter(ctx, id)
}
