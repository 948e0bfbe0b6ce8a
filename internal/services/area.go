package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type AreaService struct {
	areaRepository repositories.AreaRepositoryInterface
	logger         *zap.Logger
}

func NewAreaService(areaRepository repositories.AreaRepositoryInterface, logger *zap.Logger) *AreaService {
	return &AreaService{areaRepository: areaRepository, logger: logger}
}

func areaToDTO(a *entities.Area) dto.AreaDTO {
	out := dto.AreaDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
	}
	if a.CostCenter != nil {
		out.CostCenter = &dto.ShortCostCenterDTO{
			ID:   a.CostCenter.ID,
			Code: a.CostCenter.Code,
			Name: a.CostCenter.Name,
		}
	}
	return out
}

func (s *AreaService) GetAreas(ctx context.Context, filter types.Filter) ([]dto.AreaDTO, uint64, error) {
	areas, total, err := s.areaRepository.GetAreas(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.AreaDTO, 0, len(areas))
	for i := range areas {
		out = append(out, areaToDTO(&areas[i]))
	}
	return out, total, nil
}

func (s *AreaService) FindArea(ctx context.Context, id uint64) (*dto.AreaDTO, error) {
	a, err := s.areaRepository.FindArea(ctx, id)
	if err != nil {
		return nil, err
	}
	out := areaToDTO(a)
	return &out, nil
}

func (s *AreaService) CreateArea(ctx context.Context, payload dto.CreateAreaDTO) (*dto.AreaDTO, error) {
	newID, err := s.areaRepository.CreateArea(ctx, entities.Area{
		Name:         payload.Name,
		Description:  payload.Description,
		CostCenterID: payload.CostCenterID,
	})
	if err != nil {
		return nil, err
	}
	return s.FindArea(ctx, newID)
}

func (s *AreaService) UpdateArea(ctx context.Context, id uint64, payload dto.UpdateAreaDTO) (*dto.AreaDTO, error) {
	a, err := s.areaRepository.FindArea(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		a.Name = *payload.Name
	}
	if payload.Description != nil {
		a.Description = payload.Description
	}
	if payload.CostCenterID != nil {
		a.CostCenterID = payload.CostCenterID
	}
	if err := s.areaRepository.UpdateArea(ctx, id, *a); err != nil {
		return nil, err
	}
	return s.FindArea(ctx, id)
}

func (s *AreaService) DeleteArea(ctx context.Context, id uint64) error {
	return s.areaRepository.DeleteArea(ctx, id)
}
