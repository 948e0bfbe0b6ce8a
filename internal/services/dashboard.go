package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(dashboardRepository repositories.DashboardRepositoryInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{dashboardRepository: dashboardRepository, logger: logger}
}

func countsToDTO(groups []types.DashboardCountByGroup) []dto.CountByGroupDTO {
	out := make([]dto.CountByGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CountByGroupDTO{Group: g.GroupName, Count: g.Count})
	}
	return out
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	kpis, err := s.dashboardRepository.GetKPIs(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.dashboardRepository.CountEquipmentByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.dashboardRepository.CountEquipmentByType(ctx)
	if err != nil {
		return nil, err
	}
	byArea, err := s.dashboardRepository.CountEquipmentByArea(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		TotalEquipment:   kpis.TotalEquipment,
		ActiveEquipment:  kpis.ActiveEquipment,
		MaintenanceCount: kpis.MaintenanceCount,
		HandoverCount:    kpis.HandoverCount,
		ByStatus:         countsToDTO(byStatus),
		ByType:           countsToDTO(byType),
		ByArea:           countsToDTO(byArea),
	}, nil
}
