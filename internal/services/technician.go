package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type TechnicianService struct {
	technicianRepository repositories.TechnicianRepositoryInterface
}

func NewTechnicianService(technicianRepository repositories.TechnicianRepositoryInterface) *TechnicianService {
	return &TechnicianService{technicianRepository: technicianRepository}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context) ([]dto.TechnicianDTO, error) {
	technicians, err := s.technicianRepository.GetTechnicians(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnicianDTO, 0, len(technicians))
	for _, t := range technicians {
		out = append(out, dto.TechnicianDTO{ID: t.ID, Name: t.Name, Email: t.Email})
	}
	return out, nil
}

func (s *TechnicianService) FindTechnician(ctx context.Context, id uint64) (*dto.TechnicianDTO, error) {
	t, err := s.technicianRepository.FindTechnician(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TechnicianDTO{ID: t.ID, Name: t.Name, Email: t.Email}, nil
}

func (s *TechnicianService) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*dto.TechnicianDTO, error) {
	newID, err := s.technicianRepository.CreateTechnician(ctx, entities.Technician{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		return nil, err
	}
	return s.FindTechnician(ctx, newID)
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) (*dto.TechnicianDTO, error) {
	t, err := s.technicianRepository.FindTechnician(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		t.Name = *payload.Name
	}
	if payload.Email != nil {
		t.Email = payload.Email
	}
	if err := s.technicianRepository.UpdateTechnician(ctx, id, *t); err != nil {
		return nil, err
	}
	return s.FindTechnician(ctx, id)
}

func (s *TechnicianService) DeleteTechnician(ctx context.Context, id uint64) error {
	return s.technicianRepository.DeleteTechnician(ctx, id)
}
