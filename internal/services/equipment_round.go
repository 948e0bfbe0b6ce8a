package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentRoundService struct {
	roundRepository     repositories.EquipmentRoundRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentRoundService(
	roundRepository repositories.EquipmentRoundRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentRoundService {
	return &EquipmentRoundService{
		roundRepository:     roundRepository,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *EquipmentRoundService) ListByEquipment(ctx context.Context, equipmentID uint64) ([]dto.EquipmentRoundDTO, error) {
	rounds, err := s.roundRepository.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentRoundDTO, 0, len(rounds))
	for i := range rounds {
		out = append(out, roundToDTO(&rounds[i]))
	}
	return out, nil
}

func (s *EquipmentRoundService) CreateEquipmentRound(ctx context.Context, payload dto.CreateEquipmentRoundDTO) (*dto.EquipmentRoundDTO, error) {
	datetime, err := time.Parse(time.RFC3339, payload.Datetime)
	if err != nil {
		// Accept a bare date too; rounds are often logged per day.
		d, dErr := parseDate(payload.Datetime)
		if dErr != nil {
			return nil, apperrors.NewInvalidInputError("invalid datetime %q, expected RFC3339 or YYYY-MM-DD", payload.Datetime)
		}
		datetime = d
	}
	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	newID, err := s.roundRepository.CreateEquipmentRound(ctx, entities.EquipmentRound{
		EquipmentID:   payload.EquipmentID,
		Datetime:      datetime,
		GeneralStatus: payload.GeneralStatus,
		Observations:  payload.Observations,
		PerformedByID: payload.PerformedByID,
	})
	if err != nil {
		s.logger.Error("round creation failed", zap.Error(err))
		return nil, err
	}

	created, err := s.roundRepository.FindEquipmentRound(ctx, newID)
	if err != nil {
		return nil, err
	}
	out := roundToDTO(created)
	return &out, nil
}

func roundToDTO(r *entities.EquipmentRound) dto.EquipmentRoundDTO {
	return dto.EquipmentRoundDTO{
		ID:            r.ID,
		Datetime:      r.Datetime.Format(time.RFC3339),
		GeneralStatus: r.GeneralStatus,
		Observations:  r.Observations,
		Equipment:     shortEquipmentDTO(r.Equipment),
		PerformedBy:   shortTechnicianDTO(r.PerformedBy),
	}
}
