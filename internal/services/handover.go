package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

type HandoverService struct {
	handoverRepository  repositories.HandoverRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	stock               *StockService
	txManager           repositories.TxManagerInterface
	storage             filestorage.FileStorageInterface
	branding            pdfgen.Branding
	logger              *zap.Logger
}

func NewHandoverService(
	handoverRepository repositories.HandoverRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	stock *StockService,
	txManager repositories.TxManagerInterface,
	storage filestorage.FileStorageInterface,
	branding pdfgen.Branding,
	logger *zap.Logger,
) *HandoverService {
	return &HandoverService{
		handoverRepository:  handoverRepository,
		equipmentRepository: equipmentRepository,
		stock:               stock,
		txManager:           txManager,
		storage:             storage,
		branding:            branding,
		logger:              logger,
	}
}

func (s *HandoverService) GetHandovers(ctx context.Context, filter types.Filter) ([]dto.HandoverDTO, uint64, error) {
	handovers, total, err := s.handoverRepository.GetHandovers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.HandoverDTO, 0, len(handovers))
	for i := range handovers {
		out = append(out, handoverToDTO(&handovers[i]))
	}
	return out, total, nil
}

func (s *HandoverService) FindHandover(ctx context.Context, id uint64) (*dto.HandoverDTO, error) {
	h, err := s.handoverRepository.FindHandover(ctx, id)
	if err != nil {
		return nil, err
	}
	out := handoverToDTO(h)
	return &out, nil
}

// CreateHandover writes the handover, its equipment links and its peripheral
// lines in one transaction. Each peripheral line consumes stock with the
// floor policy: the handover goes through even when fewer units remain than
// were requested, and the ledger clamps at zero.
func (s *HandoverService) CreateHandover(ctx context.Context, payload dto.CreateHandoverDTO) (*dto.HandoverDTO, error) {
	date, err := parseDate(payload.Date)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", payload.Date)
	}
	if len(payload.EquipmentIDs) == 0 && len(payload.Peripherals) == 0 {
		return nil, apperrors.NewInvalidInputError("a handover needs at least one equipment or peripheral line")
	}

	var newID uint64
	lineRemaining := make(map[uint64]int, len(payload.Peripherals))

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		h := entities.Handover{
			Date:              date,
			Type:              payload.Type,
			SourceAreaID:      payload.SourceAreaID,
			DestinationAreaID: payload.DestinationAreaID,
			TechnicianID:      payload.TechnicianID,
			ClientID:          payload.ClientID,
			ReceiverName:      payload.ReceiverName,
			Observations:      payload.Observations,
		}
		id, err := s.handoverRepository.CreateHandover(ctx, tx, h)
		if err != nil {
			return err
		}
		newID = id

		for _, equipmentID := range payload.EquipmentIDs {
			if _, err := s.equipmentRepository.FindEquipment(ctx, equipmentID); err != nil {
				return fmt.Errorf("equipment %d: %w", equipmentID, err)
			}
			if err := s.handoverRepository.AddEquipment(ctx, tx, id, equipmentID); err != nil {
				return err
			}
		}

		for _, line := range payload.Peripherals {
			if err := s.handoverRepository.AddPeripheralLine(ctx, tx, id, line.PeripheralID, line.Quantity); err != nil {
				return err
			}
			remaining, err := s.stock.FloorDecrementTx(ctx, tx, line.PeripheralID, line.Quantity)
			if err != nil {
				return fmt.Errorf("peripheral %d: %w", line.PeripheralID, err)
			}
			lineRemaining[line.PeripheralID] = remaining
		}
		return nil
	})
	if err != nil {
		s.logger.Error("handover creation failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("handover recorded",
		zap.Uint64("id", newID),
		zap.Int("equipment", len(payload.EquipmentIDs)),
		zap.Int("peripheral_lines", len(payload.Peripherals)),
	)

	for peripheralID, remaining := range lineRemaining {
		s.stock.NotifyIfLowStock(ctx, peripheralID, remaining)
	}

	if _, err := s.EnsureActa(ctx, newID); err != nil {
		s.logger.Error("handover acta generation failed", zap.Uint64("id", newID), zap.Error(err))
	}

	return s.FindHandover(ctx, newID)
}

// EnsureActa renders and persists the handover acta exactly once.
func (s *HandoverService) EnsureActa(ctx context.Context, id uint64) (string, error) {
	h, err := s.handoverRepository.FindHandover(ctx, id)
	if err != nil {
		return "", err
	}
	if h.ActaPath != nil && *h.ActaPath != "" {
		return *h.ActaPath, nil
	}

	content, err := pdfgen.HandoverActa(s.branding, h)
	if err != nil {
		return "", err
	}
	path, err := filestorage.SaveBytes(s.storage, content, fmt.Sprintf("handover-%d.pdf", h.ID), "actas/handover")
	if err != nil {
		return "", err
	}
	if err := s.handoverRepository.UpdateActaPath(ctx, h.ID, path); err != nil {
		return "", err
	}
	metrics.ActasGenerated.WithLabelValues("handover").Inc()
	return path, nil
}

func (s *HandoverService) DeleteHandover(ctx context.Context, id uint64) error {
	return s.handoverRepository.DeleteHandover(ctx, id)
}
