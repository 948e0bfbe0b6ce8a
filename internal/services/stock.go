package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/events"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/eventbus"
	"inventory-system/pkg/metrics"
)

// StockService is the single entry point for consuming peripheral stock.
// Both policies delegate the arithmetic to guarded UPDATEs, so concurrent
// consumers can never observe or produce a negative quantity.
type StockService struct {
	peripheralRepository repositories.PeripheralRepositoryInterface
	bus                  *eventbus.Bus
	logger               *zap.Logger
}

func NewStockService(
	peripheralRepository repositories.PeripheralRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *StockService {
	return &StockService{
		peripheralRepository: peripheralRepository,
		bus:                  bus,
		logger:               logger,
	}
}

// StrictDecrement refuses the whole decrement when fewer than amount units
// remain. Applied=false leaves the quantity untouched.
func (s *StockService) StrictDecrement(ctx context.Context, peripheralID uint64, amount int) (*dto.StockAdjustResultDTO, error) {
	applied, remaining, err := s.peripheralRepository.StrictDecrement(ctx, nil, peripheralID, amount)
	if err != nil {
		return nil, err
	}

	if !applied {
		metrics.StockDecrements.WithLabelValues("strict", "rejected").Inc()
		s.logger.Warn("strict decrement rejected",
			zap.Uint64("peripheral_id", peripheralID),
			zap.Int("requested", amount),
			zap.Int("on_hand", remaining),
		)
		return &dto.StockAdjustResultDTO{Applied: false, Remaining: remaining}, nil
	}

	metrics.StockDecrements.WithLabelValues("strict", "ok").Inc()
	s.notifyIfLowStock(ctx, peripheralID, remaining)
	return &dto.StockAdjustResultDTO{Applied: true, Remaining: remaining}, nil
}

// FloorDecrement takes what it can and clamps the quantity at zero.
func (s *StockService) FloorDecrement(ctx context.Context, peripheralID uint64, amount int) (*dto.StockAdjustResultDTO, error) {
	remaining, err := s.peripheralRepository.FloorDecrement(ctx, nil, peripheralID, amount)
	if err != nil {
		return nil, err
	}

	outcome := "ok"
	if remaining == 0 {
		outcome = "clamped"
	}
	metrics.StockDecrements.WithLabelValues("floor", outcome).Inc()
	s.notifyIfLowStock(ctx, peripheralID, remaining)
	return &dto.StockAdjustResultDTO{Applied: true, Remaining: remaining}, nil
}

// FloorDecrementTx is the in-transaction variant used while assembling a
// handover. Low-stock notification is the caller's concern after commit.
func (s *StockService) FloorDecrementTx(ctx context.Context, tx pgx.Tx, peripheralID uint64, amount int) (int, error) {
	remaining, err := s.peripheralRepository.FloorDecrement(ctx, tx, peripheralID, amount)
	if err != nil {
		return 0, err
	}
	outcome := "ok"
	if remaining == 0 {
		outcome = "clamped"
	}
	metrics.StockDecrements.WithLabelValues("floor", outcome).Inc()
	return remaining, nil
}

// NotifyIfLowStock publishes a low-stock event when the peripheral sits at
// or below its threshold. Used directly by callers that decremented inside a
// transaction.
func (s *StockService) NotifyIfLowStock(ctx context.Context, peripheralID uint64, remaining int) {
	s.notifyIfLowStock(ctx, peripheralID, remaining)
}

func (s *StockService) notifyIfLowStock(ctx context.Context, peripheralID uint64, remaining int) {
	peripheral, err := s.peripheralRepository.FindPeripheral(ctx, peripheralID)
	if err != nil {
		s.logger.Error("low stock check failed", zap.Uint64("peripheral_id", peripheralID), zap.Error(err))
		return
	}
	if !peripheral.IsLowStock() {
		return
	}
	s.bus.Publish(ctx, events.LowStockEvent{Peripheral: peripheral, Remaining: remaining})
}
