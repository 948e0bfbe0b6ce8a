package events

import (
	"inventory-system/internal/entities"
)

const (
	LowStockEventName = "stock.low"
)

// LowStockEvent fires when a decrement leaves a peripheral at or below its
// minimum stock level.
type LowStockEvent struct {
	Peripheral *entities.Peripheral
	Remaining  int
}

func (e LowStockEvent) Name() string { return LowStockEventName }
