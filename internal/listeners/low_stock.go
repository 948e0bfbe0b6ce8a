package listeners

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"inventory-system/internal/events"
	"inventory-system/pkg/eventbus"
	"inventory-system/pkg/websocket"
)

// LowStockListener pushes low-stock alerts to dashboard clients over the
// websocket hub. Redis SETNX keeps one alert per peripheral within the
// dedup TTL, so a burst of handovers does not spam the dashboard.
type LowStockListener struct {
	redis    *redis.Client
	hub      *websocket.Hub
	dedupTTL time.Duration
	logger   *zap.Logger
}

func NewLowStockListener(redisClient *redis.Client, hub *websocket.Hub, dedupTTL time.Duration, logger *zap.Logger) *LowStockListener {
	return &LowStockListener{
		redis:    redisClient,
		hub:      hub,
		dedupTTL: dedupTTL,
		logger:   logger,
	}
}

// Register subscribes the listener on the bus.
func (l *LowStockListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.LowStockEventName, l.Handle)
}

func (l *LowStockListener) Handle(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.LowStockEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, events.LowStockEventName)
	}
	if e.Peripheral == nil {
		return nil
	}

	dedupKey := fmt.Sprintf("alerts:low-stock:%d", e.Peripheral.ID)
	isFirst, err := l.redis.SetNX(ctx, dedupKey, 1, l.dedupTTL).Result()
	if err != nil {
		// Redis being down should not silence alerts, only dedup.
		l.logger.Warn("low stock dedup check failed", zap.Error(err))
		isFirst = true
	}
	if !isFirst {
		return nil
	}

	payload := websocket.AlertPayload{
		Kind: "low_stock",
		Message: fmt.Sprintf("%s %s is low on stock: %d left (minimum %d)",
			e.Peripheral.Brand, e.Peripheral.Model, e.Remaining, e.Peripheral.MinStockLevel),
		EntityID:  e.Peripheral.ID,
		CreatedAt: time.Now().UTC(),
	}
	l.logger.Info("broadcasting low stock alert",
		zap.Uint64("peripheral_id", e.Peripheral.ID),
		zap.Int("remaining", e.Remaining),
	)
	return l.hub.Broadcast(payload, "alert")
}
