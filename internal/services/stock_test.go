package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/events"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/eventbus"
	"inventory-system/pkg/types"
)

type fakePeripheralRepo struct {
	peripherals map[uint64]*entities.Peripheral
}

func newFakePeripheralRepo(peripherals ...entities.Peripheral) *fakePeripheralRepo {
	r := &fakePeripheralRepo{peripherals: make(map[uint64]*entities.Peripheral)}
	for i := range peripherals {
		p := peripherals[i]
		r.peripherals[p.ID] = &p
	}
	return r
}

func (r *fakePeripheralRepo) GetPeripherals(_ context.Context, _ types.Filter) ([]entities.Peripheral, uint64, error) {
	out := make([]entities.Peripheral, 0, len(r.peripherals))
	for _, p := range r.peripherals {
		out = append(out, *p)
	}
	return out, uint64(len(out)), nil
}

func (r *fakePeripheralRepo) FindPeripheral(_ context.Context, id uint64) (*entities.Peripheral, error) {
	p, ok := r.peripherals[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePeripheralRepo) CreatePeripheral(_ context.Context, p entities.Peripheral) (uint64, error) {
	p.ID = uint64(len(r.peripherals) + 1)
	r.peripherals[p.ID] = &p
	return p.ID, nil
}

func (r *fakePeripheralRepo) UpdatePeripheral(_ context.Context, id uint64, p entities.Peripheral) error {
	if _, ok := r.peripherals[id]; !ok {
		return apperrors.ErrNotFound
	}
	p.ID = id
	r.peripherals[id] = &p
	return nil
}

func (r *fakePeripheralRepo) DeletePeripheral(_ context.Context, id uint64) error {
	delete(r.peripherals, id)
	return nil
}

func (r *fakePeripheralRepo) StrictDecrement(_ context.Context, _ pgx.Tx, id uint64, amount int) (bool, int, error) {
	p, ok := r.peripherals[id]
	if !ok {
		return false, 0, apperrors.ErrNotFound
	}
	if p.Quantity < amount {
		return false, p.Quantity, nil
	}
	p.Quantity -= amount
	return true, p.Quantity, nil
}

func (r *fakePeripheralRepo) FloorDecrement(_ context.Context, _ pgx.Tx, id uint64, amount int) (int, error) {
	p, ok := r.peripherals[id]
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	p.Quantity -= amount
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	return p.Quantity, nil
}

func (r *fakePeripheralRepo) ListLowStock(_ context.Context) ([]entities.Peripheral, error) {
	var out []entities.Peripheral
	for _, p := range r.peripherals {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newStockService(repo *fakePeripheralRepo) (*StockService, *eventbus.Bus) {
	bus := eventbus.New(zap.NewNop())
	return NewStockService(repo, bus, zap.NewNop()), bus
}

func TestStrictDecrementApplies(t *testing.T) {
	repo := newFakePeripheralRepo(entities.Peripheral{ID: 1, Quantity: 10, MinStockLevel: 2})
	svc, _ := newStockService(repo)

	res, err := svc.StrictDecrement(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, 7, res.Remaining)
	assert.Equal(t, 7, repo.peripherals[1].Quantity)
}

func TestStrictDecrementRefusesWholeAmount(t *testing.T) {
	repo := newFakePeripheralRepo(entities.Peripheral{ID: 1, Quantity: 7, MinStockLevel: 2})
	svc, _ := newStockService(repo)

	res, err := svc.StrictDecrement(context.Background(), 1, 15)
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, 7, res.Remaining)
	assert.Equal(t, 7, repo.peripherals[1].Quantity, "a refused strict decrement must not consume anything")
}

func TestStrictDecrementUnknownPeripheral(t *testing.T) {
	svc, _ := newStockService(newFakePeripheralRepo())

	_, err := svc.StrictDecrement(context.Background(), 42, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFloorDecrementClampsAtZero(t *testing.T) {
	repo := newFakePeripheralRepo(entities.Peripheral{ID: 1, Quantity: 7, MinStockLevel: 2})
	svc, _ := newStockService(repo)

	res, err := svc.FloorDecrement(context.Background(), 1, 15)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 0, repo.peripherals[1].Quantity)
}

func TestFloorDecrementNeverGoesNegative(t *testing.T) {
	repo := newFakePeripheralRepo(entities.Peripheral{ID: 1, Quantity: 3, MinStockLevel: 1})
	svc, _ := newStockService(repo)

	for i := 0; i < 5; i++ {
		res, err := svc.FloorDecrement(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Remaining, 0)
	}
	assert.Equal(t, 0, repo.peripherals[1].Quantity)
}

func TestDecrementPublishesLowStockEvent(t *testing.T) {
	repo := newFakePeripheralRepo(entities.Peripheral{ID: 1, Quantity: 5, MinStockLevel: 3, Brand: "HP", Model: "M22"})
	svc, bus := newStockService(repo)

	received := make(chan events.LowStockEvent, 1)
	bus.Subscribe(events.LowStockEventName, func(_ context.Context, event eventbus.Event) error {
		lowStock, ok := event.(events.LowStockEvent)
		if ok {
			received <- lowStock
		}
		return nil
	})

	res, err := svc.StrictDecrement(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Equal(t, 3, res.Remaining)

	select {
	case event := <-received:
		assert.Equal(t, uint64(1), event.Peripheral.ID)
		assert.Equal(t, 3, event.Remaining)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a low-stock event once quantity reached the threshold")
	}
}

func TestDecrementAboveThresholdStaysQuiet(t *testing.T) {
	repo := newFakePeripheralRepo(entities.Peripheral{ID: 1, Quantity: 10, MinStockLevel: 3})
	svc, bus := newStockService(repo)

	received := make(chan struct{}, 1)
	bus.Subscribe(events.LowStockEventName, func(_ context.Context, _ eventbus.Event) error {
		received <- struct{}{}
		return nil
	})

	_, err := svc.StrictDecrement(context.Background(), 1, 2)
	require.NoError(t, err)

	select {
	case <-received:
		t.Fatal("no low-stock event expected while quantity sits above the threshold")
	case <-time.After(200 * time.Millisecond):
	}
}
