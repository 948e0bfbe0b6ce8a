package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type fakeComponentLogRepo struct {
	logs   map[uint64]*entities.ComponentLog
	nextID uint64
}

func newFakeComponentLogRepo() *fakeComponentLogRepo {
	return &fakeComponentLogRepo{logs: make(map[uint64]*entities.ComponentLog), nextID: 1}
}

func (r *fakeComponentLogRepo) FindComponentLog(_ context.Context, id uint64) (*entities.ComponentLog, error) {
	l, ok := r.logs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (r *fakeComponentLogRepo) CreateComponentLog(_ context.Context, _ pgx.Tx, log entities.ComponentLog) (uint64, error) {
	log.ID = r.nextID
	r.nextID++
	r.logs[log.ID] = &log
	return log.ID, nil
}

func (r *fakeComponentLogRepo) ListByEquipment(_ context.Context, equipmentID uint64) ([]entities.ComponentLog, error) {
	var out []entities.ComponentLog
	for _, l := range r.logs {
		if l.EquipmentID == equipmentID {
			out = append(out, *l)
		}
	}
	return out, nil
}

// fakeTxManager runs the callback without a transaction; the fakes it calls
// into mutate in-memory state directly, so rollback is simulated by the
// callback erroring before any write.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func newComponentLogService(
	logRepo *fakeComponentLogRepo,
	peripheralRepo *fakePeripheralRepo,
	equipmentRepo *fakeEquipmentRepo,
) *ComponentLogService {
	stock, _ := newStockService(peripheralRepo)
	return NewComponentLogService(logRepo, peripheralRepo, equipmentRepo, stock, fakeTxManager{}, zap.NewNop())
}

func componentLogPayload(equipmentID uint64, peripheralID *uint64, quantity int) dto.CreateComponentLogDTO {
	return dto.CreateComponentLogDTO{
		EquipmentID:   equipmentID,
		Date:          "2026-08-01",
		ActionType:    "REPLACEMENT",
		ComponentName: "RAM module",
		PeripheralID:  peripheralID,
		Quantity:      quantity,
	}
}

func TestCreateComponentLogConsumesStockStrictly(t *testing.T) {
	logRepo := newFakeComponentLogRepo()
	peripheralRepo := newFakePeripheralRepo(entities.Peripheral{ID: 5, Quantity: 4, MinStockLevel: 1})
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newComponentLogService(logRepo, peripheralRepo, equipmentRepo)

	peripheralID := uint64(5)
	created, err := svc.CreateComponentLog(context.Background(), componentLogPayload(1, &peripheralID, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, created.Quantity)
	assert.Equal(t, 1, peripheralRepo.peripherals[5].Quantity)
}

func TestCreateComponentLogRejectsShortStock(t *testing.T) {
	logRepo := newFakeComponentLogRepo()
	peripheralRepo := newFakePeripheralRepo(entities.Peripheral{ID: 5, Quantity: 2, MinStockLevel: 1})
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newComponentLogService(logRepo, peripheralRepo, equipmentRepo)

	peripheralID := uint64(5)
	_, err := svc.CreateComponentLog(context.Background(), componentLogPayload(1, &peripheralID, 3))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Equal(t, 2, peripheralRepo.peripherals[5].Quantity, "short stock leaves the quantity untouched")
	assert.Empty(t, logRepo.logs, "no log row is written when the decrement is refused")
}

func TestCreateComponentLogWithoutPeripheral(t *testing.T) {
	logRepo := newFakeComponentLogRepo()
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{ID: 1})
	svc := newComponentLogService(logRepo, newFakePeripheralRepo(), equipmentRepo)

	created, err := svc.CreateComponentLog(context.Background(), componentLogPayload(1, nil, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, created.Quantity, "quantity defaults to one")
}

func TestCreateComponentLogUnknownEquipment(t *testing.T) {
	svc := newComponentLogService(newFakeComponentLogRepo(), newFakePeripheralRepo(), newFakeEquipmentRepo())

	_, err := svc.CreateComponentLog(context.Background(), componentLogPayload(42, nil, 1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
