package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type fakeAreaRepo struct {
	areas  map[uint64]*entities.Area
	nextID uint64
}

func newFakeAreaRepo(areas ...entities.Area) *fakeAreaRepo {
	r := &fakeAreaRepo{areas: make(map[uint64]*entities.Area), nextID: 1}
	for i := range areas {
		a := areas[i]
		r.areas[a.ID] = &a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeAreaRepo) GetAreas(_ context.Context, _ types.Filter) ([]entities.Area, uint64, error) {
	out := make([]entities.Area, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, *a)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeAreaRepo) FindArea(_ context.Context, id uint64) (*entities.Area, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAreaRepo) CreateArea(_ context.Context, area entities.Area) (uint64, error) {
	area.ID = r.nextID
	r.nextID++
	r.areas[area.ID] = &area
	return area.ID, nil
}

func (r *fakeAreaRepo) UpdateArea(_ context.Context, id uint64, area entities.Area) error {
	if _, ok := r.areas[id]; !ok {
		return apperrors.ErrNotFound
	}
	area.ID = id
	r.areas[id] = &area
	return nil
}

func (r *fakeAreaRepo) DeleteArea(_ context.Context, id uint64) error {
	delete(r.areas, id)
	return nil
}

func buildImportWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var importHeader = []interface{}{
	"Serial Number", "Type", "Brand", "Model", "Status", "Area", "Purchase Date", "Lifespan (years)",
}

func TestImportCreatesAndUpdates(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{
		ID: 1, SerialNumber: "SN-OLD", Brand: "HP", Status: constants.EquipmentStatusActive,
	})
	areaRepo := newFakeAreaRepo(entities.Area{ID: 1, Name: "Accounting"})
	svc := NewEquipmentImportService(equipmentRepo, areaRepo, zap.NewNop())

	buf := buildImportWorkbook(t, [][]interface{}{
		importHeader,
		{"SN-NEW", "LAPTOP", "Dell", "Latitude", "", "Accounting", "2024-03-01", "5"},
		{"SN-OLD", "", "Lenovo", "", "", "", "", ""},
		{"", "LAPTOP", "NoSerial", "", "", "", "", ""},
	})

	report, err := svc.ImportXLSX(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Errors)

	created, err := equipmentRepo.FindBySerialNumber(context.Background(), nil, "SN-NEW")
	require.NoError(t, err)
	assert.Equal(t, "Dell", created.Brand)
	assert.Equal(t, constants.EquipmentStatusActive, created.Status, "blank status defaults to active")
	require.NotNil(t, created.AreaID)
	assert.Equal(t, uint64(1), *created.AreaID)
	require.NotNil(t, created.LifespanYears)
	assert.Equal(t, 5, *created.LifespanYears)
	require.NotNil(t, created.PurchaseDate)

	updated := equipmentRepo.equipments[1]
	assert.Equal(t, "Lenovo", updated.Brand)
	assert.Equal(t, constants.EquipmentStatusActive, updated.Status, "blank cells leave existing fields alone")
}

func TestImportCreatesMissingArea(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	areaRepo := newFakeAreaRepo()
	svc := NewEquipmentImportService(equipmentRepo, areaRepo, zap.NewNop())

	buf := buildImportWorkbook(t, [][]interface{}{
		importHeader,
		{"SN-1", "PC", "HP", "", "", "Warehouse", "", ""},
		{"SN-2", "PC", "HP", "", "", "warehouse", "", ""},
	})

	report, err := svc.ImportXLSX(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)

	areas, _, err := areaRepo.GetAreas(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Len(t, areas, 1, "area lookup is case-insensitive, only one area gets created")
}

func TestImportFindsHeaderBelowPreamble(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	svc := NewEquipmentImportService(equipmentRepo, newFakeAreaRepo(), zap.NewNop())

	buf := buildImportWorkbook(t, [][]interface{}{
		{"Equipment inventory"},
		{"Exported 2026-08-01"},
		importHeader,
		{"SN-1", "PC", "HP", "", "", "", "", ""},
	})

	report, err := svc.ImportXLSX(context.Background(), buf)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
}

func TestImportRejectsNonWorkbook(t *testing.T) {
	svc := NewEquipmentImportService(newFakeEquipmentRepo(), newFakeAreaRepo(), zap.NewNop())

	_, err := svc.ImportXLSX(context.Background(), strings.NewReader("definitely,not,xlsx"))
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestImportRejectsWorkbookWithoutSerialColumn(t *testing.T) {
	svc := NewEquipmentImportService(newFakeEquipmentRepo(), newFakeAreaRepo(), zap.NewNop())

	buf := buildImportWorkbook(t, [][]interface{}{
		{"Name", "Brand"},
		{"mouse", "HP"},
	})

	_, err := svc.ImportXLSX(context.Background(), buf)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
