package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

func TestExportRejectsUnknownModel(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil, nil, nil, nil, zap.NewNop())

	_, _, err := svc.Export(context.Background(), "users")
	assert.ErrorIs(t, err, apperrors.ErrUnknownExportModel)
}

func TestExportModelsRegistry(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil, nil, nil, nil, zap.NewNop())

	models := svc.Models()
	assert.ElementsMatch(t, []string{
		"equipments", "peripherals", "maintenances", "handovers",
		"clients", "areas", "cost-centers",
	}, models)
}

func TestExportEquipmentsWorkbook(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(entities.Equipment{
		ID:           1,
		SerialNumber: "SN-100",
		Type:         "LAPTOP",
		Brand:        "Dell",
		Model:        "Latitude",
		Status:       "ACTIVE",
	})
	svc := NewExportService(equipmentRepo, nil, nil, nil, nil, nil, nil, zap.NewNop())

	workbook, fileName, err := svc.Export(context.Background(), "equipments")
	require.NoError(t, err)
	require.NotNil(t, workbook)
	assert.True(t, strings.HasPrefix(fileName, "equipments_"))
	assert.True(t, strings.HasSuffix(fileName, ".xlsx"))

	header, err := workbook.GetCellValue("Equipment", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Serial Number", header)

	serial, err := workbook.GetCellValue("Equipment", "B2")
	require.NoError(t, err)
	assert.Equal(t, "SN-100", serial)
}
