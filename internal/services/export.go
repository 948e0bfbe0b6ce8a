package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// exportModel describes one exportable dataset: the sheet it renders to,
// its header row and a fetch function returning one slice per data row.
type exportModel struct {
	sheet   string
	headers []string
	fetch   func(ctx context.Context) ([][]interface{}, error)
}

// ExportService renders registered datasets as XLSX workbooks. The registry
// is closed: only models wired in the constructor can be exported, anything
// else is rejected with ErrUnknownExportModel.
type ExportService struct {
	registry map[string]exportModel
	logger   *zap.Logger
}

func NewExportService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	peripheralRepository repositories.PeripheralRepositoryInterface,
	maintenanceRepository repositories.MaintenanceRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
	clientRepository repositories.ClientRepositoryInterface,
	areaRepository repositories.AreaRepositoryInterface,
	costCenterRepository repositories.CostCenterRepositoryInterface,
	logger *zap.Logger,
) *ExportService {
	s := &ExportService{logger: logger}
	all := types.Filter{WithPagination: false}

	s.registry = map[string]exportModel{
		"equipments": {
			sheet: "Equipment",
			headers: []string{
				"ID", "Serial Number", "Type", "Brand", "Model", "Status",
				"Area", "Purchase Date", "Warranty Expiry", "Lifespan (years)", "End of Life",
			},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := equipmentRepository.GetEquipments(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for i := range items {
					d := equipmentToDTO(&items[i])
					area := ""
					if d.Area != nil {
						area = d.Area.Name
					}
					rows = append(rows, []interface{}{
						d.ID, d.SerialNumber, d.Type, d.Brand, d.Model, d.Status,
						area, strDeref(d.PurchaseDate), strDeref(d.WarrantyExpiry),
						intDeref(d.LifespanYears), strDeref(d.EndOfLifeDate),
					})
				}
				return rows, nil
			},
		},
		"peripherals": {
			sheet: "Peripherals",
			headers: []string{
				"ID", "Type", "Brand", "Model", "Serial Number", "Status",
				"Quantity", "Min Stock", "Low Stock", "Area",
			},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := peripheralRepository.GetPeripherals(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for i := range items {
					d := peripheralToDTO(&items[i])
					area := ""
					if d.Area != nil {
						area = d.Area.Name
					}
					rows = append(rows, []interface{}{
						d.ID, d.Type.Name, d.Brand, d.Model, strDeref(d.SerialNumber), d.Status,
						d.Quantity, d.MinStockLevel, d.LowStock, area,
					})
				}
				return rows, nil
			},
		},
		"maintenances": {
			sheet: "Maintenances",
			headers: []string{
				"ID", "Date", "Type", "Equipment", "Performed By",
				"Next Maintenance", "Description",
			},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := maintenanceRepository.GetMaintenances(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for i := range items {
					d := maintenanceToDTO(&items[i])
					performedBy := ""
					if d.PerformedBy != nil {
						performedBy = d.PerformedBy.Name
					}
					rows = append(rows, []interface{}{
						d.ID, d.Date, d.MaintenanceType, d.Equipment.SerialNumber, performedBy,
						strDeref(d.NextMaintenanceDate), d.Description,
					})
				}
				return rows, nil
			},
		},
		"handovers": {
			sheet: "Handovers",
			headers: []string{
				"ID", "Date", "Type", "Source Area", "Destination Area",
				"Technician", "Client", "Receiver",
			},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := handoverRepository.GetHandovers(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for i := range items {
					d := handoverToDTO(&items[i])
					source, destination, technician, client := "", "", "", ""
					if d.SourceArea != nil {
						source = d.SourceArea.Name
					}
					if d.DestinationArea != nil {
						destination = d.DestinationArea.Name
					}
					if d.Technician != nil {
						technician = d.Technician.Name
					}
					if d.Client != nil {
						client = d.Client.Name
					}
					rows = append(rows, []interface{}{
						d.ID, d.Date, d.Type, source, destination,
						technician, client, strDeref(d.ReceiverName),
					})
				}
				return rows, nil
			},
		},
		"clients": {
			sheet:   "Clients",
			headers: []string{"ID", "Name", "Identification", "Email", "Phone", "Area"},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := clientRepository.GetClients(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for i := range items {
					d := clientToDTO(&items[i])
					area := ""
					if d.Area != nil {
						area = d.Area.Name
					}
					rows = append(rows, []interface{}{
						d.ID, d.Name, d.Identification, strDeref(d.Email), strDeref(d.Phone), area,
					})
				}
				return rows, nil
			},
		},
		"areas": {
			sheet:   "Areas",
			headers: []string{"ID", "Name", "Description", "Cost Center"},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := areaRepository.GetAreas(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for i := range items {
					d := areaToDTO(&items[i])
					costCenter := ""
					if d.CostCenter != nil {
						costCenter = d.CostCenter.Name
					}
					rows = append(rows, []interface{}{d.ID, d.Name, strDeref(d.Description), costCenter})
				}
				return rows, nil
			},
		},
		"cost-centers": {
			sheet:   "Cost Centers",
			headers: []string{"ID", "Code", "Name"},
			fetch: func(ctx context.Context) ([][]interface{}, error) {
				items, _, err := costCenterRepository.GetCostCenters(ctx, all)
				if err != nil {
					return nil, err
				}
				rows := make([][]interface{}, 0, len(items))
				for _, cc := range items {
					rows = append(rows, []interface{}{cc.ID, cc.Code, cc.Name})
				}
				return rows, nil
			},
		},
	}
	return s
}

// Models returns the names accepted by Export.
func (s *ExportService) Models() []string {
	names := make([]string, 0, len(s.registry))
	for name := range s.registry {
		names = append(names, name)
	}
	return names
}

// Export renders the named model as a workbook. The returned file name
// carries the model and the current date.
func (s *ExportService) Export(ctx context.Context, model string) (*excelize.File, string, error) {
	m, ok := s.registry[model]
	if !ok {
		return nil, "", apperrors.ErrUnknownExportModel
	}

	rows, err := m.fetch(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", m.sheet)
	f.SetSheetRow(m.sheet, "A1", &m.headers)
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		endCol, _ := excelize.CoordinatesToCellName(len(m.headers), 1)
		f.SetCellStyle(m.sheet, "A1", endCol, style)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(m.sheet, cell, &row)
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", model, time.Now().Format("2006-01-02"))
	return f, fileName, nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intDeref(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
