package services

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// EquipmentImportService loads equipment from uploaded XLSX workbooks and
// upserts rows by serial number. The header row is located by scanning the
// sheets, so exports from different tools keep working as long as a
// "serial" column exists.
type EquipmentImportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	areaRepository      repositories.AreaRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentImportService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	areaRepository repositories.AreaRepositoryInterface,
	logger *zap.Logger,
) *EquipmentImportService {
	return &EquipmentImportService{
		equipmentRepository: equipmentRepository,
		areaRepository:      areaRepository,
		logger:              logger,
	}
}

type importColumns struct {
	serial, equipType, brand, model, status int
	area, purchase, warranty, lifespan      int
}

func (s *EquipmentImportService) ImportXLSX(ctx context.Context, r io.Reader) (*dto.ImportReportDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("the uploaded file is not a valid XLSX workbook")
	}
	defer f.Close()

	rows, headerRow, cols := locateHeader(f)
	if headerRow == -1 {
		return nil, apperrors.NewInvalidInputError("no header row with a serial number column was found")
	}

	areas, err := s.loadAreas(ctx)
	if err != nil {
		return nil, err
	}

	report := dto.ImportReportDTO{}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		serial := cellAt(row, cols.serial)
		if serial == "" {
			report.Skipped++
			continue
		}

		created, err := s.upsertRow(ctx, row, cols, serial, areas)
		if err != nil {
			s.logger.Warn("import row failed",
				zap.Int("row", i+1),
				zap.String("serial_number", serial),
				zap.Error(err))
			report.Errors++
			continue
		}
		if created {
			report.Imported++
		} else {
			report.Updated++
		}
	}
	return &report, nil
}

func locateHeader(f *excelize.File) ([][]string, int, importColumns) {
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for rIdx, row := range rows {
			cols := importColumns{
				serial: -1, equipType: -1, brand: -1, model: -1, status: -1,
				area: -1, purchase: -1, warranty: -1, lifespan: -1,
			}
			for cIdx, name := range row {
				switch h := strings.ToLower(strings.TrimSpace(name)); {
				case strings.Contains(h, "serial"):
					cols.serial = cIdx
				case strings.Contains(h, "type"):
					cols.equipType = cIdx
				case strings.Contains(h, "brand"):
					cols.brand = cIdx
				case strings.Contains(h, "model"):
					cols.model = cIdx
				case strings.Contains(h, "status"):
					cols.status = cIdx
				case strings.Contains(h, "area"):
					cols.area = cIdx
				case strings.Contains(h, "purchase"):
					cols.purchase = cIdx
				case strings.Contains(h, "warranty"):
					cols.warranty = cIdx
				case strings.Contains(h, "lifespan"):
					cols.lifespan = cIdx
				}
			}
			if cols.serial != -1 {
				return rows, rIdx, cols
			}
		}
	}
	return nil, -1, importColumns{}
}

func (s *EquipmentImportService) upsertRow(
	ctx context.Context,
	row []string,
	cols importColumns,
	serial string,
	areas map[string]uint64,
) (bool, error) {
	existing, err := s.equipmentRepository.FindBySerialNumber(ctx, nil, serial)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, err
	}

	areaID, err := s.resolveArea(ctx, cellAt(row, cols.area), areas)
	if err != nil {
		return false, err
	}

	if existing == nil {
		equipment := entities.Equipment{
			SerialNumber:   serial,
			Type:           cellAt(row, cols.equipType),
			Brand:          cellAt(row, cols.brand),
			Model:          cellAt(row, cols.model),
			Status:         cellAt(row, cols.status),
			AreaID:         areaID,
			PurchaseDate:   parseCellDate(cellAt(row, cols.purchase)),
			WarrantyExpiry: parseCellDate(cellAt(row, cols.warranty)),
			LifespanYears:  parseCellInt(cellAt(row, cols.lifespan)),
		}
		if equipment.Status == "" {
			equipment.Status = constants.EquipmentStatusActive
		}
		_, err := s.equipmentRepository.CreateEquipment(ctx, nil, equipment)
		return true, err
	}

	// Only overwrite what the sheet actually provides.
	if v := cellAt(row, cols.equipType); v != "" {
		existing.Type = v
	}
	if v := cellAt(row, cols.brand); v != "" {
		existing.Brand = v
	}
	if v := cellAt(row, cols.model); v != "" {
		existing.Model = v
	}
	if v := cellAt(row, cols.status); v != "" {
		existing.Status = v
	}
	if areaID != nil {
		existing.AreaID = areaID
	}
	if d := parseCellDate(cellAt(row, cols.purchase)); d != nil {
		existing.PurchaseDate = d
	}
	if d := parseCellDate(cellAt(row, cols.warranty)); d != nil {
		existing.WarrantyExpiry = d
	}
	if n := parseCellInt(cellAt(row, cols.lifespan)); n != nil {
		existing.LifespanYears = n
	}
	return false, s.equipmentRepository.UpdateEquipment(ctx, nil, existing.ID, *existing)
}

func (s *EquipmentImportService) loadAreas(ctx context.Context) (map[string]uint64, error) {
	areas, _, err := s.areaRepository.GetAreas(ctx, types.Filter{WithPagination: false})
	if err != nil {
		return nil, err
	}
	byName := make(map[string]uint64, len(areas))
	for _, a := range areas {
		byName[strings.ToLower(strings.TrimSpace(a.Name))] = a.ID
	}
	return byName, nil
}

func (s *EquipmentImportService) resolveArea(ctx context.Context, name string, areas map[string]uint64) (*uint64, error) {
	if name == "" {
		return nil, nil
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := areas[key]; ok {
		return &id, nil
	}
	id, err := s.areaRepository.CreateArea(ctx, entities.Area{Name: strings.TrimSpace(name)})
	if err != nil {
		return nil, err
	}
	areas[key] = id
	return &id, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var importDateLayouts = []string{"2006-01-02", "02.01.2006", "01-02-06"}

func parseCellDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseCellInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
