package services

import (
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

const dateLayout = "2006-01-02"
const timestampLayout = "2006-01-02 15:04:05"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatTimestampPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

func shortEquipmentDTO(e *entities.Equipment) dto.ShortEquipmentDTO {
	if e == nil {
		return dto.ShortEquipmentDTO{}
	}
	return dto.ShortEquipmentDTO{
		ID:           e.ID,
		SerialNumber: e.SerialNumber,
		Type:         e.Type,
		Brand:        e.Brand,
		Model:        e.Model,
	}
}

func shortAreaDTO(a *entities.Area) *dto.ShortAreaDTO {
	if a == nil {
		return nil
	}
	return &dto.ShortAreaDTO{ID: a.ID, Name: a.Name}
}

func shortTechnicianDTO(t *entities.Technician) *dto.ShortTechnicianDTO {
	if t == nil {
		return nil
	}
	return &dto.ShortTechnicianDTO{ID: t.ID, Name: t.Name}
}

func shortClientDTO(c *entities.Client) *dto.ShortClientDTO {
	if c == nil {
		return nil
	}
	return &dto.ShortClientDTO{ID: c.ID, Name: c.Name}
}

func equipmentToDTO(e *entities.Equipment) dto.EquipmentDTO {
	out := dto.EquipmentDTO{
		ID:              e.ID,
		SerialNumber:    e.SerialNumber,
		Type:            e.Type,
		Brand:           e.Brand,
		Model:           e.Model,
		Status:          e.Status,
		OperatingSystem: e.OperatingSystem,
		Processor:       e.Processor,
		RAM:             e.RAM,
		Storage:         e.Storage,
		Voltage:         e.Voltage,
		Amperage:        e.Amperage,
		OSUser:          e.OSUser,
		ScreenSize:      e.ScreenSize,
		IPAddress:       e.IPAddress,
		OwnershipType:   e.OwnershipType,
		Area:            shortAreaDTO(e.Area),
		PurchaseDate:    formatDatePtr(e.PurchaseDate),
		WarrantyExpiry:  formatDatePtr(e.WarrantyExpiry),
		LifespanYears:   e.LifespanYears,
		EndOfLifeDate:   formatDatePtr(e.EndOfLifeDate()),
		CreatedAt:       formatTimestampPtr(e.CreatedAt),
		UpdatedAt:       formatTimestampPtr(e.UpdatedAt),
	}
	return out
}

func peripheralToDTO(p *entities.Peripheral) dto.PeripheralDTO {
	out := dto.PeripheralDTO{
		ID:            p.ID,
		SerialNumber:  p.SerialNumber,
		Brand:         p.Brand,
		Model:         p.Model,
		Status:        p.Status,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.IsLowStock(),
		Area:          shortAreaDTO(p.Area),
		CreatedAt:     formatTimestampPtr(p.CreatedAt),
		UpdatedAt:     formatTimestampPtr(p.UpdatedAt),
	}
	if p.Type != nil {
		out.Type = dto.ShortPeripheralTypeDTO{ID: p.Type.ID, Name: p.Type.Name}
	}
	if p.ConnectedTo != nil {
		short := shortEquipmentDTO(p.ConnectedTo)
		out.ConnectedTo = &short
	}
	return out
}

func checklistToDTO(c entities.MaintenanceChecklist) dto.MaintenanceChecklistDTO {
	return dto.MaintenanceChecklistDTO{
		TypeReview:          c.TypeReview,
		TypeSoftwareFailure: c.TypeSoftwareFailure,
		TypeConnection:      c.TypeConnection,
		TypeUpdates:         c.TypeUpdates,
		TypeCleaning:        c.TypeCleaning,
		TypeInstall:         c.TypeInstall,
		TypePeripheral:      c.TypePeripheral,
		TypeBackup:          c.TypeBackup,
		CleaningDefrag:      c.CleaningDefrag,
		CleaningCCO:         c.CleaningCCO,
		CleaningScandisk:    c.CleaningScandisk,
		CleaningSpace:       c.CleaningSpace,
		HwDisassembly:       c.HwDisassembly,
		HwPowerSupply:       c.HwPowerSupply,
		HwFans:              c.HwFans,
		HwChassis:           c.HwChassis,
		HwThermalPaste:      c.HwThermalPaste,
		HwContacts:          c.HwContacts,
		HwKeyboardMouse:     c.HwKeyboardMouse,
		HwScreen:            c.HwScreen,
		HwReassembly:        c.HwReassembly,
	}
}

func checklistFromDTO(c dto.MaintenanceChecklistDTO) entities.MaintenanceChecklist {
	return entities.MaintenanceChecklist{
		TypeReview:          c.TypeReview,
		TypeSoftwareFailure: c.TypeSoftwareFailure,
		TypeConnection:      c.TypeConnection,
		TypeUpdates:         c.TypeUpdates,
		TypeCleaning:        c.TypeCleaning,
		TypeInstall:         c.TypeInstall,
		TypePeripheral:      c.TypePeripheral,
		TypeBackup:          c.TypeBackup,
		CleaningDefrag:      c.CleaningDefrag,
		CleaningCCO:         c.CleaningCCO,
		CleaningScandisk:    c.CleaningScandisk,
		CleaningSpace:       c.CleaningSpace,
		HwDisassembly:       c.HwDisassembly,
		HwPowerSupply:       c.HwPowerSupply,
		HwFans:              c.HwFans,
		HwChassis:           c.HwChassis,
		HwThermalPaste:      c.HwThermalPaste,
		HwContacts:          c.HwContacts,
		HwKeyboardMouse:     c.HwKeyboardMouse,
		HwScreen:            c.HwScreen,
		HwReassembly:        c.HwReassembly,
	}
}

func maintenanceToDTO(m *entities.Maintenance) dto.MaintenanceDTO {
	return dto.MaintenanceDTO{
		ID:                  m.ID,
		Date:                formatDate(m.Date),
		MaintenanceType:     m.MaintenanceType,
		Description:         m.Description,
		Equipment:           shortEquipmentDTO(m.Equipment),
		PerformedBy:         shortTechnicianDTO(m.PerformedBy),
		NextMaintenanceDate: formatDatePtr(m.NextMaintenanceDate),
		ActaPath:            m.ActaPath,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		Checklist:           checklistToDTO(m.MaintenanceChecklist),
		CreatedAt:           formatTimestampPtr(m.CreatedAt),
	}
}

func scheduleToDTO(s *entities.MaintenanceSchedule) dto.ScheduleDTO {
	return dto.ScheduleDTO{
		ID:            s.ID,
		ScheduledDate: formatDate(s.ScheduledDate),
		Status:        s.Status,
		Equipment:     shortEquipmentDTO(s.Equipment),
	}
}

func handoverToDTO(h *entities.Handover) dto.HandoverDTO {
	out := dto.HandoverDTO{
		ID:              h.ID,
		Date:            formatDate(h.Date),
		Type:            h.Type,
		SourceArea:      shortAreaDTO(h.SourceArea),
		DestinationArea: shortAreaDTO(h.DestinationArea),
		Technician:      shortTechnicianDTO(h.Technician),
		Client:          shortClientDTO(h.Client),
		ReceiverName:    h.ReceiverName,
		Observations:    h.Observations,
		ActaPath:        h.ActaPath,
		Equipment:       make([]dto.ShortEquipmentDTO, 0, len(h.Equipment)),
		Peripherals:     make([]dto.HandoverPeripheralDTO, 0, len(h.Peripherals)),
		CreatedAt:       formatTimestampPtr(h.CreatedAt),
	}
	for i := range h.Equipment {
		out.Equipment = append(out.Equipment, shortEquipmentDTO(&h.Equipment[i]))
	}
	for _, line := range h.Peripherals {
		p := dto.HandoverPeripheralDTO{
			PeripheralID: line.PeripheralID,
			Quantity:     line.Quantity,
		}
		if line.Peripheral != nil {
			p.Brand = line.Peripheral.Brand
			p.Model = line.Peripheral.Model
		}
		out.Peripherals = append(out.Peripherals, p)
	}
	return out
}
