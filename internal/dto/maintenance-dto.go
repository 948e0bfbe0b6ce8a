package dto

type MaintenanceChecklistDTO struct {
	TypeReview          bool `json:"type_review"`
	TypeSoftwareFailure bool `json:"type_software_failure"`
	TypeConnection      bool `json:"type_connection"`
	TypeUpdates         bool `json:"type_updates"`
	TypeCleaning        bool `json:"type_cleaning"`
	TypeInstall         bool `json:"type_install"`
	TypePeripheral      bool `json:"type_peripheral"`
	TypeBackup          bool `json:"type_backup"`

	CleaningDefrag   bool `json:"cleaning_defrag"`
	CleaningCCO      bool `json:"cleaning_cco"`
	CleaningScandisk bool `json:"cleaning_scandisk"`
	CleaningSpace    bool `json:"cleaning_space"`

	HwDisassembly   bool `json:"hw_disassembly"`
	HwPowerSupply   bool `json:"hw_power_supply"`
	HwFans          bool `json:"hw_fans"`
	HwChassis       bool `json:"hw_chassis"`
	HwThermalPaste  bool `json:"hw_thermal_paste"`
	HwContacts      bool `json:"hw_contacts"`
	HwKeyboardMouse bool `json:"hw_keyboard_mouse"`
	HwScreen        bool `json:"hw_screen"`
	HwReassembly    bool `json:"hw_reassembly"`
}

type CreateMaintenanceDTO struct {
	EquipmentID     uint64 `json:"equipment_id" validate:"required,gt=0"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	MaintenanceType string `json:"maintenance_type" validate:"required"`
	Description     string `json:"description" validate:"required"`

	PerformedByID       *uint64 `json:"performed_by_id,omitempty" validate:"omitempty,gt=0"`
	NextMaintenanceDate *string `json:"next_maintenance_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime           *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime             *string `json:"end_time,omitempty"   validate:"omitempty,datetime=15:04"`

	Checklist MaintenanceChecklistDTO `json:"checklist"`
}

type MaintenanceDTO struct {
	ID              uint64 `json:"id"`
	Date            string `json:"date"`
	MaintenanceType string `json:"maintenance_type"`
	Description     string `json:"description"`

	Equipment   ShortEquipmentDTO   `json:"equipment"`
	PerformedBy *ShortTechnicianDTO `json:"performed_by,omitempty"`

	NextMaintenanceDate *string `json:"next_maintenance_date,omitempty"`
	ActaPath            *string `json:"acta_path,omitempty"`
	StartTime           *string `json:"start_time,omitempty"`
	EndTime             *string `json:"end_time,omitempty"`

	Checklist MaintenanceChecklistDTO `json:"checklist"`

	CreatedAt string `json:"created_at"`
}

type ScheduleDTO struct {
	ID            uint64            `json:"id"`
	ScheduledDate string            `json:"scheduled_date"`
	Status        string            `json:"status"`
	Equipment     ShortEquipmentDTO `json:"equipment"`
}

// ScheduleToggleDTO marks or unmarks a planned maintenance day for one
// equipment on the calendar.
type ScheduleToggleDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ScheduleToggleResultDTO struct {
	Status string `json:"status"`
}

// ScheduleGridCellDTO is one equipment/month cell of the yearly calendar.
// Weeks holds visual week numbers 1..4 with their schedule status.
type ScheduleGridCellDTO struct {
	Month int                     `json:"month"`
	Weeks []ScheduleGridMarkerDTO `json:"weeks"`
}

type ScheduleGridMarkerDTO struct {
	Week   int    `json:"week"`
	Day    int    `json:"day"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

type ScheduleGridRowDTO struct {
	Equipment ShortEquipmentDTO     `json:"equipment"`
	Months    []ScheduleGridCellDTO `json:"months"`
}

type ScheduleGridDTO struct {
	Year int                  `json:"year"`
	Rows []ScheduleGridRowDTO `json:"rows"`
}
