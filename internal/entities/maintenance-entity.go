package entities

import (
	"time"
)

// MaintenanceChecklist carries the acta checkbox sections: type of support,
// OS cleaning and hardware stages.
type MaintenanceChecklist struct {
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

type Maintenance struct {
	ID                  uint64     `json:"id"`
	EquipmentID         uint64     `json:"equipment_id"`
	Date                time.Time  `json:"date"`
	MaintenanceType     string     `json:"maintenance_type"`
	Description         string     `json:"description"`
	PerformedByID       *uint64    `json:"performed_by_id,omitempty"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
	ActaPath            *string    `json:"acta_path,omitempty"`
	StartTime           *string    `json:"start_time,omitempty"`
	EndTime             *string    `json:"end_time,omitempty"`

	MaintenanceChecklist

	CreatedAt *time.Time `json:"created_at,omitempty"`

	Equipment   *Equipment  `db:"-"`
	PerformedBy *Technician `db:"-"`
}

type MaintenanceSchedule struct {
	ID            uint64    `json:"id"`
	EquipmentID   uint64    `json:"equipment_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`

	CreatedAt *time.Time `json:"created_at,omitempty"`

	Equipment *Equipment `db:"-"`
}
