package dto

type CreateEquipmentDTO struct {
	SerialNumber    string  `json:"serial_number" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	Brand           string  `json:"brand" validate:"required"`
	Model           string  `json:"model" validate:"required"`
	Status          string  `json:"status,omitempty"`
	OperatingSystem *string `json:"operating_system,omitempty"`
	Processor       *string `json:"processor,omitempty"`
	RAM             *string `json:"ram,omitempty"`
	Storage         *string `json:"storage,omitempty"`
	Voltage         *string `json:"voltage,omitempty"`
	Amperage        *string `json:"amperage,omitempty"`
	OSUser          *string `json:"os_user,omitempty"`
	ScreenSize      *string `json:"screen_size,omitempty"`
	IPAddress       *string `json:"ip_address,omitempty" validate:"omitempty,ip"`
	OwnershipType   *string `json:"ownership_type,omitempty"`
	AreaID          *uint64 `json:"area_id,omitempty" validate:"omitempty,gt=0"`

	PurchaseDate   *string `json:"purchase_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry *string `json:"warranty_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LifespanYears  *int    `json:"lifespan_years,omitempty"  validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	SerialNumber    *string `json:"serial_number,omitempty"    validate:"omitempty"`
	Type            *string `json:"type,omitempty"             validate:"omitempty"`
	Brand           *string `json:"brand,omitempty"            validate:"omitempty"`
	Model           *string `json:"model,omitempty"            validate:"omitempty"`
	Status          *string `json:"status,omitempty"           validate:"omitempty"`
	OperatingSystem *string `json:"operating_system,omitempty" validate:"omitempty"`
	Processor       *string `json:"processor,omitempty"        validate:"omitempty"`
	RAM             *string `json:"ram,omitempty"              validate:"omitempty"`
	Storage         *string `json:"storage,omitempty"          validate:"omitempty"`
	Voltage         *string `json:"voltage,omitempty"          validate:"omitempty"`
	Amperage        *string `json:"amperage,omitempty"         validate:"omitempty"`
	OSUser          *string `json:"os_user,omitempty"          validate:"omitempty"`
	ScreenSize      *string `json:"screen_size,omitempty"      validate:"omitempty"`
	IPAddress       *string `json:"ip_address,omitempty"       validate:"omitempty,ip"`
	OwnershipType   *string `json:"ownership_type,omitempty"   validate:"omitempty"`
	AreaID          *uint64 `json:"area_id,omitempty"          validate:"omitempty,gt=0"`

	PurchaseDate   *string `json:"purchase_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry *string `json:"warranty_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LifespanYears  *int    `json:"lifespan_years,omitempty"  validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID              uint64  `json:"id"`
	SerialNumber    string  `json:"serial_number"`
	Type            string  `json:"type"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Status          string  `json:"status"`
	OperatingSystem *string `json:"operating_system,omitempty"`
	Processor       *string `json:"processor,omitempty"`
	RAM             *string `json:"ram,omitempty"`
	Storage         *string `json:"storage,omitempty"`
	Voltage         *string `json:"voltage,omitempty"`
	Amperage        *string `json:"amperage,omitempty"`
	OSUser          *string `json:"os_user,omitempty"`
	ScreenSize      *string `json:"screen_size,omitempty"`
	IPAddress       *string `json:"ip_address,omitempty"`
	OwnershipType   *string `json:"ownership_type,omitempty"`

	Area *ShortAreaDTO `json:"area,omitempty"`

	PurchaseDate   *string `json:"purchase_date,omitempty"`
	WarrantyExpiry *string `json:"warranty_expiry,omitempty"`
	LifespanYears  *int    `json:"lifespan_years,omitempty"`
	EndOfLifeDate  *string `json:"end_of_life_date,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ImportReportDTO summarises an XLSX equipment import.
type ImportReportDTO struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// EquipmentHistoryEntryDTO is one event in the merged per-equipment timeline
// of maintenances, handovers, component swaps and rounds, newest first.
type EquipmentHistoryEntryDTO struct {
	Kind        string `json:"kind"`
	Date        string `json:"date"`
	Summary     string `json:"summary"`
	ReferenceID uint64 `json:"reference_id"`
}
