package entities

import (
	"time"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

type Equipment struct {
	ID              uint64  `json:"id"`
	SerialNumber    string  `json:"serial_number"`
	Type            string  `json:"type"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	OperatingSystem *string `json:"operating_system,omitempty"`
	Processor       *string `json:"processor,omitempty"`
	RAM             *string `json:"ram,omitempty"`
	Storage         *string `json:"storage,omitempty"`
	Voltage         *string `json:"voltage,omitempty"`
	Amperage        *string `json:"amperage,omitempty"`
	OSUser          *string `json:"os_user,omitempty"`
	ScreenSize      *string `json:"screen_size,omitempty"`
	IPAddress       *string `json:"ip_address,omitempty"`
	Status          string  `json:"status"`
	OwnershipType   *string `json:"ownership_type,omitempty"`
	AreaID          *uint64 `json:"area_id,omitempty"`

	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty"`
	LifespanYears  *int       `json:"lifespan_years,omitempty"`

	types.BaseEntity

	Area *Area `db:"-"`
}

// EndOfLifeDate returns purchase date plus the configured lifespan in calendar
// years. A Feb 29 purchase clamps to Feb 28 when the target year is not a leap
// year. Returns nil when purchase date or lifespan is missing.
func (e *Equipment) EndOfLifeDate() *time.Time {
	if e.PurchaseDate == nil || e.LifespanYears == nil {
		return nil
	}
	eol := addYearsClamped(*e.PurchaseDate, *e.LifespanYears)
	return &eol
}

// IsEndOfLifeReached reports whether the equipment reached end of life as of
// the given day.
func (e *Equipment) IsEndOfLifeReached(today time.Time) bool {
	eol := e.EndOfLifeDate()
	if eol == nil {
		return false
	}
	return !eol.After(truncateToDay(today))
}

func (e *Equipment) IsRetired() bool {
	return e.Status == constants.EquipmentStatusRetired
}

// addYearsClamped adds whole years without the Mar 1 rollover time.AddDate
// produces for Feb 29 starts.
func addYearsClamped(d time.Time, years int) time.Time {
	year := d.Year() + years
	month := d.Month()
	day := d.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
