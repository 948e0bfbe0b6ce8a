package entities

import (
	"time"
)

// ComponentLog is the audit entry for a hardware component swap, optionally
// consuming a peripheral unit from stock.
type ComponentLog struct {
	ID            uint64    `json:"id"`
	EquipmentID   uint64    `json:"equipment_id"`
	Date          time.Time `json:"date"`
	ActionType    string    `json:"action_type"`
	ComponentName string    `json:"component_name"`
	Description   *string   `json:"description,omitempty"`
	PeripheralID  *uint64   `json:"peripheral_id,omitempty"`
	Quantity      int       `json:"quantity"`
	PerformedByID *uint64   `json:"performed_by_id,omitempty"`

	Equipment   *Equipment  `db:"-"`
	Peripheral  *Peripheral `db:"-"`
	PerformedBy *Technician `db:"-"`
}

type EquipmentRound struct {
	ID            uint64    `json:"id"`
	EquipmentID   uint64    `json:"equipment_id"`
	Datetime      time.Time `json:"datetime"`
	GeneralStatus string    `json:"general_status"`
	Observations  *string   `json:"observations,omitempty"`
	PerformedByID *uint64   `json:"performed_by_id,omitempty"`

	Equipment   *Equipment  `db:"-"`
	PerformedBy *Technician `db:"-"`
}
