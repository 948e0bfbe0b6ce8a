package entities

import (
	"time"
)

type Handover struct {
	ID                uint64    `json:"id"`
	Date              time.Time `json:"date"`
	Type              string    `json:"type"`
	SourceAreaID      *uint64   `json:"source_area_id,omitempty"`
	DestinationAreaID *uint64   `json:"destination_area_id,omitempty"`
	TechnicianID      *uint64   `json:"technician_id,omitempty"`
	ClientID          *uint64   `json:"client_id,omitempty"`
	ReceiverName      *string   `json:"receiver_name,omitempty"`
	Observations      *string   `json:"observations,omitempty"`
	ActaPath          *string   `json:"acta_path,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`

	SourceArea      *Area                `db:"-"`
	DestinationArea *Area                `db:"-"`
	Technician      *Technician          `db:"-"`
	Client          *Client              `db:"-"`
	Equipment       []Equipment          `db:"-"`
	Peripherals     []HandoverPeripheral `db:"-"`
}

// HandoverPeripheral records how many units of a peripheral left with a
// handover.
type HandoverPeripheral struct {
	ID           uint64 `json:"id"`
	HandoverID   uint64 `json:"handover_id"`
	PeripheralID uint64 `json:"peripheral_id"`
	Quantity     int    `json:"quantity"`

	Peripheral *Peripheral `db:"-"`
}
