package entities

import (
	"inventory-system/pkg/types"
)

type PeripheralType struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type Peripheral struct {
	ID            uint64  `json:"id"`
	SerialNumber  *string `json:"serial_number,omitempty"`
	TypeID        uint64  `json:"type_id"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Status        string  `json:"status"`
	Quantity      int     `json:"quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	ConnectedToID *uint64 `json:"connected_to_id,omitempty"`
	AreaID        *uint64 `json:"area_id,omitempty"`

	types.BaseEntity

	Type        *PeripheralType `db:"-"`
	ConnectedTo *Equipment      `db:"-"`
	Area        *Area           `db:"-"`
}

// IsLowStock reports whether the on-hand quantity dropped to or below the
// configured alert threshold.
func (p *Peripheral) IsLowStock() bool {
	return p.Quantity <= p.MinStockLevel
}
