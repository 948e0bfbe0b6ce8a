package dto

import (
	"github.com/aarondl/null/v8"
)

type CreatePeripheralTypeDTO struct {
	Name string `json:"name" validate:"required"`
}

type CreatePeripheralDTO struct {
	TypeID        uint64  `json:"type_id" validate:"required,gt=0"`
	Brand         string  `json:"brand" validate:"required"`
	Model         string  `json:"model" validate:"required"`
	SerialNumber  *string `json:"serial_number,omitempty"`
	Status        string  `json:"status,omitempty"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	MinStockLevel int     `json:"min_stock_level" validate:"gte=0"`
	ConnectedToID *uint64 `json:"connected_to_id,omitempty" validate:"omitempty,gt=0"`
	AreaID        *uint64 `json:"area_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdatePeripheralDTO struct {
	TypeID        null.Uint64 `json:"type_id,omitempty"`
	Brand         null.String `json:"brand,omitempty"`
	Model         null.String `json:"model,omitempty"`
	SerialNumber  null.String `json:"serial_number,omitempty"`
	Status        null.String `json:"status,omitempty"`
	Quantity      null.Int    `json:"quantity,omitempty"`
	MinStockLevel null.Int    `json:"min_stock_level,omitempty"`
	ConnectedToID null.Uint64 `json:"connected_to_id,omitempty"`
	AreaID        null.Uint64 `json:"area_id,omitempty"`
}

type PeripheralDTO struct {
	ID            uint64  `json:"id"`
	SerialNumber  *string `json:"serial_number,omitempty"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Status        string  `json:"status"`
	Quantity      int     `json:"quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	LowStock      bool    `json:"low_stock"`

	Type        ShortPeripheralTypeDTO `json:"type"`
	ConnectedTo *ShortEquipmentDTO     `json:"connected_to,omitempty"`
	Area        *ShortAreaDTO          `json:"area,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// StockAdjustDTO is the body of a stock decrement request.
type StockAdjustDTO struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type StockAdjustResultDTO struct {
	Applied   bool `json:"applied"`
	Remaining int  `json:"remaining"`
}
