package entities

import (
	"inventory-system/pkg/types"
)

type Client struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Identification string  `json:"identification"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	AreaID         *uint64 `json:"area_id,omitempty"`

	types.BaseEntity

	Area *Area `db:"-"`
}

type Technician struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}
