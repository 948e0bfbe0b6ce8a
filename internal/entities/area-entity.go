package entities

import (
	"inventory-system/pkg/types"
)

type CostCenter struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`

	types.BaseEntity
}

type Area struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	CostCenterID *uint64 `json:"cost_center_id,omitempty"`

	types.BaseEntity

	CostCenter *CostCenter `db:"-"`
}
