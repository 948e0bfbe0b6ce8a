package dto

type CreateCostCenterDTO struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type UpdateCostCenterDTO struct {
	Code *string `json:"code,omitempty" validate:"omitempty"`
	Name *string `json:"name,omitempty" validate:"omitempty"`
}

type CostCenterDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CreateAreaDTO struct {
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description,omitempty"`
	CostCenterID *uint64 `json:"cost_center_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateAreaDTO struct {
	Name         *string `json:"name,omitempty"           validate:"omitempty"`
	Description  *string `json:"description,omitempty"    validate:"omitempty"`
	CostCenterID *uint64 `json:"cost_center_id,omitempty" validate:"omitempty,gt=0"`
}

type AreaDTO struct {
	ID          uint64              `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description,omitempty"`
	CostCenter  *ShortCostCenterDTO `json:"cost_center,omitempty"`
}
