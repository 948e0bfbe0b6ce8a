package dto

type CreateComponentLogDTO struct {
	EquipmentID   uint64  `json:"equipment_id" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	ActionType    string  `json:"action_type" validate:"required"`
	ComponentName string  `json:"component_name" validate:"required"`
	Description   *string `json:"description,omitempty"`
	PeripheralID  *uint64 `json:"peripheral_id,omitempty" validate:"omitempty,gt=0"`
	Quantity      int     `json:"quantity" validate:"omitempty,gt=0"`
	PerformedByID *uint64 `json:"performed_by_id,omitempty" validate:"omitempty,gt=0"`
}

type ComponentLogDTO struct {
	ID            uint64              `json:"id"`
	Date          string              `json:"date"`
	ActionType    string              `json:"action_type"`
	ComponentName string              `json:"component_name"`
	Description   *string             `json:"description,omitempty"`
	Quantity      int                 `json:"quantity"`
	Equipment     ShortEquipmentDTO   `json:"equipment"`
	Peripheral    *PeripheralDTO      `json:"peripheral,omitempty"`
	PerformedBy   *ShortTechnicianDTO `json:"performed_by,omitempty"`
}

type CreateEquipmentRoundDTO struct {
	EquipmentID   uint64  `json:"equipment_id" validate:"required,gt=0"`
	Datetime      string  `json:"datetime" validate:"required"`
	GeneralStatus string  `json:"general_status" validate:"required"`
	Observations  *string `json:"observations,omitempty"`
	PerformedByID *uint64 `json:"performed_by_id,omitempty" validate:"omitempty,gt=0"`
}

type EquipmentRoundDTO struct {
	ID            uint64              `json:"id"`
	Datetime      string              `json:"datetime"`
	GeneralStatus string              `json:"general_status"`
	Observations  *string             `json:"observations,omitempty"`
	Equipment     ShortEquipmentDTO   `json:"equipment"`
	PerformedBy   *ShortTechnicianDTO `json:"performed_by,omitempty"`
}
