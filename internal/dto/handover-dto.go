package dto

type HandoverPeripheralLineDTO struct {
	PeripheralID uint64 `json:"peripheral_id" validate:"required,gt=0"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

type CreateHandoverDTO struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Type string `json:"type" validate:"required"`

	SourceAreaID      *uint64 `json:"source_area_id,omitempty"      validate:"omitempty,gt=0"`
	DestinationAreaID *uint64 `json:"destination_area_id,omitempty" validate:"omitempty,gt=0"`
	TechnicianID      *uint64 `json:"technician_id,omitempty"       validate:"omitempty,gt=0"`
	ClientID          *uint64 `json:"client_id,omitempty"           validate:"omitempty,gt=0"`
	ReceiverName      *string `json:"receiver_name,omitempty"`
	Observations      *string `json:"observations,omitempty"`

	EquipmentIDs []uint64                    `json:"equipment_ids" validate:"omitempty,dive,gt=0"`
	Peripherals  []HandoverPeripheralLineDTO `json:"peripherals" validate:"omitempty,dive"`
}

type HandoverPeripheralDTO struct {
	PeripheralID uint64 `json:"peripheral_id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Quantity     int    `json:"quantity"`
}

type HandoverDTO struct {
	ID   uint64 `json:"id"`
	Date string `json:"date"`
	Type string `json:"type"`

	SourceArea      *ShortAreaDTO       `json:"source_area,omitempty"`
	DestinationArea *ShortAreaDTO       `json:"destination_area,omitempty"`
	Technician      *ShortTechnicianDTO `json:"technician,omitempty"`
	Client          *ShortClientDTO     `json:"client,omitempty"`
	ReceiverName    *string             `json:"receiver_name,omitempty"`
	Observations    *string             `json:"observations,omitempty"`
	ActaPath        *string             `json:"acta_path,omitempty"`

	Equipment   []ShortEquipmentDTO     `json:"equipment"`
	Peripherals []HandoverPeripheralDTO `json:"peripherals"`

	CreatedAt string `json:"created_at"`
}
