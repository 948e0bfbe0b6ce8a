package dto

type CreateClientDTO struct {
	Name           string  `json:"name" validate:"required"`
	Identification string  `json:"identification" validate:"required"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"`
	AreaID         *uint64 `json:"area_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateClientDTO struct {
	Name           *string `json:"name,omitempty"           validate:"omitempty"`
	Identification *string `json:"identification,omitempty" validate:"omitempty"`
	Email          *string `json:"email,omitempty"          validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"          validate:"omitempty"`
	AreaID         *uint64 `json:"area_id,omitempty"        validate:"omitempty,gt=0"`
}

type ClientDTO struct {
	ID             uint64        `json:"id"`
	Name           string        `json:"name"`
	Identification string        `json:"identification"`
	Email          *string       `json:"email,omitempty"`
	Phone          *string       `json:"phone,omitempty"`
	Area           *ShortAreaDTO `json:"area,omitempty"`
}

type CreateTechnicianDTO struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdateTechnicianDTO struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type TechnicianDTO struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}
