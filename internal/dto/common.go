package dto

type ShortAreaDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortCostCenterDTO struct {
	ID   uint64 `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type ShortEquipmentDTO struct {
	ID           uint64 `json:"id"`
	SerialNumber string `json:"serial_number"`
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}

type ShortTechnicianDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortClientDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortPeripheralTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
