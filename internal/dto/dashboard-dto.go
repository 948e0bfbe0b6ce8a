package dto

type DashboardDTO struct {
	TotalEquipment   int64 `json:"total_equipment"`
	ActiveEquipment  int64 `json:"active_equipment"`
	MaintenanceCount int64 `json:"maintenance_count"`
	HandoverCount    int64 `json:"handover_count"`

	ByStatus []CountByGroupDTO `json:"by_status"`
	ByType   []CountByGroupDTO `json:"by_type"`
	ByArea   []CountByGroupDTO `json:"by_area"`
}

type CountByGroupDTO struct {
	Group string `json:"group"`
	Count int64  `json:"count"`
}

// AlertsDTO collects the attention lists shown on the dashboard.
type AlertsDTO struct {
	LifespanExpired      []EquipmentDTO        `json:"lifespan_expired"`
	WarrantyExpired      []EquipmentDTO        `json:"warranty_expired"`
	LowStock             []PeripheralDTO       `json:"low_stock"`
	UpcomingMaintenances []UpcomingMaintenance `json:"upcoming_maintenances"`
}

type UpcomingMaintenance struct {
	Equipment ShortEquipmentDTO `json:"equipment"`
	Date      string            `json:"date"`
	Source    string            `json:"source"`
}
