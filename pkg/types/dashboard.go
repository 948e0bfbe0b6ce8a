package types

// DashboardKPIs are plain aggregate counts, recomputed on every request.
type DashboardKPIs struct {
	TotalEquipment   int64 `json:"total_equipment"`
	ActiveEquipment  int64 `json:"active_equipment"`
	MaintenanceCount int64 `json:"maintenance_count"`
	HandoverCount    int64 `json:"handover_count"`
}

type DashboardCountByGroup struct {
	GroupName string `json:"group_name" db:"group_name"`
	Count     int64  `json:"count" db:"count"`
}
