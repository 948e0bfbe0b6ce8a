package constants

// Equipment
const (
	EquipmentTypePC      = "PC"
	EquipmentTypeLaptop  = "LAPTOP"
	EquipmentTypeAIO     = "AIO"
	EquipmentTypeServer  = "SERVER"
	EquipmentTypePrinter = "PRINTER"
	EquipmentTypeScanner = "SCANNER"
	EquipmentTypeOther   = "OTHER"

	EquipmentStatusActive      = "ACTIVE"
	EquipmentStatusMaintenance = "MAINTENANCE"
	EquipmentStatusRetired     = "RETIRED"
	EquipmentStatusInStock     = "STOCK"
)

// Peripheral
const (
	PeripheralStatusActive  = "ACTIVE"
	PeripheralStatusFaulty  = "FAULTY"
	PeripheralStatusRetired = "RETIRED"
	PeripheralStatusInStock = "STOCK"
)

// Maintenance
const (
	MaintenanceTypePreventive = "PREVENTIVE"
	MaintenanceTypeCorrective = "CORRECTIVE"
)

// MaintenanceSchedule
const (
	ScheduleStatusPending   = "PENDING"
	ScheduleStatusCompleted = "COMPLETED"
	ScheduleStatusCancelled = "CANCELLED"
)

// Handover
const (
	HandoverTypeAssignment = "ASSIGNMENT"
	HandoverTypeReturn     = "RETURN"
	HandoverTypeTransfer   = "TRANSFER"
)

// ComponentLog
const (
	ComponentActionAdded    = "ADDED"
	ComponentActionReplaced = "REPLACED"
	ComponentActionRemoved  = "REMOVED"
)

// EquipmentRound
const (
	RoundStatusGood    = "GOOD"
	RoundStatusRegular = "REGULAR"
	RoundStatusBad     = "BAD"
)
