package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/pdfgen"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/eventbus"
	"inventory-system/pkg/filestorage"
	"inventory-system/pkg/websocket"
)

// InitRouter wires repositories, services and controllers and registers every
// route under /api. The hub and bus are created by main so the low-stock
// listener can subscribe before the first request arrives.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	hub *websocket.Hub,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	api := e.Group("/api")

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.BasePath)
	if err != nil {
		return err
	}
	txManager := repositories.NewTxManager(dbConn)
	branding := pdfgen.BrandingFromConfig(cfg.Branding)

	// Repositories.
	costCenterRepo := repositories.NewCostCenterRepository(dbConn, logger)
	areaRepo := repositories.NewAreaRepository(dbConn, logger)
	clientRepo := repositories.NewClientRepository(dbConn, logger)
	technicianRepo := repositories.NewTechnicianRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	peripheralRepo := repositories.NewPeripheralRepository(dbConn, logger)
	peripheralTypeRepo := repositories.NewPeripheralTypeRepository(dbConn, logger)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn, logger)
	scheduleRepo := repositories.NewScheduleRepository(dbConn, logger)
	handoverRepo := repositories.NewHandoverRepository(dbConn, logger)
	componentLogRepo := repositories.NewComponentLogRepository(dbConn, logger)
	roundRepo := repositories.NewEquipmentRoundRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)

	// Services.
	costCenterService := services.NewCostCenterService(costCenterRepo)
	areaService := services.NewAreaService(areaRepo, logger)
	clientService := services.NewClientService(clientRepo)
	technicianService := services.NewTechnicianService(technicianRepo)
	stockService := services.NewStockService(peripheralRepo, bus, logger)
	peripheralService := services.NewPeripheralService(peripheralRepo, peripheralTypeRepo, logger)
	scheduleSyncService := services.NewScheduleSyncService(scheduleRepo, equipmentRepo, logger)
	maintenanceService := services.NewMaintenanceService(
		maintenanceRepo, equipmentRepo, scheduleSyncService, fileStorage, branding, logger)
	handoverService := services.NewHandoverService(
		handoverRepo, equipmentRepo, stockService, txManager, fileStorage, branding, logger)
	equipmentService := services.NewEquipmentService(
		equipmentRepo, maintenanceRepo, handoverRepo, componentLogRepo, roundRepo, branding, logger)
	componentLogService := services.NewComponentLogService(
		componentLogRepo, peripheralRepo, equipmentRepo, stockService, txManager, logger)
	roundService := services.NewEquipmentRoundService(roundRepo, equipmentRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)
	alertService := services.NewAlertService(
		dashboardRepo, peripheralRepo, maintenanceRepo, scheduleRepo,
		cfg.Alerts.UpcomingWindowDays, logger)
	exportService := services.NewExportService(
		equipmentRepo, peripheralRepo, maintenanceRepo, handoverRepo,
		clientRepo, areaRepo, costCenterRepo, logger)
	importService := services.NewEquipmentImportService(equipmentRepo, areaRepo, logger)

	// Controllers and routes.
	runCostCenterRouter(api, controllers.NewCostCenterController(costCenterService, logger))
	runAreaRouter(api, controllers.NewAreaController(areaService, logger))
	runClientRouter(api, controllers.NewClientController(clientService, logger))
	runTechnicianRouter(api, controllers.NewTechnicianController(technicianService, logger))
	runEquipmentRouter(api, controllers.NewEquipmentController(equipmentService, importService, logger))
	runPeripheralRouter(api, controllers.NewPeripheralController(peripheralService, stockService, logger))
	runMaintenanceRouter(api, controllers.NewMaintenanceController(maintenanceService, logger))
	runScheduleRouter(api, controllers.NewScheduleController(scheduleSyncService, logger))
	runHandoverRouter(api, controllers.NewHandoverController(handoverService, logger))
	runComponentLogRouter(api, controllers.NewComponentLogController(componentLogService, logger))
	runEquipmentRoundRouter(api, controllers.NewEquipmentRoundController(roundService, logger))
	runDashboardRouter(api, controllers.NewDashboardController(dashboardService, alertService, logger))
	runExportRouter(api, controllers.NewExportController(exportService, logger))

	wsController := controllers.NewWebSocketController(hub, logger)
	e.GET("/ws", wsController.ServeWs)
	e.Static("/uploads", cfg.Uploads.BasePath)

	logger.Info("router initialised")
	return nil
}
