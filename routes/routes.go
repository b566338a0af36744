package routes

import (
	"time"

	"timetrack/config"
	"timetrack/controllers"
	"timetrack/middleware"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB) {

	// Controllers
	storeController := controllers.NewStoreController(cfg, db)
	inventoryController := controllers.NewInventoryController(db)
	historyController := controllers.NewInventoryHistoryController(db)
	employeeController := controllers.NewEmployeeController(db)
	timeclockController := controllers.NewTimeclockController(db)
	eodController := controllers.NewEodController(db)
	reportController := controllers.NewReportController(db)

	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"application": cfg.AppName,
			"status":      "ok",
			"time":        time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes (public)
	stores := api.Group("/stores")
	stores.Post("/login", storeController.StoreLogin)
	stores.Post("/manager/login", storeController.ManagerLogin)

	// Store routes
	stores.Get("", storeController.GetStores)

	// Inventory routes
	inventory := api.Group("/inventory")
	inventory.Get("", inventoryController.GetInventory)
	inventory.Post("", inventoryController.AddItem)
	inventory.Put("", inventoryController.UpdateItem)
	inventory.Delete("", inventoryController.DeleteItem)
	inventory.Get("/history", historyController.GetHistory)
	inventory.Post("/history/snapshot", historyController.CreateSnapshot)

	// Employee routes
	employees := api.Group("/employees")
	employees.Get("", employeeController.GetEmployees)
	employees.Post("", employeeController.CreateEmployee)
	employees.Delete("/:id", employeeController.DeleteEmployee)

	// Timeclock routes
	timeclock := api.Group("/timeclock")
	timeclock.Post("/clock-in", timeclockController.ClockIn)
	timeclock.Post("/clock-out", timeclockController.ClockOut)
	timeclock.Get("/today", timeclockController.GetToday)
	timeclock.Get("/history", timeclockController.GetHistory)

	// EOD routes
	eod := api.Group("/eod")
	eod.Get("", eodController.GetEods)
	eod.Post("", eodController.CreateEod)

	// Manager-only routes
	managerOnly := api.Group("", middleware.ManagerAuth(cfg))
	managerOnly.Post("/stores", storeController.CreateStore)
	managerOnly.Put("/stores", storeController.UpdateStore)
	managerOnly.Delete("/stores", storeController.DeleteStore)
	managerOnly.Post("/stores/yubikey/register", storeController.RegisterYubikey)
	managerOnly.Delete("/stores/yubikey/remove", storeController.RemoveYubikey)
	managerOnly.Get("/stores/yubikey/list", storeController.ListYubikeys)

	// Report routes
	reports := managerOnly.Group("/reports")
	reports.Get("/eod/export", reportController.ExportEodReports)
	reports.Get("/inventory/export", reportController.ExportInventory)
}
