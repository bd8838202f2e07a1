package FiberConfig

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"Brokerage/Controllers"
	"Brokerage/middleware"
)

// lookupTables drives the generic reference-data controller: one route
// group per master table, same contract everywhere.
var lookupTables = []struct {
	Path  string
	Table string
	Label string
}{
	{"/qty-types", "qty_types", "Qty type"},
	{"/rate-per-unit", "rate_per_unit", "Rate unit"},
	{"/item-types", "item_types", "Item type"},
	{"/delivery-places", "delivery_places", "Delivery place"},
	{"/payment-types", "payment_types", "Payment type"},
	{"/flags", "flags", "Flag"},
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	clientController := Controllers.NewClientController(db)
	transactionController := Controllers.NewTransactionController(db)
	reportController := Controllers.NewReportController(db)

	api := app.Group("/api")

	clients := api.Group("/clients")
	clients.Get("/", clientController.GetClients)
	clients.Post("/", clientController.CreateClient)
	clients.Post("/bulk-delete", clientController.BulkDeleteClients)
	clients.Put("/:id", clientController.UpdateClient)
	clients.Delete("/:id", clientController.DeleteClient)

	for _, table := range lookupTables {
		lookup := Controllers.NewLookupController(db, table.Table, table.Label)
		group := api.Group(table.Path)
		group.Get("/", lookup.List)
		group.Post("/", lookup.Create)
		group.Post("/bulk-delete", lookup.BulkDelete)
		group.Put("/:id", lookup.Update)
		group.Delete("/:id", lookup.SoftDelete)
	}

	transactions := api.Group("/transactions")
	transactions.Get("/", transactionController.GetTransactions)
	transactions.Post("/", transactionController.CreateTransaction)
	transactions.Post("/bulk-delete", transactionController.BulkDeleteTransactions)
	transactions.Get("/:id", transactionController.GetTransaction)
	transactions.Put("/:id", transactionController.UpdateTransaction)
	transactions.Delete("/:id", transactionController.DeleteTransaction)
	transactions.Put("/:id/deliver", transactionController.DeliverTransaction)
	transactions.Get("/:id/report", transactionController.GetTransactionReport)
	transactions.Get("/:id/note", transactionController.GetConfirmationNote)
	transactions.Post("/:id/email", transactionController.EmailConfirmationNote)

	reports := api.Group("/reports")
	reports.Get("/day-wise", reportController.DayWise)
	reports.Get("/day-wise/export", reportController.DayWiseExport)
}

// NewApp builds the Fiber app with the shared middleware stack and all
// routes registered against db.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "Broker app server running"})
	})

	SetupRoutes(app, db)
	return app
}
