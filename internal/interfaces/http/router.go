package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruver-api/internal/application/notification"
	"github.com/jhoicas/fruver-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName    string
	DB             Pinger
	InventoryUC    *usecase.InventoryUseCase
	AlertUC        *usecase.AlertUseCase
	LotUC          *usecase.LotUseCase
	ProductUC      *usecase.ProductUseCase
	UserUC         *usecase.UserUseCase
	ReportUC       *usecase.ReportUseCase
	NotificationUC *notification.UseCase
}

// Router registra las rutas de la API. La ruta comodín 404 va al final.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.DB, deps.ServiceName)
	app.Get("/", healthHandler.Welcome)
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventario := api.Group("/inventario")
	inventario.Get("/", inventoryHandler.List)
	inventario.Get("/buscar", inventoryHandler.Search)
	inventario.Get("/exportar", inventoryHandler.Export)

	lotHandler := NewLotHandler(deps.LotUC)
	lotes := api.Group("/lotes")
	lotes.Post("/", lotHandler.Create)
	lotes.Get("/recientes", lotHandler.ListRecent)
	lotes.Put("/:codigoLote", lotHandler.Update)
	lotes.Delete("/:codigoLote", lotHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	alertHandler := NewAlertHandler(deps.AlertUC)
	api.Post("/products", productHandler.Create)
	productos := api.Group("/productos")
	productos.Get("/", productHandler.List)
	productos.Get("/recientes", productHandler.ListRecent)
	productos.Get("/id/:nombre", productHandler.GetIDByName)
	productos.Get("/por-vencer", alertHandler.NearExpiry)
	productos.Get("/vencidos", alertHandler.Expired)
	productos.Get("/vencidos/recientes", alertHandler.RecentExpired)
	productos.Get("/bajo-stock", alertHandler.LowStock)
	productos.Get("/bajo-stock/buscar", alertHandler.LowStockSearch)

	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/usuarios", userHandler.List)

	reportHandler := NewReportHandler(deps.ReportUC)
	reportes := api.Group("/reportes")
	reportes.Get("/productos-mas-movidos", reportHandler.MostMoved)
	reportes.Get("/usuarios-top", reportHandler.TopUsers)

	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	api.Get("/notificaciones", notificationHandler.Get)

	app.Use(NotFound)
}
