package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/controllers"
	"github.com/bhoumik1804/krsika-backend/middlewares"
	"github.com/bhoumik1804/krsika-backend/models"
)

// RegisterRoutes wires the HTTP surface. Reads are open to every
// authenticated role; writes need manager or above; user management is
// admin only.
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/auth/login", controllers.LoginHandler)

	authed := api.Group("", middlewares.AuthMiddleware())
	writer := authed.Group("", middlewares.RequireRole(models.RoleAdmin, models.RoleManager))
	admin := authed.Group("", middlewares.RequireRole(models.RoleAdmin))

	admin.POST("/users", controllers.CreateUserHandler)

	authed.GET("/mill", controllers.GetMillHandler)
	admin.PUT("/mill", controllers.UpdateMillHandler)

	// ledger (read-only)
	authed.GET("/ledger/entries", controllers.ListLedgerEntriesHandler)
	authed.GET("/ledger/balance", controllers.LedgerBalanceHandler)
	authed.GET("/ledger/summary", controllers.LedgerSummaryHandler)
	authed.GET("/ledger/by-action", controllers.LedgerByActionHandler)

	// purchase deals
	authed.GET("/purchase-deals", controllers.ListPurchaseDealsHandler)
	authed.GET("/purchase-deals/:id", controllers.GetPurchaseDealHandler)
	writer.POST("/purchase-deals", controllers.CreatePurchaseDealHandler)
	writer.PUT("/purchase-deals/:id", controllers.UpdatePurchaseDealHandler)
	writer.DELETE("/purchase-deals/:id", controllers.DeletePurchaseDealHandler)

	// sales deals
	authed.GET("/sales-deals", controllers.ListSalesDealsHandler)
	authed.GET("/sales-deals/:id", controllers.GetSalesDealHandler)
	writer.POST("/sales-deals", controllers.CreateSalesDealHandler)
	writer.PUT("/sales-deals/:id", controllers.UpdateSalesDealHandler)
	writer.DELETE("/sales-deals/:id", controllers.DeleteSalesDealHandler)

	// gate entries: operators record them too
	authed.GET("/daily-inwards", controllers.ListDailyInwardsHandler)
	authed.GET("/daily-inwards/:id", controllers.GetDailyInwardHandler)
	authed.POST("/daily-inwards", controllers.CreateDailyInwardHandler)
	authed.PUT("/daily-inwards/:id", controllers.UpdateDailyInwardHandler)
	writer.DELETE("/daily-inwards/:id", controllers.DeleteDailyInwardHandler)
	writer.POST("/daily-inwards/bulk-delete", controllers.BulkDeleteDailyInwardsHandler)

	authed.GET("/daily-outwards", controllers.ListDailyOutwardsHandler)
	authed.GET("/daily-outwards/:id", controllers.GetDailyOutwardHandler)
	authed.POST("/daily-outwards", controllers.CreateDailyOutwardHandler)
	authed.PUT("/daily-outwards/:id", controllers.UpdateDailyOutwardHandler)
	writer.DELETE("/daily-outwards/:id", controllers.DeleteDailyOutwardHandler)
	writer.POST("/daily-outwards/bulk-delete", controllers.BulkDeleteDailyOutwardsHandler)

	// milling runs
	authed.GET("/paddy-millings", controllers.ListPaddyMillingsHandler)
	authed.GET("/paddy-millings/:id", controllers.GetPaddyMillingHandler)
	authed.POST("/paddy-millings", controllers.CreatePaddyMillingHandler)
	authed.PUT("/paddy-millings/:id", controllers.UpdatePaddyMillingHandler)
	writer.DELETE("/paddy-millings/:id", controllers.DeletePaddyMillingHandler)

	authed.GET("/rice-millings", controllers.ListRiceMillingsHandler)
	authed.GET("/rice-millings/:id", controllers.GetRiceMillingHandler)
	authed.POST("/rice-millings", controllers.CreateRiceMillingHandler)
	authed.PUT("/rice-millings/:id", controllers.UpdateRiceMillingHandler)
	writer.DELETE("/rice-millings/:id", controllers.DeleteRiceMillingHandler)

	// opening stock
	authed.GET("/opening-stocks", controllers.ListOpeningStocksHandler)
	authed.GET("/opening-stocks/:id", controllers.GetOpeningStockHandler)
	writer.POST("/opening-stocks", controllers.CreateOpeningStockHandler)
	writer.PUT("/opening-stocks/:id", controllers.UpdateOpeningStockHandler)
	writer.DELETE("/opening-stocks/:id", controllers.DeleteOpeningStockHandler)

	// stock adjustments
	authed.GET("/stock-adjustments", controllers.ListStockAdjustmentsHandler)
	authed.GET("/stock-adjustments/:id", controllers.GetStockAdjustmentHandler)
	writer.POST("/stock-adjustments", controllers.CreateStockAdjustmentHandler)
	writer.PUT("/stock-adjustments/:id", controllers.UpdateStockAdjustmentHandler)
	writer.DELETE("/stock-adjustments/:id", controllers.DeleteStockAdjustmentHandler)

	// stock transfers
	authed.GET("/stock-transfers", controllers.ListStockTransfersHandler)
	authed.GET("/stock-transfers/:id", controllers.GetStockTransferHandler)
	writer.POST("/stock-transfers", controllers.CreateStockTransferHandler)
	writer.PUT("/stock-transfers/:id", controllers.UpdateStockTransferHandler)
	writer.DELETE("/stock-transfers/:id", controllers.DeleteStockTransferHandler)
}
