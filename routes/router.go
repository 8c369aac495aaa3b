package routes

import (
	"github.com/gin-gonic/gin"

	"tablerunner-api/controllers"
	"tablerunner-api/middlewares"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)
	r.POST("/register", controllers.Register)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/me", controllers.Me)
	}

	// Menu management (owner)
	menu := r.Group("/menu-items")
	menu.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("owner"))
	{
		menu.GET("", controllers.GetMenuItems)
		menu.GET("/export", controllers.ExportMenuItemsCSV)
		menu.GET("/:id", controllers.GetMenuItemByID)
		menu.POST("", controllers.CreateMenuItem)
		menu.POST("/bulk", controllers.BulkCreateMenuItems)
		menu.PUT("/:id", controllers.UpdateMenuItem)
		menu.DELETE("/:id", controllers.DeleteMenuItem)
	}

	// Orders (owner)
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("owner"))
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("", controllers.GetOrders)
		orders.GET("/next-number", controllers.GetNextOrderNumber)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.GET("/:id/receipt", controllers.GetOrderReceipt)
	}

	// Dashboard (owner)
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("owner"))
	{
		dashboard.GET("", controllers.GetDashboard)
	}

	// Expense and staff tracker (owner)
	expenses := r.Group("/expenses")
	expenses.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("owner"))
	{
		expenses.GET("/sections", controllers.GetExpenseSections)
		expenses.POST("/sections", controllers.CreateExpenseSection)
		expenses.DELETE("/sections/:id", controllers.DeleteExpenseSection)
		expenses.GET("/receipts", controllers.GetExpenseReceipts)
		expenses.POST("/receipts", controllers.CreateExpenseReceipt)
		expenses.PATCH("/receipts/:id/paid", controllers.MarkExpenseReceiptPaid)
		expenses.DELETE("/receipts/:id", controllers.DeleteExpenseReceipt)
	}

	staff := r.Group("/staff")
	staff.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("owner"))
	{
		staff.GET("", controllers.GetStaff)
		staff.POST("", controllers.CreateStaff)
		staff.PUT("/:id", controllers.UpdateStaff)
		staff.DELETE("/:id", controllers.DeleteStaff)
	}

	// Cash sessions (owner)
	cash := r.Group("/cash-sessions")
	cash.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("owner"))
	{
		cash.POST("", controllers.OpenCashSession)
		cash.GET("/current", controllers.GetCurrentCashSession)
		cash.POST("/close", controllers.CloseCashSession)
	}

	// Admin approval panel
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		admin.GET("/owners", controllers.GetOwners)
		admin.PATCH("/owners/:id/approve", controllers.ApproveOwner)
		admin.PATCH("/owners/:id/reject", controllers.RejectOwner)
		admin.GET("/analytics", controllers.GetAdminAnalytics)
	}
}
