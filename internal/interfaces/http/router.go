package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rvaldez/repairshop-pro/internal/application/auth"
	"github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/application/usecase"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	PartUC     *usecase.PartUseCase
	UserUC     *usecase.UserUseCase
	OrderUC    *orders.UseCase
	SheetUC    *orders.SheetUseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registers the API routes. Everything except login sits behind the
// auth middleware; destructive and staff-management routes also require the
// admin role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login public, logout behind auth)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/logout", authHandler.Logout)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", admin, customerHandler.Delete)

	// Parts (writes admin-only)
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", admin, partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", admin, partHandler.Update)
	parts.Delete("/:id", admin, partHandler.Delete)

	// Repair orders
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.SheetUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/search", orderHandler.Search)
	ordersGroup.Get("/date-range", orderHandler.DateRange)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Delete("/:id", admin, orderHandler.Delete)
	ordersGroup.Post("/:id/pay", orderHandler.Pay)
	ordersGroup.Get("/:id/total", orderHandler.Totals)
	ordersGroup.Get("/:id/history", orderHandler.History)
	ordersGroup.Get("/:id/pdf", orderHandler.Sheet)
	ordersGroup.Post("/:id/lines", orderHandler.AddLine)
	ordersGroup.Put("/:id/lines/:lineId", orderHandler.UpdateLine)
	ordersGroup.Delete("/:id/lines/:lineId", admin, orderHandler.DeleteLine)

	// Staff accounts (admin-only)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
