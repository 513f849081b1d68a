package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/eltonkaiton/mombasa-admin/internal/api/http/handlers"
	"github.com/eltonkaiton/mombasa-admin/internal/auth"
	"github.com/eltonkaiton/mombasa-admin/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Users          *handlers.UsersHandler
	Bookings       *handlers.BookingsHandler
	Suppliers      *handlers.SuppliersHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.SessionMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Fixed paths are registered before the
// parameterised ones they would otherwise be captured by.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Get("/", cfg.Auth.Root)
	app.Get("/start", cfg.Auth.Start)
	app.Get("/adminlogin", cfg.Auth.AdminLoginForm)
	app.Post("/adminlogin", cfg.Auth.AdminLogin)
	app.Get("/staff_login", cfg.Auth.StaffLoginForm)
	app.Post("/staff_login", cfg.Auth.StaffLogin)
	app.Post("/logout", cfg.Auth.Logout)
	app.Get("/staff_detail/:id", cfg.AuthMiddleware.Handle, auth.RequireSelfOrAdmin("id"), cfg.Auth.StaffDetail)

	dashboard := app.Group("/dashboard", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	dashboard.Get("/", cfg.Reports.Summary)
	dashboard.Get("/reports", cfg.Reports.Reports)
	dashboard.Get("/activity", cfg.Reports.Activity)

	dashboard.Get("/staff", cfg.Staff.List)
	dashboard.Post("/staff/:id/delete", cfg.Staff.Delete)
	dashboard.Get("/add_staff", cfg.Staff.NewForm)
	dashboard.Post("/add_staff", cfg.Staff.Create)
	dashboard.Get("/edit_staff/:id", cfg.Staff.EditForm)
	dashboard.Post("/edit_staff/:id", cfg.Staff.Update)
	dashboard.Get("/category", cfg.Staff.Categories)
	dashboard.Get("/add_category", cfg.Staff.NewCategoryForm)
	dashboard.Post("/add_category", cfg.Staff.CreateCategory)

	dashboard.Get("/users", cfg.Users.Tab)
	dashboard.Get("/users/add", cfg.Users.NewForm)
	dashboard.Post("/users/add", cfg.Users.Create)
	dashboard.Post("/users/:id/status", cfg.Users.ChangeStatus)
	dashboard.Get("/users/:status", cfg.Users.Tab)

	dashboard.Get("/bookings", cfg.Bookings.List)
	dashboard.Get("/bookings/receipts", cfg.Bookings.Receipts)
	dashboard.Get("/bookings/export.xlsx", cfg.Bookings.Export)
	dashboard.Get("/bookings/payments", cfg.Bookings.Payments)
	dashboard.Get("/bookings/:id/receipt", cfg.Bookings.Receipt)
	dashboard.Get("/bookings/:id", cfg.Bookings.Detail)
	dashboard.Post("/bookings/:id", cfg.Bookings.UpdateStatus)

	dashboard.Get("/suppliers", cfg.Suppliers.List)
	dashboard.Get("/suppliers/add", cfg.Suppliers.NewForm)
	dashboard.Post("/suppliers/add", cfg.Suppliers.Create)
	dashboard.Get("/suppliers/edit/:id", cfg.Suppliers.EditForm)
	dashboard.Post("/suppliers/edit/:id", cfg.Suppliers.Update)
	dashboard.Post("/suppliers/:id/delete", cfg.Suppliers.Delete)

	dashboard.Get("/orders", cfg.Suppliers.Orders)
	dashboard.Get("/orders/receipt", cfg.Suppliers.OrdersReceipt)
	dashboard.Get("/orders/payments", cfg.Suppliers.OrderPayments)
	dashboard.Get("/orders/export.:format", cfg.Suppliers.ExportOrders)
}
