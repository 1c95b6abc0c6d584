package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/TutorDesk/config"
	"github.com/patiponrmutl/TutorDesk/handlers"
	"github.com/patiponrmutl/TutorDesk/metrics"
	"github.com/patiponrmutl/TutorDesk/middlewares"
	"github.com/patiponrmutl/TutorDesk/store"
)

// RegisterRoutes wires all HTTP routes.
func RegisterRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	e.Validator = handlers.NewRequestValidator()

	stores := store.New(db)

	// ===== Handlers =====
	auth := handlers.NewAuthHandler(stores.Users, cfg.JWTSecret)
	reg := handlers.NewRegistrationHandler(stores)
	dash := handlers.NewDashboardHandler(stores)
	sched := handlers.NewScheduleHandler(stores)
	inv := handlers.NewInvoiceHandler(stores)
	rec := handlers.NewRecordsHandler(stores)
	health := handlers.NewHealthHandler(db)

	// ===== Public =====
	e.GET("/health", health.Health)
	e.GET("/metrics", metrics.Handler())

	e.POST("/account", auth.CreateAccount)
	e.POST("/login", auth.Login)
	e.POST("/logout", auth.Logout)
	e.POST("/password/reset", auth.ResetPassword)

	// ===== Logged in =====
	app := e.Group("", middlewares.RequireAuth(cfg.JWTSecret))

	app.GET("/me", auth.Me)

	app.POST("/register", reg.Register)
	app.GET("/register", reg.Get)
	app.GET("/registrations", reg.List)

	app.GET("/dashboard", dash.Get)
	app.PUT("/dashboard", dash.Update)

	app.GET("/schedule", sched.Get)
	app.PUT("/schedule", sched.Update)

	app.GET("/invoices", inv.List)
	app.POST("/invoices", inv.Create)

	app.GET("/records", rec.Tables)
	app.GET("/records/:table", rec.Dump)
}
