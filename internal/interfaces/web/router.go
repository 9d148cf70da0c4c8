package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/auth"
	"github.com/tu-usuario/salesify-dashboard/internal/application/upload"
	"github.com/tu-usuario/salesify-dashboard/internal/application/usecase"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions  *SessionManager
	AuthUC    *auth.UseCase
	AdminUC   *usecase.AdminUseCase
	CompanyUC *usecase.CompanyUseCase
	UploadWF  *upload.Workflow
	Log       *logger.Logger
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusSeeOther)
	})
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/register", authHandler.RegisterPage)
	app.Post("/register", authHandler.Register)
	app.Get("/verify-otp", authHandler.VerifyOTPPage)
	app.Post("/verify-otp", authHandler.VerifyOTP)
	app.Get("/unauthorized", authHandler.Unauthorized)
	app.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren sesión)
	protected := app.Group("/", RequireSession(deps.Sessions))

	dashboardHandler := NewDashboardHandler(deps.AdminUC, deps.CompanyUC, deps.UploadWF)
	protected.Get("/dashboard", dashboardHandler.Dashboard)

	// Admin (protegido + rol admin). Sus rutas no comparten prefijo, así que el
	// guard de rol va por ruta en vez de por grupo.
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminOnly := RequireRole(entity.RoleAdmin)
	protected.Get("/companies", adminOnly, adminHandler.Companies)
	protected.Post("/companies/:id/suspend", adminOnly, adminHandler.Suspend)
	protected.Post("/companies/:id/recover", adminOnly, adminHandler.Recover)
	protected.Get("/audit-logs", adminOnly, adminHandler.AuditLogs)

	// Manager (protegido + rol manager)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	managerOnly := protected.Group("/manager", RequireRole(entity.RoleManager))
	managerOnly.Get("/employees", companyHandler.Employees)
	managerOnly.Post("/employees", companyHandler.AddEmployee)
	managerOnly.Delete("/employees/:id", companyHandler.DeleteEmployee)

	// Employee (protegido + rol employee)
	uploadHandler := NewUploadHandler(deps.UploadWF)
	employeeOnly := protected.Group("/upload", RequireRole(entity.RoleEmployee))
	employeeOnly.Get("/", uploadHandler.UploadPage)
	employeeOnly.Post("/", uploadHandler.Upload)
	employeeOnly.Post("/preview", uploadHandler.Preview)
	employeeOnly.Post("/map-columns", uploadHandler.MapColumns)
}
