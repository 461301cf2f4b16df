package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/auth"
	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/hierarchy"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	CustomerUC  *usecase.CustomerUseCase
	HierarchySv *hierarchy.Service
	DebtUC      *collections.DebtUseCase
	ImportUC    *collections.ImportUseCase
	PaymentUC   *collections.PaymentUseCase
	FollowUpUC  *collections.FollowUpUseCase
	StatementUC *collections.StatementUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/register", authHandler.RegisterCompany)
	api.Get("/companies/:slug", authHandler.ResolveCompany)
	api.Post("/companies/:slug/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manageStaff := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Users (protegido; gestión solo admin/manager)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", manageStaff, userHandler.Create)
	users.Post("/bulk", manageStaff, userHandler.BulkCreate)
	users.Get("/export", manageStaff, userHandler.Export)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", manageStaff, userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Jerarquía de reporte (solo admin/manager)
	hierarchyHandler := NewHierarchyHandler(deps.HierarchySv)
	users.Post("/assign-manager", manageStaff, hierarchyHandler.AssignManager)
	users.Post("/repair-hierarchy", manageStaff, hierarchyHandler.Repair)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StatementUC, deps.FollowUpUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", manageStaff, customerHandler.Delete)
	customers.Get("/:id/statement", customerHandler.Statement)
	customers.Get("/:id/notes", customerHandler.Notes)
	protected.Post("/notes", customerHandler.AddNote)

	// Debts (protegido)
	debts := protected.Group("/debts")
	debtHandler := NewDebtHandler(deps.DebtUC, deps.ImportUC)
	debts.Post("/", debtHandler.Create)
	debts.Post("/bulk", manageStaff, debtHandler.Import)
	debts.Post("/reassign-seller", manageStaff, hierarchyHandler.ReassignOwnership)
	debts.Get("/", debtHandler.List)
	debts.Get("/:id", debtHandler.GetByID)
	debts.Put("/:id", debtHandler.Update)
	debts.Delete("/:id", manageStaff, debtHandler.Delete)

	// Payments y promesas (protegido)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.FollowUpUC)
	protected.Post("/payments", paymentHandler.Register)
	debts.Get("/:id/payments", paymentHandler.ListByDebt)
	debts.Get("/:id/promises", paymentHandler.PromisesByDebt)
	protected.Post("/promises", paymentHandler.CreatePromise)
	protected.Post("/promises/:id/resolve", paymentHandler.ResolvePromise)

	// Company (protegido; settings solo admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Profile)
	protected.Get("/company/settings", companyHandler.GetSettings)
	protected.Put("/company/settings", RequireRole(entity.RoleAdmin), companyHandler.SaveSettings)
}
