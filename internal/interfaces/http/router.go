package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	appanalytics "github.com/jhoicas/Comandera-api/internal/application/analytics"
	"github.com/jhoicas/Comandera-api/internal/application/auth"
	"github.com/jhoicas/Comandera-api/internal/application/backoffice"
	"github.com/jhoicas/Comandera-api/internal/application/billing"
	"github.com/jhoicas/Comandera-api/internal/application/dto"
	"github.com/jhoicas/Comandera-api/internal/application/ordering"
	"github.com/jhoicas/Comandera-api/internal/application/usecase"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	TenantUC    *usecase.TenantUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	StockUC     *usecase.StockUseCase
	DraftUC     *ordering.DraftUseCase
	SubmitUC    *ordering.SubmitUseCase
	OrderUC     *billing.OrderUseCase
	ReceiptUC   *billing.ReceiptUseCase
	CouponUC    *backoffice.CouponUseCase
	CustomerUC  *backoffice.CustomerUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Sessions    sessionResolver
	JWTSecret   string
	AuthRateMax int // peticiones por minuto e IP en /api/auth; 0 = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.AuthRateMax > 0 {
		authGroup.Use(limiter.New(limiter.Config{
			Max:        deps.AuthRateMax,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMIT", Message: "demasiados intentos, espere un minuto"})
			},
		}))
	}
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	staff := RequireRole(entity.RoleAdmin, entity.RoleWaiter)
	admin := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)

	// Perfil del restaurante
	tenantHandler := NewTenantHandler(deps.TenantUC)
	protected.Get("/tenant", staff, tenantHandler.Get)
	protected.Put("/tenant", admin, tenantHandler.Update)

	// Personal (admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Carta: lectura para todo el personal, escritura solo admin
	products := protected.Group("/products", staff)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/categories", NewCategoryHandler(deps.CategoryUC).List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Stock (admin)
	stock := protected.Group("/stock", admin)
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)
	stock.Get("/:id/movements", stockHandler.Movements)

	// POS: borrador de la sesión y envío
	draft := protected.Group("/draft", staff)
	draftHandler := NewDraftHandler(deps.DraftUC, deps.SubmitUC)
	draft.Get("/", draftHandler.Get)
	draft.Delete("/", draftHandler.Reset)
	draft.Post("/items", draftHandler.AddItem)
	draft.Delete("/items/:index", draftHandler.RemoveItem)
	draft.Post("/submit", draftHandler.Submit)

	// Pedidos: consulta para el personal; cobro y ticket solo admin
	orders := protected.Group("/orders", staff)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/bill", admin, orderHandler.Bill)
	orders.Get("/:id/receipt", admin, orderHandler.Receipt)

	// Backoffice externo (admin)
	boHandler := NewBackofficeHandler(deps.CouponUC, deps.CustomerUC)
	coupons := protected.Group("/coupons", admin)
	coupons.Get("/", boHandler.ListCoupons)
	coupons.Post("/", boHandler.CreateCoupon)
	coupons.Put("/:id", boHandler.UpdateCoupon)
	coupons.Delete("/:id", boHandler.DeleteCoupon)
	protected.Get("/customers", admin, boHandler.ListCustomers)

	// Resumen de ventas (admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", admin, dashboardHandler.GetSummary)
}
