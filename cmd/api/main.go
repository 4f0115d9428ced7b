package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Comandera-api/internal/application/analytics"
	"github.com/jhoicas/Comandera-api/internal/application/auth"
	appbackoffice "github.com/jhoicas/Comandera-api/internal/application/backoffice"
	"github.com/jhoicas/Comandera-api/internal/application/billing"
	"github.com/jhoicas/Comandera-api/internal/application/inventory"
	"github.com/jhoicas/Comandera-api/internal/application/ordering"
	"github.com/jhoicas/Comandera-api/internal/application/ports"
	"github.com/jhoicas/Comandera-api/internal/application/tenant"
	"github.com/jhoicas/Comandera-api/internal/application/usecase"
	infrabackoffice "github.com/jhoicas/Comandera-api/internal/infrastructure/backoffice"
	infrapdf "github.com/jhoicas/Comandera-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/rabbitmq"
	infraredis "github.com/jhoicas/Comandera-api/internal/infrastructure/redis"
	"github.com/jhoicas/Comandera-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/Comandera-api/internal/interfaces/http"
	"github.com/jhoicas/Comandera-api/pkg/config"
	"github.com/jhoicas/Comandera-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	// Eventos de cocina/caja: sin URL de broker se descartan.
	var events ports.EventPublisher = ports.NopPublisher{}
	if cfg.Rabbit.URL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer publisher.Close()
		events = publisher
	} else {
		log.Warn().Msg("RABBITMQ_URL vacío: eventos de pedido deshabilitados")
	}

	couponCache, err := sqlite.Open(ctx, cfg.Cache.CouponPath)
	if err != nil {
		log.Fatal().Err(err).Msg("caché local de cupones")
	}
	defer couponCache.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionStore := infraredis.NewSessionStore(redisClient, cfg.Redis.SessionTTL)
	draftStore := infraredis.NewDraftStore(redisClient, cfg.Redis.DraftTTL)
	resolver := tenant.NewResolver(sessionStore)

	authUC := auth.NewAuthUseCase(userRepo, txRunner, resolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	reconciler := inventory.NewReconciler(stockRepo, movementRepo, inventory.Config{
		MaxAttempts: cfg.Reconcile.MaxAttempts,
		Concurrency: cfg.Reconcile.Concurrency,
		BaseBackoff: cfg.Reconcile.BaseBackoff,
	}, log.Component("reconciler"))

	backofficeClient := infrabackoffice.NewClient(cfg.Backoffice.BaseURL, cfg.Backoffice.Timeout)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comandera API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      usecase.NewUserUseCase(userRepo),
		TenantUC:    usecase.NewTenantUseCase(tenantRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo),
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		StockUC:     usecase.NewStockUseCase(stockRepo, movementRepo, log.Component("stock")),
		DraftUC:     ordering.NewDraftUseCase(draftStore, productRepo),
		SubmitUC:    ordering.NewSubmitUseCase(orderRepo, draftStore, reconciler, events, log.Component("ordering")),
		OrderUC:     billing.NewOrderUseCase(orderRepo, events, log.Component("billing")),
		ReceiptUC:   billing.NewReceiptUseCase(orderRepo, tenantRepo, infrapdf.NewMarotoReceiptGenerator()),
		CouponUC:    appbackoffice.NewCouponUseCase(backofficeClient, couponCache, log.Component("coupons")),
		CustomerUC:  appbackoffice.NewCustomerUseCase(backofficeClient),
		DashboardUC: appanalytics.NewDashboardUseCase(analyticsRepo, stockRepo, cfg.Dashboard.LowStockThreshold),
		Sessions:    resolver,
		JWTSecret:   cfg.JWT.Secret,
		AuthRateMax: cfg.HTTP.RateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
