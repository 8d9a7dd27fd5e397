package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
	Logger      *logger.Logger // nil = sin log de peticiones
	Metrics     *Metrics       // nil = sin /metrics
}

// NewApp construye la aplicación Fiber con el manejador de errores y los
// middlewares comunes. Las rutas se registran luego con Router.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
		UnescapePath: true,
	})
	app.Use(recover.New())
	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	if cfg.Logger != nil {
		app.Use(RequestLogger(cfg.Logger))
	}
	if cfg.Metrics != nil {
		app.Use(cfg.Metrics.Middleware())
		app.Get("/metrics", cfg.Metrics.Handler())
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	StatsUC   *usecase.StatsUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las rutas fijas de cada recurso van
// antes de /:id para que no las capture el parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/", welcome)

	// Usuarios
	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC, deps.StatsUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/filtrar", userHandler.Filter)
	users.Get("/buscar", userHandler.Search)
	users.Get("/categorias", userHandler.Categorias)
	users.Get("/estadisticas", userHandler.Stats)
	users.Get("/categoria/:categoria", userHandler.ByCategoria)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id/permanente", userHandler.DeletePermanent)
	users.Delete("/:id", userHandler.Delete)

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.StatsUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/filtrar", productHandler.Filter)
	products.Get("/buscar", productHandler.Search)
	products.Get("/categorias", productHandler.Categorias)
	products.Get("/estadisticas", productHandler.Stats)
	products.Get("/con-stock", productHandler.InStock)
	products.Get("/agotados", productHandler.OutOfStock)
	products.Get("/categoria/:categoria", productHandler.ByCategoria)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/stock", productHandler.SetStock)
	products.Put("/:id/reducir-stock", productHandler.ReduceStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id/permanente", productHandler.DeletePermanent)
	products.Delete("/:id", productHandler.Delete)

	// Estadísticas
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/estadisticas", statsHandler.Get)

	app.Use(NotFound)
}

func welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"mensaje": "Bienvenido a la API de la tienda",
		"usuario": GetEmail(c),
		"endpoints": fiber.Map{
			"usuarios":     "/api/usuarios",
			"productos":    "/api/productos",
			"estadisticas": "/api/estadisticas",
			"login":        "/api/auth/login",
			"registro":     "/api/auth/register",
		},
	})
}
