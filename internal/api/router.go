package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pizzeria-brothers/restaurant-system/internal/api/handler"
	"github.com/pizzeria-brothers/restaurant-system/internal/api/middleware"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
	"github.com/pizzeria-brothers/restaurant-system/pkg/token"
)

// Deps carries everything the router needs. Mongo and Redis may be nil in
// tests; the health routes are then skipped.
type Deps struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Mesas    ports.MesaService
	Tokens   *token.Manager
	UserRepo ports.UserRepository
	Mongo    *mongo.Database
	Redis    *redis.Client
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("restaurant"))

	e.GET("/metrics", echoprometheus.NewHandler())

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	mesaHandler := handler.NewMesaHandler(d.Mesas)

	authRequired := middleware.Auth(d.Tokens, d.UserRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdministrador)

	api := e.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/roles", authHandler.Roles)
	auth.GET("/verify", authHandler.Verify)

	// --- User routes ---
	users := api.Group("/users", authRequired)
	users.GET("/profile", userHandler.GetProfile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.GET("/all", userHandler.ListAll, adminOnly)

	// --- Mesa routes ---
	mesas := api.Group("/mesas", authRequired)
	mesas.GET("", mesaHandler.List)
	mesas.GET("/estadisticas", mesaHandler.Statistics)
	mesas.GET("/ubicacion/:ubicacion", mesaHandler.ByUbicacion)
	mesas.GET("/:id", mesaHandler.Get)
	mesas.PUT("/:id/estado", mesaHandler.ChangeStatus)

	// --- Health probes (no auth required) ---
	if d.Mongo != nil && d.Redis != nil {
		health := handler.NewHealthHandler(d.Mongo, d.Redis)
		api.GET("/health", health.Liveness)
		api.GET("/health/ready", health.Readiness)
	}

	return e
}
