package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/yayazuqui-hub/court-priority-play/internal/config"
	"github.com/yayazuqui-hub/court-priority-play/internal/handlers"
	"github.com/yayazuqui-hub/court-priority-play/internal/middleware"
	"github.com/yayazuqui-hub/court-priority-play/internal/realtime"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	hub *realtime.Hub,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	stateHandler *handlers.StateHandler,
	queueHandler *handlers.QueueHandler,
	bookingHandler *handlers.BookingHandler,
	teamHandler *handlers.TeamHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Realtime change feed: wake-up events only, clients re-fetch on signal
	api.Get("/ws", handlers.WebSocketUpgrade, handlers.Realtime(hub))

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so it cannot leak onto the public auth endpoints
	jwt := middleware.JWTProtected(cfg)

	api.Get("/profile", jwt, profileHandler.Get)
	api.Put("/profile", jwt, profileHandler.Update)

	api.Get("/state", jwt, stateHandler.Get)

	api.Get("/queue", jwt, queueHandler.List)
	api.Post("/queue/join", jwt, queueHandler.Join)
	api.Delete("/queue/leave", jwt, queueHandler.Leave)

	api.Get("/bookings", jwt, bookingHandler.List)
	api.Get("/bookings/eligibility", jwt, bookingHandler.Eligibility)
	api.Post("/bookings", jwt, bookingHandler.Create)
	api.Delete("/bookings/:id", jwt, bookingHandler.Delete)

	// Admin surface (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Put("/state/mode", stateHandler.SetMode)
	admin.Post("/state/timer/start", stateHandler.StartTimer)
	admin.Post("/state/timer/reset", stateHandler.ResetTimer)
	admin.Delete("/queue", queueHandler.Clear)
	admin.Get("/profiles", profileHandler.ListAll)
	admin.Post("/bookings", bookingHandler.ManualCreate)
	admin.Delete("/bookings/:id", bookingHandler.Delete)
	admin.Post("/teams/generate", teamHandler.Generate)
}
