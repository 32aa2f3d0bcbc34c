package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/moodworks/moodlog-backend/internal/config"
	"github.com/moodworks/moodlog-backend/internal/handlers"
	"github.com/moodworks/moodlog-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	moodHandler *handlers.MoodHandler,
	journalHandler *handlers.JournalHandler,
	profileHandler *handlers.ProfileHandler,
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

	// Auth — public, with a stricter limit: 10 req/min per IP
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

	// Protected app surface
	protected := api.Group("/p", middleware.JWTProtected(cfg))

	protected.Get("/moods", moodHandler.List)
	protected.Post("/moods/select", moodHandler.Select)
	protected.Delete("/moods/cooldown", moodHandler.ResetCooldown)

	protected.Post("/journal", journalHandler.Create)
	protected.Get("/journal/days", journalHandler.Days)
	protected.Get("/journal/days/locate", journalHandler.LocateDay)

	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile/image", profileHandler.UpdateImage)
}
