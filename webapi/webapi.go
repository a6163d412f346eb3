// Package webapi provides HTTP handlers and API endpoints for the Prosperity
// Compass backend. It is organized into sub-packages for different domains:
//   - account: Account and transaction endpoints
//   - auth: Signup, login and current user
//   - user: Public demo user endpoints
//   - coach: Canned money tips
//   - health: Liveness
package webapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prosperitycompass/backend/pkg/app"
	"github.com/prosperitycompass/backend/pkg/config"
	accountweb "github.com/prosperitycompass/backend/webapi/account"
	authweb "github.com/prosperitycompass/backend/webapi/auth"
	coachweb "github.com/prosperitycompass/backend/webapi/coach"
	"github.com/prosperitycompass/backend/webapi/common"
	healthweb "github.com/prosperitycompass/backend/webapi/health"
	userweb "github.com/prosperitycompass/backend/webapi/user"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName:      healthweb.ServiceName,
		ErrorHandler: common.ErrorHandler(app.Deps.Logger),
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} ${method} ${path} ${latency}\n",
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		TimeZone:   "UTC",
	}))
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(app.Config.Cors.Origins(), ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	if rl := app.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use("/auth", authLimiter(rl))
	}

	healthweb.Routes(fiberApp)
	authweb.Routes(fiberApp, app.AuthService, app.Authenticator)
	userweb.Routes(fiberApp, app.UserService)
	accountweb.Routes(fiberApp, app.AccountService, app.Authenticator)
	coachweb.Routes(fiberApp, app.CoachService)
	return fiberApp
}

func authLimiter(cfg *config.RateLimit) fiber.Handler {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        cfg.MaxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(common.ErrorResponse{Error: "Too Many Requests"})
		},
	})
}
