package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "prosperity-compass-backend"

// Response is the health check body.
type Response struct {
	OK      bool      `json:"ok"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}

func Routes(app *fiber.App) {
	app.Get("/health", Check)
}

// Check reports liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Check(c *fiber.Ctx) error {
	return c.JSON(Response{OK: true, Service: ServiceName, Time: time.Now().UTC()})
}
