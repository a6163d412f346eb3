package coach

import (
	"github.com/gofiber/fiber/v2"
	coachsvc "github.com/prosperitycompass/backend/pkg/service/coach"
	"github.com/prosperitycompass/backend/webapi/common"
)

// ChatInput represents the request body for the money coach.
type ChatInput struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatResponse carries the coach's answer.
type ChatResponse struct {
	Reply string `json:"reply"`
}

func Routes(app *fiber.App, coachSvc *coachsvc.Service) {
	app.Post("/ai/chat", Chat(coachSvc))
}

// Chat answers a money question with a canned tip.
// @Summary Money coach
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatInput true "Question"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /ai/chat [post]
func Chat(coachSvc *coachsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ChatInput](c)
		if err != nil {
			return err
		}
		return c.JSON(ChatResponse{Reply: coachSvc.Reply(c.UserContext(), input.Message)})
	}
}
