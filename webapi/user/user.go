package user

import (
	"github.com/gofiber/fiber/v2"
	usersvc "github.com/prosperitycompass/backend/pkg/service/user"
	"github.com/prosperitycompass/backend/webapi/common"
)

// Routes registers the public demo user endpoints.
func Routes(app *fiber.App, userSvc *usersvc.Service) {
	app.Get("/users", ListUsers(userSvc))
	app.Post("/users", CreateUser(userSvc))
}

// ListUsers returns every user, newest first.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.ListUsers(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(users)
	}
}

// CreateUser creates a new user account.
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} common.ErrorResponse
// @Router /users [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if err != nil {
			return err
		}
		user, err := userSvc.CreateUser(c.UserContext(), input.Email, input.Name, input.Password)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}
