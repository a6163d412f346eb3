package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/pkg/middleware"
	authsvc "github.com/prosperitycompass/backend/pkg/service/auth"
	"github.com/prosperitycompass/backend/webapi/common"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, authn *middleware.Authenticator) {
	app.Post("/auth/signup", Signup(authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Get("/me", middleware.Protected(authn, nil, Me(authSvc)))
}

// Signup registers a user and returns a session token.
// @Summary Sign up
// @Description Create a user and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupInput true "Signup data"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /auth/signup [post]
func Signup(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if err != nil {
			return err
		}
		user, token, err := authSvc.Signup(c.UserContext(), input.Email, input.Name, input.Password)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(SessionResponse{User: user, Token: token})
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if err != nil {
			return err
		}
		user, token, err := authSvc.Login(c.UserContext(), input.Email, input.Password)
		if err != nil {
			return err
		}
		return c.JSON(SessionResponse{User: user, Token: token})
	}
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /me [get]
// @Security Bearer
func Me(authSvc *authsvc.Service) middleware.Handler[struct{}] {
	return func(c *fiber.Ctx, req middleware.AuthenticatedRequest[struct{}]) error {
		user, err := authSvc.CurrentUser(c.UserContext(), req.Identity.UserID)
		if err != nil {
			return err
		}
		return c.JSON(MeResponse{User: user})
	}
}
