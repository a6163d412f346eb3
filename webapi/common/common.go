// Package common holds the request binding and error mapping shared by every
// route package.
package common

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/pkg/domain"
	"github.com/prosperitycompass/backend/pkg/domain/account"
	"github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/service/auth"
	"github.com/prosperitycompass/backend/pkg/validation"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error any `json:"error" swaggertype:"object"`
}

// StatusFor maps an error to its HTTP status and the value placed under
// "error" in the response body.
func StatusFor(err error) (int, any) {
	var verr *validation.Error
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, verr
	case errors.Is(err, auth.ErrMissingToken):
		return fiber.StatusUnauthorized, "Missing token"
	case errors.Is(err, auth.ErrInvalidToken):
		return fiber.StatusUnauthorized, "Invalid token"
	case errors.Is(err, user.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, user.ErrDuplicateEmail):
		return fiber.StatusBadRequest, "Email already in use"
	case errors.Is(err, account.ErrForbiddenAccount):
		return fiber.StatusForbidden, "Account not found or not yours"
	case errors.Is(err, domain.ErrValidation):
		e := validation.New()
		e.AddForm(err.Error())
		return fiber.StatusBadRequest, e
	case errors.As(err, &ferr):
		return ferr.Code, ferr.Message
	default:
		return fiber.StatusInternalServerError, "Internal Server Error"
	}
}

// ErrorHandler is the fiber error handler for the whole app. Server errors
// are logged; their details never reach the client.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
		}
		return c.Status(status).JSON(ErrorResponse{Error: body})
	}
}

// BindAndValidate decodes the JSON body into T and validates it. Every
// problem is collected into a single *validation.Error. An empty body is
// treated as an empty object.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	verr := validation.New()
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &input); err != nil {
			verr.Decode(err)
			if len(verr.FormErrors) > 0 {
				return nil, verr
			}
		}
	}
	verr.Struct(&input)
	if co, ok := any(&input).(validation.Coercer); ok {
		co.Coerce(verr)
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return &input, nil
}

// BindQuery parses the query string into T using `query` tags and validates it.
func BindQuery[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.QueryParser(&input); err != nil {
		verr := validation.New()
		verr.AddForm("Invalid query string")
		return nil, verr
	}
	if err := validation.Check(&input).Err(); err != nil {
		return nil, err
	}
	return &input, nil
}
