package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/pkg/commands"
	"github.com/prosperitycompass/backend/pkg/middleware"
	accountsvc "github.com/prosperitycompass/backend/pkg/service/account"
	"github.com/prosperitycompass/backend/webapi/common"
)

// Routes registers account and transaction endpoints. All of them require a
// bearer token.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authn *middleware.Authenticator) {
	app.Get("/accounts", middleware.Protected(authn, nil, ListAccounts(accountSvc)))
	app.Post("/accounts", middleware.Protected(authn, common.BindAndValidate[CreateAccountInput], CreateAccount(accountSvc)))
	app.Get("/transactions", middleware.Protected(authn, common.BindQuery[ListTransactionsQuery], ListTransactions(accountSvc)))
	app.Post("/transactions", middleware.Protected(authn, common.BindAndValidate[CreateTransactionInput], CreateTransaction(accountSvc)))
}

// ListAccounts returns the caller's accounts.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} AccountResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service) middleware.Handler[struct{}] {
	return func(c *fiber.Ctx, req middleware.AuthenticatedRequest[struct{}]) error {
		accounts, err := accountSvc.ListAccounts(c.UserContext(), req.Identity.UserID)
		if err != nil {
			return err
		}
		return c.JSON(accounts)
	}
}

// CreateAccount creates an account owned by the caller.
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountInput true "Account data"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service) middleware.Handler[CreateAccountInput] {
	return func(c *fiber.Ctx, req middleware.AuthenticatedRequest[CreateAccountInput]) error {
		in := req.Payload
		acc, err := accountSvc.CreateAccount(c.UserContext(), req.Identity.UserID, commands.CreateAccount{
			Name:        in.Name,
			Institution: in.Institution,
			Type:        in.Type,
			Subtype:     in.Subtype,
			Mask:        in.Mask,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(acc)
	}
}
