package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/pkg/commands"
	"github.com/prosperitycompass/backend/pkg/middleware"
	"github.com/prosperitycompass/backend/pkg/queries"
	accountsvc "github.com/prosperitycompass/backend/pkg/service/account"
)

// ListTransactions returns up to 100 of the caller's transactions, newest first.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param accountId query string false "Account ID"
// @Success 200 {array} TransactionResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /transactions [get]
// @Security Bearer
func ListTransactions(accountSvc *accountsvc.Service) middleware.Handler[ListTransactionsQuery] {
	return func(c *fiber.Ctx, req middleware.AuthenticatedRequest[ListTransactionsQuery]) error {
		txs, err := accountSvc.ListTransactions(c.UserContext(), queries.ListTransactions{
			UserID:    req.Identity.UserID,
			AccountID: req.Payload.AccountID,
		})
		if err != nil {
			return err
		}
		return c.JSON(txs)
	}
}

// CreateTransaction records a transaction on one of the caller's accounts.
// @Summary Create transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionInput true "Transaction data"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Router /transactions [post]
// @Security Bearer
func CreateTransaction(accountSvc *accountsvc.Service) middleware.Handler[CreateTransactionInput] {
	return func(c *fiber.Ctx, req middleware.AuthenticatedRequest[CreateTransactionInput]) error {
		in := req.Payload
		tx, err := accountSvc.CreateTransaction(c.UserContext(), req.Identity.UserID, commands.CreateTransaction{
			AccountID: in.AccountID,
			PostedAt:  in.PostedAt,
			Amount:    in.Amount,
			Pending:   in.Pending != nil && *in.Pending,
			Merchant:  in.Merchant,
			Category:  in.Category,
			Note:      in.Note,
		})
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(tx)
	}
}
