package handlers

import (
	"errors"

	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/core/domain"
	"classhub/internal/core/services"
	"classhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FinanceHandler handles transaction and finance summary endpoints
type FinanceHandler struct {
	transactionRepo *repositories.TransactionRepository
	financeService  *services.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(
	transactionRepo *repositories.TransactionRepository,
	financeService *services.FinanceService,
) *FinanceHandler {
	return &FinanceHandler{
		transactionRepo: transactionRepo,
		financeService:  financeService,
	}
}

// CreateTransactionRequest represents create transaction request
type CreateTransactionRequest struct {
	Date        string                 `json:"date"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Amount      float64                `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	Status      string                 `json:"status"` // optional, defaults to completed
}

// Validate checks required fields and returns per-field problems.
// Amount must be non-negative: the sign of a transaction comes from its
// type, never from the stored value.
func (r *CreateTransactionRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.Date == "" {
		errs["date"] = "date is required"
	}
	if r.Description == "" {
		errs["description"] = "description is required"
	}
	if r.Category == "" {
		errs["category"] = "category is required"
	}
	if r.Amount < 0 {
		errs["amount"] = "amount must not be negative"
	}
	if !domain.ValidTransactionType(r.Type) {
		errs["type"] = "type must be income or expense"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ListTransactions lists all transactions, newest first
// @Summary List transactions
// @Tags Finance
// @Produce json
// @Success 200 {array} domain.Transaction
// @Router /api/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	return response.JSON(c, h.transactionRepo.List())
}

// GetTransaction gets a transaction by ID
func (h *FinanceHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	tx, err := h.transactionRepo.GetByID(id)
	if err != nil {
		return response.NotFound(c, "Transaction not found")
	}
	return response.JSON(c, tx)
}

// CreateTransaction creates a new transaction
// @Summary Create transaction
// @Tags Finance
// @Accept json
// @Produce json
// @Param body body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} response.ErrorBody
// @Router /api/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); errs != nil {
		return response.ValidationError(c, errs)
	}

	status := req.Status
	if status == "" {
		status = "completed"
	}

	tx := h.transactionRepo.Create(domain.Transaction{
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        req.Type,
		Status:      status,
	})
	return response.Created(c, tx)
}

// UpdateTransaction partially updates a transaction
func (h *FinanceHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var patch domain.TransactionPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		return response.ValidationError(c, map[string]string{
			"amount": "amount must not be negative",
		})
	}
	if patch.Type != nil && !domain.ValidTransactionType(*patch.Type) {
		return response.ValidationError(c, map[string]string{
			"type": "type must be income or expense",
		})
	}

	tx, err := h.transactionRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to update transaction")
	}
	return response.JSON(c, tx)
}

// DeleteTransaction deletes a transaction
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.transactionRepo.Delete(id); err != nil {
		return response.NotFound(c, "Transaction not found")
	}
	return response.NoContent(c)
}

// GetFinanceSummary returns the aggregate finance figures
// @Summary Finance summary
// @Tags Finance
// @Produce json
// @Success 200 {object} services.FinanceSummary
// @Router /api/finance-summary [get]
func (h *FinanceHandler) GetFinanceSummary(c *fiber.Ctx) error {
	return response.JSON(c, h.financeService.Summarize())
}
