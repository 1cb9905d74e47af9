package handler

import (
	"context"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntryUseCases covers expense and deposit records
type EntryUseCases interface {
	ListExpenses(ctx context.Context, projectID uuid.UUID, supplierID string, query ledgerapp.ExpenseListQuery) ([]ledgerapp.ExpenseResponse, error)
	CreateExpense(ctx context.Context, projectID uuid.UUID, supplierID string, req ledgerapp.SaveExpenseRequest) (*ledgerapp.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, expenseID uuid.UUID, req ledgerapp.SaveExpenseRequest) (*ledgerapp.ExpenseResponse, error)
	SetExpenseStatus(ctx context.Context, expenseID uuid.UUID, req ledgerapp.UpdateStatusRequest) (*ledgerapp.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, expenseID uuid.UUID) error
	CreateDeposit(ctx context.Context, projectID uuid.UUID, supplierID string, req ledgerapp.SaveDepositRequest) (*ledgerapp.DepositResponse, error)
	UpdateDeposit(ctx context.Context, depositID uuid.UUID, req ledgerapp.SaveDepositRequest) (*ledgerapp.DepositResponse, error)
	DeleteDeposit(ctx context.Context, depositID uuid.UUID) error
}

// EntryHandler handles expense and deposit endpoints
type EntryHandler struct {
	BaseHandler
	entries EntryUseCases
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entries EntryUseCases) *EntryHandler {
	return &EntryHandler{entries: entries}
}

// ListExpenses godoc
// @ID           listSupplierExpenses
// @Summary      List a supplier's expenses in a project
// @Tags         expenses
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Param        status query string false "all, pending or paid"
// @Param        sort_by query string false "date or price"
// @Param        order query string false "asc or desc"
// @Success      200 {object} APIResponse[[]ledgerapp.ExpenseResponse]
// @Router       /projects/{project_id}/suppliers/{supplier_id}/expenses [get]
func (h *EntryHandler) ListExpenses(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	var query ledgerapp.ExpenseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	expenses, err := h.entries.ListExpenses(c.Request.Context(), projectID, supplierID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, expenses, len(expenses))
}

// CreateExpense godoc
// @ID           createExpense
// @Summary      Record a single-line expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Param        request body ledgerapp.SaveExpenseRequest true "Expense"
// @Success      201 {object} APIResponse[ledgerapp.ExpenseResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /projects/{project_id}/suppliers/{supplier_id}/expenses [post]
func (h *EntryHandler) CreateExpense(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	var req ledgerapp.SaveExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	expense, err := h.entries.CreateExpense(c.Request.Context(), projectID, supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// UpdateExpense godoc
// @ID           updateExpense
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Param        request body ledgerapp.SaveExpenseRequest true "Expense"
// @Success      200 {object} APIResponse[ledgerapp.ExpenseResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /expenses/{id} [put]
func (h *EntryHandler) UpdateExpense(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid expense ID")
	if !ok {
		return
	}
	var req ledgerapp.SaveExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	expense, err := h.entries.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// SetExpenseStatus godoc
// @ID           setExpenseStatus
// @Summary      Mark an expense paid or pending
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Param        request body ledgerapp.UpdateStatusRequest true "Status"
// @Success      200 {object} APIResponse[ledgerapp.ExpenseResponse]
// @Router       /expenses/{id}/status [patch]
func (h *EntryHandler) SetExpenseStatus(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid expense ID")
	if !ok {
		return
	}
	var req ledgerapp.UpdateStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	expense, err := h.entries.SetExpenseStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// DeleteExpense godoc
// @ID           deleteExpense
// @Summary      Delete an expense and its line items
// @Tags         expenses
// @Param        id path string true "Expense ID" format(uuid)
// @Success      204
// @Router       /expenses/{id} [delete]
func (h *EntryHandler) DeleteExpense(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid expense ID")
	if !ok {
		return
	}
	if err := h.entries.DeleteExpense(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateDeposit godoc
// @ID           createDeposit
// @Summary      Record a deposit paid to a supplier
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Param        request body ledgerapp.SaveDepositRequest true "Deposit"
// @Success      201 {object} APIResponse[ledgerapp.DepositResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /projects/{project_id}/suppliers/{supplier_id}/deposits [post]
func (h *EntryHandler) CreateDeposit(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	var req ledgerapp.SaveDepositRequest
	if !h.bindJSON(c, &req) {
		return
	}

	deposit, err := h.entries.CreateDeposit(c.Request.Context(), projectID, supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, deposit)
}

// UpdateDeposit godoc
// @ID           updateDeposit
// @Summary      Update a deposit
// @Tags         deposits
// @Accept       json
// @Produce      json
// @Param        id path string true "Deposit ID" format(uuid)
// @Param        request body ledgerapp.SaveDepositRequest true "Deposit"
// @Success      200 {object} APIResponse[ledgerapp.DepositResponse]
// @Router       /deposits/{id} [put]
func (h *EntryHandler) UpdateDeposit(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid deposit ID")
	if !ok {
		return
	}
	var req ledgerapp.SaveDepositRequest
	if !h.bindJSON(c, &req) {
		return
	}

	deposit, err := h.entries.UpdateDeposit(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, deposit)
}

// DeleteDeposit godoc
// @ID           deleteDeposit
// @Summary      Delete a deposit
// @Tags         deposits
// @Param        id path string true "Deposit ID" format(uuid)
// @Success      204
// @Router       /deposits/{id} [delete]
func (h *EntryHandler) DeleteDeposit(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid deposit ID")
	if !ok {
		return
	}
	if err := h.entries.DeleteDeposit(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
