package handler

import (
	"context"
	"encoding/json"
	"net/http"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// InvoiceUseCases drives the invoice wizard
type InvoiceUseCases interface {
	Start(ctx context.Context, projectID uuid.UUID) (*ledgerapp.WizardResponse, error)
	Get(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.WizardResponse, error)
	ChooseMode(ctx context.Context, wizardID uuid.UUID, req ledgerapp.ChooseModeRequest) (*ledgerapp.WizardResponse, error)
	SetHeader(ctx context.Context, wizardID uuid.UUID, req ledgerapp.InvoiceHeaderRequest) (*ledgerapp.WizardResponse, error)
	Attach(ctx context.Context, wizardID uuid.UUID, file ledgerapp.UploadFile) (*ledgerapp.WizardResponse, error)
	Advance(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.WizardResponse, error)
	Back(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.WizardResponse, error)
	SetItems(ctx context.Context, wizardID uuid.UUID, req ledgerapp.SetItemsRequest) (*ledgerapp.WizardResponse, error)
	Abort(ctx context.Context, wizardID uuid.UUID) error
	Commit(ctx context.Context, wizardID uuid.UUID) (*ledgerapp.CommitResult, error)
	CreateInvoice(ctx context.Context, projectID uuid.UUID, req ledgerapp.CreateInvoiceRequest, attachment *ledgerapp.UploadFile) (*ledgerapp.CommitResult, error)
}

// InvoiceHandler handles the invoice wizard endpoints
type InvoiceHandler struct {
	BaseHandler
	invoices InvoiceUseCases
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices InvoiceUseCases) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

func (h *InvoiceHandler) wizardID(c *gin.Context) (uuid.UUID, bool) {
	return h.uuidParam(c, "wizard_id", "Invalid wizard ID")
}

// respond writes a wizard step result
func (h *InvoiceHandler) respond(c *gin.Context, w *ledgerapp.WizardResponse, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, w)
}

// Start godoc
// @ID           startInvoiceWizard
// @Summary      Start an invoice wizard
// @Tags         invoices
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Success      201 {object} APIResponse[ledgerapp.WizardResponse]
// @Router       /projects/{project_id}/invoice-wizards [post]
func (h *InvoiceHandler) Start(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	w, err := h.invoices.Start(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, w)
}

// Get godoc
// @ID           getInvoiceWizard
// @Summary      Get an invoice wizard's state
// @Tags         invoices
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /invoice-wizards/{wizard_id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	w, err := h.invoices.Get(c.Request.Context(), id)
	h.respond(c, w, err)
}

// ChooseMode godoc
// @ID           chooseInvoiceWizardMode
// @Summary      Choose manual or AI entry
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Param        request body ledgerapp.ChooseModeRequest true "Mode"
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /invoice-wizards/{wizard_id}/mode [post]
func (h *InvoiceHandler) ChooseMode(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	var req ledgerapp.ChooseModeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	w, err := h.invoices.ChooseMode(c.Request.Context(), id, req)
	h.respond(c, w, err)
}

// SetHeader godoc
// @ID           setInvoiceWizardHeader
// @Summary      Enter the invoice header
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Param        request body ledgerapp.InvoiceHeaderRequest true "Header"
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Router       /invoice-wizards/{wizard_id}/header [put]
func (h *InvoiceHandler) SetHeader(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	var req ledgerapp.InvoiceHeaderRequest
	if !h.bindJSON(c, &req) {
		return
	}
	w, err := h.invoices.SetHeader(c.Request.Context(), id, req)
	h.respond(c, w, err)
}

// Attach godoc
// @ID           attachInvoiceWizardFile
// @Summary      Attach the invoice scan
// @Tags         invoices
// @Accept       multipart/form-data
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Param        file formData file true "Invoice scan"
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Router       /invoice-wizards/{wizard_id}/attachment [post]
func (h *InvoiceHandler) Attach(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	files, ok := h.formFiles(c, "file")
	if !ok {
		return
	}
	w, err := h.invoices.Attach(c.Request.Context(), id, files[0])
	h.respond(c, w, err)
}

// Advance godoc
// @ID           advanceInvoiceWizard
// @Summary      Move the wizard to its next step
// @Tags         invoices
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /invoice-wizards/{wizard_id}/advance [post]
func (h *InvoiceHandler) Advance(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	w, err := h.invoices.Advance(c.Request.Context(), id)
	h.respond(c, w, err)
}

// Back godoc
// @ID           backInvoiceWizard
// @Summary      Move the wizard back one step
// @Tags         invoices
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Router       /invoice-wizards/{wizard_id}/back [post]
func (h *InvoiceHandler) Back(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	w, err := h.invoices.Back(c.Request.Context(), id)
	h.respond(c, w, err)
}

// SetItems godoc
// @ID           setInvoiceWizardItems
// @Summary      Replace the invoice line items
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Param        request body ledgerapp.SetItemsRequest true "Line items"
// @Success      200 {object} APIResponse[ledgerapp.WizardResponse]
// @Router       /invoice-wizards/{wizard_id}/items [put]
func (h *InvoiceHandler) SetItems(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	var req ledgerapp.SetItemsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	w, err := h.invoices.SetItems(c.Request.Context(), id, req)
	h.respond(c, w, err)
}

// Commit godoc
// @ID           commitInvoiceWizard
// @Summary      Create the expense, its line items and the stored scan
// @Description  A failed step after the expense insert reports the completed steps; nothing is rolled back.
// @Tags         invoices
// @Produce      json
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Success      201 {object} APIResponse[ledgerapp.CommitResult]
// @Failure      502 {object} ErrorResponse
// @Router       /invoice-wizards/{wizard_id}/commit [post]
func (h *InvoiceHandler) Commit(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	result, err := h.invoices.Commit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Abort godoc
// @ID           abortInvoiceWizard
// @Summary      Discard an invoice wizard
// @Tags         invoices
// @Param        wizard_id path string true "Wizard ID" format(uuid)
// @Success      204
// @Router       /invoice-wizards/{wizard_id} [delete]
func (h *InvoiceHandler) Abort(c *gin.Context) {
	id, ok := h.wizardID(c)
	if !ok {
		return
	}
	if err := h.invoices.Abort(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateInvoice godoc
// @ID           createInvoice
// @Summary      Create an invoice in one request
// @Description  JSON body, or multipart with the JSON in field "payload" and the scan in field "attachment".
// @Tags         invoices
// @Accept       json,mpfd
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        request body ledgerapp.CreateInvoiceRequest false "Invoice"
// @Success      201 {object} APIResponse[ledgerapp.CommitResult]
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /projects/{project_id}/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	var req ledgerapp.CreateInvoiceRequest
	var attachment *ledgerapp.UploadFile
	if c.ContentType() == "multipart/form-data" {
		if err := json.Unmarshal([]byte(c.PostForm("payload")), &req); err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Field payload must hold the invoice JSON")
			return
		}
		if err := binding.Validator.ValidateStruct(&req); err != nil {
			h.ValidationError(c, err)
			return
		}
		if attachment, ok = h.optionalFormFile(c, "attachment"); !ok {
			return
		}
	} else if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.invoices.CreateInvoice(c.Request.Context(), projectID, req, attachment)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
