package handler

import (
	"context"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/erp/ledger/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentUseCases covers the per-supplier document pool
type DocumentUseCases interface {
	Upload(ctx context.Context, projectID uuid.UUID, supplierID string, files []ledgerapp.UploadFile, progress ledgerapp.ProgressFunc) (*ledgerapp.UploadResult, error)
	LinkToExpense(ctx context.Context, expenseID, documentID uuid.UUID) (*ledgerapp.ExpenseResponse, error)
	LinkToDeposit(ctx context.Context, depositID, documentID uuid.UUID) (*ledgerapp.DepositResponse, error)
	Replace(ctx context.Context, documentID uuid.UUID, file ledgerapp.UploadFile) (*ledgerapp.DocumentResponse, error)
	UndoReplace(ctx context.Context, projectID uuid.UUID) (*ledgerapp.UndoResult, error)
	Delete(ctx context.Context, documentID uuid.UUID) error
	DeleteAll(ctx context.Context, projectID uuid.UUID, supplierID string) (int64, error)
	UpdateNote(ctx context.Context, documentID uuid.UUID, req ledgerapp.UpdateDocumentNoteRequest) (*ledgerapp.DocumentResponse, error)
}

// DeleteAllResponse reports how many documents were removed
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// DocumentHandler handles document pool endpoints
type DocumentHandler struct {
	BaseHandler
	documents DocumentUseCases
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documents DocumentUseCases) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Upload godoc
// @ID           uploadSupplierDocuments
// @Summary      Upload documents to a supplier's pool
// @Description  Files are stored one by one; a failed file is reported and does not stop the batch.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Param        files formData file true "Files"
// @Success      201 {object} APIResponse[ledgerapp.UploadResult]
// @Failure      415 {object} ErrorResponse
// @Router       /projects/{project_id}/suppliers/{supplier_id}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	files, ok := h.formFiles(c, "files")
	if !ok {
		return
	}

	log := logger.L(c.Request.Context())
	result, err := h.documents.Upload(c.Request.Context(), projectID, supplierID, files, func(done, total int) {
		log.Debug("Document batch progress", zap.Int("done", done), zap.Int("total", total))
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// DeleteAll godoc
// @ID           deleteSupplierDocuments
// @Summary      Delete every document in a supplier's pool
// @Tags         documents
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Success      200 {object} APIResponse[DeleteAllResponse]
// @Router       /projects/{project_id}/suppliers/{supplier_id}/documents [delete]
func (h *DocumentHandler) DeleteAll(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}

	n, err := h.documents.DeleteAll(c.Request.Context(), projectID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, DeleteAllResponse{Deleted: n})
}

// UpdateNote godoc
// @ID           updateDocumentNote
// @Summary      Replace a document's note
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Param        request body ledgerapp.UpdateDocumentNoteRequest true "Note"
// @Success      200 {object} APIResponse[ledgerapp.DocumentResponse]
// @Router       /documents/{id}/note [put]
func (h *DocumentHandler) UpdateNote(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid document ID")
	if !ok {
		return
	}
	var req ledgerapp.UpdateDocumentNoteRequest
	if !h.bindJSON(c, &req) {
		return
	}

	doc, err := h.documents.UpdateNote(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// Replace godoc
// @ID           replaceDocument
// @Summary      Replace a document's file
// @Description  The previous file can be restored with undo-replace within a short window.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Param        file formData file true "New file"
// @Success      200 {object} APIResponse[ledgerapp.DocumentResponse]
// @Router       /documents/{id}/replace [post]
func (h *DocumentHandler) Replace(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid document ID")
	if !ok {
		return
	}
	files, ok := h.formFiles(c, "file")
	if !ok {
		return
	}

	doc, err := h.documents.Replace(c.Request.Context(), id, files[0])
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// UndoReplace godoc
// @ID           undoDocumentReplace
// @Summary      Undo the last replace in a project
// @Description  Restores the previous file name and URL when called within the undo window; otherwise restored is false.
// @Tags         documents
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.UndoResult]
// @Router       /projects/{project_id}/documents/undo-replace [post]
func (h *DocumentHandler) UndoReplace(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	result, err := h.documents.UndoReplace(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete godoc
// @ID           deleteDocument
// @Summary      Delete a document from the pool
// @Tags         documents
// @Param        id path string true "Document ID" format(uuid)
// @Success      204
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid document ID")
	if !ok {
		return
	}
	if err := h.documents.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// LinkToExpense godoc
// @ID           linkExpenseDocument
// @Summary      Use a pooled document as an expense's invoice image
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Param        request body ledgerapp.LinkDocumentRequest true "Document"
// @Success      200 {object} APIResponse[ledgerapp.ExpenseResponse]
// @Router       /expenses/{id}/document [put]
func (h *DocumentHandler) LinkToExpense(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid expense ID")
	if !ok {
		return
	}
	var req ledgerapp.LinkDocumentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	expense, err := h.documents.LinkToExpense(c.Request.Context(), id, req.DocumentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// LinkToDeposit godoc
// @ID           linkDepositReceipt
// @Summary      Use a pooled document as a deposit's receipt image
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Deposit ID" format(uuid)
// @Param        request body ledgerapp.LinkDocumentRequest true "Document"
// @Success      200 {object} APIResponse[ledgerapp.DepositResponse]
// @Router       /deposits/{id}/receipt [put]
func (h *DocumentHandler) LinkToDeposit(c *gin.Context) {
	id, ok := h.uuidParam(c, "id", "Invalid deposit ID")
	if !ok {
		return
	}
	var req ledgerapp.LinkDocumentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	deposit, err := h.documents.LinkToDeposit(c.Request.Context(), id, req.DocumentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, deposit)
}
