package handler

import (
	"context"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SupplierUseCases is the supplier lifecycle as seen by the API
type SupplierUseCases interface {
	AddSupplier(ctx context.Context, projectID uuid.UUID, req ledgerapp.AddSupplierRequest) (*ledgerapp.SupplierResponse, error)
	Link(ctx context.Context, projectID uuid.UUID, supplierID string) (*ledgerapp.LinkResult, error)
	Archive(ctx context.Context, projectID uuid.UUID, supplierID string) (*ledgerapp.ArchiveResult, error)
	Restore(ctx context.Context, projectID uuid.UUID, supplierID string) (*ledgerapp.RestoreResult, error)
	GlobalDelete(ctx context.Context, supplierID string, req ledgerapp.DeleteSupplierRequest) error
	Reorder(ctx context.Context, projectID uuid.UUID, req ledgerapp.ReorderRequest) (*ledgerapp.OrderResponse, error)
	UpdateDetails(ctx context.Context, supplierID string, req ledgerapp.UpdateSupplierRequest) (*ledgerapp.SupplierResponse, error)
	UpdateNotes(ctx context.Context, supplierID string, req ledgerapp.UpdateNotesRequest) (*ledgerapp.SupplierResponse, error)
	ListDeleted(ctx context.Context) ([]ledgerapp.SupplierResponse, error)
	GlobalRestore(ctx context.Context, supplierID string) (*ledgerapp.SupplierResponse, error)
}

// SupplierHandler handles supplier-related API endpoints
type SupplierHandler struct {
	BaseHandler
	suppliers SupplierUseCases
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(suppliers SupplierUseCases) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Add godoc
// @ID           addProjectSupplier
// @Summary      Add a supplier to a project
// @Description  Creates the catalog supplier if its slug is new, then links it to the project
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        request body ledgerapp.AddSupplierRequest true "Supplier"
// @Success      201 {object} APIResponse[ledgerapp.SupplierResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /projects/{project_id}/suppliers [post]
func (h *SupplierHandler) Add(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	var req ledgerapp.AddSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.suppliers.AddSupplier(c.Request.Context(), projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}

// Link godoc
// @ID           linkProjectSupplier
// @Summary      Link a catalog supplier to a project
// @Description  Linking twice is not an error. When the write fails the supplier stays visible for the session and persisted is false.
// @Tags         suppliers
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Success      200 {object} APIResponse[ledgerapp.LinkResult]
// @Router       /projects/{project_id}/suppliers/{supplier_id}/link [post]
func (h *SupplierHandler) Link(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}

	result, err := h.suppliers.Link(c.Request.Context(), projectID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Archive godoc
// @ID           archiveProjectSupplier
// @Summary      Archive a supplier in a project
// @Description  Soft-deletes the supplier's expenses, deposits and link. A partial failure reports the completed steps.
// @Tags         suppliers
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Success      200 {object} APIResponse[ledgerapp.ArchiveResult]
// @Failure      502 {object} ErrorResponse
// @Router       /projects/{project_id}/suppliers/{supplier_id}/archive [post]
func (h *SupplierHandler) Archive(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}

	result, err := h.suppliers.Archive(c.Request.Context(), projectID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Restore godoc
// @ID           restoreProjectSupplier
// @Summary      Restore an archived supplier
// @Description  Each restore write is attempted; failures are listed and do not stop the others.
// @Tags         suppliers
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID"
// @Success      200 {object} APIResponse[ledgerapp.RestoreResult]
// @Router       /projects/{project_id}/suppliers/{supplier_id}/restore [post]
func (h *SupplierHandler) Restore(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}

	result, err := h.suppliers.Restore(c.Request.Context(), projectID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Reorder godoc
// @ID           reorderProjectSuppliers
// @Summary      Set the display order of a project's suppliers
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        request body ledgerapp.ReorderRequest true "Ordered supplier IDs"
// @Success      200 {object} APIResponse[ledgerapp.OrderResponse]
// @Router       /projects/{project_id}/suppliers/order [put]
func (h *SupplierHandler) Reorder(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	var req ledgerapp.ReorderRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.suppliers.Reorder(c.Request.Context(), projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateDetails godoc
// @ID           updateSupplier
// @Summary      Update a supplier's details
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        supplier_id path string true "Supplier ID"
// @Param        request body ledgerapp.UpdateSupplierRequest true "Details"
// @Success      200 {object} APIResponse[ledgerapp.SupplierResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /suppliers/{supplier_id} [put]
func (h *SupplierHandler) UpdateDetails(c *gin.Context) {
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	var req ledgerapp.UpdateSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.suppliers.UpdateDetails(c.Request.Context(), supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// UpdateNotes godoc
// @ID           updateSupplierNotes
// @Summary      Replace a supplier's notes
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        supplier_id path string true "Supplier ID"
// @Param        request body ledgerapp.UpdateNotesRequest true "Notes"
// @Success      200 {object} APIResponse[ledgerapp.SupplierResponse]
// @Router       /suppliers/{supplier_id}/notes [put]
func (h *SupplierHandler) UpdateNotes(c *gin.Context) {
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	var req ledgerapp.UpdateNotesRequest
	if !h.bindJSON(c, &req) {
		return
	}

	supplier, err := h.suppliers.UpdateNotes(c.Request.Context(), supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// Delete godoc
// @ID           deleteSupplier
// @Summary      Delete a supplier from the catalog
// @Description  Requires the supplier's exact name as confirmation. Projects keep their records.
// @Tags         suppliers
// @Accept       json
// @Param        supplier_id path string true "Supplier ID"
// @Param        request body ledgerapp.DeleteSupplierRequest true "Confirmation"
// @Success      204
// @Failure      422 {object} ErrorResponse
// @Router       /suppliers/{supplier_id} [delete]
func (h *SupplierHandler) Delete(c *gin.Context) {
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}
	var req ledgerapp.DeleteSupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.suppliers.GlobalDelete(c.Request.Context(), supplierID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListDeleted godoc
// @ID           listDeletedSuppliers
// @Summary      List suppliers deleted from the catalog
// @Tags         suppliers
// @Produce      json
// @Success      200 {object} APIResponse[[]ledgerapp.SupplierResponse]
// @Router       /suppliers/deleted [get]
func (h *SupplierHandler) ListDeleted(c *gin.Context) {
	suppliers, err := h.suppliers.ListDeleted(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, suppliers, len(suppliers))
}

// RestoreDeleted godoc
// @ID           restoreDeletedSupplier
// @Summary      Restore a supplier deleted from the catalog
// @Description  The supplier reappears in every project that still links it
// @Tags         suppliers
// @Produce      json
// @Param        supplier_id path string true "Supplier ID"
// @Success      200 {object} APIResponse[ledgerapp.SupplierResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /suppliers/{supplier_id}/restore [post]
func (h *SupplierHandler) RestoreDeleted(c *gin.Context) {
	supplierID, ok := h.supplierID(c)
	if !ok {
		return
	}

	supplier, err := h.suppliers.GlobalRestore(c.Request.Context(), supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}
