package handler

import (
	"context"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerLoader rebuilds a project's ledger view
type LedgerLoader interface {
	Load(ctx context.Context, projectID uuid.UUID) (*ledgerapp.LedgerView, error)
}

// GeneralNoteWriter stores a project's general note
type GeneralNoteWriter interface {
	SaveGeneralNote(ctx context.Context, projectID uuid.UUID, req ledgerapp.GeneralNoteRequest) error
}

// LedgerHandler serves the project ledger view
type LedgerHandler struct {
	BaseHandler
	ledger LedgerLoader
	notes  GeneralNoteWriter
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledger LedgerLoader, notes GeneralNoteWriter) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, notes: notes}
}

// Load godoc
// @ID           getProjectLedger
// @Summary      Load a project ledger
// @Description  Visible suppliers with their expenses, deposits, documents and reconciled summaries, plus the archived list, the global summary and the general note
// @Tags         ledger
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.LedgerView]
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /projects/{project_id}/ledger [get]
func (h *LedgerHandler) Load(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	view, err := h.ledger.Load(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, view)
}

// SaveGeneralNote godoc
// @ID           putProjectGeneralNote
// @Summary      Replace the general note
// @Tags         ledger
// @Accept       json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        request body ledgerapp.GeneralNoteRequest true "Note"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Router       /projects/{project_id}/general-note [put]
func (h *LedgerHandler) SaveGeneralNote(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	var req ledgerapp.GeneralNoteRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.notes.SaveGeneralNote(c.Request.Context(), projectID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
