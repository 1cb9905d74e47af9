package handler

import (
	"context"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseOrderUseCases is the purchase order workflow as seen by the API
type PurchaseOrderUseCases interface {
	List(ctx context.Context, projectID uuid.UUID) ([]ledgerapp.PurchaseOrderResponse, error)
	Create(ctx context.Context, projectID uuid.UUID, req ledgerapp.SavePurchaseOrderRequest) (*ledgerapp.PurchaseOrderResponse, error)
	Update(ctx context.Context, orderID uuid.UUID, req ledgerapp.SavePurchaseOrderRequest) (*ledgerapp.PurchaseOrderResponse, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, req ledgerapp.OrderStatusRequest) (*ledgerapp.PurchaseOrderResponse, error)
	Deliver(ctx context.Context, orderID uuid.UUID) (*ledgerapp.DeliveryResult, error)
	Delete(ctx context.Context, orderID uuid.UUID) error
}

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orders PurchaseOrderUseCases
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orders PurchaseOrderUseCases) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orders: orders}
}

func (h *PurchaseOrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	return h.uuidParam(c, "id", "Invalid order ID")
}

// List godoc
// @ID           listPurchaseOrders
// @Summary      List a project's purchase orders
// @Tags         orders
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[[]ledgerapp.PurchaseOrderResponse]
// @Router       /projects/{project_id}/orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	orders, err := h.orders.List(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, orders, len(orders))
}

// Create godoc
// @ID           createPurchaseOrder
// @Summary      Place a purchase order
// @Description  Lines without an article name are dropped
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        request body ledgerapp.SavePurchaseOrderRequest true "Order"
// @Success      201 {object} APIResponse[ledgerapp.PurchaseOrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /projects/{project_id}/orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	var req ledgerapp.SavePurchaseOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.orders.Create(c.Request.Context(), projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// Update godoc
// @ID           updatePurchaseOrder
// @Summary      Edit a pending purchase order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body ledgerapp.SavePurchaseOrderRequest true "Order"
// @Success      200 {object} APIResponse[ledgerapp.PurchaseOrderResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /orders/{id} [put]
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}
	var req ledgerapp.SavePurchaseOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.orders.Update(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// SetStatus godoc
// @ID           setPurchaseOrderStatus
// @Summary      Cancel, reopen or deliver an order
// @Description  Delivered books the order as an expense and is final
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Param        request body ledgerapp.OrderStatusRequest true "Status"
// @Success      200 {object} APIResponse[ledgerapp.PurchaseOrderResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /orders/{id}/status [patch]
func (h *PurchaseOrderHandler) SetStatus(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}
	var req ledgerapp.OrderStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Deliver godoc
// @ID           deliverPurchaseOrder
// @Summary      Book a delivered order as an expense
// @Description  Inserts the expense, then one invoice line per ordered article, then marks the order delivered. A partial failure reports the completed steps.
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.DeliveryResult]
// @Failure      422 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /orders/{id}/deliver [post]
func (h *PurchaseOrderHandler) Deliver(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	result, err := h.orders.Deliver(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete godoc
// @ID           deletePurchaseOrder
// @Summary      Delete a purchase order
// @Description  An expense booked by a delivery is kept
// @Tags         orders
// @Param        id path string true "Order ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
