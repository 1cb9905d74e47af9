package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Delivery saga steps
const (
	StepMarkDelivered = "mark_delivered"
)

// PurchaseOrderService manages a project's purchase orders
type PurchaseOrderService struct {
	repos    Repositories
	notifier notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(repos Repositories, publisher ledger.ChangePublisher, logger *zap.Logger) *PurchaseOrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseOrderService{
		repos:    repos,
		notifier: notifier{publisher: publisher, logger: logger},
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the project's orders, newest first
func (s *PurchaseOrderService) List(ctx context.Context, projectID uuid.UUID) ([]PurchaseOrderResponse, error) {
	orders, err := s.repos.Orders.FindByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	out := make([]PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToPurchaseOrderResponse(&orders[i]))
	}
	return out, nil
}

// Create places a pending order with a catalog supplier
func (s *PurchaseOrderService) Create(ctx context.Context, projectID uuid.UUID, req SavePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	order, err := ledger.NewPurchaseOrder(projectID, req.SupplierID, date, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := requireCatalogSupplier(ctx, s.repos.Suppliers, order.SupplierID); err != nil {
		return nil, err
	}
	order.SetLines(req.lines())

	if err := s.repos.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	s.logger.Info("Purchase order created",
		zap.String("project_id", projectID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("supplier_id", order.SupplierID),
		zap.Int("items", len(order.Items)))
	s.notifier.notify(ctx, ledger.TableOrders, projectID)
	s.notifier.notify(ctx, ledger.TableOrderItems, projectID)
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// Update rewrites a pending order's supplier, date, notes and lines
func (s *PurchaseOrderService) Update(ctx context.Context, orderID uuid.UUID, req SavePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsPending() {
		return nil, ledger.ErrOrderNotPending
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	edited, err := ledger.NewPurchaseOrder(order.ProjectID, req.SupplierID, date, req.Notes)
	if err != nil {
		return nil, err
	}
	if edited.SupplierID != order.SupplierID {
		if err := requireCatalogSupplier(ctx, s.repos.Suppliers, edited.SupplierID); err != nil {
			return nil, err
		}
	}
	order.SupplierID = edited.SupplierID
	order.Date = edited.Date
	order.Notes = edited.Notes
	order.SetLines(req.lines())

	if err := s.repos.Orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableOrders, order.ProjectID)
	s.notifier.notify(ctx, ledger.TableOrderItems, order.ProjectID)
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// SetStatus cancels, reopens or delivers an order. Delivering books the
// order as an expense; see Deliver.
func (s *PurchaseOrderService) SetStatus(ctx context.Context, orderID uuid.UUID, req OrderStatusRequest) (*PurchaseOrderResponse, error) {
	status := ledger.PurchaseOrderStatus(req.Status)
	if status == ledger.OrderStatusDelivered {
		result, err := s.Deliver(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return &result.Order, nil
	}

	order, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Transition(status); err != nil {
		return nil, err
	}
	if err := s.repos.Orders.UpdateStatus(ctx, order.ID, order.Status, nil); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableOrders, order.ProjectID)
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// Deliver books a pending order as an expense with one invoice line per
// ordered article, then marks the order delivered. Steps run forward only:
// a failure after the expense insert leaves the expense in place and the
// order pending.
func (s *PurchaseOrderService) Deliver(ctx context.Context, orderID uuid.UUID) (*DeliveryResult, error) {
	order, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	expense, items, err := order.Delivery(s.now())
	if err != nil {
		return nil, err
	}
	if err := requireCatalogSupplier(ctx, s.repos.Suppliers, order.SupplierID); err != nil {
		return nil, err
	}

	saga := NewSaga("order_delivery", s.logger)
	if err := saga.Run(ctx, StepInsertExpense, func(ctx context.Context) error {
		return s.repos.Expenses.Create(ctx, expense)
	}); err != nil {
		return nil, err
	}
	s.notifier.notify(ctx, ledger.TableExpenses, order.ProjectID)

	if err := saga.Run(ctx, StepInsertItems, func(ctx context.Context) error {
		if len(items) == 0 {
			return nil
		}
		return s.repos.Expenses.CreateItems(ctx, items)
	}); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		s.notifier.notify(ctx, ledger.TableInvoiceItems, order.ProjectID)
	}

	if err := saga.Run(ctx, StepMarkDelivered, func(ctx context.Context) error {
		return s.repos.Orders.UpdateStatus(ctx, order.ID, ledger.OrderStatusDelivered, &expense.ID)
	}); err != nil {
		return nil, err
	}
	order.MarkDelivered(expense.ID)
	s.notifier.notify(ctx, ledger.TableOrders, order.ProjectID)

	s.logger.Info("Purchase order delivered",
		zap.String("order_id", order.ID.String()),
		zap.String("expense_id", expense.ID.String()),
		zap.Int("items", len(items)))

	expense.Items = items
	return &DeliveryResult{
		Order:   ToPurchaseOrderResponse(order),
		Expense: ToExpenseResponse(expense),
		Steps:   saga.Completed(),
	}, nil
}

// Delete removes an order and its lines. An expense booked by a delivery stays.
func (s *PurchaseOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.repos.Orders.Delete(ctx, order.ID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.notifier.notify(ctx, ledger.TableOrders, order.ProjectID)
	s.notifier.notify(ctx, ledger.TableOrderItems, order.ProjectID)
	return nil
}
