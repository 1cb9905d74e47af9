package ledger

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places money is kept at
const MoneyPlaces = 3

// RoundMoney rounds d to the ledger's currency precision
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ReconciliationMode decides how a supplier's paid amount is measured.
// It is a closed union: DepositMode or StatusMode.
type ReconciliationMode interface {
	// Paid returns the amount considered paid under this mode
	Paid() decimal.Decimal
	// Name returns "deposit" or "status"
	Name() string
	isReconciliationMode()
}

// DepositMode applies when a supplier has at least one deposit.
// Paid is the deposit total and expense statuses are ignored.
type DepositMode struct {
	Total decimal.Decimal
}

func (m DepositMode) Paid() decimal.Decimal { return m.Total }
func (DepositMode) Name() string            { return "deposit" }
func (DepositMode) isReconciliationMode()   {}

// StatusMode applies when a supplier has no deposits.
// Paid is the price sum of expenses marked paid.
type StatusMode struct {
	PaidTotal decimal.Decimal
}

func (m StatusMode) Paid() decimal.Decimal { return m.PaidTotal }
func (StatusMode) Name() string            { return "status" }
func (StatusMode) isReconciliationMode()   {}

// ModeFor picks the reconciliation mode for one supplier's records
func ModeFor(expenses []Expense, deposits []Deposit) ReconciliationMode {
	if len(deposits) > 0 {
		total := decimal.Zero
		for _, d := range deposits {
			total = total.Add(d.Amount)
		}
		return DepositMode{Total: RoundMoney(total)}
	}
	paid := decimal.Zero
	for _, e := range expenses {
		if e.IsPaid() {
			paid = paid.Add(e.Price)
		}
	}
	return StatusMode{PaidTotal: RoundMoney(paid)}
}

// SupplierSummary is the reconciled position of one supplier.
// Remaining is paid minus cost: negative is a debt, positive a credit.
type SupplierSummary struct {
	SupplierID string
	TotalCost  decimal.Decimal
	TotalPaid  decimal.Decimal
	Remaining  decimal.Decimal
	Mode       ReconciliationMode
}

// IsCredit reports whether more was paid than billed
func (s SupplierSummary) IsCredit() bool {
	return s.Remaining.IsPositive()
}

// GlobalSummary aggregates every supplier of a project.
// TotalRemaining only sums debts; credits never offset other suppliers' debts.
type GlobalSummary struct {
	GrandTotal     decimal.Decimal
	TotalPaid      decimal.Decimal
	TotalRemaining decimal.Decimal
}

// Reconciliation is the output of one aggregation pass
type Reconciliation struct {
	Suppliers map[string]SupplierSummary
	Global    GlobalSummary
}

// Summarize reconciles one supplier. Deleted records must be filtered out by the caller.
func Summarize(supplierID string, expenses []Expense, deposits []Deposit) SupplierSummary {
	cost := decimal.Zero
	for _, e := range expenses {
		cost = cost.Add(e.Price)
	}
	cost = RoundMoney(cost)
	mode := ModeFor(expenses, deposits)
	paid := mode.Paid()
	return SupplierSummary{
		SupplierID: supplierID,
		TotalCost:  cost,
		TotalPaid:  paid,
		Remaining:  paid.Sub(cost),
		Mode:       mode,
	}
}

// Reconcile groups a project's live expenses and deposits by supplier and
// computes per-supplier and global figures. Only suppliers in supplierIDs are
// counted: records of a supplier missing from that list (deleted from the
// catalog, or never in it) are left out of every total. Records with a
// DeletedAt are skipped. Every listed ID gets a summary even without records.
func Reconcile(supplierIDs []string, expenses []Expense, deposits []Deposit) Reconciliation {
	ids := make([]string, 0, len(supplierIDs))
	listed := make(map[string]struct{}, len(supplierIDs))
	for _, id := range supplierIDs {
		if _, ok := listed[id]; ok {
			continue
		}
		listed[id] = struct{}{}
		ids = append(ids, id)
	}

	byExpense := make(map[string][]Expense)
	for _, e := range expenses {
		if _, ok := listed[e.SupplierID]; !ok || e.DeletedAt != nil {
			continue
		}
		byExpense[e.SupplierID] = append(byExpense[e.SupplierID], e)
	}
	byDeposit := make(map[string][]Deposit)
	for _, d := range deposits {
		if _, ok := listed[d.SupplierID]; !ok || d.DeletedAt != nil {
			continue
		}
		byDeposit[d.SupplierID] = append(byDeposit[d.SupplierID], d)
	}

	result := Reconciliation{
		Suppliers: make(map[string]SupplierSummary, len(ids)),
		Global: GlobalSummary{
			GrandTotal:     decimal.Zero,
			TotalPaid:      decimal.Zero,
			TotalRemaining: decimal.Zero,
		},
	}
	for _, id := range ids {
		s := Summarize(id, byExpense[id], byDeposit[id])
		result.Suppliers[id] = s
		result.Global.GrandTotal = result.Global.GrandTotal.Add(s.TotalCost)
		result.Global.TotalPaid = result.Global.TotalPaid.Add(s.TotalPaid)
		if s.Remaining.IsNegative() {
			result.Global.TotalRemaining = result.Global.TotalRemaining.Add(s.Remaining)
		}
	}
	return result
}
