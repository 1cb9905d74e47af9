package persistence

import (
	"fmt"

	"github.com/erp/ledger/internal/domain/ledger"
)

// expenseSortColumns whitelists the columns an expense list may be ordered by
var expenseSortColumns = map[ledger.SortField]string{
	ledger.SortByDate:  "date",
	ledger.SortByPrice: "price",
}

// expenseOrder builds the ORDER BY clause for f. Unknown fields fall back
// to date; created_at breaks ties so equal dates keep insertion order.
func expenseOrder(f ledger.ExpenseFilter) string {
	col, ok := expenseSortColumns[f.SortBy]
	if !ok {
		col = "date"
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, created_at %s", col, dir, dir)
}
