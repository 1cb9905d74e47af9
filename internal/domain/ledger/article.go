package ledger

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArticlePurchase is one priced article bought from a supplier: an invoice
// line, or an expense that has no lines
type ArticlePurchase struct {
	ExpenseID   uuid.UUID
	ProjectID   uuid.UUID
	SupplierID  string
	Date        time.Time
	Reference   string
	Designation string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// PurchasesFromExpenses flattens expenses into article purchases. Payment
// records are skipped; an expense without lines counts as one article whose
// unit price is its amount divided by the leading number of its quantity.
func PurchasesFromExpenses(expenses []Expense) []ArticlePurchase {
	var out []ArticlePurchase
	for _, e := range expenses {
		if e.DeletedAt != nil || e.IsPayment() {
			continue
		}
		if len(e.Items) == 0 {
			qty := LeadingQuantity(e.Quantity)
			out = append(out, ArticlePurchase{
				ExpenseID:   e.ID,
				ProjectID:   e.ProjectID,
				SupplierID:  e.SupplierID,
				Date:        e.Date,
				Designation: e.Item,
				Quantity:    qty,
				UnitPrice:   RoundMoney(e.Price.Div(qty)),
				Total:       e.Price,
			})
			continue
		}
		for _, it := range e.Items {
			out = append(out, ArticlePurchase{
				ExpenseID:   e.ID,
				ProjectID:   e.ProjectID,
				SupplierID:  e.SupplierID,
				Date:        e.Date,
				Reference:   e.Item,
				Designation: it.Designation,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Total:       it.TotalTTC,
			})
		}
	}
	return out
}

var leadingNumber = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)

// LeadingQuantity reads the first number of a free-text quantity such as
// "12 m3" or "2,5 T". Anything unreadable or zero counts as one.
func LeadingQuantity(q string) decimal.Decimal {
	m := leadingNumber.FindString(q)
	if m == "" {
		return decimal.NewFromInt(1)
	}
	d, err := decimal.NewFromString(strings.Replace(m, ",", ".", 1))
	if err != nil || !d.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return d
}

var (
	rebarPattern   = regexp.MustCompile(`^FER\s*(?:ROND\s*(?:DE\s*)?|DE\s*|Ø\s*)?(\d+)`)
	brickPattern   = regexp.MustCompile(`BRIQUE.*?\b(8|12)\b`)
	spaceRun       = regexp.MustCompile(`\s+`)
	rebarLabelSize = regexp.MustCompile(`^FER Ø(\d+)$`)
)

// NormalizeArticleName folds the spellings of one article into a single key:
// upper case, single spaces, no trailing slash, rebar as "FER Ø<diameter>"
// and bricks as "BRIQUE <size>".
func NormalizeArticleName(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimSpace(strings.TrimSuffix(n, "/"))
	if n == "" {
		return ""
	}
	if m := rebarPattern.FindStringSubmatch(n); m != nil {
		size := m[1]
		if len(size) < 2 {
			size = "0" + size
		}
		return "FER Ø" + size
	}
	if strings.Contains(n, "FIL") && (strings.Contains(n, "ATTACH") || strings.Contains(n, "RECUIT")) {
		return "FIL ATTACHE"
	}
	if m := brickPattern.FindStringSubmatch(n); m != nil {
		return "BRIQUE " + m[1]
	}
	return spaceRun.ReplaceAllString(n, " ")
}

// SupplierPrice is the latest unit price of an article at one supplier
type SupplierPrice struct {
	SupplierID string
	UnitPrice  decimal.Decimal
	Date       time.Time
	// Best marks the lowest positive price of the row
	Best bool
}

// PriceRow is an article with its price at each supplier that sold it
type PriceRow struct {
	Article string
	Prices  []SupplierPrice
}

// PriceMatrix compares article prices across suppliers
type PriceMatrix struct {
	// Suppliers lists, sorted, every supplier with at least one price
	Suppliers []string
	Rows      []PriceRow
}

// BuildPriceMatrix keeps, per normalized article and supplier, the unit price
// of the most recent purchase. Rebar rows come first by diameter, the rest
// alphabetically.
func BuildPriceMatrix(purchases []ArticlePurchase) PriceMatrix {
	type cell struct {
		price decimal.Decimal
		date  time.Time
	}
	articles := make(map[string]map[string]cell)
	suppliers := make(map[string]struct{})
	for _, p := range purchases {
		key := NormalizeArticleName(p.Designation)
		if key == "" {
			continue
		}
		row, ok := articles[key]
		if !ok {
			row = make(map[string]cell)
			articles[key] = row
		}
		if cur, seen := row[p.SupplierID]; seen && !p.Date.After(cur.date) {
			continue
		}
		row[p.SupplierID] = cell{price: p.UnitPrice, date: p.Date}
		suppliers[p.SupplierID] = struct{}{}
	}

	matrix := PriceMatrix{Suppliers: make([]string, 0, len(suppliers))}
	for id := range suppliers {
		matrix.Suppliers = append(matrix.Suppliers, id)
	}
	sort.Strings(matrix.Suppliers)

	for article, cells := range articles {
		row := PriceRow{Article: article, Prices: make([]SupplierPrice, 0, len(cells))}
		var best decimal.Decimal
		for id, c := range cells {
			row.Prices = append(row.Prices, SupplierPrice{SupplierID: id, UnitPrice: c.price, Date: c.date})
			if c.price.IsPositive() && (best.IsZero() || c.price.LessThan(best)) {
				best = c.price
			}
		}
		sort.Slice(row.Prices, func(i, j int) bool { return row.Prices[i].SupplierID < row.Prices[j].SupplierID })
		for i := range row.Prices {
			row.Prices[i].Best = best.IsPositive() && row.Prices[i].UnitPrice.Equal(best)
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	sort.Slice(matrix.Rows, func(i, j int) bool {
		return articleLess(matrix.Rows[i].Article, matrix.Rows[j].Article)
	})
	return matrix
}

func articleLess(a, b string) bool {
	da, aRebar := rebarDiameter(a)
	db, bRebar := rebarDiameter(b)
	switch {
	case aRebar && bRebar:
		return da < db
	case aRebar != bRebar:
		return aRebar
	}
	return a < b
}

func rebarDiameter(article string) (int, bool) {
	m := rebarLabelSize.FindStringSubmatch(article)
	if m == nil {
		return 0, false
	}
	d, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return d, true
}
