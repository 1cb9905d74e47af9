package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ArticleService builds the article price catalog from booked invoices
type ArticleService struct {
	repos  Repositories
	logger *zap.Logger
}

// NewArticleService creates a new ArticleService
func NewArticleService(repos Repositories, logger *zap.Logger) *ArticleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArticleService{repos: repos, logger: logger}
}

// Catalog compares the latest unit price of every article across suppliers,
// for one project or, with a nil ProjectID, for all of them. Search keeps the
// purchases whose designation or normalized article name contains it.
func (s *ArticleService) Catalog(ctx context.Context, q ArticleQuery) (*ArticleCatalogResponse, error) {
	scope := "all"
	if q.ProjectID != nil {
		scope = q.ProjectID.String()
	}
	ctx, span := telemetry.StartServiceSpan(ctx, "articles", "catalog", telemetry.WithAttribute(telemetry.SpanAttrProjectID, scope))
	defer span.End()

	var (
		expenses []ledger.Expense
		err      error
	)
	if q.ProjectID != nil {
		expenses, err = s.repos.Expenses.FindByProject(ctx, *q.ProjectID)
	} else {
		expenses, err = s.repos.Expenses.FindAllLive(ctx)
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	catalog, err := s.repos.Suppliers.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("load suppliers: %w", err)
	}
	known := make(map[string]*ledger.Supplier, len(catalog))
	for i := range catalog {
		known[catalog[i].ID] = &catalog[i]
	}

	purchases := filterPurchases(ledger.PurchasesFromExpenses(expenses), q.Search)
	matrix := ledger.BuildPriceMatrix(purchases)

	resp := &ArticleCatalogResponse{
		Suppliers:  make([]SupplierResponse, 0, len(matrix.Suppliers)),
		Rows:       make([]ArticleRowResponse, 0, len(matrix.Rows)),
		BySupplier: supplierPurchases(purchases, known),
	}
	for _, id := range matrix.Suppliers {
		resp.Suppliers = append(resp.Suppliers, supplierOrPlaceholder(id, known))
	}
	for _, row := range matrix.Rows {
		r := ArticleRowResponse{Article: row.Article, Prices: make([]ArticlePriceResponse, 0, len(row.Prices))}
		for _, p := range row.Prices {
			r.Prices = append(r.Prices, ArticlePriceResponse{
				SupplierID:   p.SupplierID,
				SupplierName: supplierOrPlaceholder(p.SupplierID, known).Name,
				UnitPrice:    p.UnitPrice,
				Date:         formatDate(p.Date),
				Best:         p.Best,
			})
		}
		resp.Rows = append(resp.Rows, r)
	}

	telemetry.SetAttributes(span, "articles", len(resp.Rows), "purchases", len(purchases))
	s.logger.Debug("Article catalog built",
		zap.String("scope", scope),
		zap.Int("articles", len(resp.Rows)),
		zap.Int("suppliers", len(resp.Suppliers)))
	return resp, nil
}

func filterPurchases(purchases []ledger.ArticlePurchase, search string) []ledger.ArticlePurchase {
	needle := strings.ToUpper(strings.TrimSpace(search))
	if needle == "" {
		return purchases
	}
	out := purchases[:0:0]
	for _, p := range purchases {
		if strings.Contains(strings.ToUpper(p.Designation), needle) ||
			strings.Contains(ledger.NormalizeArticleName(p.Designation), needle) {
			out = append(out, p)
		}
	}
	return out
}

// supplierPurchases groups purchases by supplier, biggest spend first, each
// supplier's lines newest first
func supplierPurchases(purchases []ledger.ArticlePurchase, known map[string]*ledger.Supplier) []SupplierPurchasesResponse {
	groups := make(map[string]*SupplierPurchasesResponse)
	for _, p := range purchases {
		g, ok := groups[p.SupplierID]
		if !ok {
			g = &SupplierPurchasesResponse{
				SupplierID:   p.SupplierID,
				SupplierName: supplierOrPlaceholder(p.SupplierID, known).Name,
				Total:        decimal.Zero,
			}
			groups[p.SupplierID] = g
		}
		g.Total = g.Total.Add(p.Total)
		g.Purchases = append(g.Purchases, ArticlePurchaseResponse{
			ExpenseID:   p.ExpenseID,
			ProjectID:   p.ProjectID,
			Date:        formatDate(p.Date),
			Reference:   p.Reference,
			Designation: p.Designation,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
			Total:       p.Total,
		})
	}

	out := make([]SupplierPurchasesResponse, 0, len(groups))
	for _, g := range groups {
		g.Total = ledger.RoundMoney(g.Total)
		sort.SliceStable(g.Purchases, func(i, j int) bool { return g.Purchases[i].Date > g.Purchases[j].Date })
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].SupplierID < out[j].SupplierID
	})
	return out
}

// supplierOrPlaceholder falls back to the bare ID for suppliers that left the catalog
func supplierOrPlaceholder(id string, known map[string]*ledger.Supplier) SupplierResponse {
	if s, ok := known[id]; ok {
		return ToSupplierResponse(s)
	}
	return SupplierResponse{ID: id, Name: id}
}
