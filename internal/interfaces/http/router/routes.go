package router

import (
	"github.com/erp/ledger/internal/interfaces/http/handler"
)

// Handlers are the API handlers mounted by LedgerRoutes
type Handlers struct {
	Ledger    *handler.LedgerHandler
	Suppliers *handler.SupplierHandler
	Entries   *handler.EntryHandler
	Documents *handler.DocumentHandler
	Invoices  *handler.InvoiceHandler
	Orders    *handler.PurchaseOrderHandler
	Articles  *handler.ArticleHandler
	Changes   *handler.ChangesHandler
	System    *handler.SystemHandler
}

// LedgerRoutes builds one group per resource. Project-scoped routes live
// under /projects/:project_id; records addressed by their own ID do not.
func LedgerRoutes(h Handlers) []*DomainGroup {
	projects := NewDomainGroup("projects", "/projects/:project_id")
	projects.
		GET("/ledger", h.Ledger.Load).
		PUT("/general-note", h.Ledger.SaveGeneralNote).
		GET("/changes", h.Changes.Stream).
		POST("/documents/undo-replace", h.Documents.UndoReplace).
		POST("/invoice-wizards", h.Invoices.Start).
		POST("/invoices", h.Invoices.CreateInvoice).
		GET("/orders", h.Orders.List).
		POST("/orders", h.Orders.Create).
		GET("/articles", h.Articles.ProjectCatalog)

	projectSuppliers := projects.Group("project-suppliers", "/suppliers")
	projectSuppliers.
		POST("", h.Suppliers.Add).
		PUT("/order", h.Suppliers.Reorder).
		POST("/:supplier_id/link", h.Suppliers.Link).
		POST("/:supplier_id/archive", h.Suppliers.Archive).
		POST("/:supplier_id/restore", h.Suppliers.Restore).
		GET("/:supplier_id/expenses", h.Entries.ListExpenses).
		POST("/:supplier_id/expenses", h.Entries.CreateExpense).
		POST("/:supplier_id/deposits", h.Entries.CreateDeposit).
		POST("/:supplier_id/documents", h.Documents.Upload).
		DELETE("/:supplier_id/documents", h.Documents.DeleteAll)

	suppliers := NewDomainGroup("suppliers", "/suppliers")
	suppliers.
		GET("/deleted", h.Suppliers.ListDeleted).
		POST("/:supplier_id/restore", h.Suppliers.RestoreDeleted).
		PUT("/:supplier_id", h.Suppliers.UpdateDetails).
		PUT("/:supplier_id/notes", h.Suppliers.UpdateNotes).
		DELETE("/:supplier_id", h.Suppliers.Delete)

	expenses := NewDomainGroup("expenses", "/expenses")
	expenses.
		PUT("/:id", h.Entries.UpdateExpense).
		PATCH("/:id/status", h.Entries.SetExpenseStatus).
		DELETE("/:id", h.Entries.DeleteExpense).
		PUT("/:id/document", h.Documents.LinkToExpense)

	deposits := NewDomainGroup("deposits", "/deposits")
	deposits.
		PUT("/:id", h.Entries.UpdateDeposit).
		DELETE("/:id", h.Entries.DeleteDeposit).
		PUT("/:id/receipt", h.Documents.LinkToDeposit)

	documents := NewDomainGroup("documents", "/documents")
	documents.
		PUT("/:id/note", h.Documents.UpdateNote).
		POST("/:id/replace", h.Documents.Replace).
		DELETE("/:id", h.Documents.Delete)

	orders := NewDomainGroup("orders", "/orders")
	orders.
		PUT("/:id", h.Orders.Update).
		PATCH("/:id/status", h.Orders.SetStatus).
		POST("/:id/deliver", h.Orders.Deliver).
		DELETE("/:id", h.Orders.Delete)

	articles := NewDomainGroup("articles", "/articles")
	articles.
		GET("", h.Articles.Catalog)

	wizards := NewDomainGroup("invoice-wizards", "/invoice-wizards")
	wizards.
		GET("/:wizard_id", h.Invoices.Get).
		DELETE("/:wizard_id", h.Invoices.Abort).
		POST("/:wizard_id/mode", h.Invoices.ChooseMode).
		PUT("/:wizard_id/header", h.Invoices.SetHeader).
		POST("/:wizard_id/attachment", h.Invoices.Attach).
		POST("/:wizard_id/advance", h.Invoices.Advance).
		POST("/:wizard_id/back", h.Invoices.Back).
		PUT("/:wizard_id/items", h.Invoices.SetItems).
		POST("/:wizard_id/commit", h.Invoices.Commit)

	system := NewDomainGroup("system", "")
	system.
		GET("/ping", h.System.Ping).
		GET("/system/info", h.System.GetSystemInfo)

	return []*DomainGroup{projects, suppliers, expenses, deposits, documents, orders, articles, wizards, system}
}
