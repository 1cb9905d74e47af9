package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/erp/ledger/docs"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/erp/ledger/internal/interfaces/http/handler"
	"github.com/erp/ledger/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	var hits []string
	r.Use(func(c *gin.Context) {
		hits = append(hits, c.FullPath())
		c.Next()
	})

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.Register(group)
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, []string{"/api/v1/test/ping"}, hits)
}

func TestDomainGroup(t *testing.T) {
	engine := gin.New()
	api := engine.Group("/api")

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	group := NewDomainGroup("items", "/items")
	group.Use(func(c *gin.Context) {
		c.Header("X-Group", "items")
		c.Next()
	})
	group.GET("", ok).POST("", ok).PUT("/:id", ok).PATCH("/:id", ok).DELETE("/:id", ok)
	group.Group("notes", "/:id/notes").GET("", ok)

	assert.Equal(t, "items", group.Name())
	assert.Equal(t, "/items", group.Prefix())
	assert.Equal(t, 6, group.RouteCount())

	group.RegisterRoutes(api)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/items"},
		{http.MethodPost, "/api/items"},
		{http.MethodPut, "/api/items/1"},
		{http.MethodPatch, "/api/items/1"},
		{http.MethodDelete, "/api/items/1"},
		{http.MethodGet, "/api/items/1/notes"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "items", w.Header().Get("X-Group"))
		})
	}
}

func newTestHandlers() Handlers {
	return Handlers{
		Ledger:    handler.NewLedgerHandler(nil, nil),
		Suppliers: handler.NewSupplierHandler(nil),
		Entries:   handler.NewEntryHandler(nil),
		Documents: handler.NewDocumentHandler(nil),
		Invoices:  handler.NewInvoiceHandler(nil),
		Orders:    handler.NewPurchaseOrderHandler(nil),
		Articles:  handler.NewArticleHandler(nil),
		Changes:   handler.NewChangesHandler(nil),
		System:    handler.NewSystemHandler("ledger", "test", nil),
	}
}

func TestLedgerRoutes(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	for _, g := range LedgerRoutes(newTestHandlers()) {
		r.Register(g)
	}
	r.Setup()

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/v1/projects/:project_id/ledger",
		"PUT /api/v1/projects/:project_id/general-note",
		"GET /api/v1/projects/:project_id/changes",
		"POST /api/v1/projects/:project_id/suppliers",
		"PUT /api/v1/projects/:project_id/suppliers/order",
		"POST /api/v1/projects/:project_id/suppliers/:supplier_id/link",
		"POST /api/v1/projects/:project_id/suppliers/:supplier_id/archive",
		"POST /api/v1/projects/:project_id/suppliers/:supplier_id/restore",
		"GET /api/v1/projects/:project_id/suppliers/:supplier_id/expenses",
		"POST /api/v1/projects/:project_id/suppliers/:supplier_id/expenses",
		"POST /api/v1/projects/:project_id/suppliers/:supplier_id/deposits",
		"POST /api/v1/projects/:project_id/suppliers/:supplier_id/documents",
		"DELETE /api/v1/projects/:project_id/suppliers/:supplier_id/documents",
		"POST /api/v1/projects/:project_id/documents/undo-replace",
		"POST /api/v1/projects/:project_id/invoice-wizards",
		"POST /api/v1/projects/:project_id/invoices",
		"GET /api/v1/projects/:project_id/orders",
		"POST /api/v1/projects/:project_id/orders",
		"GET /api/v1/projects/:project_id/articles",
		"GET /api/v1/suppliers/deleted",
		"POST /api/v1/suppliers/:supplier_id/restore",
		"PUT /api/v1/suppliers/:supplier_id",
		"PUT /api/v1/suppliers/:supplier_id/notes",
		"DELETE /api/v1/suppliers/:supplier_id",
		"PUT /api/v1/expenses/:id",
		"PATCH /api/v1/expenses/:id/status",
		"DELETE /api/v1/expenses/:id",
		"PUT /api/v1/expenses/:id/document",
		"PUT /api/v1/deposits/:id",
		"DELETE /api/v1/deposits/:id",
		"PUT /api/v1/deposits/:id/receipt",
		"PUT /api/v1/documents/:id/note",
		"POST /api/v1/documents/:id/replace",
		"DELETE /api/v1/documents/:id",
		"PUT /api/v1/orders/:id",
		"PATCH /api/v1/orders/:id/status",
		"POST /api/v1/orders/:id/deliver",
		"DELETE /api/v1/orders/:id",
		"GET /api/v1/articles",
		"GET /api/v1/invoice-wizards/:wizard_id",
		"DELETE /api/v1/invoice-wizards/:wizard_id",
		"POST /api/v1/invoice-wizards/:wizard_id/mode",
		"PUT /api/v1/invoice-wizards/:wizard_id/header",
		"POST /api/v1/invoice-wizards/:wizard_id/attachment",
		"POST /api/v1/invoice-wizards/:wizard_id/advance",
		"POST /api/v1/invoice-wizards/:wizard_id/back",
		"PUT /api/v1/invoice-wizards/:wizard_id/items",
		"POST /api/v1/invoice-wizards/:wizard_id/commit",
		"GET /api/v1/ping",
		"GET /api/v1/system/info",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, engine.Routes(), len(expected))
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine(EngineConfig{
		HTTP: config.HTTPConfig{
			MaxBodySize:      16,
			MaxUploadSize:    1024,
			CORSAllowOrigins: []string{"https://app.example"},
		},
		ServiceName: "ledger-test",
		Logger:      zap.NewNop(),
	}, handler.NewSystemHandler("ledger", "test", nil).Health)

	projectID := uuid.New()
	var seenProject string
	engine.POST("/api/v1/projects/:project_id/echo", func(c *gin.Context) {
		seenProject = c.GetString(middleware.ProjectIDKey)
		c.Status(http.StatusNoContent)
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("project context", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+projectID.String()+"/echo", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, projectID.String(), seenProject)
	})

	t.Run("json body limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+projectID.String()+"/echo",
			strings.NewReader(`{"note":"this body is longer than sixteen bytes"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("swagger ui and document", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "swagger-ui")

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Construction Ledger API")
		assert.Contains(t, w.Body.String(), "/projects/{project_id}/ledger")
	})

	t.Run("cors preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
