package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupArticleRouter(m *MockArticles) *gin.Engine {
	h := NewArticleHandler(m)
	r := gin.New()
	r.GET("/projects/:project_id/articles", h.ProjectCatalog)
	r.GET("/articles", h.Catalog)
	return r
}

func TestArticleHandler(t *testing.T) {
	t.Run("project catalog is scoped", func(t *testing.T) {
		projectID := uuid.New()
		m := new(MockArticles)
		m.On("Catalog", mock.Anything, mock.MatchedBy(func(q ledgerapp.ArticleQuery) bool {
			return q.ProjectID != nil && *q.ProjectID == projectID && q.Search == "fer"
		})).Return(&ledgerapp.ArticleCatalogResponse{Rows: []ledgerapp.ArticleRowResponse{{Article: "FER Ø12"}}}, nil)

		w := doJSON(setupArticleRouter(m), http.MethodGet, "/projects/"+projectID.String()+"/articles?q=fer", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		rows := decode(t, w).Data.(map[string]any)["rows"].([]any)
		assert.Equal(t, "FER Ø12", rows[0].(map[string]any)["article"])
		m.AssertExpectations(t)
	})

	t.Run("global catalog has no project", func(t *testing.T) {
		m := new(MockArticles)
		m.On("Catalog", mock.Anything, ledgerapp.ArticleQuery{}).Return(&ledgerapp.ArticleCatalogResponse{}, nil)

		w := doJSON(setupArticleRouter(m), http.MethodGet, "/articles", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		m.AssertExpectations(t)
	})

	t.Run("search too long", func(t *testing.T) {
		m := new(MockArticles)
		w := doJSON(setupArticleRouter(m), http.MethodGet, "/articles?q="+strings.Repeat("a", 201), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		m.AssertNotCalled(t, "Catalog")
	})

	t.Run("load failure", func(t *testing.T) {
		m := new(MockArticles)
		m.On("Catalog", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		w := doJSON(setupArticleRouter(m), http.MethodGet, "/articles", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
