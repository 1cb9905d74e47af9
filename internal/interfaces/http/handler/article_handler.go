package handler

import (
	"context"

	ledgerapp "github.com/erp/ledger/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// ArticleUseCases is the article price catalog as seen by the API
type ArticleUseCases interface {
	Catalog(ctx context.Context, q ledgerapp.ArticleQuery) (*ledgerapp.ArticleCatalogResponse, error)
}

// ArticleHandler serves the article price catalog
type ArticleHandler struct {
	BaseHandler
	articles ArticleUseCases
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articles ArticleUseCases) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// ProjectCatalog godoc
// @ID           projectArticleCatalog
// @Summary      Compare article prices across a project's suppliers
// @Tags         articles
// @Produce      json
// @Param        project_id path string true "Project ID" format(uuid)
// @Param        q query string false "Article name filter"
// @Success      200 {object} APIResponse[ledgerapp.ArticleCatalogResponse]
// @Router       /projects/{project_id}/articles [get]
func (h *ArticleHandler) ProjectCatalog(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}
	var q ledgerapp.ArticleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}
	q.ProjectID = &projectID
	h.catalog(c, q)
}

// Catalog godoc
// @ID           articleCatalog
// @Summary      Compare article prices across every project
// @Tags         articles
// @Produce      json
// @Param        q query string false "Article name filter"
// @Success      200 {object} APIResponse[ledgerapp.ArticleCatalogResponse]
// @Router       /articles [get]
func (h *ArticleHandler) Catalog(c *gin.Context) {
	var q ledgerapp.ArticleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.ValidationError(c, err)
		return
	}
	h.catalog(c, q)
}

func (h *ArticleHandler) catalog(c *gin.Context, q ledgerapp.ArticleQuery) {
	resp, err := h.articles.Catalog(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
