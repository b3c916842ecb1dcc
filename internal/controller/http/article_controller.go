// Package http contains the gin controllers exposing the REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/domain/service"
	"github.com/gidacan/blog-backend/internal/dto/request"
	"github.com/gidacan/blog-backend/internal/dto/response"
	apperrors "github.com/gidacan/blog-backend/pkg/errors"
)

// ArticleController handles article HTTP requests
type ArticleController struct {
	articleService service.ArticleService
	logger         *zap.Logger
}

// NewArticleController creates a new ArticleController instance
func NewArticleController(articleService service.ArticleService, logger *zap.Logger) *ArticleController {
	return &ArticleController{
		articleService: articleService,
		logger:         logger,
	}
}

// RegisterRoutes registers the article routes
func (ctrl *ArticleController) RegisterRoutes(router *gin.RouterGroup) {
	articles := router.Group("/articles")
	{
		articles.GET("", ctrl.List)
		articles.POST("", ctrl.Create)
		articles.PUT("/:id", ctrl.Update)
		articles.PATCH("/:id/toggle", ctrl.ToggleStatus)
		articles.GET("/:name", ctrl.GetByName)
	}
}

// List handles GET /articles
func (ctrl *ArticleController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	articles, total, err := ctrl.articleService.List(c.Request.Context(), page, size)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPagedResponse(response.NewArticleResponses(articles), page, size, total))
}

// Create handles POST /articles
func (ctrl *ArticleController) Create(c *gin.Context) {
	var req request.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewErrorWithDetails("invalid request", err.Error()))
		return
	}

	article, err := ctrl.articleService.Create(c.Request.Context(), &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccessWithData("article created", response.NewArticleResponse(article)))
}

// Update handles PUT /articles/:id
func (ctrl *ArticleController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("invalid article id"))
		return
	}

	var req request.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewErrorWithDetails("invalid request", err.Error()))
		return
	}

	article, err := ctrl.articleService.Update(c.Request.Context(), uint(id), &req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccessWithData("article updated", response.NewArticleResponse(article)))
}

// ToggleStatus handles PATCH /articles/:id/toggle
func (ctrl *ArticleController) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NewError("invalid article id"))
		return
	}

	article, err := ctrl.articleService.ToggleStatus(c.Request.Context(), uint(id))
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccessWithData("article status toggled", response.NewArticleResponse(article)))
}

// GetByName handles GET /articles/:name
func (ctrl *ArticleController) GetByName(c *gin.Context) {
	name := c.Param("name")

	article, err := ctrl.articleService.GetByName(c.Request.Context(), name)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccessWithData("article found", response.NewArticleResponse(article)))
}

func (ctrl *ArticleController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, response.NewError("article not found"))
	default:
		status := apperrors.GetStatus(err)
		if status >= http.StatusInternalServerError {
			ctrl.logger.Error("article request failed", zap.Error(err))
		}
		c.JSON(status, response.NewError(http.StatusText(status)))
	}
}
