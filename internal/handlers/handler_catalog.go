package handlers

import (
	"net/http"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler serves news sources and categories.
type catalogHandler struct {
	catalog portssvc.CatalogSvcFacade
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalog portssvc.CatalogSvcFacade, requireAuth, adminOnly gin.HandlerFunc) {
	h := &catalogHandler{catalog: catalog}

	sources := rg.Group("/sources")
	{
		sources.GET("", h.listSources)
		sources.GET("/:name", h.getSource)
		sources.POST("", requireAuth, adminOnly, h.createSource)
		sources.POST("/bulk", requireAuth, adminOnly, h.initializeSources)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:name", h.getCategory)
		categories.POST("/validate", h.validateCategories)
		categories.POST("", requireAuth, adminOnly, h.createCategory)
	}
}

// listSources godoc
// @Summary List news sources
// @Description Active sources, optionally restricted to one upstream API.
// @Tags catalog
// @Produce json
// @Param apiSource query string false "Upstream API name"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.NewsSourceResponse}
// @Router /sources [get]
func (h *catalogHandler) listSources(c *gin.Context) {
	var params dto.ListSourcesParams
	if !bindQuery(c, &params) {
		return
	}
	var (
		result []domain.NewsSource
		err    error
	)
	if params.APISource != "" {
		result, err = h.catalog.ListSourcesByAPISource(c.Request.Context(), params.APISource)
	} else {
		result, err = h.catalog.ListActiveSources(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToNewsSourceResponses(result))
}

// getSource godoc
// @Summary Get a news source by name
// @Tags catalog
// @Produce json
// @Param name path string true "Source name"
// @Success 200 {object} dto.SuccessResponse{data=dto.NewsSourceResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /sources/{name} [get]
func (h *catalogHandler) getSource(c *gin.Context) {
	source, err := h.catalog.GetSourceByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToNewsSourceResponse(*source))
}

// createSource godoc
// @Summary Create a news source
// @Tags catalog
// @Accept json
// @Produce json
// @Param source body dto.CreateNewsSourceRequest true "Source"
// @Success 201 {object} dto.SuccessResponse{data=dto.NewsSourceResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sources [post]
func (h *catalogHandler) createSource(c *gin.Context) {
	var req dto.CreateNewsSourceRequest
	if !bindJSON(c, &req) {
		return
	}
	source, err := h.catalog.CreateSource(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "News source created successfully", dto.ToNewsSourceResponse(*source))
}

// initializeSources godoc
// @Summary Seed news sources
// @Description Inserts sources whose names are not yet known.
// @Tags catalog
// @Accept json
// @Produce json
// @Param sources body []dto.CreateNewsSourceRequest true "Sources"
// @Success 201 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /sources/bulk [post]
func (h *catalogHandler) initializeSources(c *gin.Context) {
	var req []dto.CreateNewsSourceRequest
	if !bindJSON(c, &req) {
		return
	}
	inserted, err := h.catalog.InitializeSources(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "News sources initialized", gin.H{"inserted": inserted})
}

// listCategories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.CategoryResponse}
// @Router /categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToCategoryResponses(cats))
}

// getCategory godoc
// @Summary Get a category by name
// @Tags catalog
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} dto.SuccessResponse{data=dto.CategoryResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{name} [get]
func (h *catalogHandler) getCategory(c *gin.Context) {
	cat, err := h.catalog.GetCategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToCategoryResponse(*cat))
}

// validateCategories godoc
// @Summary Validate category names
// @Tags catalog
// @Accept json
// @Produce json
// @Param names body dto.ValidateCategoriesRequest true "Names"
// @Success 200 {object} dto.SuccessResponse{data=dto.ValidateCategoriesResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories/validate [post]
func (h *catalogHandler) validateCategories(c *gin.Context) {
	var req dto.ValidateCategoriesRequest
	if !bindJSON(c, &req) {
		return
	}
	valid, invalid, err := h.catalog.ValidateCategories(c.Request.Context(), req.Names)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ValidateCategoriesResponse{Valid: valid, Invalid: invalid})
}

// createCategory godoc
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.SuccessResponse{data=dto.CategoryResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *catalogHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.catalog.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Category created successfully", dto.ToCategoryResponse(*cat))
}
