package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// savedArticleHandler manages the caller's bookmarks.
type savedArticleHandler struct {
	saved portssvc.SavedArticleSvcFacade
}

func registerSavedArticleRoutes(rg *gin.RouterGroup, saved portssvc.SavedArticleSvcFacade, requireAuth gin.HandlerFunc) {
	h := &savedArticleHandler{saved: saved}
	group := rg.Group("/saved-articles", requireAuth)
	{
		group.GET("", h.listSaved)
		group.POST("/:articleId", h.save)
		group.DELETE("/:articleId", h.unsave)
		group.GET("/:articleId/status", h.status)
	}
}

// listSaved godoc
// @Summary List saved articles
// @Description Most recently saved first, each with its article.
// @Tags saved-articles
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.SuccessResponse{data=dto.SavedArticlePageResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /saved-articles [get]
func (h *savedArticleHandler) listSaved(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.PageParams
	if !bindQuery(c, &params) {
		return
	}
	page, err := h.saved.ListSavedArticles(c.Request.Context(), userID, params.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToSavedArticlePageResponse(page))
}

// save godoc
// @Summary Save an article
// @Description Saving an article twice is not an error; the second call answers 200.
// @Tags saved-articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 201 {object} dto.SuccessResponse{data=dto.SavedArticleResponse}
// @Success 200 {object} dto.SuccessResponse{data=dto.SavedArticleResponse}
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Security BearerAuth
// @Router /saved-articles/{articleId} [post]
func (h *savedArticleHandler) save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	saved, created, err := h.saved.SaveArticle(c.Request.Context(), userID, c.Param("articleId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !created {
		respondOK(c, http.StatusOK, "Article already saved", dto.ToSavedArticleResponse(*saved))
		return
	}
	respondOK(c, http.StatusCreated, "Article saved successfully", dto.ToSavedArticleResponse(*saved))
}

// unsave godoc
// @Summary Remove a saved article
// @Tags saved-articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Saved article not found"
// @Security BearerAuth
// @Router /saved-articles/{articleId} [delete]
func (h *savedArticleHandler) unsave(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.saved.UnsaveArticle(c.Request.Context(), userID, c.Param("articleId")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Article removed from saved", nil)
}

// status godoc
// @Summary Saved status
// @Tags saved-articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.SavedStatusResponse}
// @Security BearerAuth
// @Router /saved-articles/{articleId}/status [get]
func (h *savedArticleHandler) status(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	saved, err := h.saved.IsArticleSaved(c.Request.Context(), userID, c.Param("articleId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.SavedStatusResponse{IsSaved: saved})
}
