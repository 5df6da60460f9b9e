package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// articleHandler handles HTTP requests related to articles.
type articleHandler struct {
	articles portssvc.ArticleSvcFacade
	saved    portssvc.SavedArticleSvcFacade
}

func newArticleHandler(articles portssvc.ArticleSvcFacade, saved portssvc.SavedArticleSvcFacade) *articleHandler {
	return &articleHandler{articles: articles, saved: saved}
}

func registerArticleRoutes(rg *gin.RouterGroup, h *articleHandler, optionalAuth, requireAuth, adminOnly gin.HandlerFunc) {
	articles := rg.Group("/articles")
	{
		articles.GET("", optionalAuth, h.listArticles)
		articles.GET("/search", optionalAuth, h.searchArticles)
		articles.GET("/personalized", requireAuth, h.personalizedArticles)
		articles.GET("/:id", optionalAuth, h.getArticle)
		articles.POST("/bulk", requireAuth, adminOnly, h.bulkInsert)
	}
}

// listArticles godoc
// @Summary List articles
// @Description Filters by source, category, author (substring, case-insensitive) and publication date range. Newest first.
// @Tags articles
// @Produce json
// @Param source query string false "Source name"
// @Param category query string false "Category"
// @Param author query string false "Author"
// @Param startDate query string false "Earliest publication date (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "Latest publication date, inclusive"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.SuccessResponse{data=dto.ArticlePageResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	var params dto.ListArticlesParams
	if !bindQuery(c, &params) {
		return
	}
	filter, err := params.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.articles.ListArticles(c.Request.Context(), filter, params.PageParams.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToArticlePageResponse(page))
}

// searchArticles godoc
// @Summary Search articles
// @Description Matches q against title and description.
// @Tags articles
// @Produce json
// @Param q query string true "Search text (min 2 characters)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.SuccessResponse{data=dto.ArticlePageResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /articles/search [get]
func (h *articleHandler) searchArticles(c *gin.Context) {
	var params dto.SearchArticlesParams
	if !bindQuery(c, &params) {
		return
	}
	page, err := h.articles.SearchArticles(c.Request.Context(), params.Q, params.PageParams.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToArticlePageResponse(page))
}

// personalizedArticles godoc
// @Summary Personalized feed
// @Description Articles matching any of the caller's preferred sources, categories or authors. Without preferences every article matches.
// @Tags articles
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.SuccessResponse{data=dto.ArticlePageResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles/personalized [get]
func (h *articleHandler) personalizedArticles(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.PageParams
	if !bindQuery(c, &params) {
		return
	}
	page, err := h.articles.PersonalizedArticles(c.Request.Context(), userID, params.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToArticlePageResponse(page))
}

// getArticle godoc
// @Summary Get an article
// @Description isSaved is included only for authenticated callers.
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.ArticleDetailResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /articles/{id} [get]
func (h *articleHandler) getArticle(c *gin.Context) {
	ctx := c.Request.Context()
	article, err := h.articles.GetArticleByID(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ArticleDetailResponse{Article: dto.ToArticleResponse(*article)}
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		saved, err := h.saved.IsArticleSaved(ctx, userID, article.ID)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Could not resolve saved status", slog.String("error", err.Error()))
		} else {
			resp.IsSaved = &saved
		}
	}
	respondOK(c, http.StatusOK, "", resp)
}

// bulkInsert godoc
// @Summary Ingest articles
// @Description Inserts a batch of articles. URLs already stored are skipped.
// @Tags articles
// @Accept json
// @Produce json
// @Param articles body dto.BulkArticlesRequest true "Articles"
// @Success 201 {object} dto.SuccessResponse{data=dto.BulkArticlesResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /articles/bulk [post]
func (h *articleHandler) bulkInsert(c *gin.Context) {
	var req dto.BulkArticlesRequest
	if !bindJSON(c, &req) {
		return
	}
	articles := make([]domain.Article, len(req.Articles))
	for i, a := range req.Articles {
		articles[i] = a.ToDomain()
	}
	inserted, err := h.articles.IngestArticles(c.Request.Context(), articles)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Articles ingested", dto.BulkArticlesResponse{Received: len(articles), Inserted: inserted})
}
