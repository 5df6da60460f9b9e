package handlers

import (
	"net/http"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type apiLogHandler struct {
	logs portssvc.APILogSvcFacade
}

// registerAPILogRoutes mounts the upstream API call log under /admin. The caller supplies the admin gate.
func registerAPILogRoutes(rg *gin.RouterGroup, logs portssvc.APILogSvcFacade, requireAuth, adminOnly gin.HandlerFunc) {
	h := &apiLogHandler{logs: logs}
	admin := rg.Group("/admin/api-logs", requireAuth, adminOnly)
	{
		admin.GET("", h.listLogs)
		admin.GET("/stats", h.stats)
		admin.POST("", h.record)
	}
}

// listLogs godoc
// @Summary List API call logs
// @Description Logs within [startDate, endDate], newest first.
// @Tags admin
// @Produce json
// @Param startDate query string true "Start (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string true "End, inclusive"
// @Param source query string false "Upstream API name"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.APILogResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/api-logs [get]
func (h *apiLogHandler) listLogs(c *gin.Context) {
	var params dto.ListAPILogsParams
	if !bindQuery(c, &params) {
		return
	}
	start, err := dto.ParseDateParam("startDate", params.StartDate, false)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := dto.ParseDateParam("endDate", params.EndDate, true)
	if err != nil {
		respondError(c, err)
		return
	}
	if start == nil || end == nil {
		respondError(c, apperrors.NewValidationFailedError(msgValidation,
			apperrors.FieldError{Field: "startDate", Message: "startDate and endDate are required"}))
		return
	}
	logs, err := h.logs.ListAPILogs(c.Request.Context(), domain.APILogRange{Start: *start, End: *end, APISource: params.Source})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToAPILogResponses(logs))
}

// stats godoc
// @Summary API call statistics
// @Description Per upstream API: request count, average and maximum response time over the last days.
// @Tags admin
// @Produce json
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} dto.SuccessResponse{data=[]dto.APILogStatsResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/api-logs/stats [get]
func (h *apiLogHandler) stats(c *gin.Context) {
	var params dto.APIStatsParams
	if !bindQuery(c, &params) {
		return
	}
	stats, err := h.logs.GetAPIStats(c.Request.Context(), params.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", dto.ToAPILogStatsResponses(stats))
}

// record godoc
// @Summary Record an API call
// @Tags admin
// @Accept json
// @Produce json
// @Param log body dto.CreateAPILogRequest true "Call details"
// @Success 201 {object} dto.SuccessResponse{data=dto.APILogResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/api-logs [post]
func (h *apiLogHandler) record(c *gin.Context) {
	var req dto.CreateAPILogRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.logs.RecordAPICall(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "API call recorded", dto.ToAPILogResponse(*entry))
}
