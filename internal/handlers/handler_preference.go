package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type preferenceHandler struct {
	preferences portssvc.PreferenceSvcFacade
}

func registerPreferenceRoutes(rg *gin.RouterGroup, preferences portssvc.PreferenceSvcFacade, requireAuth gin.HandlerFunc) {
	h := &preferenceHandler{preferences: preferences}
	prefs := rg.Group("/preferences", requireAuth)
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
	}
}

// getPreferences godoc
// @Summary Get preferences
// @Description Returns the caller's preferences, creating empty ones on first access.
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=map[string]dto.PreferenceResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferenceHandler) getPreferences(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	pref, err := h.preferences.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"preference": dto.ToPreferenceResponse(pref)})
}

// updatePreferences godoc
// @Summary Update preferences
// @Description Replaces each list that is present in the body. Values are trimmed and de-duplicated.
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body dto.UpdatePreferencesRequest true "Preference lists"
// @Success 200 {object} dto.SuccessResponse{data=map[string]dto.PreferenceResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /preferences [put]
func (h *preferenceHandler) updatePreferences(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}
	pref, err := h.preferences.UpdatePreferences(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Preferences updated successfully", gin.H{"preference": dto.ToPreferenceResponse(pref)})
}
