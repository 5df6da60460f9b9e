package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests about the authenticated user's own profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// me godoc
// @Summary Current user
// @Description Retrieves the profile of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=map[string]dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *userHandler) me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"user": dto.ToUserResponse(user)})
}

// updateProfile godoc
// @Summary Update profile
// @Description Updates name, email or profile picture. Omitted fields are left unchanged.
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.SuccessResponse{data=map[string]dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /auth/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	updatedUser, err := h.userService.UpdateProfile(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Profile updated", slog.String("user_id", userID))
	respondOK(c, http.StatusOK, "Profile updated successfully", gin.H{"user": dto.ToUserResponse(updatedUser)})
}
