package gym

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sumit-51/FITCORE/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	profiles ProfileLookup
}

// ProfileLookup resolves the acting admin's assigned gym. Implemented by the
// user repository; declared here to keep the dependency one-directional.
type ProfileLookup interface {
	AssignedGymID(c *gin.Context) (int, bool)
}

func NewHandler(service Service, profiles ProfileLookup) *Handler {
	return &Handler{
		service:  service,
		profiles: profiles,
	}
}

// @Summary      Get own gym profile
// @Description  Gym admin: the profile of the assigned gym
// @Tags         admin,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gym [get]
func (h *Handler) GetOwnGym(c *gin.Context) {
	gymID, ok := h.profiles.AssignedGymID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No gym assigned to this admin"})
		return
	}

	gym, err := h.service.GetByID(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		return
	}

	c.JSON(http.StatusOK, gym)
}

// @Summary      Update gym settings
// @Description  Gym admin: update name, contact, UPI id and monthly fee
// @Tags         admin,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.UpdateSettingsRequest true "Settings payload"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/gym [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	gymID, ok := h.profiles.AssignedGymID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No gym assigned to this admin"})
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: api.BindingErrors(err),
		})
		return
	}

	if fields := ValidateSettings(req); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}

	ctx := c.Request.Context()
	gym, err := h.service.UpdateSettings(ctx, gymID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update gym settings"})
		}
		return
	}

	c.JSON(http.StatusOK, gym)
}

// @Summary      List all gyms
// @Description  Super admin: every gym in the system, newest first
// @Tags         superadmin,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Gym
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /superadmin/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// @Summary      Toggle gym active flag
// @Description  Super admin: flip a gym between active and inactive
// @Tags         superadmin,gyms
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Gym ID"
// @Success      200 {object} gym.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /superadmin/gyms/{gymID}/toggle [post]
func (h *Handler) ToggleActive(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	gym, err := h.service.ToggleActive(c.Request.Context(), gymID)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to toggle gym status"})
		}
		return
	}

	c.JSON(http.StatusOK, gym)
}
