package enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sumit-51/FITCORE/internal/api"
	"github.com/Sumit-51/FITCORE/internal/gym"

	"github.com/gin-gonic/gin"
)

// ProfileLookup resolves the acting user's cached profile from the request
// context. Implemented by the user package's resolver.
type ProfileLookup interface {
	AssignedGymID(c *gin.Context) (int, bool)
	Identity(c *gin.Context) (userID int, name, email string, ok bool)
}

type Handler struct {
	service  Service
	profiles ProfileLookup
}

func NewHandler(service Service, profiles ProfileLookup) *Handler {
	return &Handler{
		service:  service,
		profiles: profiles,
	}
}

// @Summary      Submit an enrollment request
// @Description  Member: request to join a gym; amount is the gym's monthly fee
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body enrollment.EnrollRequest true "Enrollment payload"
// @Success      201 {object} enrollment.Enrollment
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /enrollments [post]
func (h *Handler) Enroll(c *gin.Context) {
	userID, name, email, ok := h.profiles.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: api.BindingErrors(err),
		})
		return
	}

	created, err := h.service.Enroll(c.Request.Context(), userID, name, email, req)
	if err != nil {
		switch {
		case errors.Is(err, gym.ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case errors.Is(err, ErrGymInactive):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Gym is not accepting enrollments"})
		case errors.Is(err, ErrMissingTransaction):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Online payment requires a transaction id"})
		case errors.Is(err, ErrDuplicateEnrollment):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already have an open enrollment for this gym"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to submit enrollment"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List own enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} enrollment.Enrollment
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /enrollments/me [get]
func (h *Handler) MyEnrollments(c *gin.Context) {
	userID, _, _, ok := h.profiles.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	enrollments, err := h.service.MyEnrollments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch enrollments"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// @Summary      List gym members
// @Description  Gym admin: enrollments of the assigned gym, newest first
// @Tags         admin,enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success      200 {array} enrollment.Enrollment
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	gymID, ok := h.profiles.AssignedGymID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No gym assigned to this admin"})
		return
	}

	status := Status(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid status filter"})
		return
	}

	enrollments, err := h.service.ListForGym(c.Request.Context(), gymID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// @Summary      Approve an enrollment
// @Tags         admin,enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        enrollmentID path int true "Enrollment ID"
// @Success      200 {object} enrollment.Enrollment
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/enrollments/{enrollmentID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, DecisionApproved)
}

// @Summary      Reject an enrollment
// @Tags         admin,enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        enrollmentID path int true "Enrollment ID"
// @Success      200 {object} enrollment.Enrollment
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/enrollments/{enrollmentID}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, DecisionRejected)
}

func (h *Handler) decide(c *gin.Context, decision Decision) {
	verifierID, _, _, ok := h.profiles.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	enrollmentID, err := strconv.Atoi(c.Param("enrollmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid enrollment ID"})
		return
	}

	updated, err := h.service.Decide(c.Request.Context(), enrollmentID, decision, verifierID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Enrollment not found"})
		case errors.Is(err, ErrAlreadyDecided):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Enrollment has already been decided"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update enrollment"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary      Gym dashboard
// @Description  Gym admin: gym profile plus member and revenue statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} enrollment.DashboardResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	gymID, ok := h.profiles.AssignedGymID(c)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No gym assigned to this admin"})
		return
	}

	dashboard, err := h.service.GymDashboard(c.Request.Context(), gymID)
	if err != nil {
		switch {
		case errors.Is(err, gym.ErrGymNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load dashboard"})
		}
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// @Summary      System overview
// @Description  Super admin: aggregates across every gym
// @Tags         superadmin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} enrollment.OverviewResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /superadmin/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}
