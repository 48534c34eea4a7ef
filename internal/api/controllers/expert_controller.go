package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripmind/internal/models/request_models"
	"tripmind/internal/services"
	"tripmind/pkg/utils"
)

type ExpertController struct {
	expertService services.ExpertServiceInterface
}

func NewExpertController(expertService services.ExpertServiceInterface) *ExpertController {
	return &ExpertController{expertService: expertService}
}

// ListExperts is public: only profiles an admin has marked visible appear.
func (ctrl *ExpertController) ListExperts(c *gin.Context) {
	resp, err := ctrl.expertService.ListShownExperts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Experts fetched")
}

func (ctrl *ExpertController) GetExpert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid expert id")
		return
	}

	resp, err := ctrl.expertService.GetExpert(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Expert fetched")
}

func (ctrl *ExpertController) UpdateOwnProfile(c *gin.Context) {
	var req request_models.UpdateExpertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ctrl.expertService.UpdateOwnProfile(c.Request.Context(), c.GetString("user_email"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Profile updated")
}

func (ctrl *ExpertController) ListExpertBookings(c *gin.Context) {
	resp, err := ctrl.expertService.ListExpertBookings(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Bookings fetched")
}

func (ctrl *ExpertController) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ctrl.expertService.UpdateBookingStatus(c.Request.Context(), c.GetString("user_email"), id, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Booking updated")
}
