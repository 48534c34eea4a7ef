package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmind/internal/models/request_models"
	"tripmind/internal/services"
	"tripmind/pkg/utils"
)

type BookingController struct {
	expertService services.ExpertServiceInterface
}

func NewBookingController(expertService services.ExpertServiceInterface) *BookingController {
	return &BookingController{expertService: expertService}
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateExpertBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ctrl.expertService.CreateBooking(c.Request.Context(), c.GetString("user_email"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Booking created")
}

func (ctrl *BookingController) ListMyBookings(c *gin.Context) {
	resp, err := ctrl.expertService.ListMyBookings(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Bookings fetched")
}
