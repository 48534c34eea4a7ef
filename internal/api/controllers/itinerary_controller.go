package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripmind/internal/models/request_models"
	"tripmind/internal/services"
	"tripmind/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (ctrl *ItineraryController) SaveItinerary(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ctrl.itineraryService.SaveItinerary(c.Request.Context(), c.GetString("user_email"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Itinerary saved")
}

func (ctrl *ItineraryController) GetItinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary id")
		return
	}

	resp, err := ctrl.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_email"), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary fetched")
}

func (ctrl *ItineraryController) ListItineraries(c *gin.Context) {
	resp, err := ctrl.itineraryService.ListItineraries(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itineraries fetched")
}

func (ctrl *ItineraryController) DeleteItinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary id")
		return
	}

	if err := ctrl.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("user_email"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted")
}
