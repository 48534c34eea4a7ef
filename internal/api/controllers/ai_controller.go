package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmind/internal/models/request_models"
	"tripmind/internal/services"
	"tripmind/pkg/utils"
)

type AiController struct {
	aiService services.AiServiceInterface
}

func NewAiController(aiService services.AiServiceInterface) *AiController {
	return &AiController{aiService: aiService}
}

// Chat handles one turn of the trip intake conversation.
func (ctrl *AiController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reply, err := ctrl.aiService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reply, "Chat reply generated")
}

// BuildItinerary generates a full plan from the collected trip details.
func (ctrl *AiController) BuildItinerary(c *gin.Context) {
	var input request_models.FinalPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := ctrl.aiService.BuildItinerary(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Itinerary generated")
}
