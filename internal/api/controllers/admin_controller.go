package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripmind/internal/models/request_models"
	"tripmind/internal/services"
	"tripmind/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{adminService: adminService}
}

func (ctrl *AdminController) GetDashboard(c *gin.Context) {
	resp, err := ctrl.adminService.GetDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Dashboard fetched")
}

func (ctrl *AdminController) ListUsers(c *gin.Context) {
	resp, err := ctrl.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Users fetched")
}

func (ctrl *AdminController) ListAllBookings(c *gin.Context) {
	resp, err := ctrl.adminService.ListAllBookings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Bookings fetched")
}

func (ctrl *AdminController) CreateExpert(c *gin.Context) {
	var req request_models.CreateExpertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ctrl.adminService.CreateExpert(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, resp, "Expert created")
}

func (ctrl *AdminController) ListAllExperts(c *gin.Context) {
	resp, err := ctrl.adminService.ListAllExperts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Experts fetched")
}

func (ctrl *AdminController) SetExpertVisibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid expert id")
		return
	}

	var req request_models.SetExpertVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := ctrl.adminService.SetExpertVisibility(c.Request.Context(), id, req.IsShown)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Expert visibility updated")
}
