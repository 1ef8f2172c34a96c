package controller

import (
	"errors"

	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Student dashboard
// @Description Profile, recent activities, achievements, streak and recommended content in one call
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.Build(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, dashboard)
}
