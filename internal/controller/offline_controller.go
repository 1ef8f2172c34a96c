package controller

import (
	"errors"
	"strconv"

	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OfflineController struct {
	OfflineService *service.OfflineService
}

func NewOfflineController(offlineService *service.OfflineService) *OfflineController {
	return &OfflineController{OfflineService: offlineService}
}

// ListOfflineContent godoc
// @Summary List packaged offline content
// @Tags offline
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.OfflineContent} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/offline [get]
func (c *OfflineController) ListOfflineContent(ctx *gin.Context) {
	items, err := c.OfflineService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// PackageContent godoc
// @Summary Package content for offline use
// @Description Uploads the content body to storage and records it; packaging the same content twice is a no-op
// @Tags offline
// @Produce  json
// @Security ApiKeyAuth
// @Param   contentId path int true "Content ID"
// @Success 200 {object} util.Response{data=model.OfflineContent} "Success"
// @Failure 400 {object} util.Response "Invalid content id"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Content not found"
// @Router /api/offline/{contentId} [post]
func (c *OfflineController) PackageContent(ctx *gin.Context) {
	contentID, err := strconv.ParseUint(ctx.Param("contentId"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	item, err := c.OfflineService.Package(ctx.Request.Context(), uint(contentID))
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, item)
}
