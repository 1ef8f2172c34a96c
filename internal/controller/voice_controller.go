package controller

import (
	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VoiceController struct {
	VoiceService *service.VoiceService
}

func NewVoiceController(voiceService *service.VoiceService) *VoiceController {
	return &VoiceController{VoiceService: voiceService}
}

// swagger:model VoiceCommandRequest
type VoiceCommandRequest struct {
	Command string `json:"command" binding:"required"`
}

// HandleCommand godoc
// @Summary Route a voice command
// @Description Maps a transcribed voice command to a navigation target or a spoken reply
// @Tags voice
// @Accept  json
// @Produce  json
// @Param   body body VoiceCommandRequest true "Transcribed command"
// @Success 200 {object} util.Response{data=service.VoiceCommand} "Success"
// @Failure 400 {object} util.Response "Missing command"
// @Router /api/voice_command [post]
func (c *VoiceController) HandleCommand(ctx *gin.Context) {
	var req VoiceCommandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.VoiceService.Route(req.Command))
}
