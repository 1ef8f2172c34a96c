package controller

import (
	"errors"

	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// GetAssessment godoc
// @Summary Latest learning style assessment
// @Description Returns the caller's most recent assessment, or an empty result when none was taken yet
// @Tags assessment
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/assessment [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	latest, err := c.AssessmentService.LatestForUser(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Success(ctx, gin.H{"assessment": nil})
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"assessment": latest})
}

// SubmitAssessmentRequest maps question ids to the chosen option
// ("visual", "auditory" or "kinesthetic").
// swagger:model SubmitAssessmentRequest
type SubmitAssessmentRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitAssessment godoc
// @Summary Submit a learning style assessment
// @Description Scores the answers, stores the result and updates the student's learning style
// @Tags assessment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitAssessmentRequest true "Assessment answers"
// @Success 200 {object} util.Response{data=service.AssessmentResult} "Success"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/learning_style_assessment [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(req.Answers) == 0 {
		util.BadRequest(ctx, "answers must not be empty")
		return
	}

	result, err := c.AssessmentService.SubmitAssessment(claims.UserID, req.Answers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
