package controller

import (
	"errors"
	"strconv"

	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	AuthService     *service.AuthService
	UserService     *service.UserService
	ContentService  *service.ContentService
	LearningService *service.LearningService
	Generator       service.ContentGenerator
}

func NewLearningController(
	authService *service.AuthService,
	userService *service.UserService,
	contentService *service.ContentService,
	learningService *service.LearningService,
	generator service.ContentGenerator,
) *LearningController {
	return &LearningController{
		AuthService:     authService,
		UserService:     userService,
		ContentService:  contentService,
		LearningService: learningService,
		Generator:       generator,
	}
}

// ListContent godoc
// @Summary Browse learning content
// @Description Lists content filtered by subject and a one-level window around the requested difficulty; difficulty defaults to the student's stored level
// @Tags learning
// @Produce  json
// @Security ApiKeyAuth
// @Param   subject query string false "Subject filter, substring match"
// @Param   difficulty query int false "Difficulty 1-5"
// @Success 200 {object} util.Response{data=[]model.LearningContent} "Success"
// @Failure 400 {object} util.Response "Invalid difficulty"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/learn [get]
func (c *LearningController) ListContent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	difficulty := 0
	if raw := ctx.Query("difficulty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "difficulty must be an integer")
			return
		}
		difficulty = parsed
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	items, err := c.ContentService.ListContent(profile.Student, ctx.Query("subject"), difficulty)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, items)
}

// ViewContent godoc
// @Summary View one content item
// @Description Returns the content translated into the viewer's preferred language and opens a learning activity for it
// @Tags learning
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Content ID"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Invalid content id"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Content not found"
// @Router /api/learn/{id} [get]
func (c *LearningController) ViewContent(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	contentID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	content, activity, err := c.ContentService.ViewContent(ctx.Request.Context(), user, uint(contentID))
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"content":    content,
		"activityId": activity.ID,
	})
}

// swagger:model CompleteActivityRequest
type CompleteActivityRequest struct {
	Score *float64 `json:"score" binding:"omitempty,min=0,max=100"`
}

// CompleteActivity godoc
// @Summary Complete the current activity
// @Description Closes the activity opened by the last content view and applies progress updates
// @Tags learning
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CompleteActivityRequest false "Optional score"
// @Success 200 {object} util.Response{data=model.LearningActivity} "Success"
// @Failure 400 {object} util.Response "No active learning activity"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Activity not found"
// @Router /api/complete_activity [post]
func (c *LearningController) CompleteActivity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteActivityRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	activity, err := c.LearningService.CompleteActivity(ctx.Request.Context(), claims.UserID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoActiveActivity):
			util.BadRequest(ctx, "No active learning activity")
		case errors.Is(err, util.ErrActivityNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, activity)
}

// swagger:model GenerateContentRequest
type GenerateContentRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"omitempty,min=1,max=5"`
}

// GenerateContent godoc
// @Summary Generate personalized study material
// @Description Produces a lesson tailored to the caller's learning style, language and grade level
// @Tags learning
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body GenerateContentRequest true "What to generate"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 500 {object} util.Response "Internal server error"
// @Router /api/generate_content [post]
func (c *LearningController) GenerateContent(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GenerateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.GetProfile(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = profile.Student.DifficultyLevel
	}

	generated, err := c.Generator.GeneratePersonalizedContent(service.GenerateContentRequest{
		Topic:         req.Topic,
		Subject:       req.Subject,
		Difficulty:    difficulty,
		LearningStyle: profile.Student.LearningStyle,
		Language:      user.PreferredLanguage,
		GradeLevel:    user.GradeLevel,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"topic":   req.Topic,
		"subject": req.Subject,
		"content": generated,
	})
}
