package controller

import (
	"errors"
	"time"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VisionController struct {
	Detector        service.VisionDetector
	LearningService *service.LearningService
	EmotionRepo     *repository.EmotionRepository
}

func NewVisionController(detector service.VisionDetector, learningService *service.LearningService, emotionRepo *repository.EmotionRepository) *VisionController {
	return &VisionController{
		Detector:        detector,
		LearningService: learningService,
		EmotionRepo:     emotionRepo,
	}
}

// DetectEmotion godoc
// @Summary Detect emotion from a webcam frame
// @Description Runs the detector on the uploaded frame and logs the result for the caller
// @Tags vision
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   image formData file true "Webcam frame"
// @Success 200 {object} util.Response{data=service.EmotionResult} "Success"
// @Failure 400 {object} util.Response "Missing image"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 500 {object} util.Response "Internal server error"
// @Router /api/emotion_detection [post]
func (c *VisionController) DetectEmotion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image is required")
		return
	}
	defer file.Close()

	result, err := c.Detector.DetectEmotion(file, header.Filename)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	log := &model.EmotionLog{
		UserID:     claims.UserID,
		Timestamp:  time.Now(),
		Emotion:    model.ParseEmotion(result.Emotion),
		Confidence: result.Confidence,
		Context:    "emotion_detection",
	}
	if err := c.EmotionRepo.Create(log); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// TrackEngagement godoc
// @Summary Track engagement during a learning activity
// @Description Runs the detector on the uploaded frame and appends the sample to the caller's active activity
// @Tags vision
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   image formData file true "Webcam frame"
// @Success 200 {object} util.Response{data=service.EngagementResult} "Success"
// @Failure 400 {object} util.Response "Missing image or no active activity"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 500 {object} util.Response "Internal server error"
// @Router /api/track_engagement [post]
func (c *VisionController) TrackEngagement(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image is required")
		return
	}
	defer file.Close()

	result, err := c.Detector.TrackEngagement(file, header.Filename)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	sample := model.EngagementSample{
		Timestamp:       time.Now(),
		Emotion:         model.ParseEmotion(result.Emotion),
		EngagementLevel: result.EngagementLevel,
	}

	if _, err := c.LearningService.RecordEngagement(ctx.Request.Context(), claims.UserID, sample); err != nil {
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

	util.Success(ctx, result)
}
