package controller

import (
	"errors"

	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	UserService *service.UserService
}

func NewProfileController(userService *service.UserService) *ProfileController {
	return &ProfileController{UserService: userService}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the account fields and the student profile
// @Tags profile
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserProfile} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) || errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// UpdateProfileRequest carries the editable profile fields. GradeLevel is
// an integer and rejected at binding time when the client sends junk.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	PreferredLanguage  string `json:"preferredLanguage"`
	GradeLevel         int    `json:"gradeLevel" binding:"omitempty,min=1,max=12"`
	SchoolName         string `json:"schoolName"`
	SubjectsOfInterest string `json:"subjectsOfInterest"`
	RequiresVoiceNav   bool   `json:"requiresVoiceNav"`
	RequiresLargeText  bool   `json:"requiresLargeText"`
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Overwrites the editable account and student profile fields
// @Tags profile
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} util.Response{data=service.UserProfile} "Success"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Profile not found"
// @Router /api/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(claims.UserID, service.ProfileUpdate{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PreferredLanguage:  req.PreferredLanguage,
		GradeLevel:         req.GradeLevel,
		SchoolName:         req.SchoolName,
		SubjectsOfInterest: req.SubjectsOfInterest,
		RequiresVoiceNav:   req.RequiresVoiceNav,
		RequiresLargeText:  req.RequiresLargeText,
	})
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) || errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, updated)
}
