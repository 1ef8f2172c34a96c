package controller

import (
	"errors"
	"strconv"

	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MentorController struct {
	MentorService *service.MentorService
}

func NewMentorController(mentorService *service.MentorService) *MentorController {
	return &MentorController{MentorService: mentorService}
}

// ListMentors godoc
// @Summary Browse mentors
// @Description Lists available mentors together with the caller's existing mentor relationships
// @Tags mentors
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.MentorOverview} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/mentors [get]
func (c *MentorController) ListMentors(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.MentorService.Overview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// RequestMentor godoc
// @Summary Request a mentor
// @Description Opens a pending relationship with the mentor; requesting the same mentor twice returns the existing relationship with an informational message
// @Tags mentors
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Mentor ID"
// @Success 200 {object} util.Response{data=object} "Already requested"
// @Success 201 {object} util.Response{data=object} "Request created"
// @Failure 400 {object} util.Response "Invalid mentor id"
// @Failure 401 {object} util.Response "Unauthorized"
// @Failure 404 {object} util.Response "Mentor not found"
// @Router /api/request_mentor/{id} [post]
func (c *MentorController) RequestMentor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	mentorID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid mentor id")
		return
	}

	rel, err := c.MentorService.RequestMentor(uint(mentorID), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMentorRequested):
			util.Success(ctx, gin.H{
				"message":      "You have already requested this mentor",
				"relationship": rel,
			})
		case errors.Is(err, util.ErrMentorNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"relationship": rel})
}
