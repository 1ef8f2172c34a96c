package controller

import (
	"errors"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/service"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Sessions    service.SessionStore
}

func NewAuthController(authService *service.AuthService, sessions service.SessionStore) *AuthController {
	return &AuthController{
		AuthService: authService,
		Sessions:    sessions,
	}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username          string `json:"username" binding:"required,min=3,max=64"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	PreferredLanguage string `json:"preferredLanguage"`
	GradeLevel        int    `json:"gradeLevel" binding:"omitempty,min=1,max=12"`
	SchoolName        string `json:"schoolName"`
}

// Register godoc
// @Summary Register a new student
// @Description Creates the user account together with its student profile
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Registration details"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 409 {object} util.Response "Username or email already taken"
// @Failure 500 {object} util.Response "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Username:          req.Username,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PreferredLanguage: model.ParseLanguage(req.PreferredLanguage),
		GradeLevel:        req.GradeLevel,
		SchoolName:        req.SchoolName,
	}

	if err := c.AuthService.Register(user, req.Password); err != nil {
		switch {
		case errors.Is(err, util.ErrUsernameTaken):
			util.Error(ctx, 409, "Username already exists")
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, 409, "Email already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a JWT token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login credentials"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Invalid request body"
// @Failure 401 {object} util.Response "Invalid username or password"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, "Invalid username or password")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Logout godoc
// @Summary Log out
// @Description Drops the caller's server-side session state
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Sessions.ClearSession(ctx.Request.Context(), claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Logged out"})
}
