package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService  service.UserService
	tokenService service.TokenService
}

func NewUserController(userService service.UserService, tokenService service.TokenService) *UserController {
	return &UserController{userService: userService, tokenService: tokenService}
}

// Signup godoc
// @Summary Create a new account
// @Description Registers a user and starts a session (cookie-based).
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body dto.SignupRequest true "Username, email and password"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or taken username/email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/signup [post]
func (c *UserController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userService.Signup(req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Signup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create account"})
		return
	}

	token, err := c.tokenService.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Signup: token issue failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start session"})
		return
	}
	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Msg: "Account created successfully", Username: user.Username})
}

// Login godoc
// @Summary Log in
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Wrong username or password"
// @Router /users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid username or password"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in"})
		return
	}

	token, err := c.tokenService.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: token issue failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start session"})
		return
	}
	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Logged in successfully", Username: user.Username})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the session cookie.
// @Tags Users
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /users/logout [post]
func (c *UserController) Logout(ctx *gin.Context) {
	clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Logged out"})
}

// Me godoc
// @Summary Current session
// @Description Reports whether a user is logged in; never fails, so the app
// @Description can call it unconditionally on start.
// @Tags Users
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	token, err := ctx.Cookie(sessionCookie)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
		return
	}
	session, err := c.tokenService.Parse(token)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: true, Username: session.Username})
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.userService.GetProfile(currentUserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Msg("GetProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update display name and/or profile image
// @Tags Users
// @Accept json
// @Produce json
// @Param fields body dto.UpdateProfileRequest true "Fields to change; omitted fields are kept"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.userService.UpdateProfile(currentUserID(ctx), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Name cannot be empty"})
		case errors.Is(err, service.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		default:
			log.Error().Err(err).Msg("UpdateProfile: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update profile"})
		}
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
