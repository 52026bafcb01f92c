package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/models"
)

// Register creates a new user account
// @Summary      Register a new user
// @Description  Create a user account with a student or teacher role and receive an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.RegisterRequest true "Account details"
// @Success      201 {object} types.AuthResponse "Account created"
// @Failure      400 {object} types.ErrorResponse "Invalid request payload"
// @Failure      409 {object} types.ErrorResponse "Email already registered"
// @Router       /api/v1/auth/register [post]
func Register(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.RespondValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := deps.UserService.Register(ctx, req.FullName, req.Email, req.Password, models.UserRole(req.Role))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		token, err := deps.AuthService.Generate(user)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.AuthResponse{
			Token: token,
			User:  types.ToUserResponse(user),
		})
	}
}

// Login authenticates a user
// @Summary      Log in
// @Description  Exchange email and password for an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.LoginRequest true "Credentials"
// @Success      200 {object} types.AuthResponse "Authenticated"
// @Failure      400 {object} types.ErrorResponse "Invalid request payload"
// @Failure      401 {object} types.ErrorResponse "Invalid credentials"
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.RespondValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := deps.UserService.Authenticate(ctx, req.Email, req.Password)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		token, err := deps.AuthService.Generate(user)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.AuthResponse{
			Token: token,
			User:  types.ToUserResponse(user),
		})
	}
}

// Me returns the authenticated user's profile
// @Summary      Current user
// @Description  Return the profile of the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.UserResponse "Profile"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Router       /api/v1/auth/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		user, err := deps.UserService.GetByID(ctx, CurrentUserID(c))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToUserResponse(user))
	}
}
