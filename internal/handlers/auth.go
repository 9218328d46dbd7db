package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/auth"
	"github.com/Ahmad-Raza810/blog-application/internal/services"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	userResp, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusCreated, "User registered successfully", userResp)
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	tokenPair, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Login successful", tokenPair)
}

// RefreshToken handles token refresh requests.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Refresh token is required")
		return
	}

	tokenPair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "Token refreshed successfully", tokenPair)
}

// Logout revokes the caller's refresh tokens. It never fails for an
// unauthenticated caller; the middleware is not applied to this route,
// the identity comes from the optional bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString(auth.ContextUserIDKey)

	status, err := h.authService.Logout(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, status, nil)
}

// Profile returns the authenticated user's own record.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.GetString(auth.ContextUserIDKey)

	userResp, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusOK, "User profile", userResp)
}
