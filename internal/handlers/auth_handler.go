package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wizard-2006/CrimeLogix/internal/auth"
	"github.com/wizard-2006/CrimeLogix/internal/config"
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
	"github.com/wizard-2006/CrimeLogix/pkg/utils"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler wraps the authentication endpoints.
type AuthHandler struct {
	users repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(users repositories.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// LoginPayload is the login request body.
type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// currentUserOrAbort fetches the identity attached by the JWT middleware,
// rejecting the request if it is missing.
func currentUserOrAbort(c *gin.Context) (*models.User, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return nil, false
	}
	return user, true
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a signed JWT, also set as an HTTP-only cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginPayload true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, "Email and password are required")
		return
	}

	user, err := h.users.FindByEmail(payload.Email)
	if err != nil {
		utils.RespondUnauthorizedError(c, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		utils.RespondUnauthorizedError(c, "Invalid email or password")
		return
	}

	expirationTime := time.Now().Add(tokenLifetime)
	claims := &auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "crimelogix",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondInternalServerError(c, "Failed to generate token")
		return
	}

	c.SetCookie(auth.TokenCookieName, tokenString, int(tokenLifetime.Seconds()), "/", "",
		config.AppConfig.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    user,
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the current token and clears the cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
// @Security BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	jtiVal, jtiExists := c.Get("jti")
	expVal, expExists := c.Get("exp")

	jti, okJTI := jtiVal.(string)
	exp, okEXP := expVal.(time.Time)
	if !jtiExists || !expExists || !okJTI || jti == "" || !okEXP {
		utils.RespondValidationError(c, "Logout context error")
		return
	}

	auth.AddToDenylist(jti, exp)
	c.SetCookie(auth.TokenCookieName, "", -1, "/", "", config.AppConfig.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me godoc
// @Summary Current identity
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
