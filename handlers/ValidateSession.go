package handlers

import (
	"net/http"
	"strings"
	"time"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateSession validates an access token
// @Summary Validate session
// @Description Validate the bearer token of the current session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/validate-session [post]
func ValidateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := bearerEmail(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session valid", "email": email})
	}
}

// RequireAuth guards the protected routes: a valid bearer token must be
// present, and the email claim is stored on the context for handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := bearerEmail(c)
		if !ok {
			c.Abort()
			return
		}
		c.Set("user_email", email)
		c.Next()
	}
}

// bearerEmail extracts and validates the Authorization header, writing
// the error response itself when invalid.
func bearerEmail(c *gin.Context) (string, bool) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing Authorization header"})
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization header missing token"})
		return "", false
	}

	parsedToken, err := utils.ValidateJWT(token)
	if err != nil || !parsedToken.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return "", false
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return "", false
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().Unix() > int64(exp) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
		return "", false
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email claim missing or invalid"})
		return "", false
	}
	return email, true
}
