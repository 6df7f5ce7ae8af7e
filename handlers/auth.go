package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"medha-admin/auth"
	"medha-admin/models"
)

type AuthHandler struct {
	creds  auth.CredentialVerifier
	tokens *auth.TokenIssuer
}

func NewAuthHandler(creds auth.CredentialVerifier, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		creds:  creds,
		tokens: tokens,
	}
}

// Login checks the admin credentials and issues a session token. The 401
// body is identical whichever field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	if err := h.creds.Verify(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		logger.Errorf("Failed to sign session token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
