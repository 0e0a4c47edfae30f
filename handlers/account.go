package handlers

import (
	"net/http"

	"nestora/models"
	"nestora/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes the authentication and profile endpoints.
type AccountHandler struct {
	Service account.AccountService
}

// deviceID pulls the caller's device identifier from the request headers.
func deviceID(c *gin.Context) string {
	return c.GetHeader("X-Device-ID")
}

// RegisterHandler handles POST /api/accounts/register.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	did := deviceID(c)
	if did == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device details: X-Device-ID"})
		return
	}

	var req models.Account
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(req, did)
	if err != nil {
		logger.Error("Account registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler handles POST /api/accounts/login.
func (h *AccountHandler) AuthenticateHandler(c *gin.Context) {
	logger := getLogger(c)

	did := deviceID(c)
	if did == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device details: X-Device-ID"})
		return
	}

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password, did)
	if err != nil {
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyOTPHandler handles POST /api/accounts/verify-otp.
func (h *AccountHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	did := deviceID(c)
	if did == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device details: X-Device-ID"})
		return
	}

	var req struct {
		AccountID string `json:"accountId" binding:"required"`
		Code      string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid OTP request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.VerifyIdentity(req.AccountID, req.Code, did)
	if err != nil {
		logger.Error("OTP verification failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAccountHandler handles GET /api/accounts/me.
func (h *AccountHandler) GetAccountHandler(c *gin.Context) {
	logger := getLogger(c)

	accountID := c.GetString("accountID")
	did := deviceID(c)
	if did == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device details: X-Device-ID"})
		return
	}

	acc, err := h.Service.GetAccount(accountID, did)
	if err != nil {
		logger.Error("Account not found", zap.String("id", accountID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, acc)
}

// RequestPasswordResetHandler handles POST /api/accounts/forgot-password.
func (h *AccountHandler) RequestPasswordResetHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.RequestPasswordReset(req.Email); err != nil {
		logger.Error("Password reset request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Always report success so the endpoint cannot be used to probe emails.
	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent"})
}

// ResetPasswordHandler handles POST /api/accounts/reset-password.
func (h *AccountHandler) ResetPasswordHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email       string `json:"email" binding:"required"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		logger.Error("Password reset failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// LogoutHandler handles POST /api/accounts/logout.
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	accountID := c.GetString("accountID")
	did := deviceID(c)
	if did == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device details: X-Device-ID"})
		return
	}

	if err := h.Service.Logout(accountID, did); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
