package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	securityapp "github.com/ledgerflow/backend/internal/application/security"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
	"github.com/ledgerflow/backend/internal/interfaces/http/middleware"
)

// SecurityHandler handles the admin password, tokens and first-run setup
type SecurityHandler struct {
	BaseHandler
	securityService *securityapp.Service
}

// NewSecurityHandler creates a new SecurityHandler
func NewSecurityHandler(securityService *securityapp.Service) *SecurityHandler {
	return &SecurityHandler{securityService: securityService}
}

// Setup godoc
// @Summary  Set the admin password and company profile of a fresh install
// @Tags     security
// @Accept   json
// @Produce  json
// @Param    request body dto.SetupRequest true "Setup request"
// @Success  200 {object} dto.StatusResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /setup [post]
func (h *SecurityHandler) Setup(c *gin.Context) {
	var req dto.SetupRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.securityService.Setup(c.Request.Context(), req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}

// GetSettings godoc
// @Summary  Get the security settings, null before anything is stored
// @Tags     security
// @Produce  json
// @Success  200 {object} dto.SecuritySettingsResponse
// @Router   /security/settings [get]
func (h *SecurityHandler) GetSettings(c *gin.Context) {
	sec, err := h.securityService.Settings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewSecuritySettingsResponse(sec))
}

// UpdateSettings godoc
// @Summary   Update the two-factor preferences
// @Tags      security
// @Accept    json
// @Produce   json
// @Param     request body dto.SecuritySettingsRequest true "Preferences"
// @Success   200 {object} dto.StatusResponse
// @Security  BearerAuth
// @Router    /security/settings [post]
func (h *SecurityHandler) UpdateSettings(c *gin.Context) {
	var req dto.SecuritySettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	id, err := h.securityService.UpdateSettings(c.Request.Context(), req.Enable2FA, req.TwoFactorMethod)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OKWithID(id))
}

// SetPassword godoc
// @Summary  Set the first admin password
// @Tags     security
// @Accept   json
// @Produce  json
// @Param    request body dto.PasswordRequest true "Password"
// @Success  200 {object} dto.StatusResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /security/set-password [post]
func (h *SecurityHandler) SetPassword(c *gin.Context) {
	var req dto.PasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.securityService.SetPassword(c.Request.Context(), req.Password); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}

// ChangePassword godoc
// @Summary  Replace the admin password and revoke every issued token
// @Tags     security
// @Accept   json
// @Produce  json
// @Param    request body dto.ChangePasswordRequest true "Passwords"
// @Success  200 {object} dto.StatusResponse
// @Failure  400 {object} dto.ErrorResponse
// @Router   /security/change-password [post]
func (h *SecurityHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.securityService.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.StatusResponse{Status: dto.StatusOK, Message: "Password updated successfully"})
}

// Login godoc
// @Summary  Exchange the admin password for a bearer token
// @Tags     security
// @Accept   json
// @Produce  json
// @Param    request body dto.PasswordRequest true "Password"
// @Success  200 {object} dto.LoginResponse
// @Failure  401 {object} dto.ErrorResponse
// @Failure  403 {object} dto.ErrorResponse
// @Router   /security/login [post]
func (h *SecurityHandler) Login(c *gin.Context) {
	var req dto.PasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	token, err := h.securityService.Login(c.Request.Context(), req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.LoginResponse{Token: token.Value, ExpiresAt: dto.Timestamp(token.ExpiresAt)})
}

// VerifyToken godoc
// @Summary  Report whether a token is still accepted
// @Tags     security
// @Accept   json
// @Produce  json
// @Param    request body dto.VerifyTokenRequest true "Token"
// @Success  200 {object} dto.VerifyTokenResponse
// @Failure  401 {object} dto.VerifyTokenResponse
// @Router   /security/verify-token [post]
func (h *SecurityHandler) VerifyToken(c *gin.Context) {
	var req dto.VerifyTokenRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result := h.securityService.VerifyToken(c.Request.Context(), req.Token)
	if !result.Valid {
		c.JSON(http.StatusUnauthorized, dto.VerifyTokenResponse{Valid: false, Error: result.Error})
		return
	}
	h.Success(c, dto.VerifyTokenResponse{Valid: true, User: result.User})
}

// Logout godoc
// @Summary   Revoke the presented token
// @Tags      security
// @Produce   json
// @Success   200 {object} dto.StatusResponse
// @Failure   401 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /security/logout [post]
func (h *SecurityHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
		return
	}
	if err := h.securityService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}
