package handler

import (
	"github.com/gin-gonic/gin"
	settingsapp "github.com/ledgerflow/backend/internal/application/settings"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
)

// SettingsHandler serves the company, tax and notification singletons.
// Each GET answers null until the first save.
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetCompany godoc
// @Summary   Get the company profile
// @Tags      settings
// @Produce   json
// @Success   200 {object} dto.CompanyResponse
// @Security  BearerAuth
// @Router    /company [get]
func (h *SettingsHandler) GetCompany(c *gin.Context) {
	company, err := h.settingsService.Company(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCompanyResponse(company))
}

// SaveCompany godoc
// @Summary   Create or replace the company profile
// @Tags      settings
// @Accept    json
// @Produce   json
// @Param     request body dto.CompanyRequest true "Company"
// @Success   200 {object} dto.StatusResponse
// @Security  BearerAuth
// @Router    /company [post]
func (h *SettingsHandler) SaveCompany(c *gin.Context) {
	var req dto.CompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	id, err := h.settingsService.SaveCompany(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OKWithID(id))
}

// GetTax returns the tax configuration
func (h *SettingsHandler) GetTax(c *gin.Context) {
	tax, err := h.settingsService.Tax(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewTaxSettingsResponse(tax))
}

// SaveTax godoc
// @Summary   Create or replace the tax configuration, keeping at most five rates
// @Tags      settings
// @Accept    json
// @Produce   json
// @Param     request body dto.TaxSettingsRequest true "Tax settings"
// @Success   200 {object} dto.StatusResponse
// @Security  BearerAuth
// @Router    /tax-settings [post]
func (h *SettingsHandler) SaveTax(c *gin.Context) {
	var req dto.TaxSettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	id, err := h.settingsService.SaveTax(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OKWithID(id))
}

// GetNotification returns the notification preferences
func (h *SettingsHandler) GetNotification(c *gin.Context) {
	n, err := h.settingsService.Notification(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewNotificationSettingsResponse(n))
}

// SaveNotification stores the notification preferences
func (h *SettingsHandler) SaveNotification(c *gin.Context) {
	var req dto.NotificationSettingsPayload
	if !h.bindJSON(c, &req) {
		return
	}
	id, err := h.settingsService.SaveNotification(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OKWithID(id))
}
