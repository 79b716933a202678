package handler

import (
	"github.com/gin-gonic/gin"
	invoicingapp "github.com/ledgerflow/backend/internal/application/invoicing"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *invoicingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *invoicingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List godoc
// @Summary   List invoices, newest first
// @Tags      invoices
// @Produce   json
// @Success   200 {array} dto.InvoiceResponse
// @Security  BearerAuth
// @Router    /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceListResponse(invoices))
}

// GetByID godoc
// @Summary   Get an invoice with its line items
// @Tags      invoices
// @Produce   json
// @Param     id path int true "Invoice ID"
// @Success   200 {object} dto.InvoiceResponse
// @Failure   404 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceResponse(invoice))
}

// Create godoc
// @Summary   Create an invoice, computing its totals
// @Tags      invoices
// @Accept    json
// @Produce   json
// @Param     request body dto.InvoiceRequest true "Invoice"
// @Success   201 {object} dto.InvoiceResponse
// @Failure   400 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	invoice, err := h.invoiceService.Create(c.Request.Context(), req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewInvoiceResponse(invoice))
}

// Update godoc
// @Summary   Replace an invoice and its line items
// @Tags      invoices
// @Accept    json
// @Produce   json
// @Param     id path int true "Invoice ID"
// @Param     request body dto.InvoiceRequest true "Invoice"
// @Success   200 {object} dto.InvoiceResponse
// @Failure   400 {object} dto.ErrorResponse
// @Failure   404 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.InvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewInvoiceResponse(invoice))
}

// Delete godoc
// @Summary   Delete an invoice
// @Tags      invoices
// @Produce   json
// @Param     id path int true "Invoice ID"
// @Success   200 {object} dto.StatusResponse
// @Failure   404 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}
