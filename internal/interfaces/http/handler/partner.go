package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/ledgerflow/backend/internal/application/partner"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List godoc
// @Summary   List customers
// @Tags      customers
// @Produce   json
// @Success   200 {array} dto.CustomerResponse
// @Security  BearerAuth
// @Router    /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCustomerListResponse(customers))
}

// GetByID godoc
// @Summary   Get a customer
// @Tags      customers
// @Produce   json
// @Param     id path int true "Customer ID"
// @Success   200 {object} dto.CustomerResponse
// @Failure   404 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewCustomerResponse(customer))
}

// Create godoc
// @Summary   Create a customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Param     request body dto.CustomerRequest true "Customer"
// @Success   201 {object} dto.StatusResponse
// @Failure   400 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Create(c.Request.Context(), req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.OKWithID(customer.ID))
}

// Update godoc
// @Summary   Update a customer
// @Tags      customers
// @Accept    json
// @Produce   json
// @Param     id path int true "Customer ID"
// @Param     request body dto.CustomerRequest true "Customer"
// @Success   200 {object} dto.StatusResponse
// @Failure   404 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OKWithID(customer.ID))
}

// Delete godoc
// @Summary   Delete a customer
// @Tags      customers
// @Produce   json
// @Param     id path int true "Customer ID"
// @Success   200 {object} dto.StatusResponse
// @Failure   404 {object} dto.ErrorResponse
// @Failure   409 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}

// VendorHandler handles vendor-related API endpoints
type VendorHandler struct {
	BaseHandler
	vendorService *partnerapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *partnerapp.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// List returns every vendor
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewVendorListResponse(vendors))
}

// GetByID returns one vendor
func (h *VendorHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	vendor, err := h.vendorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewVendorResponse(vendor))
}

// Create adds a vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req dto.VendorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	vendor, err := h.vendorService.Create(c.Request.Context(), req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.OKWithID(vendor.ID))
}

// Update replaces a vendor's fields
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.VendorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	vendor, err := h.vendorService.Update(c.Request.Context(), id, req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OKWithID(vendor.ID))
}

// Delete removes a vendor. Expenses and payments keep their rows with the
// vendor reference cleared.
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.vendorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}
