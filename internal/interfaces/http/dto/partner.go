package dto

import (
	"strings"

	"github.com/ledgerflow/backend/internal/domain/partner"
)

// AddressPayload is a customer or vendor address block
type AddressPayload struct {
	Street  string `json:"street" binding:"max=255"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zipCode" binding:"max=50"`
	Country string `json:"country" binding:"max=100"`
}

func (a AddressPayload) toDomain() partner.Address {
	return partner.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func addressPayload(a partner.Address) AddressPayload {
	return AddressPayload{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// CustomerRequest is the body of customer create and update
type CustomerRequest struct {
	Name           string         `json:"name" binding:"max=255"`
	Email          string         `json:"email" binding:"max=255"`
	Phone          string         `json:"phone" binding:"max=50"`
	Company        string         `json:"company" binding:"max=255"`
	Address        AddressPayload `json:"address"`
	BillingAddress AddressPayload `json:"billingAddress"`
	TaxID          string         `json:"taxId" binding:"max=100"`
	PaymentTerms   string         `json:"paymentTerms" binding:"max=50"`
	CreditLimit    Number         `json:"creditLimit"`
	Notes          string         `json:"notes"`
	IsActive       *bool          `json:"isActive"`
}

// Draft converts the request to the domain input
func (r CustomerRequest) Draft() partner.CustomerDraft {
	return partner.CustomerDraft{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Company:        r.Company,
		Address:        r.Address.toDomain(),
		BillingAddress: r.BillingAddress.toDomain(),
		TaxID:          r.TaxID,
		PaymentTerms:   r.PaymentTerms,
		CreditLimit:    r.CreditLimit.Ptr(),
		Notes:          r.Notes,
		IsActive:       r.IsActive,
	}
}

// CustomerResponse is a customer as listed by the API
type CustomerResponse struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Company        string         `json:"company"`
	Address        AddressPayload `json:"address"`
	BillingAddress AddressPayload `json:"billingAddress"`
	TaxID          string         `json:"taxId"`
	PaymentTerms   string         `json:"paymentTerms"`
	CreditLimit    *float64       `json:"creditLimit"`
	Notes          string         `json:"notes"`
	IsActive       bool           `json:"isActive"`
	CreatedAt      string         `json:"createdAt"`
}

// NewCustomerResponse maps a domain customer
func NewCustomerResponse(c *partner.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Company:        c.Company,
		Address:        addressPayload(c.Address),
		BillingAddress: addressPayload(c.BillingAddress),
		TaxID:          c.TaxID,
		PaymentTerms:   c.PaymentTerms,
		Notes:          c.Notes,
		IsActive:       c.IsActive,
		CreatedAt:      Timestamp(c.CreatedAt),
	}
	if c.CreditLimit != nil {
		limit := c.CreditLimit.InexactFloat64()
		resp.CreditLimit = &limit
	}
	return resp
}

// NewCustomerListResponse maps a list of customers
func NewCustomerListResponse(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = NewCustomerResponse(&customers[i])
	}
	return out
}

// VendorRequest is the body of vendor create and update. Name and
// ContactName are accepted as aliases of Company and Contact.
type VendorRequest struct {
	Company       string         `json:"company" binding:"max=255"`
	Name          string         `json:"name" binding:"max=255"`
	Contact       string         `json:"contact" binding:"max=255"`
	ContactName   string         `json:"contactName" binding:"max=255"`
	Email         string         `json:"email" binding:"max=255"`
	Phone         string         `json:"phone" binding:"max=50"`
	Address       AddressPayload `json:"address"`
	TaxID         string         `json:"taxId" binding:"max=100"`
	PaymentTerms  string         `json:"paymentTerms" binding:"max=50"`
	Category      string         `json:"category" binding:"max=100"`
	AccountNumber string         `json:"accountNumber" binding:"max=100"`
	Notes         string         `json:"notes"`
	IsActive      *bool          `json:"isActive"`
}

// Draft converts the request to the domain input
func (r VendorRequest) Draft() partner.VendorDraft {
	return partner.VendorDraft{
		Company:       firstNonEmpty(r.Company, r.Name),
		ContactName:   firstNonEmpty(r.Contact, r.ContactName),
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address.toDomain(),
		TaxID:         r.TaxID,
		PaymentTerms:  r.PaymentTerms,
		Category:      r.Category,
		AccountNumber: r.AccountNumber,
		Notes:         r.Notes,
		IsActive:      r.IsActive,
	}
}

// VendorResponse is a vendor as listed by the API. Contact is null when
// blank and Address is null when every part is empty.
type VendorResponse struct {
	ID            uint            `json:"id"`
	Company       string          `json:"company"`
	Contact       *string         `json:"contact"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       *AddressPayload `json:"address"`
	TaxID         string          `json:"taxId"`
	PaymentTerms  string          `json:"paymentTerms"`
	Category      string          `json:"category"`
	AccountNumber string          `json:"accountNumber"`
	Notes         string          `json:"notes"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     string          `json:"createdAt"`
}

// NewVendorResponse maps a domain vendor
func NewVendorResponse(v *partner.Vendor) VendorResponse {
	resp := VendorResponse{
		ID:            v.ID,
		Company:       strings.TrimSpace(v.Company),
		Contact:       nonBlank(v.ContactName),
		Email:         v.Email,
		Phone:         v.Phone,
		TaxID:         v.TaxID,
		PaymentTerms:  v.PaymentTerms,
		Category:      v.Category,
		AccountNumber: v.AccountNumber,
		Notes:         v.Notes,
		IsActive:      v.IsActive,
		CreatedAt:     Timestamp(v.CreatedAt),
	}
	if !v.Address.IsEmpty() {
		addr := addressPayload(v.Address)
		resp.Address = &addr
	}
	return resp
}

// NewVendorListResponse maps a list of vendors
func NewVendorListResponse(vendors []partner.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vendors))
	for i := range vendors {
		out[i] = NewVendorResponse(&vendors[i])
	}
	return out
}

// VendorSummary is the vendor embedded in expenses and payments
type VendorSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"`
}

// CustomerSummary is the customer embedded in expenses and payments
type CustomerSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Email   *string `json:"email"`
}

func newVendorSummary(s *partner.Summary) *VendorSummary {
	if s == nil {
		return nil
	}
	return &VendorSummary{ID: s.ID, Name: s.Name, Company: s.Company, Contact: nonBlank(s.Contact), Email: nonBlank(s.Email)}
}

func newCustomerSummary(s *partner.Summary) *CustomerSummary {
	if s == nil {
		return nil
	}
	return &CustomerSummary{ID: s.ID, Name: s.Name, Company: s.Company, Email: nonBlank(s.Email)}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func nonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
