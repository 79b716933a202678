package dto

import (
	"github.com/ledgerflow/backend/internal/domain/settings"
)

// CompanyAddressPayload is a mailing or physical address of the company
type CompanyAddressPayload struct {
	Address1   string `json:"address1" binding:"max=255"`
	Address2   string `json:"address2" binding:"max=255"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"max=100"`
	PostalCode string `json:"postalCode" binding:"max=50"`
	Country    string `json:"country" binding:"max=100"`
}

func (a CompanyAddressPayload) toDomain() settings.CompanyAddress {
	return settings.CompanyAddress{
		Address1:   a.Address1,
		Address2:   a.Address2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func companyAddressPayload(a settings.CompanyAddress) CompanyAddressPayload {
	return CompanyAddressPayload{
		Address1:   a.Address1,
		Address2:   a.Address2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// CompanyRequest is the body of the company upsert. CompanyName takes
// precedence over Name.
type CompanyRequest struct {
	CompanyName  string                `json:"companyName" binding:"max=255"`
	Name         string                `json:"name" binding:"max=255"`
	ContactEmail string                `json:"contactEmail" binding:"max=255"`
	CompanyPhone string                `json:"companyPhone" binding:"max=50"`
	Mailing      CompanyAddressPayload `json:"mailing"`
	Physical     CompanyAddressPayload `json:"physical"`
}

// ToDomain converts the request to the company profile
func (r CompanyRequest) ToDomain() settings.Company {
	return settings.Company{
		Name:         firstNonEmpty(r.CompanyName, r.Name),
		ContactEmail: r.ContactEmail,
		CompanyPhone: r.CompanyPhone,
		Mailing:      r.Mailing.toDomain(),
		Physical:     r.Physical.toDomain(),
	}
}

// CompanyResponse is the stored company profile
type CompanyResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	ContactEmail string                `json:"contactEmail"`
	CompanyPhone string                `json:"companyPhone"`
	Mailing      CompanyAddressPayload `json:"mailing"`
	Physical     CompanyAddressPayload `json:"physical"`
}

// NewCompanyResponse maps the company profile, nil when none is stored
func NewCompanyResponse(c *settings.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		ContactEmail: c.ContactEmail,
		CompanyPhone: c.CompanyPhone,
		Mailing:      companyAddressPayload(c.Mailing),
		Physical:     companyAddressPayload(c.Physical),
	}
}

// TaxOrgPayload describes the organisation for tax purposes
type TaxOrgPayload struct {
	EntityType string `json:"entityType" binding:"max=50"`
	TaxID      string `json:"taxId" binding:"max=100"`
	Country    string `json:"country" binding:"max=100"`
	Region     string `json:"region" binding:"max=100"`
}

// TaxRateRequest is one submitted tax rate
type TaxRateRequest struct {
	Name     string `json:"name" binding:"max=100"`
	Rate     Number `json:"rate"`
	Compound bool   `json:"compound"`
}

// TaxSettingsRequest is the body of the tax settings upsert. More than five
// rates is a validation error.
type TaxSettingsRequest struct {
	Org            TaxOrgPayload    `json:"org"`
	DefaultTaxRate Number           `json:"defaultTaxRate"`
	Rates          []TaxRateRequest `json:"rates" binding:"dive"`
}

// ToDomain converts the request to the tax settings
func (r TaxSettingsRequest) ToDomain() settings.Tax {
	rates := make([]settings.TaxRate, len(r.Rates))
	for i, rate := range r.Rates {
		rates[i] = settings.TaxRate{Name: rate.Name, Rate: rate.Rate.OrZero(), Compound: rate.Compound}
	}
	return settings.Tax{
		Org: settings.TaxOrg{
			EntityType: r.Org.EntityType,
			TaxID:      r.Org.TaxID,
			Country:    r.Org.Country,
			Region:     r.Org.Region,
		},
		DefaultTaxRate: r.DefaultTaxRate.OrZero(),
		Rates:          rates,
	}
}

// TaxRateResponse is one stored, named tax rate
type TaxRateResponse struct {
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Compound bool    `json:"compound"`
}

// TaxSettingsResponse is the stored tax configuration
type TaxSettingsResponse struct {
	Org            TaxOrgPayload     `json:"org"`
	DefaultTaxRate float64           `json:"defaultTaxRate"`
	Rates          []TaxRateResponse `json:"rates"`
}

// NewTaxSettingsResponse maps the tax settings, nil when none are stored.
// Rates without a name are left out.
func NewTaxSettingsResponse(t *settings.Tax) *TaxSettingsResponse {
	if t == nil {
		return nil
	}
	named := t.NamedRates()
	resp := &TaxSettingsResponse{
		Org: TaxOrgPayload{
			EntityType: t.Org.EntityType,
			TaxID:      t.Org.TaxID,
			Country:    t.Org.Country,
			Region:     t.Org.Region,
		},
		DefaultTaxRate: t.DefaultTaxRate.InexactFloat64(),
		Rates:          make([]TaxRateResponse, len(named)),
	}
	for i, rate := range named {
		resp.Rates[i] = TaxRateResponse{Name: rate.Name, Rate: rate.Rate.InexactFloat64(), Compound: rate.Compound}
	}
	return resp
}

// NotificationSettingsPayload is both the body and the response of the
// notification settings endpoints
type NotificationSettingsPayload struct {
	EnableEmail  bool   `json:"enableEmail"`
	EmailAddress string `json:"emailAddress" binding:"max=255"`
	EnableSMS    bool   `json:"enableSms"`
	PhoneNumber  string `json:"phoneNumber" binding:"max=50"`
}

// ToDomain converts the payload to the notification settings
func (p NotificationSettingsPayload) ToDomain() settings.Notification {
	return settings.Notification{
		EnableEmail:  p.EnableEmail,
		EmailAddress: p.EmailAddress,
		EnableSMS:    p.EnableSMS,
		PhoneNumber:  p.PhoneNumber,
	}
}

// NewNotificationSettingsResponse maps the notification settings, nil when
// none are stored
func NewNotificationSettingsResponse(n *settings.Notification) *NotificationSettingsPayload {
	if n == nil {
		return nil
	}
	return &NotificationSettingsPayload{
		EnableEmail:  n.EnableEmail,
		EmailAddress: n.EmailAddress,
		EnableSMS:    n.EnableSMS,
		PhoneNumber:  n.PhoneNumber,
	}
}

// SecuritySettingsRequest is the body of the security settings update
type SecuritySettingsRequest struct {
	Enable2FA       bool   `json:"enable2fa"`
	TwoFactorMethod string `json:"twoFactorMethod" binding:"max=20"`
}

// SecuritySettingsResponse never exposes the password hash
type SecuritySettingsResponse struct {
	Enable2FA       bool   `json:"enable2fa"`
	TwoFactorMethod string `json:"twoFactorMethod"`
	HasPassword     bool   `json:"hasPassword"`
}

// NewSecuritySettingsResponse maps the security settings, nil when none are
// stored
func NewSecuritySettingsResponse(s *settings.Security) *SecuritySettingsResponse {
	if s == nil {
		return nil
	}
	return &SecuritySettingsResponse{
		Enable2FA:       s.Enable2FA,
		TwoFactorMethod: string(s.TwoFactorMethod),
		HasPassword:     s.HasPassword(),
	}
}

// PasswordRequest carries a single password for set-password and login.
// bcrypt only considers the first 72 bytes, so longer input is refused.
type PasswordRequest struct {
	Password string `json:"password" binding:"max=72"`
}

// ChangePasswordRequest is the body of change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"max=72"`
	NewPassword     string `json:"newPassword" binding:"max=72"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// VerifyTokenRequest is the body of verify-token
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse reports whether a token is accepted
type VerifyTokenResponse struct {
	Valid bool   `json:"valid"`
	User  string `json:"user,omitempty"`
	Error string `json:"error,omitempty"`
}

// SetupCompanyPayload is the company part of the first-run setup
type SetupCompanyPayload struct {
	Name         string                `json:"name" binding:"max=255"`
	ContactEmail string                `json:"contactEmail" binding:"max=255"`
	CompanyPhone string                `json:"companyPhone" binding:"max=50"`
	Mailing      CompanyAddressPayload `json:"mailing"`
}

// SetupRequest is the body of the first-run setup
type SetupRequest struct {
	Password string              `json:"password" binding:"max=72"`
	Company  SetupCompanyPayload `json:"company"`
}

// ToDomain converts the request to the bootstrap input
func (r SetupRequest) ToDomain() settings.SetupRequest {
	return settings.SetupRequest{
		Password: r.Password,
		Company: settings.Company{
			Name:         r.Company.Name,
			ContactEmail: r.Company.ContactEmail,
			CompanyPhone: r.Company.CompanyPhone,
			Mailing:      r.Company.Mailing.toDomain(),
		},
	}
}
