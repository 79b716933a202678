package partner

import (
	"testing"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		c, err := NewCustomer(CustomerDraft{Name: " Jane ", Email: "jane@example.com "})
		require.NoError(t, err)

		assert.Equal(t, "Jane", c.Name)
		assert.Equal(t, "jane@example.com", c.Email)
		assert.Equal(t, "net30", c.PaymentTerms)
		assert.True(t, c.IsActive)
		assert.Nil(t, c.CreditLimit)
	})

	t.Run("honours explicit inactive flag", func(t *testing.T) {
		inactive := false
		c, err := NewCustomer(CustomerDraft{Name: "Jane", Email: "j@x.io", IsActive: &inactive, PaymentTerms: "net15"})
		require.NoError(t, err)

		assert.False(t, c.IsActive)
		assert.Equal(t, "net15", c.PaymentTerms)
	})

	t.Run("requires name and email", func(t *testing.T) {
		_, err := NewCustomer(CustomerDraft{Name: "Jane"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.EqualError(t, err, "Name and email are required")

		_, err = NewCustomer(CustomerDraft{Email: "j@x.io"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestNewVendor(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		v, err := NewVendor(VendorDraft{Company: "Paper Co", Email: "sales@paper.co", ContactName: " Bob "})
		require.NoError(t, err)

		assert.Equal(t, "Bob", v.ContactName)
		assert.Equal(t, "other", v.Category)
		assert.Equal(t, "net30", v.PaymentTerms)
		assert.True(t, v.IsActive)
	})

	t.Run("requires company and email", func(t *testing.T) {
		_, err := NewVendor(VendorDraft{Email: "sales@paper.co"})
		assert.EqualError(t, err, "Company and email are required")
	})
}

func TestSummaries(t *testing.T) {
	c := &Customer{Company: "Acme"}
	c.ID = 3
	assert.Equal(t, "Acme", c.Summary().Name)

	c.Company = ""
	assert.Equal(t, "Unnamed Customer", c.Summary().Name)

	v := &Vendor{ContactName: "Bob"}
	v.ID = 4
	s := v.Summary()
	assert.Equal(t, "Bob", s.Name)
	assert.Equal(t, uint(4), s.ID)

	v.ContactName = ""
	assert.Equal(t, "Unnamed Vendor", v.Summary().Name)
}

func TestAddress_IsEmpty(t *testing.T) {
	assert.True(t, Address{}.IsEmpty())
	assert.False(t, Address{City: "Oslo"}.IsEmpty())
}
