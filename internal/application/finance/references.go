package finance

import (
	"context"
	"errors"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/domain/shared"
)

// references checks that optional foreign ids point at existing rows
type references struct {
	vendors   partner.VendorRepository
	customers partner.CustomerRepository
	invoices  invoicing.InvoiceRepository
}

func (r references) vendor(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	_, err := r.vendors.FindByID(ctx, *id)
	return unknownAs(err, finance.ErrUnknownVendor)
}

func (r references) customer(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	_, err := r.customers.FindByID(ctx, *id)
	return unknownAs(err, finance.ErrUnknownCustomer)
}

func (r references) invoice(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := r.invoices.ExistsByID(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return finance.ErrUnknownInvoice
	}
	return nil
}

// unknownAs turns a missing referenced row into a validation error
func unknownAs(err, replacement error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return replacement
	}
	return err
}
