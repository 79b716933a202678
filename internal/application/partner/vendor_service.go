package partner

import (
	"context"

	"github.com/ledgerflow/backend/internal/domain/partner"
	"go.uber.org/zap"
)

// VendorService handles vendor-related business operations
type VendorService struct {
	vendorRepo partner.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		logger:     logger.Named("vendor_service"),
	}
}

// List returns every vendor in id order
func (s *VendorService) List(ctx context.Context) ([]partner.Vendor, error) {
	return s.vendorRepo.FindAll(ctx)
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, id uint) (*partner.Vendor, error) {
	return s.vendorRepo.FindByID(ctx, id)
}

// Create validates the draft and stores a new vendor
func (s *VendorService) Create(ctx context.Context, draft partner.VendorDraft) (*partner.Vendor, error) {
	vendor, err := partner.NewVendor(draft)
	if err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("Vendor created", zap.Uint("vendor_id", vendor.ID))
	return vendor, nil
}

// Update replaces every writable field of an existing vendor
func (s *VendorService) Update(ctx context.Context, id uint, draft partner.VendorDraft) (*partner.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vendor.Apply(draft); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// Delete removes a vendor and detaches it from expenses and payments
func (s *VendorService) Delete(ctx context.Context, id uint) error {
	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Vendor deleted", zap.Uint("vendor_id", id))
	return nil
}
