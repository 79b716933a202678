// Package security implements the single-admin credential lifecycle and
// bearer token issuance, verification and revocation.
package security

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerflow/backend/internal/domain/settings"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/ledgerflow/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// Verification is the outcome of checking a bearer token
type Verification struct {
	Valid bool
	User  string
	Error string
}

const (
	verifyExpired = "Token expired"
	verifyInvalid = "Invalid token"
)

// Service handles password management, login and token checks
type Service struct {
	securityRepo settings.SecurityRepository
	tx           settings.Transactor
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	logger       *zap.Logger
}

// NewService creates a new security Service
func NewService(
	securityRepo settings.SecurityRepository,
	tx settings.Transactor,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *Service {
	return &Service{
		securityRepo: securityRepo,
		tx:           tx,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger.Named("security_service"),
	}
}

// Settings returns the security record, or nil before anything was saved
func (s *Service) Settings(ctx context.Context) (*settings.Security, error) {
	return s.securityRepo.Get(ctx)
}

// UpdateSettings stores the two-factor preferences
func (s *Service) UpdateSettings(ctx context.Context, enable2FA bool, method string) (uint, error) {
	var id uint
	err := s.tx.WithinTransaction(ctx, func(repos settings.Repositories) error {
		sec, err := repos.Security.GetOrCreate(ctx, settings.DefaultSecurity())
		if err != nil {
			return err
		}
		sec.UpdatePreferences(enable2FA, method)
		if err := repos.Security.Save(ctx, sec); err != nil {
			return err
		}
		id = sec.ID
		return nil
	})
	return id, err
}

// SetPassword establishes the first admin password
func (s *Service) SetPassword(ctx context.Context, password string) error {
	if err := settings.ValidatePassword(password); err != nil {
		return err
	}
	err := s.tx.WithinTransaction(ctx, func(repos settings.Repositories) error {
		return setInitialPassword(ctx, repos.Security, password)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Admin password set")
	return nil
}

// ChangePassword replaces the admin password and revokes every token issued
// before the change. A failed revocation rolls the change back.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	var hadPassword bool
	err := s.tx.WithinTransaction(ctx, func(repos settings.Repositories) error {
		sec, err := repos.Security.GetOrCreate(ctx, settings.DefaultSecurity())
		if err != nil {
			return err
		}
		hadPassword = sec.HasPassword()
		if err := sec.ChangePassword(current, next); err != nil {
			return err
		}
		if err := repos.Security.Save(ctx, sec); err != nil {
			return err
		}
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, auth.AdminSubject, s.jwtService.Expiration()); err != nil {
			s.logger.Error("Failed to revoke tokens after password change", zap.Error(err))
			return fmt.Errorf("revoke existing tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		// DomainError.Is matches by code, so compare the sentinel itself
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr == settings.ErrCurrentPasswordIncorrect {
			s.logger.Warn("Password change rejected: current password mismatch")
		}
		return err
	}

	if !hadPassword {
		s.logger.Warn("Password change established the first admin credential")
	}
	s.logger.Info("Admin password changed")
	return nil
}

// Login exchanges the admin password for a signed token
func (s *Service) Login(ctx context.Context, password string) (*auth.Token, error) {
	sec, err := s.securityRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		s.logger.Warn("Login attempted before a password was set")
		return nil, settings.ErrNoPasswordSet
	}
	if err := sec.Authenticate(password); err != nil {
		s.logger.Warn("Login failed", zap.Error(err))
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(auth.AdminSubject)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin logged in", zap.String("jti", token.Claims.ID), zap.Time("expires_at", token.ExpiresAt))
	return token, nil
}

// Authenticate validates a bearer token and checks it against both
// revocation lists. Failures are auth.ErrExpiredToken, auth.ErrInvalidToken
// or auth.ErrTokenBlacklisted.
func (s *Service) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Token blacklist lookup failed", zap.Error(err))
		return nil, auth.ErrInvalidToken
	}
	if revoked {
		return nil, auth.ErrTokenBlacklisted
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.Subject, claims.IssuedAtTime())
	if err != nil {
		s.logger.Error("Subject invalidation lookup failed", zap.Error(err))
		return nil, auth.ErrInvalidToken
	}
	if invalidated {
		return nil, auth.ErrTokenBlacklisted
	}
	return claims, nil
}

// VerifyToken reports whether token is currently accepted
func (s *Service) VerifyToken(ctx context.Context, token string) Verification {
	claims, err := s.Authenticate(ctx, token)
	switch {
	case err == nil:
		return Verification{Valid: true, User: claims.User}
	case errors.Is(err, auth.ErrExpiredToken):
		return Verification{Error: verifyExpired}
	default:
		return Verification{Error: verifyInvalid}
	}
}

// Logout revokes one token for the rest of its lifetime
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.logger.Info("Admin logged out", zap.String("jti", claims.ID))
	return nil
}

// Setup bootstraps a fresh installation with the admin password and the
// company profile. Nothing is written unless both succeed.
func (s *Service) Setup(ctx context.Context, req settings.SetupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(repos settings.Repositories) error {
		if err := setInitialPassword(ctx, repos.Security, req.Password); err != nil {
			return err
		}

		company, err := repos.Company.GetOrCreate(ctx, &settings.Company{})
		if err != nil {
			return err
		}
		company.Name = req.Company.Name
		company.ContactEmail = req.Company.ContactEmail
		company.CompanyPhone = req.Company.CompanyPhone
		company.Mailing = req.Company.Mailing
		return repos.Company.Save(ctx, company)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Initial setup completed", zap.String("company", req.Company.Name))
	return nil
}

func setInitialPassword(ctx context.Context, repo settings.SecurityRepository, password string) error {
	sec, err := repo.GetOrCreate(ctx, settings.DefaultSecurity())
	if err != nil {
		return err
	}
	if err := sec.SetInitialPassword(password); err != nil {
		return err
	}
	return repo.Save(ctx, sec)
}
