package settings

import (
	"strings"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MinPasswordLength is the shortest password accepted
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit, counted in bytes
	MaxPasswordBytes = 72
)

// bcryptCost is a variable so tests can lower it
var bcryptCost = 12

// TwoFactorMethod is the delivery channel for second factor codes
type TwoFactorMethod string

const (
	TwoFactorEmail TwoFactorMethod = "email"
	TwoFactorSMS   TwoFactorMethod = "sms"
)

// NormalizeTwoFactorMethod returns sms for "sms" and email for everything else
func NormalizeTwoFactorMethod(raw string) TwoFactorMethod {
	if TwoFactorMethod(strings.ToLower(strings.TrimSpace(raw))) == TwoFactorSMS {
		return TwoFactorSMS
	}
	return TwoFactorEmail
}

var (
	ErrPasswordRequired         = shared.NewValidationError("Password required")
	ErrPasswordTooShort         = shared.NewValidationError("Password must be at least 8 characters long")
	ErrPasswordTooLong          = shared.NewValidationError("Password must be at most 72 bytes")
	ErrPasswordsRequired        = shared.NewValidationError("Current password and new password are required")
	ErrPasswordAlreadySet       = shared.NewAlreadyExistsError("Password already set")
	ErrCurrentPasswordIncorrect = shared.NewValidationError("Current password is incorrect")
	ErrNoPasswordSet            = shared.NewDomainError(shared.CodeForbidden, "No password set")
	ErrInvalidPassword          = shared.NewDomainError(shared.CodeUnauthorized, "Invalid password")
)

// Security is the singleton holding the admin credential and 2FA preferences.
// An empty PasswordHash means no password has been configured yet.
type Security struct {
	shared.BaseEntity
	PasswordHash    string
	Enable2FA       bool
	TwoFactorMethod TwoFactorMethod
}

// DefaultSecurity is the row created on first access
func DefaultSecurity() *Security {
	return &Security{TwoFactorMethod: TwoFactorEmail}
}

// HasPassword reports whether a credential has been established
func (s *Security) HasPassword() bool {
	return s.PasswordHash != ""
}

// UpdatePreferences sets the two-factor preferences
func (s *Security) UpdatePreferences(enable2FA bool, method string) {
	s.Enable2FA = enable2FA
	s.TwoFactorMethod = NormalizeTwoFactorMethod(method)
}

// SetInitialPassword establishes the first credential. It can succeed only
// once.
func (s *Security) SetInitialPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if s.HasPassword() {
		return ErrPasswordAlreadySet
	}
	return s.storePassword(password)
}

// ChangePassword replaces the credential after verifying the current one.
// When no credential exists yet the new password is accepted as the first
// one.
func (s *Security) ChangePassword(current, next string) error {
	if current == "" || next == "" {
		return ErrPasswordsRequired
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}
	if s.HasPassword() && !s.VerifyPassword(current) {
		return ErrCurrentPasswordIncorrect
	}
	return s.storePassword(next)
}

// Authenticate checks a login attempt against the stored credential
func (s *Security) Authenticate(password string) error {
	if !s.HasPassword() {
		return ErrNoPasswordSet
	}
	if !s.VerifyPassword(password) {
		return ErrInvalidPassword
	}
	return nil
}

// VerifyPassword verifies if the provided password matches
func (s *Security) VerifyPassword(password string) bool {
	if !s.HasPassword() {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password))
	return err == nil
}

func (s *Security) storePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	s.PasswordHash = hash
	return nil
}

// ValidatePassword applies the password policy
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
