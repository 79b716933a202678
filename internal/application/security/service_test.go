package security

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ledgerflow/backend/internal/domain/settings"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/ledgerflow/backend/internal/infrastructure/auth"
	"github.com/ledgerflow/backend/internal/infrastructure/config"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	svc   *Service
	repos settings.Repositories
	logs  *observer.ObservedLogs
}

// mockBlacklist fails or records user-wide revocations and delegates the
// rest to the embedded blacklist
type mockBlacklist struct {
	auth.TokenBlacklist
	mock.Mock
}

func (m *mockBlacklist) AddUserTokensToBlacklist(ctx context.Context, subject string, ttl time.Duration) error {
	args := m.Called(ctx, subject, ttl)
	return args.Error(0)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithBlacklist(t, auth.NewInMemoryTokenBlacklist())
}

func newFixtureWithBlacklist(t *testing.T, blacklist auth.TokenBlacklist) *fixture {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	jwtService, err := auth.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "ledgerflow"})
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	repos := persistence.NewSettingsRepositories(db.DB)
	svc := NewService(repos.Security, persistence.NewGormSettingsTransactor(db.DB), jwtService, blacklist, zap.New(core))
	return &fixture{svc: svc, repos: repos, logs: logs}
}

func TestService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	got, err := f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	id, err := f.svc.UpdateSettings(ctx, true, "SMS")
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err = f.svc.Settings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Enable2FA)
	assert.Equal(t, settings.TwoFactorSMS, got.TwoFactorMethod)
	assert.False(t, got.HasPassword())
}

func TestService_SetPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.svc.SetPassword(ctx, "short")
	assert.ErrorIs(t, err, settings.ErrPasswordTooShort)
	sec, err := f.svc.Settings(ctx)
	require.NoError(t, err)
	assert.Nil(t, sec, "invalid input writes nothing")

	require.NoError(t, f.svc.SetPassword(ctx, "correct horse"))

	err = f.svc.SetPassword(ctx, "another password")
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Login(ctx, "whatever1")
	assert.ErrorIs(t, err, settings.ErrNoPasswordSet)

	require.NoError(t, f.svc.SetPassword(ctx, "correct horse"))

	_, err = f.svc.Login(ctx, "wrong password")
	assert.ErrorIs(t, err, settings.ErrInvalidPassword)

	token, err := f.svc.Login(ctx, "correct horse")
	require.NoError(t, err)

	v := f.svc.VerifyToken(ctx, token.Value)
	assert.Equal(t, Verification{Valid: true, User: auth.AdminSubject}, v)

	assert.Equal(t, Verification{Error: "Invalid token"}, f.svc.VerifyToken(ctx, "garbage"))
}

func TestService_VerifyExpiredToken(t *testing.T) {
	f := newFixture(t)
	shortLived, err := auth.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiration: -time.Minute, Issuer: "ledgerflow"})
	require.NoError(t, err)

	token, err := shortLived.GenerateToken(auth.AdminSubject)
	require.NoError(t, err)

	assert.Equal(t, Verification{Error: "Token expired"}, f.svc.VerifyToken(context.Background(), token.Value))
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.svc.SetPassword(ctx, "correct horse"))

	token, err := f.svc.Login(ctx, "correct horse")
	require.NoError(t, err)
	claims, err := f.svc.Authenticate(ctx, token.Value)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, claims))

	_, err = f.svc.Authenticate(ctx, token.Value)
	assert.ErrorIs(t, err, auth.ErrTokenBlacklisted)
	assert.Equal(t, Verification{Error: "Invalid token"}, f.svc.VerifyToken(ctx, token.Value))
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes earlier tokens", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetPassword(ctx, "correct horse"))
		old, err := f.svc.Login(ctx, "correct horse")
		require.NoError(t, err)

		err = f.svc.ChangePassword(ctx, "wrong one", "battery staple")
		assert.ErrorIs(t, err, settings.ErrCurrentPasswordIncorrect)

		require.NoError(t, f.svc.ChangePassword(ctx, "correct horse", "battery staple"))

		_, err = f.svc.Authenticate(ctx, old.Value)
		assert.ErrorIs(t, err, auth.ErrTokenBlacklisted)

		_, err = f.svc.Login(ctx, "correct horse")
		assert.ErrorIs(t, err, settings.ErrInvalidPassword)
		fresh, err := f.svc.Login(ctx, "battery staple")
		require.NoError(t, err)
		assert.True(t, f.svc.VerifyToken(ctx, fresh.Value).Valid)
	})

	t.Run("first credential is accepted and logged", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.ChangePassword(ctx, "anything", "battery staple"))
		assert.Equal(t, 1, f.logs.FilterMessage("Password change established the first admin credential").Len())

		sec, err := f.svc.Settings(ctx)
		require.NoError(t, err)
		assert.True(t, sec.HasPassword())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.ChangePassword(ctx, "", "battery staple")
		assert.ErrorIs(t, err, settings.ErrPasswordsRequired)
	})

	t.Run("only a wrong current password is logged as a mismatch", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetPassword(ctx, "correct horse"))
		const mismatch = "Password change rejected: current password mismatch"

		assert.Equal(t, settings.ErrPasswordTooShort, f.svc.ChangePassword(ctx, "correct horse", "short"))
		assert.Equal(t, settings.ErrPasswordsRequired, f.svc.ChangePassword(ctx, "", "battery staple"))
		assert.Equal(t, settings.ErrPasswordTooLong, f.svc.ChangePassword(ctx, "correct horse", strings.Repeat("é", 40)))
		assert.Zero(t, f.logs.FilterMessage(mismatch).Len())

		assert.Equal(t, settings.ErrCurrentPasswordIncorrect, f.svc.ChangePassword(ctx, "wrong one", "battery staple"))
		assert.Equal(t, 1, f.logs.FilterMessage(mismatch).Len())
	})

	t.Run("failed revocation keeps the old password", func(t *testing.T) {
		blacklist := &mockBlacklist{TokenBlacklist: auth.NewInMemoryTokenBlacklist()}
		blacklist.On("AddUserTokensToBlacklist", mock.Anything, auth.AdminSubject, time.Hour).
			Return(errors.New("redis: connection refused"))
		f := newFixtureWithBlacklist(t, blacklist)
		require.NoError(t, f.svc.SetPassword(ctx, "correct horse"))

		err := f.svc.ChangePassword(ctx, "correct horse", "battery staple")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "revoke existing tokens")
		blacklist.AssertExpectations(t)
		assert.Equal(t, 1, f.logs.FilterMessage("Failed to revoke tokens after password change").Len())

		_, err = f.svc.Login(ctx, "battery staple")
		assert.ErrorIs(t, err, settings.ErrInvalidPassword)
		_, err = f.svc.Login(ctx, "correct horse")
		assert.NoError(t, err)
	})
}

func TestService_Setup(t *testing.T) {
	ctx := context.Background()

	t.Run("writes password and company together", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.Setup(ctx, settings.SetupRequest{
			Password: "correct horse",
			Company: settings.Company{
				Name:         "Acme",
				ContactEmail: "hello@acme.test",
				Mailing:      settings.CompanyAddress{City: "Springfield"},
			},
		})
		require.NoError(t, err)

		company, err := f.repos.Company.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, company)
		assert.Equal(t, "Acme", company.Name)
		assert.Equal(t, "Springfield", company.Mailing.City)

		_, err = f.svc.Login(ctx, "correct horse")
		require.NoError(t, err)
	})

	t.Run("second setup is refused and leaves the company alone", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.Setup(ctx, settings.SetupRequest{Password: "correct horse", Company: settings.Company{Name: "Acme"}}))

		err := f.svc.Setup(ctx, settings.SetupRequest{Password: "battery staple", Company: settings.Company{Name: "Evil"}})
		assert.ErrorIs(t, err, settings.ErrPasswordAlreadySet)

		company, err := f.repos.Company.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Acme", company.Name)
	})

	t.Run("validates before writing", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.Setup(ctx, settings.SetupRequest{Password: "correct horse"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)

		sec, err := f.svc.Settings(ctx)
		require.NoError(t, err)
		assert.Nil(t, sec)
	})
}
