package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aura-portal/internal/crypto"
	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/store"
	"github.com/MKhiriev/aura-portal/internal/utils"
	"github.com/MKhiriev/aura-portal/internal/validators"
	"github.com/MKhiriev/aura-portal/models"
)

// LoginResult describes a successful login: which cookie the token belongs
// in is decided by Role.
type LoginResult struct {
	Role  models.Role
	User  string
	Token string
}

// authService authenticates the admin against the settings document and
// members against their applications.
type authService struct {
	sessions              SessionService
	settingsRepository    store.SettingsRepository
	applicationRepository store.ApplicationRepository
	credentials           crypto.CredentialService
	validator             validators.Validator

	logger *logger.Logger
}

func NewAuthService(
	sessions SessionService,
	settingsRepository store.SettingsRepository,
	applicationRepository store.ApplicationRepository,
	credentials crypto.CredentialService,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		sessions:              sessions,
		settingsRepository:    settingsRepository,
		applicationRepository: applicationRepository,
		credentials:           credentials,
		validator:             validator,
		logger:                logger,
	}
}

// Login is the single login entry point.
//
// A username equal to the admin username is checked against the admin
// credential only. Any other username must belong to an application; an
// unknown username and a wrong password both yield ErrInvalidCredentials,
// and a correct password on an unapproved application yields
// ErrAccountPending.
func (a *authService) Login(ctx context.Context, form models.LoginForm) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		return LoginResult{}, fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}

	admin := a.settingsRepository.Load(ctx).Admin
	if form.Username == admin.Username {
		return a.loginAdmin(ctx, admin, form)
	}

	app := models.FindApplication(a.applicationRepository.Load(ctx), form.Username)
	if app == nil {
		log.Info().Str("username", form.Username).Msg("login for unknown user")
		return LoginResult{}, ErrInvalidCredentials
	}
	if !a.credentials.Verify(form.Password, app.Salt, app.Hash) {
		log.Info().Str("username", form.Username).Msg("wrong password")
		return LoginResult{}, ErrInvalidCredentials
	}
	if !app.Approved {
		return LoginResult{}, ErrAccountPending
	}

	// the submitted spelling is kept as the session user
	token, err := a.sessions.Create(ctx, form.Username, models.RoleUser)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Role: models.RoleUser, User: form.Username, Token: token}, nil
}

// AdminLogin accepts the admin credential only.
func (a *authService) AdminLogin(ctx context.Context, form models.LoginForm) (LoginResult, error) {
	admin := a.settingsRepository.Load(ctx).Admin
	if form.Username == "" || form.Username != admin.Username {
		return LoginResult{}, ErrAdminCredentials
	}
	return a.loginAdmin(ctx, admin, form)
}

func (a *authService) loginAdmin(ctx context.Context, admin models.Credential, form models.LoginForm) (LoginResult, error) {
	if !a.credentials.Verify(form.Password, admin.Salt, admin.Hash) {
		logger.FromContext(ctx).Warn().Str("username", form.Username).Msg("wrong admin password")
		return LoginResult{}, ErrAdminCredentials
	}

	token, err := a.sessions.Create(ctx, admin.Username, models.RoleAdmin)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Role: models.RoleAdmin, User: admin.Username, Token: token}, nil
}

// Logout deletes the session in cookieName only if it resolves for role.
func (a *authService) Logout(ctx context.Context, cookieHeader, cookieName string, role models.Role) error {
	if _, ok := a.sessions.Resolve(ctx, cookieHeader, cookieName, role); !ok {
		return nil
	}
	return a.sessions.Delete(ctx, utils.CookieValue(cookieHeader, cookieName))
}
