package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tharanikumar/medvault/domain"
)

// AuthServiceImpl implements domain.AuthService. Each flow is a small
// state machine carried by an AuthSession value: Idle (no session or no
// pending identity), CodeSent (pending identity + purpose), Verified
// (authenticated, pending state cleared).
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	config      AuthConfig
}

type AuthConfig struct {
	SessionTTL time.Duration
	AccessTTL  time.Duration
	// PasswordGatedLogin gates login-code issuance behind the credential
	// check. Off by default: the login OTP is then the sole factor.
	PasswordGatedLogin bool
	// DevMode surfaces undelivered codes in-band. Never enable outside
	// test or demo deployments.
	DevMode bool
}

// NewAuthService creates a new auth flow controller
func NewAuthService(
	accountRepo domain.AccountRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	config AuthConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		config:      config,
	}
}

// StartRegistration implements domain.AuthService
func (s *AuthServiceImpl) StartRegistration(ctx context.Context, email, password string, role domain.Role) (*domain.OTPChallenge, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrIdentityExists
	}
	if err != nil && err != domain.ErrAccountNotFound {
		return nil, err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		Verified:     false,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.sendCode(ctx, account.ID, domain.PurposeRegistration)
}

// VerifyRegistration implements domain.AuthService
func (s *AuthServiceImpl) VerifyRegistration(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
	session, err := s.pendingSession(ctx, sessionID, domain.PurposeRegistration)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Validate(ctx, session.PendingAccountID, domain.PurposeRegistration, code); err != nil {
		// Session stays in CodeSent; the caller may retry
		return nil, err
	}

	if err := s.accountRepo.MarkVerified(ctx, session.PendingAccountID); err != nil {
		return nil, fmt.Errorf("failed to mark account verified: %w", err)
	}

	account, err := s.accountRepo.FindByID(ctx, session.PendingAccountID)
	if err != nil {
		return nil, err
	}

	return s.authenticate(ctx, session, account)
}

// StartLogin implements domain.AuthService
func (s *AuthServiceImpl) StartLogin(ctx context.Context, email, password string) (*domain.OTPChallenge, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if s.config.PasswordGatedLogin && !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.sendCode(ctx, account.ID, domain.PurposeLogin)
}

// VerifyLogin implements domain.AuthService
func (s *AuthServiceImpl) VerifyLogin(ctx context.Context, sessionID, code string) (*domain.AuthResult, error) {
	session, err := s.pendingSession(ctx, sessionID, domain.PurposeLogin)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Validate(ctx, session.PendingAccountID, domain.PurposeLogin, code); err != nil {
		return nil, err
	}

	// A successful login-OTP cycle re-confirms email ownership
	if err := s.accountRepo.MarkVerified(ctx, session.PendingAccountID); err != nil {
		return nil, fmt.Errorf("failed to mark account verified: %w", err)
	}
	if err := s.accountRepo.SetLastLogin(ctx, session.PendingAccountID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to stamp last login: %w", err)
	}

	account, err := s.accountRepo.FindByID(ctx, session.PendingAccountID)
	if err != nil {
		return nil, err
	}

	return s.authenticate(ctx, session, account)
}

// Refresh implements domain.AuthService
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.Authenticated || session.AccountID != claims.AccountID {
		return nil, domain.ErrSessionExpired
	}

	account, err := s.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID, account.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		Account:         account,
		SessionID:       session.ID,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		ExpiresIn:       int64(s.config.AccessTTL.Seconds()),
		RequiresProfile: !account.ProfileComplete,
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Account implements domain.AuthService
func (s *AuthServiceImpl) Account(ctx context.Context, accountID uint) (*domain.Account, error) {
	return s.accountRepo.FindByID(ctx, accountID)
}

// sendCode issues a code and creates a CodeSent session for it
func (s *AuthServiceImpl) sendCode(ctx context.Context, accountID uint, purpose domain.Purpose) (*domain.OTPChallenge, error) {
	code, delivered, err := s.otpSvc.Issue(ctx, accountID, purpose)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.AuthSession{
		ID:               uuid.NewString(),
		PendingAccountID: accountID,
		PendingPurpose:   purpose,
		CreatedAt:        now,
		ExpiresAt:        now.Add(s.config.SessionTTL),
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	challenge := &domain.OTPChallenge{
		SessionID: session.ID,
		AccountID: accountID,
		Purpose:   purpose,
		Delivered: delivered,
	}
	if !delivered && s.config.DevMode {
		challenge.DevCode = code
	}
	return challenge, nil
}

// pendingSession loads a session and checks it holds a pending identity
// for the given purpose; anything else is treated as an expired session
// that sends the caller back to the flow's entry step
func (s *AuthServiceImpl) pendingSession(ctx context.Context, sessionID string, purpose domain.Purpose) (*domain.AuthSession, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionExpired
	}
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.PendingAccountID == 0 || session.PendingPurpose != purpose {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// authenticate narrows the session to the verified identity and issues
// the token pair
func (s *AuthServiceImpl) authenticate(ctx context.Context, session *domain.AuthSession, account *domain.Account) (*domain.AuthResult, error) {
	session.PendingAccountID = 0
	session.PendingPurpose = ""
	session.AccountID = account.ID
	session.Role = account.Role
	session.Authenticated = true
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.ID, account.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(account.ID, account.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		Account:         account,
		SessionID:       session.ID,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		ExpiresIn:       int64(s.config.AccessTTL.Seconds()),
		RequiresProfile: !account.ProfileComplete,
	}, nil
}
