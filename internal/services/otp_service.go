package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/logger"
)

// OTPServiceImpl implements domain.OTPService. Codes live in the
// append-only verification ledger; the resend throttle is a Redis TTL key.
type OTPServiceImpl struct {
	codeRepo    domain.CodeRepository
	accountRepo domain.AccountRepository
	generator   domain.CodeGenerator
	mailer      domain.Mailer
	redisClient *redis.Client
	log         *logger.Logger
	config      OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	ResendWindow time.Duration
}

// NewOTPService creates a new verification ledger service
func NewOTPService(
	codeRepo domain.CodeRepository,
	accountRepo domain.AccountRepository,
	generator domain.CodeGenerator,
	mailer domain.Mailer,
	redisClient *redis.Client,
	log *logger.Logger,
	config OTPConfig,
) domain.OTPService {
	return &OTPServiceImpl{
		codeRepo:    codeRepo,
		accountRepo: accountRepo,
		generator:   generator,
		mailer:      mailer,
		redisClient: redisClient,
		log:         log,
		config:      config,
	}
}

// Issue implements domain.OTPService
func (s *OTPServiceImpl) Issue(ctx context.Context, accountID uint, purpose domain.Purpose) (string, bool, error) {
	resendKey := fmt.Sprintf("otp:res:%d:%s", accountID, purpose)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl > 0 {
		return "", false, domain.ErrResendThrottled
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return "", false, err
	}

	code, err := s.generator.Generate(s.config.Length)
	if err != nil {
		return "", false, fmt.Errorf("failed to generate code: %w", err)
	}

	now := time.Now()
	record := &domain.VerificationCode{
		AccountID: accountID,
		Code:      code,
		Purpose:   purpose,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.config.TTL),
	}
	if err := s.codeRepo.Append(ctx, record); err != nil {
		return "", false, fmt.Errorf("failed to record code: %w", err)
	}

	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return "", false, fmt.Errorf("failed to set resend throttle: %w", err)
	}

	// Delivery failure is absorbed: the code stays valid and the caller
	// decides whether to surface it in-band (dev builds only).
	delivered := true
	if err := s.mailer.SendCode(account.Email, code, purpose); err != nil {
		delivered = false
		s.log.WithField("account_id", accountID).WithField("purpose", string(purpose)).
			WithError(err).Error("code delivery failed")
	}

	return code, delivered, nil
}

// Validate implements domain.OTPService
func (s *OTPServiceImpl) Validate(ctx context.Context, accountID uint, purpose domain.Purpose, code string) error {
	latest, err := s.codeRepo.FindLatestActive(ctx, accountID, purpose)
	if err != nil {
		return err
	}

	if latest.Code != code {
		return domain.ErrInvalidOrExpiredCode
	}

	// Expiry is evaluated lazily here, never by a background sweep
	if !latest.Active(time.Now()) {
		return domain.ErrInvalidOrExpiredCode
	}

	consumed, err := s.codeRepo.Consume(ctx, latest.ID)
	if err != nil {
		return fmt.Errorf("failed to consume code: %w", err)
	}
	if !consumed {
		// A concurrent validate won the compare-and-swap
		return domain.ErrInvalidOrExpiredCode
	}

	return nil
}
