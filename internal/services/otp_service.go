package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/mailer"
)

// DefaultOTPTTL is how long an issued code stays valid.
const DefaultOTPTTL = 10 * time.Minute

// OTPService drives the email verification state machine:
// Unverified{no challenge} -> Unverified{challenge} -> Verified.
// Verified is sticky; codes are single-use and time-boxed.
type OTPService struct {
	userRepo repositories.UserRepository
	mail     mailer.Mailer
	logger   *logger.Logger
	ttl      time.Duration
}

// NewOTPService creates a new OTPService
func NewOTPService(userRepo repositories.UserRepository, mail mailer.Mailer, logger *logger.Logger, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPService{userRepo: userRepo, mail: mail, logger: logger, ttl: ttl}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// IssueChallenge generates a fresh 6-digit code, overwriting any prior
// challenge so at most one is live per user, and emails it. Email delivery is
// best-effort: a send failure is logged and never surfaced.
func (s *OTPService) IssueChallenge(user *models.User) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(s.ttl)
	user.OTPCode = code
	user.OTPExpiresAt = &expiresAt
	if err := s.userRepo.UpdateUser(user); err != nil {
		return "", err
	}

	if err := s.mail.Send(context.Background(), user.Email, mailer.TemplateVerificationCode,
		map[string]string{"code": code, "username": user.Username}); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("Failed to send verification code email")
	}

	return code, nil
}

// Verify checks a submitted code against the user's live challenge.
//
// It returns false when no challenge exists, when the challenge has expired
// (the expired challenge is cleared so the code can never be retried), or
// when the codes differ. On an exact match the challenge is consumed and the
// user becomes Verified permanently.
func (s *OTPService) Verify(user *models.User, submitted string) (bool, error) {
	if user.OTPCode == "" || user.OTPExpiresAt == nil {
		return false, nil
	}

	if time.Now().After(*user.OTPExpiresAt) {
		user.OTPCode = ""
		user.OTPExpiresAt = nil
		if err := s.userRepo.UpdateUser(user); err != nil {
			return false, err
		}
		return false, nil
	}

	if user.OTPCode != submitted {
		return false, nil
	}

	user.OTPCode = ""
	user.OTPExpiresAt = nil
	user.Verified = true
	if err := s.userRepo.UpdateUser(user); err != nil {
		return false, err
	}
	return true, nil
}
