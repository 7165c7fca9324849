package services

import (
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/apperr"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, credential checks and the verification gate in
// front of login. Token issuance stays in the auth handler.
type AuthService struct {
	userRepo repositories.UserRepository
	otp      *OTPService
	logger   *logger.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, otp *OTPService, logger *logger.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, otp: otp, logger: logger}
}

// Signup registers an unverified local account and issues the first OTP
// challenge. Duplicate username or email fails with Conflict before any
// mutation.
func (s *AuthService) Signup(req *models.SignupRequest) (*models.User, error) {
	if _, err := s.userRepo.GetUserByUsername(req.Username); err == nil {
		return nil, apperr.Conflict("username already taken")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, apperr.Conflict("email already registered")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Verified: false,
		Active:   true,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	// The account exists even if issuing the challenge fails; the user can
	// request a resend.
	if _, err := s.otp.IssueChallenge(user); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to issue signup verification challenge")
	}

	return user, nil
}

// SignIn authenticates an email/password pair. Unverified or deactivated
// accounts are rejected after the credential check; a successful sign-in
// stamps last-login.
func (s *AuthService) SignIn(req *models.SignInRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	if !user.Active {
		return nil, apperr.Forbidden("account is deactivated")
	}
	if !user.Verified {
		return nil, apperr.Forbidden("email not verified")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// VerifyEmail consumes an OTP code for the account. Already-verified
// accounts are rejected here; the verifier itself never re-verifies.
func (s *AuthService) VerifyEmail(req *models.VerifyEmailRequest) error {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return err
	}
	if user.Verified {
		return apperr.Conflict("email already verified")
	}

	ok, err := s.otp.Verify(user, req.Code)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.InvalidInput("invalid or expired verification code")
	}
	return nil
}

// ResendCode issues a fresh challenge, replacing any prior one. Rejected once
// the account is verified.
func (s *AuthService) ResendCode(req *models.ResendCodeRequest) error {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return err
	}
	if user.Verified {
		return apperr.Conflict("email already verified")
	}

	_, err = s.otp.IssueChallenge(user)
	return err
}

// Deactivate soft-deactivates the account; the record is never hard-deleted.
func (s *AuthService) Deactivate(userID uint) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	user.Active = false
	return s.userRepo.UpdateUser(user)
}
