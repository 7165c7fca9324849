package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record stored in PostgreSQL. The OTP challenge columns
// hold at most one live email-verification code per user.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"size:30;uniqueIndex"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	Password     string     `json:"-"` // bcrypt hash, never serialized
	Verified     bool       `json:"verified" gorm:"default:false"`
	OTPCode      string     `json:"-" gorm:"size:6"`
	OTPExpiresAt *time.Time `json:"-"`
	Active       bool       `json:"active" gorm:"default:true"`
	Role         string     `json:"role" gorm:"size:10;default:user"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// HasLiveChallenge reports whether an unexpired OTP challenge is set.
func (u *User) HasLiveChallenge(now time.Time) bool {
	return u.OTPCode != "" && u.OTPExpiresAt != nil && now.Before(*u.OTPExpiresAt)
}

// UserCompact is the trimmed author/actor representation embedded in feed
// items and notifications.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ToCompact returns the compact representation of the user.
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username}
}

// SignupRequest defines the request body for local registration.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInRequest defines the request body for local authentication.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest defines the request body for OTP verification.
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// ResendCodeRequest defines the request body for re-issuing an OTP challenge.
type ResendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserRequest defines the request body for profile updates.
type UpdateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=30,alphanum"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
