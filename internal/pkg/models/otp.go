package models

import (
	"time"
)

// OTP represents a pending password reset code. Only the SHA-256 hash of
// the code is kept.
type OTP struct {
	Email     string    `json:"email"`
	CodeHash  string    `json:"code_hash"`
	Attempts  int       `json:"attempts"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code can no longer be used at now
func (o *OTP) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// SendOTPRequest represents a request to mail a reset code
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest represents a request to verify a reset code
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest represents a request to set a new password
// after a verified OTP
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
