package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/utils"
)

// SendOTP mails a password reset code to a registered address. Only the
// hash of the code is stored.
func (u *UserUC) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return models.ErrMissingFields
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := utils.GenerateNumericCode(u.cfg.OTP.Length)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	now := u.now().UTC()
	otp := &models.OTP{
		Email:     email,
		CodeHash:  utils.HashSHA256(code),
		CreatedAt: now,
		ExpiresAt: now.Add(u.cfg.OTP.Expiry),
	}
	if err := u.otpRepo.SaveOTP(ctx, otp, u.cfg.OTP.Expiry); err != nil {
		return err
	}

	if err := u.userGW.SendOTPEmail(ctx, email, user.Name, code, u.cfg.OTP.Expiry); err != nil {
		logger.Error("Failed to deliver OTP",
			logger.String("email", utils.MaskEmail(email)),
			logger.ErrorField(err))
		if delErr := u.otpRepo.DeleteOTP(ctx, email); delErr != nil {
			logger.Warn("Failed to discard undelivered OTP",
				logger.String("email", utils.MaskEmail(email)),
				logger.ErrorField(delErr))
		}
		return models.ErrOTPDeliveryFailed
	}

	logger.Info("OTP issued",
		logger.String("email", utils.MaskEmail(email)))
	return nil
}

// VerifyOTP checks code against the stored hash. Each mismatch uses up an
// attempt; once they run out the entry is discarded. A match opens a short
// window in which the password can be reset.
func (u *UserUC) VerifyOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	if email == "" || code == "" {
		return models.ErrMissingFields
	}

	otp, err := u.otpRepo.GetOTP(ctx, email)
	if err != nil {
		return err
	}

	now := u.now()
	if otp.Expired(now) {
		u.discardOTP(ctx, email)
		return models.ErrOTPNotFound
	}
	if otp.Attempts >= u.cfg.OTP.MaxAttempts {
		u.discardOTP(ctx, email)
		return models.ErrOTPAttemptsExceeded
	}

	if !utils.ConstantTimeEqual(otp.CodeHash, utils.HashSHA256(code)) {
		otp.Attempts++
		if otp.Attempts >= u.cfg.OTP.MaxAttempts {
			u.discardOTP(ctx, email)
			return models.ErrOTPAttemptsExceeded
		}
		if err := u.otpRepo.SaveOTP(ctx, otp, otp.ExpiresAt.Sub(now)); err != nil {
			return err
		}
		return models.ErrOTPInvalid
	}

	otp.Verified = true
	otp.ExpiresAt = now.Add(u.cfg.OTP.ResetWindow).UTC()
	if err := u.otpRepo.SaveOTP(ctx, otp, u.cfg.OTP.ResetWindow); err != nil {
		return err
	}

	logger.Info("OTP verified",
		logger.String("email", utils.MaskEmail(email)))
	return nil
}

// ResetPassword sets a new password after a verified OTP and consumes it
func (u *UserUC) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = normalizeEmail(email)
	if email == "" || newPassword == "" {
		return models.ErrMissingFields
	}
	if len(newPassword) < minPasswordLength {
		return models.ErrWeakPassword
	}

	otp, err := u.otpRepo.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrOTPNotFound) {
			return models.ErrOTPNotVerified
		}
		return err
	}
	if !otp.Verified || otp.Expired(u.now()) {
		return models.ErrOTPNotVerified
	}

	hash, err := u.hashPassword([]byte(newPassword))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.userRepo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return err
	}

	u.discardOTP(ctx, email)

	logger.Info("Password reset",
		logger.String("email", utils.MaskEmail(email)))
	return nil
}

func (u *UserUC) discardOTP(ctx context.Context, email string) {
	if err := u.otpRepo.DeleteOTP(ctx, email); err != nil {
		logger.Warn("Failed to delete OTP",
			logger.String("email", utils.MaskEmail(email)),
			logger.ErrorField(err))
	}
}
