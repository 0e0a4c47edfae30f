package utils

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const otpTTL = 5 * time.Minute

// generateSecureOTP generates a secure random OTP of the specified length.
// It returns a base32 encoded string (without padding) truncated to the desired length.
func generateSecureOTP(length int) (string, error) {
	numBytes := (length*5 + 7) / 8 // Calculate the required number of bytes.
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	otp := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(otp) > length {
		otp = otp[:length]
	}
	return otp, nil
}

// SendVerificationEmail delivers the verification code to the given address.
// Replace the body of this function with your actual mail provider integration.
func SendVerificationEmail(email, message string) error {
	GetLogger().Sugar().Infof("Sending verification email to %s: %s", email, message)
	return nil
}

// InitiateAccountOTP generates a verification code, stores it in Redis with a
// 5-minute TTL, and sends it to the account's email address.
func InitiateAccountOTP(accountID, email string) error {
	otp, err := generateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	otpKey := fmt.Sprintf("otp:%s", accountID)

	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	if err := client.Set(ctx, otpKey, otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to initiate account OTP")
	}

	message := fmt.Sprintf("Your Nestora verification code is: %s. It expires in 5 minutes.", otp)
	if err := SendVerificationEmail(email, message); err != nil {
		GetLogger().Error("Failed to send verification email", zap.Error(err))
		return fmt.Errorf("failed to send verification code")
	}

	GetLogger().Sugar().Infof("Sent verification code to %s for account %s (expires in %v)", email, accountID, otpTTL)
	return nil
}

// VerifyAccountOTP checks the submitted code against the cached one and
// consumes it on success.
func VerifyAccountOTP(accountID, code string) error {
	ctx := context.Background()
	client := GetOTPCacheClient()
	if client == nil {
		return fmt.Errorf("OTP cache client not initialized")
	}

	otpKey := fmt.Sprintf("otp:%s", accountID)
	cached, err := client.Get(ctx, otpKey).Result()
	if err != nil {
		return fmt.Errorf("verification code expired or not found")
	}
	if cached != code {
		return fmt.Errorf("invalid verification code")
	}

	if err := client.Del(ctx, otpKey).Err(); err != nil {
		GetLogger().Error("Failed to consume OTP", zap.Error(err))
	}
	return nil
}
