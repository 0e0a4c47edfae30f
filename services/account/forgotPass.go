package account

import (
	"context"
	"fmt"
	"time"

	"nestora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RequestPasswordReset sends a reset code to the account's email.
func (s *DefaultAccountService) RequestPasswordReset(email string) error {
	rec, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1, "email": 1})
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to fetch account", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset, please try again")
	}
	if rec == nil {
		// Do not reveal whether the address is registered.
		return nil
	}

	if err := utils.InitiateAccountOTP(rec.ID, rec.Email); err != nil {
		utils.GetLogger().Error("RequestPasswordReset: failed to send reset code", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset, please try again")
	}
	return nil
}

// ResetPassword consumes the reset code and installs a new password.
func (s *DefaultAccountService) ResetPassword(email, code, newPassword string) error {
	rec, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to fetch account", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}
	if rec == nil {
		return fmt.Errorf("invalid reset request")
	}

	if err := utils.VerifyAccountOTP(rec.ID, code); err != nil {
		return err
	}

	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	updateDoc := bson.M{
		"password_hash": string(hashed),
		"token_hash":    "", // force re-authentication everywhere
		"updated_at":    time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(rec.ID, updateDoc); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update account", zap.Error(err))
		return fmt.Errorf("failed to reset password, please try again")
	}

	if cache := utils.GetCacheClient(); cache != nil {
		if err := cache.Del(context.Background(), utils.AuthCachePrefix+rec.ID).Err(); err != nil {
			utils.GetLogger().Warn("ResetPassword: failed to drop auth cache entry", zap.Error(err))
		}
	}
	return nil
}
