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

// Authenticate verifies credentials and issues a fresh token pair.
func (s *DefaultAccountService) Authenticate(email, password, deviceID string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	pair, err := utils.GenerateTokenPair(rec.ID, rec.Email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate token pair", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	updateDoc := bson.M{
		"token_hash": utils.HashToken(pair.AccessToken),
		"updated_at": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(rec.ID, updateDoc); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	sid := sessionID(rec.ID, deviceID)
	s.Sessions.Store(sid).SetCredentials(rec, pair.AccessToken, pair.RefreshToken)

	return &AuthResponse{
		ID:           rec.ID,
		SessionID:    sid,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Name:         rec.Name,
		Email:        rec.Email,
		Role:         rec.Role,
		Verified:     rec.Verified,
	}, nil
}

// Logout revokes the stored token hash and ends the device session.
func (s *DefaultAccountService) Logout(accountID, deviceID string) error {
	updateDoc := bson.M{"token_hash": "", "updated_at": time.Now()}
	if err := s.Repo.UpdateSetDocument(accountID, updateDoc); err != nil {
		utils.GetLogger().Error("Logout: failed to revoke token hash",
			zap.String("accountID", accountID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}

	// Drop the cached hash so the revoked token stops authenticating now,
	// not when the cache entry expires.
	if cache := utils.GetCacheClient(); cache != nil {
		if err := cache.Del(context.Background(), utils.AuthCachePrefix+accountID).Err(); err != nil {
			utils.GetLogger().Warn("Logout: failed to drop auth cache entry", zap.Error(err))
		}
	}

	s.Sessions.Store(sessionID(accountID, deviceID)).Logout()
	return nil
}
