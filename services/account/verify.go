package account

import (
	"fmt"
	"time"

	"nestora/models"
	"nestora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// VerifyIdentity checks the emailed code, marks the account verified, and
// rotates the token pair.
func (s *DefaultAccountService) VerifyIdentity(accountID, code, deviceID string) (*AuthResponse, error) {
	if err := utils.VerifyAccountOTP(accountID, code); err != nil {
		return nil, err
	}

	rec, err := s.Repo.GetByID(accountID)
	if err != nil {
		utils.GetLogger().Error("VerifyIdentity: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("account not found")
	}

	pair, err := utils.GenerateTokenPair(rec.ID, rec.Email)
	if err != nil {
		utils.GetLogger().Error("VerifyIdentity: failed to generate token pair", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}

	rec.Verified = true
	updateDoc := bson.M{
		"verified":   true,
		"token_hash": utils.HashToken(pair.AccessToken),
		"updated_at": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(rec.ID, updateDoc); err != nil {
		utils.GetLogger().Error("VerifyIdentity: failed to update account", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}

	sid := sessionID(rec.ID, deviceID)
	s.Sessions.Store(sid).IdentityVerified(rec, pair.AccessToken, pair.RefreshToken)

	return &AuthResponse{
		ID:           rec.ID,
		SessionID:    sid,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Name:         rec.Name,
		Email:        rec.Email,
		Role:         rec.Role,
		Verified:     true,
	}, nil
}

// GetAccount fetches the profile and refreshes the session's record.
func (s *DefaultAccountService) GetAccount(accountID, deviceID string) (*models.Account, error) {
	rec, err := s.Repo.GetByIDWithProjection(accountID, bson.M{"password_hash": 0, "token_hash": 0})
	if err != nil {
		utils.GetLogger().Error("GetAccount: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch account, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("account not found")
	}

	s.Sessions.Store(sessionID(accountID, deviceID)).AccountFetched(rec)
	return rec, nil
}
