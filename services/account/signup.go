package account

import (
	"fmt"
	"regexp"
	"time"

	"nestora/models"
	"nestora/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

// Register creates a new account, issues a token pair, and sends a
// verification code to the account's email.
func (s *DefaultAccountService) Register(account models.Account, deviceID string) (*AuthResponse, error) {
	if account.Email == "" || account.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if account.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if account.Role != models.RoleAgent && account.Role != models.RoleClient {
		return nil, fmt.Errorf("role must be either agent or client")
	}

	if err := verifyPasswordComplexity(account.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmailWithProjection(account.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	account.PasswordHash = string(hashedPassword)
	account.Password = "" // Clear plain-text password

	account.ID = uuid.New().String()
	account.Verified = false
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := s.Repo.Create(&account); err != nil {
		utils.GetLogger().Error("Failed to create account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	pair, err := utils.GenerateTokenPair(account.ID, account.Email)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token pair", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	account.TokenHash = utils.HashToken(pair.AccessToken)
	if err := s.Repo.Update(&account); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	// Kick off email verification; the account stays usable but unverified.
	if err := utils.InitiateAccountOTP(account.ID, account.Email); err != nil {
		utils.GetLogger().Error("Failed to send verification code", zap.Error(err))
	}

	sid := sessionID(account.ID, deviceID)
	s.Sessions.Store(sid).SetCredentials(&account, pair.AccessToken, pair.RefreshToken)

	return &AuthResponse{
		ID:           account.ID,
		SessionID:    sid,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Name:         account.Name,
		Email:        account.Email,
		Role:         account.Role,
		Verified:     account.Verified,
	}, nil
}
