package account

import (
	"fmt"

	accountRepo "nestora/database/repository/account"
	"nestora/models"
	"nestora/services/session"
)

// AuthResponse carries the authenticated account's identity and token pair.
type AuthResponse struct {
	ID           string `json:"id"`
	SessionID    string `json:"sessionId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	Verified     bool   `json:"verified"`
}

// AccountService defines the authentication and profile flows.
type AccountService interface {
	// Register creates a new account, issues a token pair, and sends a
	// verification code to the account's email.
	Register(account models.Account, deviceID string) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a fresh token pair.
	Authenticate(email, password, deviceID string) (*AuthResponse, error)
	// VerifyIdentity checks the emailed code, marks the account verified,
	// and rotates the token pair.
	VerifyIdentity(accountID, code, deviceID string) (*AuthResponse, error)
	// GetAccount fetches the profile and refreshes the session's record.
	GetAccount(accountID, deviceID string) (*models.Account, error)
	// RequestPasswordReset sends a reset code to the account's email.
	RequestPasswordReset(email string) error
	// ResetPassword consumes the reset code and installs a new password.
	ResetPassword(email, code, newPassword string) error
	// Logout revokes the stored token hash and ends the device session.
	Logout(accountID, deviceID string) error
}

// DefaultAccountService implements AccountService over MongoDB and the
// session manager.
type DefaultAccountService struct {
	Repo     accountRepo.AccountRepository
	Sessions *session.Manager
}

// sessionID derives the device session identifier used to key the session
// store and its durable credential record.
func sessionID(accountID, deviceID string) string {
	return fmt.Sprintf("%s:%s", accountID, deviceID)
}
