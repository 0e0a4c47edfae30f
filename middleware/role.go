package middleware

import (
	"net/http"

	accountRepo "nestora/database/repository/account"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// RequireRole restricts a route to accounts with the given role. It must run
// after JWTAuthMiddleware, which sets "accountID" on the context.
func RequireRole(accounts accountRepo.AccountRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetString("accountID")
		if accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		proj := bson.M{"id": 1, "role": 1}
		account, err := accounts.GetByIDWithProjection(accountID, proj)
		if err != nil || account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}

		if account.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions for this operation",
			})
			return
		}
		c.Next()
	}
}
