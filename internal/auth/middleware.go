package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireCustomer rejects requests without a valid customer token.
func RequireCustomer(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := verify(issuer, c)
		if !ok {
			return
		}
		if identity.Role != RoleCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Customer access required"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects requests without a valid admin token.
func RequireAdmin(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := verify(issuer, c)
		if !ok {
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func verify(issuer *TokenIssuer, c *gin.Context) (Identity, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
		return Identity{}, false
	}

	identity, err := issuer.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return Identity{}, false
	}
	return identity, true
}

// IdentityFrom returns the identity stored by the middlewares.
func IdentityFrom(c *gin.Context) Identity {
	identity, _ := c.MustGet(identityKey).(Identity)
	return identity
}
