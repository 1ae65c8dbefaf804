package middleware

import (
	"net/http"
	"strings"

	"storefront/models"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

const (
	// PrincipalContextKey is where the resolved principal lives in the gin context.
	PrincipalContextKey = "principal"
	// ShopperIDContextKey is where the shopper identifier lives in the gin context.
	ShopperIDContextKey = "shopperID"
	// ShopperIDHeader carries the client-generated shopper identifier.
	ShopperIDHeader = "X-Shopper-ID"
)

// OptionalAuthMiddleware extracts the authenticated principal from a bearer
// token when one is presented. Guests pass through untouched; checkout is
// open to everyone, authentication only affects pre-fill and attribution.
// An invalid token is rejected rather than silently downgraded to guest.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.Next()
			return
		}

		sub, email, err := utils.ExtractPrincipalFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization token",
			})
			return
		}

		c.Set(PrincipalContextKey, &models.Principal{ID: sub, Email: email})
		c.Next()
	}
}

// ShopperIDMiddleware resolves the shopper identifier used to key carts and
// checkout sessions: the X-Shopper-ID header, or the authenticated principal
// id when the header is absent.
func ShopperIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		shopperID := strings.TrimSpace(c.GetHeader(ShopperIDHeader))
		if shopperID == "" {
			if p := GetPrincipal(c); p != nil {
				shopperID = p.ID
			}
		}
		if shopperID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing " + ShopperIDHeader + " header",
			})
			return
		}
		c.Set(ShopperIDContextKey, shopperID)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by OptionalAuthMiddleware, or nil.
func GetPrincipal(c *gin.Context) *models.Principal {
	v, exists := c.Get(PrincipalContextKey)
	if !exists {
		return nil
	}
	p, ok := v.(*models.Principal)
	if !ok {
		return nil
	}
	return p
}

// GetShopperID returns the shopper id stored by ShopperIDMiddleware.
func GetShopperID(c *gin.Context) string {
	return c.GetString(ShopperIDContextKey)
}
