package identity

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader is the header carrying the operator API key.
	APIKeyHeader = "X-API-Key"

	// OperatorSubject is the "sub" claim an operator token must carry.
	OperatorSubject = "operator"

	// ContextOperatorClaims is the key used to store token claims in the Gin context.
	ContextOperatorClaims = "operatorClaims"
)

// Authoriz admits operators. A request sending the API key header is checked against apiKey
// alone; any other request needs an "Authorization: Bearer <jwt>" header whose token ts accepts
// and whose subject is OperatorSubject. An empty apiKey or a nil ts disables that method.
func Authoriz(ts i.Tokenizer, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if provided := c.GetHeader(APIKeyHeader); provided != "" {
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				c.Status(http.StatusUnauthorized)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || ts == nil {
			c.Status(http.StatusUnauthorized) // No credentials, or tokens are not accepted.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}
		if sub, _ := claims["sub"].(string); sub != OperatorSubject {
			c.Status(http.StatusForbidden)
			c.Abort()
			return
		}

		c.Set(ContextOperatorClaims, claims)
		c.Next()
	}
}
