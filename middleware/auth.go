// auth.go - Token authentication middleware
// This file implements the authorization gate for every private route
//
// Authentication Flow:
// 1. Extract the token from the x-auth-token header (or Authorization: Bearer)
// 2. Validate token signature and expiration
// 3. Extract user ID from token claims
// 4. Store a typed Identity in the context for handlers

package middleware // Declares the package name

import ( // Import required packages
	"strings" // String operations (for header parsing)

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/auth"   // Token validation

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-auth-token"

const identityKey = "identity"

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID string
}

// TokenParser validates a token and returns the user id it was issued for.
type TokenParser interface {
	Parse(token string) (string, error)
}

var _ TokenParser = (*auth.TokenIssuer)(nil)

// AuthMiddleware - Returns a Gin middleware function for token authentication
// Missing token aborts with 401, a bad or expired one with 403.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		tokenStr := extractToken(c) // STEP 1: read header
		if tokenStr == "" {
			Abort(c, apperr.New(apperr.Unauthenticated, "Missing token"))
			return
		}

		userID, err := tokens.Parse(tokenStr) // STEP 2: verify signature and expiry
		if err != nil {
			Abort(c, apperr.New(apperr.InvalidToken, "Invalid token"))
			return
		}

		c.Set(identityKey, Identity{UserID: userID}) // STEP 3: store caller for handlers
		c.Next()                                     // Continue to next handler (authentication successful)
	}
}

func extractToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(TokenHeader)); token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// CurrentIdentity returns the caller stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// Abort writes err as the JSON reply and stops the handler chain.
func Abort(c *gin.Context, err error) {
	appErr := apperr.From(err)
	_ = c.Error(appErr) // Keeps the cause visible to the request logger
	c.AbortWithStatusJSON(appErr.Kind.Status(), appErr.Body())
}
