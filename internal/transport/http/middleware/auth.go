package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-blog-api/internal/domain"
)

const identityKey = "identity"

// TokenVerifier turns a raw bearer token into the identity it encodes.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Authenticate resolves the caller's identity from the Authorization
// header and attaches it to the request context. The token's embedded
// role is trusted as-is; no user lookup happens here, so a role change
// only takes effect once the old token expires.
func Authenticate(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			Fail(c, domain.ErrUnauthorized("Invalid token."))
			return
		}
		ident, err := v.Verify(token)
		if err != nil {
			e := domain.ErrUnauthorized("Invalid token.")
			e.Err = err
			Fail(c, e)
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireRoles gates a route group on a fixed permitted role set. An
// empty set admits everything; otherwise the resolved identity's role
// must be a member. A missing or unrecognized role is denied, never
// treated as absent.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	permitted := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		permitted[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if len(permitted) == 0 {
			c.Next()
			return
		}
		ident, ok := IdentityFrom(c)
		if !ok {
			Fail(c, domain.ErrForbidden("Access is denied."))
			return
		}
		if _, ok := permitted[ident.Role]; !ok {
			Fail(c, domain.ErrForbidden("Access is denied."))
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Authenticate.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	ident, ok := v.(domain.Identity)
	return ident, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
