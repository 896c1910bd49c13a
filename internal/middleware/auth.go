package middleware

import (
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/auth"
)

// BearerToken lifts the Authorization header onto the request context.
// It never rejects by itself: operations that need a token return their
// own sign-in error when none is present.
func BearerToken() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && strings.TrimSpace(token) != "" {
			ctx := auth.WithToken(c.Request.Context(), strings.TrimSpace(token))
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
