// Package identity reads the caller identity that the authenticating proxy
// in front of the API passes in request headers.
package identity

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
)

type contextKey string

const userKey contextKey = "ledger-user"

// User is the caller of a request.
type User struct {
	ID    string `json:"id" example:"auth0|5f7c8ec7c33c6c004bbafe82"`
	Email string `json:"email" example:"jane@example.com"`
	Name  string `json:"name" example:"Jane Doe"`
}

// Middleware stores the caller identity in the context. If the request has
// no identity and devUserID is set, the request is made as devUserID.
func Middleware(devUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := User{
			ID:    strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Email: strings.TrimSpace(c.GetHeader(HeaderUserEmail)),
			Name:  strings.TrimSpace(c.GetHeader(HeaderUserName)),
		}

		if user.ID == "" && devUserID != "" {
			log.Debug().Str("request-id", requestid.Get(c)).Str("user", devUserID).Msg("using development user")
			user = User{ID: devUserID, Name: "Development user"}
		}

		if user.ID != "" {
			c.Set(string(userKey), user)
		}

		c.Next()
	}
}

// Required aborts requests without caller identity with 401 Unauthorized.
// OPTIONS requests are always allowed.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if _, ok := FromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "you need to be authenticated for this request",
			})
			return
		}

		c.Next()
	}
}

// FromContext returns the caller of the request.
func FromContext(c *gin.Context) (User, bool) {
	v, ok := c.Get(string(userKey))
	if !ok {
		return User{}, false
	}

	user, ok := v.(User)
	return user, ok
}

// UserID returns the ID of the caller, or an empty string if the request has
// no identity.
func UserID(c *gin.Context) string {
	user, _ := FromContext(c)
	return user.ID
}
