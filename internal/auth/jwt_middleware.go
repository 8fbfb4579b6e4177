package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wizard-2006/CrimeLogix/internal/config"
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"github.com/wizard-2006/CrimeLogix/internal/repositories"
	"github.com/wizard-2006/CrimeLogix/pkg/utils"
)

// TokenCookieName is the HTTP-only cookie the signed credential travels in.
const TokenCookieName = "token"

// Claims defines the custom claims stored in the JWT.
// The JTI is provided by the embedded jwt.RegisteredClaims.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var (
	// tokenDenylist stores the JTIs of logged-out tokens together with their
	// original expiry. In-memory, so a restart clears it; production should
	// back this with a persistent store.
	tokenDenylist = make(map[string]time.Time)
	denylistMutex = &sync.RWMutex{}
)

// AddToDenylist adds a JTI to the denylist and prunes expired entries.
func AddToDenylist(jti string, expiresAt time.Time) {
	denylistMutex.Lock()
	defer denylistMutex.Unlock()

	tokenDenylist[jti] = expiresAt

	now := time.Now()
	for id, exp := range tokenDenylist {
		if now.After(exp) {
			delete(tokenDenylist, id)
		}
	}
}

// IsTokenDenylisted reports whether a JTI is denylisted and not yet expired.
func IsTokenDenylisted(jti string) bool {
	denylistMutex.RLock()
	defer denylistMutex.RUnlock()

	expTime, found := tokenDenylist[jti]
	if !found {
		return false
	}
	return time.Now().Before(expTime)
}

// extractToken pulls the credential from the token cookie, falling back to a
// Bearer Authorization header.
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// JWTMiddleware verifies the signed credential, resolves the identity from
// the users table and attaches it to the request context. Requests without a
// valid, non-denylisted token are rejected with 401; a token whose user no
// longer exists is rejected with 404.
func JWTMiddleware(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondUnauthorizedError(c)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet) {
				utils.RespondUnauthorizedError(c, "Token expired. Please log in again.")
			} else {
				utils.RespondUnauthorizedError(c, "Invalid token. Please log in again.")
			}
			return
		}
		if !token.Valid {
			utils.RespondUnauthorizedError(c, "Invalid token. Please log in again.")
			return
		}

		if claims.ID == "" || IsTokenDenylisted(claims.ID) {
			utils.RespondUnauthorizedError(c, "Token has been invalidated.")
			return
		}

		// The identity may have been deleted since the token was minted.
		user, err := users.FindByID(claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				utils.RespondNotFoundError(c, "User not found.")
			} else {
				utils.RespondInternalServerError(c)
			}
			return
		}

		c.Set("currentUser", user)
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("exp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRoles rejects identities whose role is not in the allow-list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Sprintf("User with this role (%s) is not allowed to access this resource.", role))
	}
}

// CurrentUser returns the identity attached by JWTMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
