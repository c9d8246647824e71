package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/veecerts/veevault/internal/config"
)

type contextKey string

const principalContextKey contextKey = "veevaultPrincipal"

// Principal is the opaque authenticated caller reference supplied by the
// hosting runtime. It is never parsed, only compared and stored.
type Principal string

// String returns the textual form of the principal.
func (p Principal) String() string { return string(p) }

// Validator verifies bearer tokens issued by the hosting runtime and
// extracts the caller principal from the subject claim.
type Validator struct {
	secret  []byte
	parser  *jwt.Parser
	nowFunc func() time.Time
}

// NewValidator creates a Validator from identity configuration.
func NewValidator(cfg config.IdentityConfig) *Validator {
	return &Validator{
		secret:  []byte(cfg.TokenSecret),
		parser:  jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
		nowFunc: time.Now,
	}
}

// ValidateToken checks the token signature and expiry and returns the
// principal carried in the subject claim.
func (v *Validator) ValidateToken(tokenString string) (Principal, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrUnauthenticated
	}

	parsed, err := v.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrUnauthenticated
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrUnauthenticated
	}

	if expFloat, ok := claims["exp"].(float64); ok {
		if time.Unix(int64(expFloat), 0).Before(v.nowFunc()) {
			return "", ErrUnauthenticated
		}
	}

	return Principal(sub), nil
}

// Middleware validates bearer tokens and injects the caller principal.
func Middleware(validator *Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "missing authorization header"})
			return
		}

		token := extractBearerToken(authHeader)
		if token == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid authorization header"})
			return
		}

		principal, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(string(principalContextKey), principal)
		c.Next()
	}
}

// CurrentPrincipal extracts the authenticated principal from the context.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(string(principalContextKey))
	if !exists {
		return "", false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// RequirePrincipal fetches the authenticated principal, rejecting blanks.
func RequirePrincipal(c *gin.Context) (Principal, bool) {
	principal, ok := CurrentPrincipal(c)
	if !ok || principal == "" {
		return "", false
	}
	return principal, true
}

func extractBearerToken(header string) string {
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
