package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/veecerts/veevault/internal/config"
)

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateTokenExtractsPrincipal(t *testing.T) {
	validator := NewValidator(config.IdentityConfig{TokenSecret: "test-secret"})

	token := signToken(t, "test-secret", "principal-abc", time.Now().Add(time.Hour))
	principal, err := validator.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if principal != Principal("principal-abc") {
		t.Fatalf("expected principal-abc, got %s", principal)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	validator := NewValidator(config.IdentityConfig{TokenSecret: "test-secret"})

	token := signToken(t, "other-secret", "principal-abc", time.Now().Add(time.Hour))
	if _, err := validator.ValidateToken(token); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	validator := NewValidator(config.IdentityConfig{TokenSecret: "test-secret"})

	token := signToken(t, "test-secret", "principal-abc", time.Now().Add(-time.Minute))
	if _, err := validator.ValidateToken(token); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestMiddlewareInjectsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validator := NewValidator(config.IdentityConfig{TokenSecret: "test-secret"})

	r := gin.New()
	r.Use(Middleware(validator))
	r.GET("/whoami", func(c *gin.Context) {
		principal, ok := RequirePrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, principal.String())
	})

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "principal-xyz", time.Now().Add(time.Hour)))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "principal-xyz" {
		t.Fatalf("expected principal-xyz, got %q", rr.Body.String())
	}
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validator := NewValidator(config.IdentityConfig{TokenSecret: "test-secret"})

	r := gin.New()
	r.Use(Middleware(validator))
	r.GET("/whoami", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
