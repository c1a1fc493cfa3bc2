package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chatapp/config"
	"chatapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		TokenExpiryDays:  15,
		OTPExpiryMinutes: 5,
	}
	service := services.NewAuthService(nil, nil, nil, cfg)

	router := gin.New()
	router.GET("/whoami", AuthMiddleware(service), func(c *gin.Context) {
		userID, ok := services.UserIDFromContext(c.Request.Context())
		if !ok {
			c.String(http.StatusInternalServerError, "no user in context")
			return
		}
		c.String(http.StatusOK, userID.Hex())
	})
	return router
}

func signToken(t *testing.T, secret string, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := services.AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := newProtectedRouter(t)

	userID := primitive.NewObjectID()
	token := signToken(t, "test-secret", userID.Hex(), time.Now().Add(time.Hour))

	rec := get(router, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != userID.Hex() {
		t.Fatalf("expected user id %s in context, got %s", userID.Hex(), rec.Body.String())
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	router := newProtectedRouter(t)

	valid := signToken(t, "test-secret", primitive.NewObjectID().Hex(), time.Now().Add(time.Hour))

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic " + valid},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", primitive.NewObjectID().Hex(), time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signToken(t, "test-secret", primitive.NewObjectID().Hex(), time.Now().Add(-time.Hour))},
		{"bad user id", "Bearer " + signToken(t, "test-secret", "not-hex", time.Now().Add(time.Hour))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(router, tc.authorization)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
