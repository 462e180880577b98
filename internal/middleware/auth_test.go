package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gesem/isp-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	var gotUserID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(cfg)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + signToken(t, "test-secret", "42", time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "Bearer " + signToken(t, "other-secret", "42", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, "test-secret", "42", time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-numeric subject",
			authHeader: "Bearer " + signToken(t, "test-secret", "abc", time.Now().Add(time.Hour)),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token xyz",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotOK = 0, false
			req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !gotOK || gotUserID != tt.wantUserID {
					t.Errorf("context user = (%d, %v), want (%d, true)", gotUserID, gotOK, tt.wantUserID)
				}
			}
		})
	}
}

func TestUserIDAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id, ok := UserID(req.Context()); ok {
		t.Errorf("UserID() = (%d, true), want absent", id)
	}
}
