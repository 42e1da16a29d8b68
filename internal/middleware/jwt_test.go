package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"PATHFINDER_BACK-END/internal/config"
	"PATHFINDER_BACK-END/internal/utils"
)

var testJWT = &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

func TestGenerateAndValidateToken(t *testing.T) {
	id := uuid.New()
	token, err := GenerateToken(id, "a@example.com", testJWT)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	claims, err := ValidateToken(token, testJWT)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != id || claims.Email != "a@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateToken(token, &config.JWTConfig{Secret: "other"}); err == nil {
		t.Error("token signed with another secret should be rejected")
	}

	expired, _ := GenerateToken(id, "a@example.com", &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute})
	if _, err := ValidateToken(expired, testJWT); err == nil {
		t.Error("expired token should be rejected")
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{UserID: id})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ValidateToken(unsigned, testJWT); err == nil {
		t.Error("unsigned token should be rejected")
	}
}

func TestAuthMiddleware(t *testing.T) {
	id := uuid.New()
	token, _ := GenerateToken(id, "a@example.com", testJWT)

	var seen uuid.UUID
	next := func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = uuid.Nil
			req := httptest.NewRequest(http.MethodGet, "/api/itineraries", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AuthMiddleware(next, testJWT)(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusNoContent && seen != id {
				t.Errorf("user in context = %v; want %v", seen, id)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	id := uuid.New()
	token, _ := GenerateToken(id, "a@example.com", testJWT)

	for _, header := range []string{"", "Bearer broken", "Bearer " + token} {
		var seen uuid.UUID
		var called bool
		next := func(w http.ResponseWriter, r *http.Request) {
			called = true
			seen, _ = utils.GetUserIDFromContext(r.Context())
		}
		req := httptest.NewRequest(http.MethodGet, "/api/sessions/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		OptionalAuth(next, testJWT)(httptest.NewRecorder(), req)
		if !called {
			t.Errorf("header %q: handler not called", header)
		}
		wantUser := header == "Bearer "+token
		if (seen == id) != wantUser {
			t.Errorf("header %q: user = %v", header, seen)
		}
	}
}
