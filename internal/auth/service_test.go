package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndValidate(t *testing.T) {
	s := NewService("secret")

	token, err := s.IssueToken("sess_1")
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if got != "sess_1" {
		t.Errorf("subject = %q", got)
	}
	if err := s.Authorize(token, "sess_1"); err != nil {
		t.Errorf("Authorize: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	s := NewService("secret")
	other := NewService("other")

	foreign, _ := other.IssueToken("sess_1")

	expired := NewService("secret")
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	stale, _ := expired.IssueToken("sess_1")

	noSub, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"missing subject", noSub},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestAuthorizeOtherSession(t *testing.T) {
	s := NewService("secret")
	token, _ := s.IssueToken("sess_1")

	if err := s.Authorize(token, "sess_2"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v", err)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s := NewService("secret")
	token, _ := s.IssueToken("sess_1")

	var seen string
	h := s.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"ok", "Bearer " + token, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"basic", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusNoContent && seen != "sess_1" {
				t.Errorf("session in context = %q", seen)
			}
		})
	}
}

func TestAuthMiddlewarePassesPreflight(t *testing.T) {
	s := NewService("secret")
	called := false
	h := s.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/sessions/x/snapshot", nil))

	if !called || rec.Code != http.StatusNoContent {
		t.Errorf("preflight: called = %v, status = %d", called, rec.Code)
	}
}
