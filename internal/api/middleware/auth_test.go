package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

type stubVerifier struct {
	tokens map[string]*domain.Identity
}

func (v stubVerifier) Verify(token string) (*domain.Identity, error) {
	id, ok := v.tokens[token]
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return id, nil
}

var verifier = stubVerifier{tokens: map[string]*domain.Identity{
	"teacher-token": {UserID: 1, Role: domain.RoleTeacher, Email: "teacher@test.com"},
	"student-token": {UserID: 2, Role: domain.RoleStudent, Email: "student@test.com"},
}}

func runAuth(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth(verifier)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotRun(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	called := false
	rec := runAuth(t, "Bearer teacher-token", func(c echo.Context) error {
		called = true
		if c.Get(KeyUserID) != int64(1) {
			t.Fatalf("user_id not set: %v", c.Get(KeyUserID))
		}
		if c.Get(KeyRole) != domain.RoleTeacher {
			t.Fatalf("role not set")
		}
		if c.Get(KeyEmail) != "teacher@test.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := runAuth(t, "", mustNotRun(t))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{
		"Token teacher-token",
		"bearer teacher-token",
		"Bearer",
		"Bearer ",
		"Bearer  teacher-token",
		"Bearer teacher-token extra",
		"teacher-token",
	} {
		t.Run(header, func(t *testing.T) {
			rec := runAuth(t, header, mustNotRun(t))
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec := runAuth(t, "Bearer not-a-token", mustNotRun(t))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
