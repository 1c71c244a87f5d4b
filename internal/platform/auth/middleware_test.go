package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/apperr"
)

func runJWT(t *testing.T, header string, skipper func(echo.Context) bool) (*Principal, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *Principal
	var called bool
	handler := func(c echo.Context) error {
		called = true
		got = PrincipalFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(NewTokenManager(testSecret, time.Hour), skipper)
	err := mw(handler)(c)
	return got, called, err
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	_, called, err := runJWT(t, "", nil)
	if called {
		t.Fatal("handler must not run without credentials")
	}
	if !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if apperr.HTTPStatus(err) != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", apperr.HTTPStatus(err))
	}
}

func TestJWTMiddleware_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "Token abc123"},
		{"missing token", "Bearer"},
		{"empty value", "Bearer "},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, called, err := runJWT(t, tt.header, nil)
			if called {
				t.Fatal("handler must not run")
			}
			if !errors.Is(err, apperr.ErrInvalidCredential) {
				t.Errorf("expected ErrInvalidCredential, got %v", err)
			}
		})
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Issue(Principal{ID: 9, Role: RolePatient})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, called, err := runJWT(t, "Bearer "+token, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected handler to be called")
	}
	if p == nil || p.ID != 9 || p.Role != RolePatient {
		t.Errorf("unexpected principal %+v", p)
	}
}

func TestJWTMiddleware_LowercaseScheme(t *testing.T) {
	token, _ := NewTokenManager(testSecret, time.Hour).Issue(Principal{ID: 3, Role: RoleAdmin})
	if _, _, err := runJWT(t, "bearer "+token, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTMiddleware_Skipper(t *testing.T) {
	p, called, err := runJWT(t, "", func(echo.Context) bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("skipped request should reach the handler")
	}
	if p != nil {
		t.Errorf("skipped request should carry no principal, got %+v", p)
	}
}
