package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/helenus/hotel-api/internal/utils"
)

func newAuthedContext(t *testing.T, secret, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func TestJWTAuthMissingHeader(t *testing.T) {
	c, rec := newAuthedContext(t, "s", "")
	if err := JWTAuth("s")(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	c, rec := newAuthedContext(t, "s", "Bearer not-a-jwt")
	if err := JWTAuth("s")(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("right", 1, "client", "Ana", 5)
	if err != nil {
		t.Fatal(err)
	}
	c, rec := newAuthedContext(t, "wrong", "Bearer "+at.Token)
	if err := JWTAuth("wrong")(okHandler)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	at, err := utils.NewAccessToken("s", 7, "admin", "Ana", 5)
	if err != nil {
		t.Fatal(err)
	}
	c, rec := newAuthedContext(t, "s", "Bearer "+at.Token)

	var gotRole, gotName any
	var gotSub float64
	inner := func(c echo.Context) error {
		gotSub = c.Get("user_id").(float64)
		gotRole = c.Get("role")
		gotName = c.Get("name")
		return c.String(http.StatusOK, "ok")
	}
	if err := JWTAuth("s")(inner)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if gotSub != 7 {
		t.Errorf("user_id = %v", gotSub)
	}
	if gotRole != "admin" || gotName != "Ana" {
		t.Errorf("role=%v name=%v", gotRole, gotName)
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		role     any
		allowed  []string
		wantCode int
	}{
		{"allowed role", "admin", []string{"admin"}, http.StatusOK},
		{"one of several", "client", []string{"client", "admin"}, http.StatusOK},
		{"wrong role", "client", []string{"admin"}, http.StatusForbidden},
		{"missing role", nil, []string{"admin"}, http.StatusForbidden},
		{"non-string role", 42, []string{"admin"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}
			if err := RequireRole(tc.allowed...)(okHandler)(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("code = %d, want %d", rec.Code, tc.wantCode)
			}
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	e := echo.New()
	mk := func(v any) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if v != nil {
			c.Set("user_id", v)
		}
		return c
	}

	if got := currentUserID(mk(nil)); got != "anon" {
		t.Errorf("nil -> %q", got)
	}
	if got := currentUserID(mk(float64(7))); got != "7" {
		t.Errorf("float64 -> %q", got)
	}
	if got := currentUserID(mk(uint64(9))); got != "9" {
		t.Errorf("uint64 -> %q", got)
	}
	if got := currentUserID(mk("12")); got != "12" {
		t.Errorf("string -> %q", got)
	}
}
