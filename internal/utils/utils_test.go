package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "hunter22") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "hunter23") {
		t.Fatal("wrong password accepted")
	}
}

func TestNewAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken("secret", 7, "client", "Ana", 30)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"].(float64) != 7 {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["role"] != "client" {
		t.Errorf("role = %v", claims["role"])
	}
	if claims["name"] != "Ana" {
		t.Errorf("name = %v", claims["name"])
	}
	if until := time.Until(at.Exp); until < 29*time.Minute || until > 31*time.Minute {
		t.Errorf("expiry %v not ~30m away", until)
	}
}

func TestRandomHexLengthAndUniqueness(t *testing.T) {
	cases := []struct{ n, wantLen int }{{10, 20}, {32, 64}, {48, 96}}
	for _, tc := range cases {
		s, err := RandomHex(tc.n)
		if err != nil {
			t.Fatalf("RandomHex(%d): %v", tc.n, err)
		}
		if len(s) != tc.wantLen {
			t.Errorf("RandomHex(%d) len = %d, want %d", tc.n, len(s), tc.wantLen)
		}
	}

	a, _ := RandomHex(16)
	b, _ := RandomHex(16)
	if a == b {
		t.Fatal("two tokens identical")
	}
}

func TestHashRefreshRawDeterministic(t *testing.T) {
	h1 := HashRefreshRaw("raw-token")
	h2 := HashRefreshRaw("raw-token")
	if h1 != h2 {
		t.Fatal("hash not deterministic")
	}
	if len(h1) != 64 {
		t.Fatalf("hash len = %d, want 64", len(h1))
	}
	if h1 == HashRefreshRaw("other") {
		t.Fatal("distinct inputs collide")
	}
}
