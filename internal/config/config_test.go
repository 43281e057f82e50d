package config

import (
	"testing"
	"time"
)

func TestIntOr(t *testing.T) {
	t.Setenv("X_SET", "42")
	t.Setenv("X_BAD", "nope")

	if got := intOr("X_SET", 7); got != 42 {
		t.Errorf("set var: got %d", got)
	}
	if got := intOr("X_UNSET", 7); got != 7 {
		t.Errorf("unset var: got %d", got)
	}
	if got := intOr("X_BAD", 7); got != 7 {
		t.Errorf("malformed var: got %d", got)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("H_STR", "hello")
	t.Setenv("H_BOOL", "true")
	t.Setenv("H_INT", "12")
	t.Setenv("H_DUR", "90s")
	t.Setenv("H_DUR_SECS", "30")

	if got := envStr("H_STR", "d"); got != "hello" {
		t.Errorf("envStr: %q", got)
	}
	if got := envStr("H_MISSING", "d"); got != "d" {
		t.Errorf("envStr default: %q", got)
	}
	if !envBool("H_BOOL", false) {
		t.Error("envBool true not parsed")
	}
	if got := envInt("H_INT", 0); got != 12 {
		t.Errorf("envInt: %d", got)
	}
	if got := envDur("H_DUR", 0); got != 90*time.Second {
		t.Errorf("envDur: %v", got)
	}
	// Bare numbers lack a unit and fall back to the default.
	if got := envDur("H_DUR_SECS", time.Minute); got != time.Minute {
		t.Errorf("envDur bare number: %v", got)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Methods["GET"] {
		t.Error("GET not cached by default")
	}
	if cfg.TTL <= 0 {
		t.Error("non-positive default TTL")
	}
}
