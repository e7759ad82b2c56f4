package envutil

import "testing"

func fakeEnv(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func TestString(t *testing.T) {
	t.Parallel()

	getenv := fakeEnv(map[string]string{"TAG": " mytag-20 ", "EMPTY": "   "})

	if got := String(getenv, "TAG", "fallback"); got != "mytag-20" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := String(getenv, "EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
	if got := String(getenv, "MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	getenv := fakeEnv(map[string]string{"N": "42", "BAD": "forty-two"})

	if got := Int(getenv, "N", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := Int(getenv, "BAD", 7); got != 7 {
		t.Fatalf("expected default for unparseable value, got %d", got)
	}
	if got := Int(getenv, "MISSING", 7); got != 7 {
		t.Fatalf("expected default for missing key, got %d", got)
	}
}

func TestBool(t *testing.T) {
	t.Parallel()

	getenv := fakeEnv(map[string]string{"ON": "Yes", "OFF": "0", "WEIRD": "maybe"})

	if !Bool(getenv, "ON", false) {
		t.Fatal("expected true")
	}
	if Bool(getenv, "OFF", true) {
		t.Fatal("expected false")
	}
	if !Bool(getenv, "WEIRD", true) {
		t.Fatal("expected default for unknown value")
	}
}
