package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/henrybravo/mlx-project/internal/cache"
)

func seedCache(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestResolveModelArgIdentifier(t *testing.T) {
	root := seedCache(t)

	id, err := resolveModelArg(root, "mlx-community/Mistral-7B-4bit")
	if err != nil {
		t.Fatalf("resolveModelArg() error = %v", err)
	}
	want := cache.Identifier{Org: "mlx-community", Name: "Mistral-7B-4bit"}
	if id != want {
		t.Errorf("resolveModelArg() = %v, want %v", id, want)
	}
}

func TestResolveModelArgIndex(t *testing.T) {
	root := seedCache(t,
		"models--acme--alpha",
		"models--acme--beta",
	)

	// Discovery sorts by canonical name, so index 2 is acme/beta.
	id, err := resolveModelArg(root, "2")
	if err != nil {
		t.Fatalf("resolveModelArg() error = %v", err)
	}
	if id.Name != "beta" {
		t.Errorf("resolveModelArg(2) = %v, want acme/beta", id)
	}
}

func TestResolveModelArgIndexOutOfRange(t *testing.T) {
	root := seedCache(t, "models--acme--alpha")

	for _, arg := range []string{"0", "2", "-1"} {
		_, err := resolveModelArg(root, arg)
		var uerr *usageError
		if !errors.As(err, &uerr) {
			t.Errorf("resolveModelArg(%q) error = %v, want usageError", arg, err)
		}
	}
}

func TestResolveModelArgMalformed(t *testing.T) {
	root := seedCache(t)

	for _, arg := range []string{"noslash", "a/b/c", "/name", "org/"} {
		_, err := resolveModelArg(root, arg)
		var uerr *usageError
		if !errors.As(err, &uerr) {
			t.Errorf("resolveModelArg(%q) error = %v, want usageError", arg, err)
		}
	}
}

func TestUsageErrorUnwrap(t *testing.T) {
	inner := errors.New("bad flag")
	err := &usageError{err: inner}
	if !errors.Is(err, inner) {
		t.Error("usageError should unwrap to its cause")
	}
}
