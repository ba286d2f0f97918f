// Package cache inspects and mutates the local Hugging Face hub cache.
// All state lives on disk; every call re-derives what it needs from the
// filesystem rather than holding anything in memory.
package cache

import (
	"fmt"
	"strings"
)

// DirPrefix marks per-model directories under the cache root.
const DirPrefix = "models--"

// Identifier names a model on the hub, canonically "org/name".
type Identifier struct {
	Org  string
	Name string
}

func (id Identifier) String() string {
	return id.Org + "/" + id.Name
}

// ParseIdentifier parses a canonical "org/name" reference.
func ParseIdentifier(s string) (Identifier, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Identifier{}, fmt.Errorf("model reference must be in format org/name: %s", s)
	}
	return Identifier{Org: parts[0], Name: parts[1]}, nil
}

// DirName returns the cache directory name for a model, following the hub
// convention of replacing "/" with "--".
func DirName(id Identifier) string {
	return DirPrefix + strings.ReplaceAll(id.String(), "/", "--")
}

// ParseDirName converts a cache directory name back to an identifier.
//
// Everything after the first "--" separator is re-joined with a single
// dash, so DirName/ParseDirName do not round-trip for names that contain a
// literal "--". This mirrors the hub's own directory convention and is kept
// as-is for interop with existing cache layouts.
func ParseDirName(dir string) (Identifier, error) {
	rest, ok := strings.CutPrefix(dir, DirPrefix)
	if !ok {
		return Identifier{}, &MalformedEntryError{Dir: dir, Reason: "missing models-- prefix"}
	}
	parts := strings.Split(rest, "--")
	if len(parts) < 2 {
		return Identifier{}, &MalformedEntryError{Dir: dir, Reason: "no org/name separator"}
	}
	return Identifier{Org: parts[0], Name: strings.Join(parts[1:], "-")}, nil
}
