package model

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/henrybravo/mlx-project/internal/cache"
)

// SnapshotLoader verifies that a model's current snapshot is fully
// materialized: the main ref resolves, every snapshot entry resolves to a
// blob, and content-addressed blobs hash to their names. It stands in for
// actually loading the model into memory; nothing is retained after the
// check.
type SnapshotLoader struct {
	Root string
}

func (l *SnapshotLoader) Load(ctx context.Context, id cache.Identifier) error {
	modelDir := filepath.Join(l.Root, cache.DirName(id))
	if _, err := os.Stat(modelDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", id, cache.ErrNotFound)
		}
		return err
	}

	ref, err := os.ReadFile(filepath.Join(modelDir, "refs", "main"))
	if err != nil {
		return fmt.Errorf("no main ref for %s: %w", id, err)
	}
	revision := strings.TrimSpace(string(ref))

	snapDir := filepath.Join(modelDir, "snapshots", revision)
	if !dirHasEntries(snapDir) {
		return fmt.Errorf("snapshot %s of %s is empty or missing", revision, id)
	}

	return filepath.WalkDir(snapDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// os.Stat follows symlinks, so a broken link surfaces here.
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("snapshot entry %s does not resolve: %w", d.Name(), err)
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return err
		}
		blobName := filepath.Base(resolved)
		if !isSHA256Hex(blobName) {
			return nil
		}

		sum, err := hashFile(resolved)
		if err != nil {
			return err
		}
		if !strings.EqualFold(sum, blobName) {
			return fmt.Errorf("blob hash mismatch for %s", d.Name())
		}
		return nil
	})
}

func dirHasEntries(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}

func isSHA256Hex(s string) bool {
	if len(s) != 64 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func hashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
