package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IncompleteSuffix marks blobs that were only partially written by the
// downloader.
const IncompleteSuffix = ".incomplete"

// Status classifies a model's on-disk footprint.
type Status int

const (
	StatusNotDownloaded Status = iota
	StatusNoBlobs
	StatusIncomplete
	StatusComplete
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusNotDownloaded:
		return "not downloaded"
	case StatusNoBlobs:
		return "no blobs"
	case StatusIncomplete:
		return "incomplete"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Entry is one model's on-disk footprint at the time Inspect ran. It is
// never persisted; the filesystem stays the source of truth.
type Entry struct {
	ID              Identifier
	Path            string
	Status          Status
	BlobFiles       []string
	IncompleteFiles []string
	HasSnapshot     bool
}

// Inspect classifies a model's cache directory. The checks run in strict
// order: missing directory, missing blobs/, any incomplete blob (which
// dominates an otherwise complete snapshot), non-empty snapshots/, then an
// empty blobs/ (left behind when partial files were cleaned), unknown.
func Inspect(root string, id Identifier) (*Entry, error) {
	entry := &Entry{ID: id, Path: filepath.Join(root, DirName(id))}

	if _, err := os.Stat(entry.Path); err != nil {
		if os.IsNotExist(err) {
			entry.Status = StatusNotDownloaded
			return entry, nil
		}
		return nil, err
	}

	blobsDir := filepath.Join(entry.Path, "blobs")
	blobs, err := os.ReadDir(blobsDir)
	if err != nil {
		if os.IsNotExist(err) {
			entry.Status = StatusNoBlobs
			return entry, nil
		}
		return nil, err
	}
	for _, b := range blobs {
		if b.IsDir() {
			continue
		}
		path := filepath.Join(blobsDir, b.Name())
		entry.BlobFiles = append(entry.BlobFiles, path)
		if strings.HasSuffix(b.Name(), IncompleteSuffix) {
			entry.IncompleteFiles = append(entry.IncompleteFiles, path)
		}
	}

	entry.HasSnapshot = hasEntries(filepath.Join(entry.Path, "snapshots"))

	switch {
	case len(entry.IncompleteFiles) > 0:
		entry.Status = StatusIncomplete
	case entry.HasSnapshot:
		entry.Status = StatusComplete
	case len(entry.BlobFiles) == 0:
		entry.Status = StatusNoBlobs
	default:
		entry.Status = StatusUnknown
	}

	return entry, nil
}

// Discover lists all decodable model identifiers under the cache root,
// sorted by canonical name. Directories that do not decode are returned as
// per-entry errors rather than aborting the scan.
func Discover(root string) ([]Identifier, []error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		// A missing cache root means nothing is downloaded yet; anything
		// else (permissions, not a directory) is worth reporting.
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading cache root: %w", err)}
	}

	var ids []Identifier
	var skipped []error
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), DirPrefix) {
			continue
		}
		id, err := ParseDirName(e.Name())
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids, skipped
}

// Size returns the total size in bytes of a model's cache directory.
// Broken snapshot symlinks are skipped rather than treated as errors.
func Size(root string, id Identifier) int64 {
	var total int64
	filepath.Walk(filepath.Join(root, DirName(id)), func(path string, info os.FileInfo, err error) error {
		if err == nil && info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total
}

func hasEntries(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
