package hf

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/fileutil"
	"github.com/henrybravo/mlx-project/internal/version"
)

// ProgressFunc reports per-file download progress.
type ProgressFunc func(filename string, downloaded, total int64)

// SnapshotFetcher materializes a model's full artifact set into the hub
// cache layout: content-addressed files under blobs/, a snapshot directory
// of symlinks per revision, and a refs/main pointer. Partial blob writes
// carry the .incomplete suffix so the cache inspector can recognize them.
type SnapshotFetcher struct {
	client   *Client
	root     string
	progress ProgressFunc
}

func NewSnapshotFetcher(client *Client, root string) *SnapshotFetcher {
	return &SnapshotFetcher{client: client, root: root}
}

func NewSnapshotFetcherWithProgress(client *Client, root string, progress ProgressFunc) *SnapshotFetcher {
	return &SnapshotFetcher{client: client, root: root, progress: progress}
}

// Fetch downloads every file of the model's current revision into the
// cache, sequentially. Existing blobs are kept unless force is set;
// partial blobs are resumed with a Range request when resume is set and
// restarted otherwise. Returns the snapshot directory path.
func (f *SnapshotFetcher) Fetch(ctx context.Context, id cache.Identifier, resume, force bool) (string, error) {
	info, err := f.client.GetModel(ctx, id.Org, id.Name)
	if err != nil {
		return "", fmt.Errorf("failed to get model info: %w", err)
	}
	if info.SHA == "" {
		return "", fmt.Errorf("hub reported no revision for %s", id)
	}

	modelDir := filepath.Join(f.root, cache.DirName(id))
	blobsDir := filepath.Join(modelDir, "blobs")
	snapDir := filepath.Join(modelDir, "snapshots", info.SHA)
	for _, dir := range []string{blobsDir, snapDir, filepath.Join(modelDir, "refs")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	for _, sib := range info.Siblings {
		if err := f.fetchFile(ctx, id, info.SHA, sib, blobsDir, snapDir, resume, force); err != nil {
			return "", fmt.Errorf("failed to download %s: %w", sib.RFilename, err)
		}
	}

	// Point the main ref at this revision only after every file landed.
	refPath := filepath.Join(modelDir, "refs", "main")
	if err := fileutil.AtomicWriteFile(refPath, []byte(info.SHA), 0644); err != nil {
		return "", fmt.Errorf("failed to write ref: %w", err)
	}

	return snapDir, nil
}

func (f *SnapshotFetcher) fetchFile(ctx context.Context, id cache.Identifier, revision string, sib Sibling, blobsDir, snapDir string, resume, force bool) error {
	if sib.LFS != nil {
		blobPath := filepath.Join(blobsDir, sib.LFS.SHA256)
		if !force {
			if info, err := os.Stat(blobPath); err == nil && info.Size() == sib.LFS.Size {
				return linkSnapshot(blobPath, snapDir, sib.RFilename)
			}
		}
		if err := f.downloadBlob(ctx, id, revision, sib, blobPath, resume, force); err != nil {
			return err
		}
		return linkSnapshot(blobPath, snapDir, sib.RFilename)
	}

	// Small non-LFS file. The hub API carries no content hash for these,
	// so the blob is content-addressed with the sha256 computed while
	// downloading.
	linkPath := filepath.Join(snapDir, filepath.FromSlash(sib.RFilename))
	if !force {
		if _, err := os.Stat(linkPath); err == nil {
			return nil
		}
	}
	blobPath, err := f.downloadSmall(ctx, id, revision, sib, blobsDir)
	if err != nil {
		return err
	}
	return linkSnapshot(blobPath, snapDir, sib.RFilename)
}

// downloadBlob streams an LFS file into dest, writing through a
// .incomplete marker that is resumed via a Range request when possible.
func (f *SnapshotFetcher) downloadBlob(ctx context.Context, id cache.Identifier, revision string, sib Sibling, dest string, resume, force bool) error {
	partial := dest + cache.IncompleteSuffix
	if !resume || force {
		os.Remove(partial)
	}

	fileSize := int64(0)
	if info, err := os.Stat(partial); err == nil {
		fileSize = info.Size()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.client.resolveURL(id.Org, id.Name, revision, sib.RFilename), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", version.UserAgent())
	if f.client.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.client.token)
	}
	if fileSize > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", fileSize))
	}

	resp, err := f.client.downloadClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	totalSize := fileSize + resp.ContentLength

	flags := os.O_CREATE | os.O_WRONLY
	if resp.StatusCode == http.StatusOK {
		// Server ignored the Range request; start over.
		flags |= os.O_TRUNC
		fileSize = 0
		totalSize = resp.ContentLength
	} else {
		flags |= os.O_APPEND
	}

	file, err := os.OpenFile(partial, flags, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	written := fileSize
	buf := make([]byte, 32*1024)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := file.Write(buf[:n]); werr != nil {
				return werr
			}
			written += int64(n)
			if f.progress != nil {
				f.progress(sib.RFilename, written, totalSize)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(partial, dest)
}

// downloadSmall fetches a non-LFS file, hashing while writing, and renames
// the result to its content address under blobsDir.
func (f *SnapshotFetcher) downloadSmall(ctx context.Context, id cache.Identifier, revision string, sib Sibling, blobsDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.client.resolveURL(id.Org, id.Name, revision, sib.RFilename), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.doRequest(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	// Stable temp name per file so an interrupted write is visible to the
	// inspector and cleaned like any other partial blob.
	nameSum := sha256.Sum256([]byte(sib.RFilename))
	partial := filepath.Join(blobsDir, hex.EncodeToString(nameSum[:8])+cache.IncompleteSuffix)

	file, err := os.Create(partial)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(file, hash), resp.Body); err != nil {
		os.Remove(partial)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}

	blobPath := filepath.Join(blobsDir, hex.EncodeToString(hash.Sum(nil)))
	if err := os.Rename(partial, blobPath); err != nil {
		return "", err
	}
	return blobPath, nil
}

// linkSnapshot places a relative symlink for rfilename in the snapshot
// directory pointing at its blob.
func linkSnapshot(blobPath, snapDir, rfilename string) error {
	linkPath := filepath.Join(snapDir, filepath.FromSlash(rfilename))
	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return err
	}
	rel, err := filepath.Rel(filepath.Dir(linkPath), blobPath)
	if err != nil {
		return err
	}
	os.Remove(linkPath)
	return os.Symlink(rel, linkPath)
}
