// Package model orchestrates downloads and verification on top of the
// cache inspector and mutator.
package model

import (
	"context"
	"fmt"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/logs"
)

// Fetcher downloads or resumes a model's artifact set into the cache and
// returns the local snapshot path.
type Fetcher interface {
	Fetch(ctx context.Context, id cache.Identifier, resume, force bool) (string, error)
}

// Loader attempts to materialize a model and reports success or failure.
// Implementations must not hand back loaded artifacts; only the outcome
// matters here.
type Loader interface {
	Load(ctx context.Context, id cache.Identifier) error
}

// TransferError wraps a Fetcher failure.
type TransferError struct {
	ID  cache.Identifier
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("download failed for %s: %v", e.ID, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// VerificationError wraps a Loader failure after a fresh download.
type VerificationError struct {
	ID  cache.Identifier
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for %s: %v", e.ID, e.Err)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// Service ties the cache to the external fetcher and loader.
type Service struct {
	Root    string
	Fetcher Fetcher
	Loader  Loader
}

// EnsureOptions controls EnsureDownloaded.
type EnsureOptions struct {
	Verify bool
	Force  bool
}

// ensureStep names the states of the download-and-verify flow. The flow is
// deliberately explicit so the verify-fail-then-redownload-once policy
// stays auditable: stepVerifyCached may fall back to stepFetch exactly
// once, and stepVerifyFresh never retries.
type ensureStep int

const (
	stepInspect ensureStep = iota
	stepVerifyCached
	stepClean
	stepFetch
	stepVerifyFresh
)

// EnsureDownloaded makes sure the model is present (and optionally loads
// clean), downloading or resuming as needed. A verification failure on an
// apparently complete cache triggers one re-download; a verification
// failure after that download is returned as a VerificationError. Fetch
// failures are returned as TransferError.
func (s *Service) EnsureDownloaded(ctx context.Context, id cache.Identifier, opts EnsureOptions) error {
	step := stepInspect

	for {
		switch step {
		case stepInspect:
			entry, err := cache.Inspect(s.Root, id)
			if err != nil {
				return err
			}
			switch {
			case entry.Status == cache.StatusComplete && !opts.Force:
				if !opts.Verify {
					return nil
				}
				step = stepVerifyCached
			case entry.Status == cache.StatusIncomplete:
				step = stepClean
			default:
				step = stepFetch
			}

		case stepVerifyCached:
			err := s.Loader.Load(ctx, id)
			if err == nil {
				return nil
			}
			logs.Warn("cached model failed verification, re-downloading", "model", id.String(), "error", err)
			step = stepFetch

		case stepClean:
			// Never resume over known-partial blobs; clear them so the
			// fetcher starts those files fresh.
			removed, err := cache.CleanIncomplete(s.Root, id)
			if err != nil {
				logs.Warn("could not fully clean partial files", "model", id.String(), "error", err)
			}
			logs.Debug("cleaned partial files", "model", id.String(), "removed", removed)
			step = stepFetch

		case stepFetch:
			if _, err := s.Fetcher.Fetch(ctx, id, true, opts.Force); err != nil {
				return &TransferError{ID: id, Err: err}
			}
			entry, err := cache.Inspect(s.Root, id)
			if err == nil && entry.Status != cache.StatusComplete {
				// The fetcher may have produced a layout this classifier
				// cannot recognize; warn rather than fail.
				logs.Warn("download finished with unexpected cache status", "model", id.String(), "status", entry.Status.String())
			}
			if !opts.Verify {
				return nil
			}
			step = stepVerifyFresh

		case stepVerifyFresh:
			if err := s.Loader.Load(ctx, id); err != nil {
				return &VerificationError{ID: id, Err: err}
			}
			return nil
		}
	}
}
