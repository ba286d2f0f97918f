package cmd

import (
	"fmt"
	"strconv"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/config"
	"github.com/spf13/cobra"
)

// usageError marks errors caused by bad invocation rather than a
// failing operation, so Execute can exit with a distinct code.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func loadCacheConfig() (*config.Config, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, config.CacheRoot(cfg), nil
}

// resolveModelArg accepts either an org/name identifier or a 1-based
// index into the cached model listing, matching the numbers that
// `mlxhub list` prints.
func resolveModelArg(root, arg string) (cache.Identifier, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		ids, _ := cache.Discover(root)
		if n < 1 || n > len(ids) {
			return cache.Identifier{}, usageErrorf("index %d out of range: cache has %d model(s)", n, len(ids))
		}
		return ids[n-1], nil
	}

	id, err := cache.ParseIdentifier(arg)
	if err != nil {
		return cache.Identifier{}, &usageError{err: err}
	}
	return id, nil
}
