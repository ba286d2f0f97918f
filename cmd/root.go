package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/henrybravo/mlx-project/internal/config"
	"github.com/henrybravo/mlx-project/internal/logs"
	"github.com/henrybravo/mlx-project/internal/ui"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mlxhub [org/name]",
	Short: "Manage MLX models in the Hugging Face hub cache",
	Long: `mlxhub downloads MLX models from Hugging Face and keeps the local
hub cache healthy. Point it at any org/name repository and it handles
the rest: cleaning stale partial downloads, fetching the snapshot, and
verifying the result.

Running mlxhub with a model identifier cleans leftover partial files
and downloads the model in one step.`,
	Args:          maxArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logs.InitLogger(os.Stderr, verbose)
		if err := config.EnsureDirectories(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create directories: %v\n", err)
			os.Exit(1)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return nil
		}

		cfg, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		id, err := resolveModelArg(root, args[0])
		if err != nil {
			return err
		}

		// The one-shot flow: scrub partial files first, then download.
		if err := runClean(root, id); err != nil {
			logs.Warn("cleanup before download failed", "model", id, "error", err)
		}
		return runDownload(cmd.Context(), cfg, root, id, downloadOptions{verify: true})
	},
}

// Execute runs the root command and maps the outcome to a process exit
// code: 0 on success, 2 for usage errors, 1 for everything else.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorMsg("Error:"), err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}
