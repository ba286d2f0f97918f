package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <org/name | index>",
	Short: "Show the cache status of a model",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		id, err := resolveModelArg(root, args[0])
		if err != nil {
			return err
		}

		entry, err := cache.Inspect(root, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n\n", ui.Header(id.String()))
		fmt.Printf("  %-8s %s\n", "Status", styledStatus(entry.Status))
		fmt.Printf("  %-8s %s\n", "Path", ui.Muted(entry.Path))
		if entry.Status != cache.StatusNotDownloaded {
			fmt.Printf("  %-8s %s\n", "Size", ui.FormatBytes(cache.Size(root, id)))
			fmt.Printf("  %-8s %s\n", "Blobs", strconv.Itoa(len(entry.BlobFiles)))
		}

		if len(entry.IncompleteFiles) > 0 {
			fmt.Printf("\n%s %d partial file(s):\n", ui.Warning("Warning:"), len(entry.IncompleteFiles))
			for _, path := range entry.IncompleteFiles {
				fmt.Printf("  • %s\n", filepath.Base(path))
			}
			fmt.Printf("\nClean them up with: %s\n", ui.Bold("mlxhub clean "+id.String()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
