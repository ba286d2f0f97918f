package cmd

import (
	"fmt"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/ui"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <org/name | index>",
	Short: "Remove partial downloads for a model",
	Long: `Remove leftover .incomplete files from a model's cache entry.

Models whose downloads finished cleanly are left untouched.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		id, err := resolveModelArg(root, args[0])
		if err != nil {
			return err
		}
		removed, err := cache.CleanIncomplete(root, id)
		if removed > 0 {
			fmt.Printf("Removed %d partial file(s) for %s\n", removed, ui.Keyword(id.String()))
		}
		if err != nil {
			return err
		}
		if removed == 0 {
			fmt.Printf("No partial files for %s\n", id)
		}
		return nil
	},
}

var cleanAllCmd = &cobra.Command{
	Use:   "clean-all",
	Short: "Remove partial downloads across the whole cache",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		ids, skipped := cache.Discover(root)
		for _, err := range skipped {
			fmt.Printf("%s skipped cache entry: %v\n", ui.Warning("Warning:"), err)
		}

		total := 0
		failures := 0
		for _, id := range ids {
			removed, err := cache.CleanIncomplete(root, id)
			total += removed
			if err != nil {
				failures++
				fmt.Printf("%s %s: %v\n", ui.ErrorMsg("Error:"), id, err)
			}
		}

		if total == 0 && failures == 0 {
			fmt.Println("No partial downloads found")
			return nil
		}
		fmt.Printf("Removed %d partial file(s)\n", total)
		if failures > 0 {
			return fmt.Errorf("failed to clean %d model(s)", failures)
		}
		return nil
	},
}

// runClean scrubs partial files before a download. It stays quiet when
// there is nothing to remove.
func runClean(root string, id cache.Identifier) error {
	removed, err := cache.CleanIncomplete(root, id)
	if removed > 0 {
		fmt.Printf("Removed %d partial file(s) for %s\n", removed, ui.Keyword(id.String()))
	}
	return err
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(cleanAllCmd)
}
