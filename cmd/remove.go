package cmd

import (
	"fmt"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/ui"
	"github.com/spf13/cobra"
)

var rmYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <org/name | index>",
	Aliases: []string{"rm"},
	Short:   "Remove a model from the hub cache",
	Args:    exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		id, err := resolveModelArg(root, args[0])
		if err != nil {
			return err
		}

		size := cache.Size(root, id)
		if !rmYes {
			prompt := fmt.Sprintf("Remove %s (%s)?", id, ui.FormatBytes(size))
			if !ui.Confirm(prompt) {
				fmt.Println(ui.Muted("Cancelled"))
				return nil
			}
		}

		removed, err := cache.RemoveAll(root, id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("%s is not in the cache\n", id)
			return nil
		}
		fmt.Printf("Removed %s, %s freed\n", ui.Bold(id.String()), ui.FormatBytes(size))
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "Skip confirmation")
	rootCmd.AddCommand(removeCmd)
}
