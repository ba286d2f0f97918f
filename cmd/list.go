package cmd

import (
	"fmt"
	"strconv"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List models in the hub cache",
	Args:    exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		ids, skipped := cache.Discover(root)
		if len(ids) == 0 {
			fmt.Println("No models in cache")
			fmt.Printf("\nDownload one with: %s\n", ui.Bold("mlxhub download <org/name>"))
			return nil
		}

		table := ui.NewTable().
			AddColumn("NUM", 0, ui.AlignRight).
			AddColumn("MODEL", 0, ui.AlignLeft).
			AddColumn("STATUS", 0, ui.AlignLeft).
			AddColumn("SIZE", 0, ui.AlignRight)

		for i, id := range ids {
			entry, err := cache.Inspect(root, id)
			if err != nil {
				table.AddRow(strconv.Itoa(i+1), id.String(), ui.ErrorMsg(err.Error()), "")
				continue
			}
			table.AddRow(
				strconv.Itoa(i+1),
				id.String(),
				styledStatus(entry.Status),
				ui.FormatBytes(cache.Size(root, id)),
			)
		}
		fmt.Print(table.Render())

		for _, err := range skipped {
			fmt.Printf("\n%s skipped cache entry: %v\n", ui.Warning("Warning:"), err)
		}
		return nil
	},
}

func styledStatus(s cache.Status) string {
	switch s {
	case cache.StatusComplete:
		return ui.Success(s.String())
	case cache.StatusIncomplete:
		return ui.Warning(s.String())
	case cache.StatusNotDownloaded, cache.StatusNoBlobs:
		return ui.Muted(s.String())
	default:
		return s.String()
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
