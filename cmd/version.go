package cmd

import (
	"fmt"

	"github.com/henrybravo/mlx-project/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mlxhub version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mlxhub %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
