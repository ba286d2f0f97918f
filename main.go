package main

import (
	"os"

	"github.com/henrybravo/mlx-project/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
