package cmd

import (
	"context"
	"fmt"

	"github.com/henrybravo/mlx-project/internal/cache"
	"github.com/henrybravo/mlx-project/internal/config"
	"github.com/henrybravo/mlx-project/internal/hf"
	"github.com/henrybravo/mlx-project/internal/model"
	"github.com/henrybravo/mlx-project/internal/ui"
	"github.com/spf13/cobra"
)

var (
	dlNoVerify bool
	dlForce    bool
)

var downloadCmd = &cobra.Command{
	Use:   "download <org/name | index>",
	Short: "Download a model into the hub cache",
	Long: `Download a model snapshot from Hugging Face into the local hub cache.

The model can be given as an org/name identifier or as an index from
the list command. Already-complete models are verified and skipped; a
model that fails verification is downloaded again once.

Examples:
  mlxhub download mlx-community/Mistral-7B-Instruct-v0.2-4bit
  mlxhub download 3`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := loadCacheConfig()
		if err != nil {
			return err
		}

		id, err := resolveModelArg(root, args[0])
		if err != nil {
			return err
		}

		return runDownload(cmd.Context(), cfg, root, id, downloadOptions{
			verify: !dlNoVerify,
			force:  dlForce,
		})
	},
}

type downloadOptions struct {
	verify bool
	force  bool
}

// spinnerLoader wraps snapshot verification with a terminal spinner so
// hashing large weight files doesn't look like a hang.
type spinnerLoader struct {
	inner model.Loader
}

func (l spinnerLoader) Load(ctx context.Context, id cache.Identifier) error {
	return ui.WithSpinner(fmt.Sprintf("Verifying %s", id), func() error {
		return l.inner.Load(ctx, id)
	})
}

func runDownload(ctx context.Context, cfg *config.Config, root string, id cache.Identifier, opts downloadOptions) error {
	client := hf.NewClient(cfg)

	info, err := client.GetModel(ctx, id.Org, id.Name)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", id, err)
	}

	if bool(info.Gated) && !hf.HasToken(cfg) {
		fmt.Printf("%s Authentication required\n", ui.ErrorMsg("Error:"))
		fmt.Printf("\nThe repository '%s' is gated.\n\n", id)
		fmt.Println("To access gated models, provide a Hugging Face token:")
		fmt.Println("  1. Get a token at https://huggingface.co/settings/tokens")
		fmt.Println("  2. Set: export HF_TOKEN=hf_xxxxx")
		return fmt.Errorf("no token for gated repository %s", id)
	}

	bar := ui.NewProgressBar()
	current := ""
	fetcher := hf.NewSnapshotFetcherWithProgress(client, root, func(filename string, downloaded, total int64) {
		if filename != current {
			if current != "" {
				bar.Stop()
			}
			current = filename
			bar.Start(filename, total)
		}
		bar.Update(downloaded)
	})

	svc := &model.Service{
		Root:    root,
		Fetcher: fetcher,
		Loader:  spinnerLoader{inner: &model.SnapshotLoader{Root: root}},
	}

	fmt.Printf("Downloading %s\n", ui.Keyword(id.String()))
	err = svc.EnsureDownloaded(ctx, id, model.EnsureOptions{Verify: opts.verify, Force: opts.force})
	if current != "" {
		bar.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s %s is ready\n", ui.Success("✓"), ui.Bold(id.String()))
	return nil
}

func init() {
	downloadCmd.Flags().BoolVar(&dlNoVerify, "no-verify", false, "Skip verifying the snapshot after download")
	downloadCmd.Flags().BoolVarP(&dlForce, "force", "f", false, "Re-download even if the model is already complete")
	rootCmd.AddCommand(downloadCmd)
}
