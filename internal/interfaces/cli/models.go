package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	"github.com/premsagar786/LegalAI/internal/infrastructure/storage/modelstore"
	"github.com/premsagar786/LegalAI/internal/intelligence/statml"
)

// NewModelsCmd creates the models command group.
func NewModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect and watch stored model artifacts",
	}
	cmd.AddCommand(newModelsListCmd(), newModelsWatchCmd())
	return cmd
}

func newModelsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored artifacts and their metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := buildStore(ctx, cliCtx.Config, cliCtx.Logger)
			if err != nil {
				return err
			}
			artifacts, err := store.List(ctx)
			if err != nil {
				return err
			}

			if cliCtx.Output == "json" {
				return printJSON(cmd, artifacts)
			}
			if len(artifacts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no artifacts stored; run \"legalai train\" first")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-38s %-20s %-9s %s\n",
				"TASK", "VERSION", "CREATED", "ACCURACY", "EXAMPLES")
			for _, a := range artifacts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-38s %-20s %-9.2f %d\n",
					a.Task, a.Version, a.CreatedAt.Format(time.RFC3339), a.Accuracy, a.Examples)
			}
			return nil
		},
	}
}

// newModelsWatchCmd keeps a predictor loaded and hot-reloads artifacts as
// they are replaced on disk.  Filesystem backend only.
func newModelsWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the artifact directory and hot-reload models on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg, logger := cliCtx.Config, cliCtx.Logger
			if cfg.Models.Backend != "fs" {
				return fmt.Errorf("models watch requires the fs backend, configured backend is %q", cfg.Models.Backend)
			}

			ctx := cmd.Context()
			store, err := modelstore.NewFSStore(cfg.Models.Dir, logger)
			if err != nil {
				return err
			}
			predictor := statml.NewPredictor(store, logger)
			predictor.LoadAll(ctx)

			watcher, err := modelstore.NewWatcher(store, func(task string) {
				if err := predictor.Reload(ctx, task); err != nil {
					logger.Warn("hot reload failed",
						logging.String("task", task), logging.Err(err))
					return
				}
				logger.Info("artifact hot reloaded", logging.String("task", task))
			}, logger)
			if err != nil {
				return err
			}
			defer watcher.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s for artifact changes (Ctrl-C to stop)\n", cfg.Models.Dir)
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sig:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
