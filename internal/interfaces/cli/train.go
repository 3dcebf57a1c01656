package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/premsagar786/LegalAI/internal/intelligence/statml"
)

// NewTrainCmd creates the train command.
func NewTrainCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the statistical models and store their artifacts",
		Long: "Fit the document-type, clause-type and clause-risk models from the built-in\n" +
			"seed corpus, optionally merged with labeled examples from a data directory,\n" +
			"and write the resulting artifacts to the configured model store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg, logger := cliCtx.Config, cliCtx.Logger
			if dataDir != "" {
				cfg.Training.DataDir = dataDir
			}

			ctx := cmd.Context()
			store, err := buildStore(ctx, cfg, logger)
			if err != nil {
				return err
			}

			examples := statml.SeedCorpus()
			if cfg.Training.DataDir != "" {
				extra, err := statml.LoadExamplesDir(cfg.Training.DataDir)
				if err != nil {
					return err
				}
				examples = statml.MergeExamples(examples, extra)
			}

			trainer := statml.NewTrainer(store, cfg.Training, logger)
			results, err := trainer.TrainAll(ctx, examples)
			if err != nil {
				return err
			}

			if cliCtx.Output == "json" {
				return printJSON(cmd, results)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s accuracy=%.2f examples=%d classes=%d\n",
					r.Task, r.Accuracy, r.Examples, len(r.Classes))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "embedding    fitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory of extra labeled examples (<task>.json files)")
	return cmd
}
