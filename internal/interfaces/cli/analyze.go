package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/premsagar786/LegalAI/internal/application/analyzer"
	"github.com/premsagar786/LegalAI/internal/infrastructure/cache"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/prometheus"
	"github.com/premsagar786/LegalAI/internal/intelligence/remote"
	"github.com/premsagar786/LegalAI/internal/intelligence/statml"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze a legal document",
		Long: "Run the full analysis pipeline on a document read from the given file,\n" +
			"or from stdin when the argument is \"-\" or omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg, logger := cliCtx.Config, cliCtx.Logger

	text, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	store, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	metrics := prometheus.NewNopMetrics()
	predictor := statml.NewPredictor(store, logger).WithMetrics(metrics)
	predictor.LoadAll(ctx)

	var remoteTier analyzer.RemoteStrategy
	if cfg.Remote.Enabled() {
		remoteTier = remote.NewAnalyzer(cfg.Remote, logger)
	}

	analysisCache := cache.NewNopCache()
	if cfg.Cache.Enabled() {
		analysisCache = cache.NewRedisCache(ctx, cfg.Cache, logger)
	}

	pipeline := analyzer.NewPipeline(remoteTier, predictor, analysisCache, metrics, logger, cfg.Models.MinConfidence)

	analysis := pipeline.Analyze(ctx, text)

	if cliCtx.Output == "json" {
		return printJSON(cmd, analysis)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderAnalysisText(analysis))
	return nil
}

// readDocument reads the document from the file argument or stdin.
func readDocument(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// renderAnalysisText formats an analysis for terminal consumption.
func renderAnalysisText(a *legal.DocumentAnalysis) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Document Type: %s", a.DocumentType)
	if a.DocumentTypeConfidence > 0 {
		fmt.Fprintf(&sb, " (confidence %.0f%%)", a.DocumentTypeConfidence*100)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Risk Score:    %d/100\n", a.OverallRiskScore)
	fmt.Fprintf(&sb, "Strategy:      %s", a.Strategy)
	if a.Degraded {
		sb.WriteString(" (degraded)")
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Summary:\n  %s\n\n", a.Summary)

	if len(a.Clauses) > 0 {
		sb.WriteString("Clauses:\n")
		for _, c := range a.Clauses {
			fmt.Fprintf(&sb, "  [%-6s] %s\n", strings.ToUpper(string(c.RiskLevel)), c.Type)
			fmt.Fprintf(&sb, "           %s\n", c.Content)
			if c.Explanation != "" {
				fmt.Fprintf(&sb, "           %s\n", c.Explanation)
			}
		}
		sb.WriteString("\n")
	}

	if len(a.Parties) > 0 {
		sb.WriteString("Parties:\n")
		for _, p := range a.Parties {
			fmt.Fprintf(&sb, "  %s: %s\n", p.Role, p.Name)
		}
		sb.WriteString("\n")
	}

	if len(a.Penalties) > 0 {
		sb.WriteString("Penalties:\n")
		for _, p := range a.Penalties {
			fmt.Fprintf(&sb, "  [%-6s] %s: %s\n", strings.ToUpper(string(p.Severity)), p.Condition, p.Consequence)
		}
		sb.WriteString("\n")
	}

	if len(a.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for i, r := range a.Recommendations {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, r)
		}
	}
	return sb.String()
}
