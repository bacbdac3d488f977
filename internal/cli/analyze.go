package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/arbiterstg/internal/pipeline"
)

var (
	outJSON        string
	outMD          string
	validateSchema bool
	noFooter       bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <trace.json>",
	Short: "Analyze a single trace and write an arbiter report",
	Long: `Analyze runs the full classification pipeline over one trace document:
- Reduce per-segment proxies to the trace-level collapse index (RLCI)
- Select the global mode (routing or shadow)
- Classify every segment: admissibility, masking, routing labels,
  stability flags, confidence, and a reasons trail
- Recompute trace-wide risk fractions and the failure taxonomy

Example:
  arbiterstg analyze trace.json
  arbiterstg analyze trace.json -o report.json --md report.md
  arbiterstg analyze trace.json --validate`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&outJSON, "out", "o", "arbiter_report.json", "output report JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&validateSchema, "validate", false, "validate the trace against the MDS_Trace schema before analysis")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tracePath := args[0]

	cfg := loadConfig()
	cfg.Input.ValidateSchema = cfg.Input.ValidateSchema || validateSchema
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	cfg.Output.IncludeFooter = !noFooter

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", tracePath)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}

	report, err := p.AnalyzeFile(context.Background(), tracePath)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Classified %d segment(s), mode %s\n",
			report.Aggregate.SegmentCount, report.GlobalState.Mode)
	}

	renderer := p.Renderer()
	if err := renderer.RenderJSON(report, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)

	return nil
}
