package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/arbiterstg/internal/pipeline"
	"github.com/ppiankov/arbiterstg/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchCache   bool
	cacheDir     string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Analyze multiple trace files in parallel",
	Long: `Batch analyzes many trace documents concurrently:
- Accept a directory of trace *.json files, or a list file (one path per line)
- Fan the analyses out over a configurable worker count
- Optionally cache results by content hash so duplicate traces are analyzed once
- Write one report per input trace into the output directory

Example:
  arbiterstg batch ./traces
  arbiterstg batch traces.txt --concurrency 8 --output-dir ./reports
  arbiterstg batch ./traces --cache --cache-dir ~/.arbiterstg/cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./arbiter-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&batchCache, "cache", false, "cache analysis results by input content hash")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache directory (memory-only when empty)")
	batchCmd.Flags().BoolVar(&validateSchema, "validate", false, "validate traces against the MDS_Trace schema before analysis")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.Cache.Enabled = cfg.Cache.Enabled || batchCache
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	cfg.Input.ValidateSchema = cfg.Input.ValidateSchema || validateSchema
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	cfg.Output.IncludeFooter = !noFooter

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  ArbiterSTG Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:        %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "  Cache:        %v\n", cfg.Cache.Enabled)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)

	results, err := processor.ProcessInput(ctx, input)
	if err != nil {
		return fmt.Errorf("process input: %w", err)
	}

	renderer := p.Renderer()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		reportPath := filepath.Join(outputDir, reportName(result.Path))
		if err := renderer.RenderJSON(result.Report, reportPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write report: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (mode: %s, %d segment(s))\n",
			result.Path, result.Report.GlobalState.Mode, result.Report.Aggregate.SegmentCount)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d trace(s)\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// reportName derives the report filename for a trace path.
func reportName(tracePath string) string {
	base := filepath.Base(tracePath)
	base = strings.TrimSuffix(base, ".json")
	return base + ".report.json"
}
