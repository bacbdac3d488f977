package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/arbiterstg/internal/pipeline"
	"github.com/ppiankov/arbiterstg/internal/watch"
)

var watchOutputDir string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and analyze trace files as they arrive",
	Long: `Watch monitors a directory for trace documents and runs the analysis
pipeline on every new or changed *.json file. Reports are written alongside
the traces (or into --output-dir), named <trace>.report.json.

Bursts of write events for the same file are rate limited so editors and
atomic-save tools do not trigger repeated analyses.

Example:
  arbiterstg watch ./traces
  arbiterstg watch ./traces --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", "", "report output directory (default: next to each trace)")
	watchCmd.Flags().BoolVar(&validateSchema, "validate", false, "validate traces against the MDS_Trace schema before analysis")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg := loadConfig()
	cfg.Input.ValidateSchema = cfg.Input.ValidateSchema || validateSchema
	cfg.Output.Verbose = cfg.Output.Verbose || verbose

	if watchOutputDir != "" {
		if err := os.MkdirAll(watchOutputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}
	renderer := p.Renderer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := func(tracePath string) {
		report, err := p.AnalyzeFile(ctx, tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", tracePath, err)
			return
		}

		out := watchReportPath(tracePath)
		if err := renderer.RenderJSON(report, out); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write report: %v\n", tracePath, err)
			return
		}

		fmt.Fprintf(os.Stderr, "✓ %s → %s (mode: %s)\n", tracePath, out, report.GlobalState.Mode)
	}

	w, err := watch.NewWatcher(dir, cfg.Watch, handler)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Watching %s for trace files (Ctrl-C to stop)\n", dir)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchReportPath places the report next to the trace, or in the output
// directory when one is configured.
func watchReportPath(tracePath string) string {
	name := strings.TrimSuffix(filepath.Base(tracePath), ".json") + ".report.json"
	if watchOutputDir != "" {
		return filepath.Join(watchOutputDir, name)
	}
	return filepath.Join(filepath.Dir(tracePath), name)
}
