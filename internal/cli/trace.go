package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/arbiterstg/internal/guardrail"
	"github.com/ppiankov/arbiterstg/internal/pipeline"
)

var (
	traceInfile  string
	traceOutfile string
	includeText  bool
	unsafeTrace  bool
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Generate an MDS trace from a text file (guardrailed)",
	Long: `Trace segments a text file into paragraphs and annotates each segment with
four structural proxy scores, producing an MDS_Trace v1.0 document suitable
for analysis.

Raw text passes through a content guardrail first: refused input produces no
trace, and sensitive spans may be redacted before scoring. Segment text is
excluded from the output unless --include-text is given.

Example:
  arbiterstg trace --infile notes.txt --out trace.json
  arbiterstg trace --infile notes.txt --out trace.json --include-text`,
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVar(&traceInfile, "infile", "", "input text file (required)")
	traceCmd.Flags().StringVar(&traceOutfile, "out", "", "output trace JSON path (required)")
	traceCmd.Flags().BoolVar(&includeText, "include-text", false, "include full segment text in the output")
	traceCmd.Flags().BoolVar(&unsafeTrace, "unsafe", false, "skip the content guardrail")
	_ = traceCmd.MarkFlagRequired("infile")
	_ = traceCmd.MarkFlagRequired("out")
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Trace.IncludeText = cfg.Trace.IncludeText || includeText
	if unsafeTrace {
		cfg.Guardrail.Enabled = false
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}

	result, err := p.GenerateTraceFile(traceInfile, traceOutfile)
	if result != nil && result.Guardrail != nil {
		switch result.Guardrail.Decision {
		case guardrail.DecisionRefuse:
			fmt.Fprintln(os.Stderr, "GUARDRAILS: REFUSE")
		case guardrail.DecisionAllowRedacted:
			fmt.Fprintln(os.Stderr, "GUARDRAILS: ALLOW_REDACTED")
		}
		if result.Guardrail.Decision != guardrail.DecisionAllow {
			for _, reason := range result.Guardrail.Reasons {
				fmt.Fprintf(os.Stderr, "- %s\n", reason)
			}
		}
	}
	if err != nil {
		if errors.Is(err, guardrail.ErrRefused) {
			return err
		}
		return fmt.Errorf("generate trace: %w", err)
	}

	fmt.Printf("Trace written → %s (%d segment(s))\n", traceOutfile, result.Document.Aggregate.SegmentCount)
	return nil
}
