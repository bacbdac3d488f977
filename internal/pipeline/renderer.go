package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// Renderer writes arbiter reports to their output forms.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Report\n\n", report.Arbiter.CanonicalName)
	fmt.Fprintf(&b, "> %s\n\n", report.ProxyDoctrine.Note)
	fmt.Fprintf(&b, "- **Mode**: %s\n", report.GlobalState.Mode)
	fmt.Fprintf(&b, "- **RLCI proxy**: %.3f\n", report.GlobalState.RLCIProxy)
	fmt.Fprintf(&b, "- **Segments**: %d\n", report.Aggregate.SegmentCount)
	fmt.Fprintf(&b, "- **Admissibility**: %d admissible / %d contested / %d inert\n",
		report.Aggregate.AdmissibilityCounts.Admissible,
		report.Aggregate.AdmissibilityCounts.Contested,
		report.Aggregate.AdmissibilityCounts.Inert)
	fmt.Fprintf(&b, "- **Masking**: %d masked / %d unmasked\n\n",
		report.Aggregate.MaskingCounts.Masked,
		report.Aggregate.MaskingCounts.Unmasked)

	if len(report.GlobalState.AggregateFlags) > 0 {
		b.WriteString("## Stability Flags\n\n")
		for _, flag := range report.GlobalState.AggregateFlags {
			fmt.Fprintf(&b, "- `%s`\n", flag)
		}
		b.WriteString("\n")
	}

	if len(report.Aggregate.FailureTaxonomy) > 0 {
		b.WriteString("## Failure Taxonomy\n\n")
		for _, fc := range report.Aggregate.FailureTaxonomy {
			fmt.Fprintf(&b, "### %s — %s\n\n", fc.Code, fc.Name)
			fmt.Fprintf(&b, "- Trigger: %s\n", fc.Trigger)
			fmt.Fprintf(&b, "- Notes: %s\n\n", fc.Notes)
		}
	}

	if len(report.Segments) > 0 {
		b.WriteString("## Segments\n\n")
		b.WriteString("| id | admissibility | masking | confidence | labels |\n")
		b.WriteString("|----|---------------|---------|------------|--------|\n")
		for _, seg := range report.Segments {
			fmt.Fprintf(&b, "| %s | %s | %s | %.3f | %s |\n",
				seg.SegID, seg.Admissibility, seg.Masking,
				seg.ConfidenceProxy, strings.Join(seg.RoutingLabels, ", "))
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n*Generated by %s v%s (non-governing). Labels and flags carry no execution semantics.*\n",
			report.Arbiter.CanonicalName, report.Arbiter.Version)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s v%s — %d segment(s)\n",
		report.Arbiter.CanonicalName, report.Arbiter.Version, report.Aggregate.SegmentCount)
	fmt.Printf("  Mode:          %s (rlci_proxy %.3f)\n",
		report.GlobalState.Mode, report.GlobalState.RLCIProxy)
	fmt.Printf("  Admissibility: %d admissible / %d contested / %d inert\n",
		report.Aggregate.AdmissibilityCounts.Admissible,
		report.Aggregate.AdmissibilityCounts.Contested,
		report.Aggregate.AdmissibilityCounts.Inert)
	fmt.Printf("  Masking:       %d masked / %d unmasked\n",
		report.Aggregate.MaskingCounts.Masked,
		report.Aggregate.MaskingCounts.Unmasked)
	if len(report.GlobalState.AggregateFlags) > 0 {
		fmt.Printf("  Flags:         %s\n", strings.Join(report.GlobalState.AggregateFlags, ", "))
	}
	for _, fc := range report.Aggregate.FailureTaxonomy {
		fmt.Printf("  Failure:       %s %s\n", fc.Code, fc.Name)
	}
	fmt.Println()
}
