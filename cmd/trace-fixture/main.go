// trace-fixture emits a synthetic MDS trace with uniform proxy values.
// Useful for exercising analyze/batch against known geometry without
// authoring input text.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/arbiterstg/internal/tracegen"
)

func main() {
	segments := flag.Int("segments", 5, "number of segments")
	d := flag.Float64("d", 0.4, "D_proxy score for every segment")
	l := flag.Float64("l", 0.05, "L_proxy score for every segment")
	esc := flag.Float64("esc", 0.25, "ESC_proxy score for every segment")
	r := flag.Float64("r", 0.3, "R_proxy strength for every segment")
	out := flag.String("out", "fixture_trace.json", "output trace JSON path")
	flag.Parse()

	doc := buildFixture(*segments, *d, *l, *esc, *r)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal fixture: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fixture trace written → %s (%d segment(s))\n", *out, *segments)
}

func buildFixture(n int, d, l, esc, r float64) *tracegen.Document {
	stamp := time.Now().UTC().Format("2006-01-02T15:04:05.000000-07:00")

	segs := make([]tracegen.Segment, 0, n)
	nodes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p%03d.s001", i+1)
		nodes = append(nodes, id)
		segs = append(segs, tracegen.Segment{
			ID:   id,
			Span: tracegen.Span{StartChar: i * 100, EndChar: i*100 + 99},
			D:    tracegen.DensityProxy{Score: d},
			L:    tracegen.LeakProxy{Score: l},
			ESC:  tracegen.ClosureProxy{Dependency: "low", Score: esc},
			R: tracegen.EchoProxy{
				Strength:   r,
				Sign:       "unknown",
				Signatures: []string{"echo_surface"},
				EchoLinks:  []string{},
			},
		})
	}

	return &tracegen.Document{
		Schema:       tracegen.Schema{Name: "MDS_Trace", Version: "1.0"},
		IDs:          tracegen.IDs{ContentID: "fixture", TraceID: "fixture-" + stamp},
		CreatedAt:    stamp,
		Source:       tracegen.Source{Title: "Fixture", Kind: "synthetic", CanonicalStatus: "draft"},
		NonGoverning: true,
		Segments:     segs,
		Aggregate: tracegen.Aggregate{
			SegmentCount: n,
			EchoGraph: tracegen.EchoGraph{
				Nodes:   nodes,
				Edges:   []string{},
				Density: 0.0,
			},
		},
	}
}
