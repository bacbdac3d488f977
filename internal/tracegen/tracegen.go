// Package tracegen turns raw text into an MDS_Trace v1.0 document: the text
// is segmented into paragraphs and each segment is annotated with four
// structural proxy scores. Scoring is pure surface statistics; segment text
// itself is only embedded on request.
package tracegen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	schemaName    = "MDS_Trace"
	schemaVersion = "1.0"
)

// Generator produces trace documents from text.
type Generator struct {
	includeText bool
	source      Source

	// now is the clock for created_at stamps; tests pin it.
	now func() time.Time
}

// NewGenerator creates a generator. sourceTitle and sourceKind describe where
// the text came from; includeText is the privacy switch for embedding segment
// text in the output.
func NewGenerator(sourceTitle, sourceKind string, includeText bool) *Generator {
	return &Generator{
		includeText: includeText,
		source: Source{
			Title:           sourceTitle,
			Kind:            sourceKind,
			CanonicalStatus: "draft",
		},
		now: time.Now,
	}
}

// Generate builds the trace document for a text.
func (g *Generator) Generate(text string) *Document {
	contentID := makeID(text)
	stamp := g.now().UTC().Format("2006-01-02T15:04:05.000000-07:00")

	paragraphs := splitParagraphs(text)
	segments := make([]Segment, 0, len(paragraphs))
	nodes := make([]string, 0, len(paragraphs))

	for i, para := range paragraphs {
		segID := fmt.Sprintf("p%03d.s001", i+1)
		nodes = append(nodes, segID)

		esc := scoreClosure(para.text)
		seg := Segment{
			ID:   segID,
			Span: Span{StartChar: para.start, EndChar: para.end},
			D:    DensityProxy{Score: scoreDensity(para.text)},
			L:    LeakProxy{Score: scoreLeak(para.text)},
			ESC: ClosureProxy{
				Dependency: closureDependency(esc),
				Score:      esc,
			},
			R: EchoProxy{
				Strength:   scoreEcho(para.text),
				Sign:       "unknown",
				Signatures: []string{"echo_surface"},
				EchoLinks:  []string{},
			},
		}
		if g.includeText {
			seg.Text = para.text
		}
		segments = append(segments, seg)
	}

	return &Document{
		Schema: Schema{Name: schemaName, Version: schemaVersion},
		IDs: IDs{
			ContentID: contentID,
			TraceID:   makeID(contentID + stamp),
		},
		CreatedAt:    stamp,
		Source:       g.source,
		NonGoverning: true,
		Segments:     segments,
		Aggregate: Aggregate{
			SegmentCount: len(segments),
			EchoGraph: EchoGraph{
				Nodes:   nodes,
				Edges:   []string{},
				Density: 0.0,
			},
		},
	}
}

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n+`)

// paragraph is one trimmed paragraph together with its rune span in the
// source text.
type paragraph struct {
	text  string
	start int
	end   int
}

// splitParagraphs splits text on blank lines. Spans are rune offsets into the
// original text, so they stay addressable regardless of how much whitespace
// separated or surrounded a paragraph. Whitespace-only input produces no
// segments.
func splitParagraphs(text string) []paragraph {
	var out []paragraph

	offset := 0
	bounds := paragraphBreak.FindAllStringIndex(text, -1)
	bounds = append(bounds, []int{len(text), len(text)})

	for _, b := range bounds {
		part := text[offset:b[0]]
		lead := len(part) - len(strings.TrimLeftFunc(part, unicode.IsSpace))
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			start := utf8.RuneCountInString(text[:offset+lead])
			out = append(out, paragraph{
				text:  trimmed,
				start: start,
				end:   start + utf8.RuneCountInString(trimmed),
			})
		}
		offset = b[1]
	}

	return out
}

// makeID derives a short stable identifier from content.
func makeID(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}
