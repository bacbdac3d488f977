package tracegen

import (
	"strings"
	"testing"
	"time"
)

func pinnedGenerator(includeText bool) *Generator {
	g := NewGenerator("Test Source", "text", includeText)
	g.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	}
	return g
}

func TestGenerate_ParagraphSegmentation(t *testing.T) {
	g := pinnedGenerator(false)
	doc := g.Generate("First paragraph here.\n\nSecond paragraph here.\n\n\nThird.")

	if len(doc.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(doc.Segments))
	}
	wantIDs := []string{"p001.s001", "p002.s001", "p003.s001"}
	for i, seg := range doc.Segments {
		if seg.ID != wantIDs[i] {
			t.Errorf("segment %d: expected id %s, got %s", i, wantIDs[i], seg.ID)
		}
	}
	if doc.Aggregate.SegmentCount != 3 {
		t.Errorf("expected segment_count 3, got %d", doc.Aggregate.SegmentCount)
	}
	if len(doc.Aggregate.EchoGraph.Nodes) != 3 {
		t.Errorf("expected 3 echo graph nodes, got %d", len(doc.Aggregate.EchoGraph.Nodes))
	}
}

func TestGenerate_Spans(t *testing.T) {
	g := pinnedGenerator(false)
	doc := g.Generate("alpha beta\n\ngamma")

	s0 := doc.Segments[0].Span
	if s0.StartChar != 0 || s0.EndChar != 10 {
		t.Errorf("first span: expected [0,10), got [%d,%d)", s0.StartChar, s0.EndChar)
	}
	s1 := doc.Segments[1].Span
	if s1.StartChar != 12 || s1.EndChar != 17 {
		t.Errorf("second span: expected [12,17), got [%d,%d)", s1.StartChar, s1.EndChar)
	}
}

func TestGenerate_SpansAddressSourceText(t *testing.T) {
	text := "alpha\n\n\n\nbeta gamma\n\n   indented delta"
	g := pinnedGenerator(false)
	doc := g.Generate(text)

	if len(doc.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(doc.Segments))
	}

	runes := []rune(text)
	want := []string{"alpha", "beta gamma", "indented delta"}
	for i, seg := range doc.Segments {
		got := string(runes[seg.Span.StartChar:seg.Span.EndChar])
		if got != want[i] {
			t.Errorf("segment %d span [%d,%d): expected %q, got %q",
				i, seg.Span.StartChar, seg.Span.EndChar, want[i], got)
		}
	}
}

func TestGenerate_IncludeTextSwitch(t *testing.T) {
	text := "One paragraph only."

	withText := pinnedGenerator(true).Generate(text)
	if withText.Segments[0].Text != "One paragraph only." {
		t.Errorf("expected embedded text, got %q", withText.Segments[0].Text)
	}

	withoutText := pinnedGenerator(false).Generate(text)
	if withoutText.Segments[0].Text != "" {
		t.Errorf("expected no embedded text, got %q", withoutText.Segments[0].Text)
	}
}

func TestGenerate_IdentityAndStamp(t *testing.T) {
	g := pinnedGenerator(false)
	doc := g.Generate("stable content")

	if doc.CreatedAt != "2025-03-14T09:26:53.589793+00:00" {
		t.Errorf("unexpected created_at: %s", doc.CreatedAt)
	}
	if len(doc.IDs.ContentID) != 12 {
		t.Errorf("expected 12-char content id, got %q", doc.IDs.ContentID)
	}
	if doc.IDs.TraceID == doc.IDs.ContentID {
		t.Errorf("trace id must incorporate the timestamp")
	}

	again := pinnedGenerator(false).Generate("stable content")
	if again.IDs.ContentID != doc.IDs.ContentID {
		t.Errorf("content id must be stable for identical text")
	}
	if again.IDs.TraceID != doc.IDs.TraceID {
		t.Errorf("trace id must be stable under a pinned clock")
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	g := pinnedGenerator(false)
	doc := g.Generate("   \n\n\t\n  ")
	if len(doc.Segments) != 0 {
		t.Errorf("whitespace-only input must yield no segments, got %d", len(doc.Segments))
	}
	if doc.Aggregate.SegmentCount != 0 {
		t.Errorf("expected segment_count 0, got %d", doc.Aggregate.SegmentCount)
	}
}

func TestScores_Bounded(t *testing.T) {
	samples := []string{
		"",
		"word",
		"this that it they them those these there",
		strings.Repeat("echo echo echo ", 20),
		`According to officials, "quoted claims" [1] https://example.com et al.`,
		strings.Repeat("a very long unbroken run of tokens with no sentence breaks ", 10),
	}
	for _, s := range samples {
		for name, score := range map[string]float64{
			"density": scoreDensity(s),
			"leak":    scoreLeak(s),
			"closure": scoreClosure(s),
			"echo":    scoreEcho(s),
		} {
			if score < 0.0 || score > 1.0 {
				t.Errorf("%s score out of range for %q: %f", name, s, score)
			}
		}
	}
}

func TestScoreLeak_DeicticFraction(t *testing.T) {
	// 2 deictic of 8 tokens, scaled by 3: 0.75.
	got := scoreLeak("this claim rests on that earlier unstated premise")
	if got != 0.75 {
		t.Errorf("expected leak 0.75, got %f", got)
	}
}

func TestScoreEcho_NoRepeats(t *testing.T) {
	if got := scoreEcho("every token appears exactly once here"); got != 0.0 {
		t.Errorf("expected echo 0.0, got %f", got)
	}
}

func TestClosureDependency_Buckets(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.0, "low"},
		{0.32, "low"},
		{0.33, "medium"},
		{0.65, "medium"},
		{0.66, "high"},
		{1.0, "high"},
	}
	for _, tc := range tests {
		if got := closureDependency(tc.score); got != tc.want {
			t.Errorf("dependency(%f): expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
