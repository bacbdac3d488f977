package guardrail

import (
	"strings"
	"testing"
)

func TestEvaluate_RefusesHighRiskPair(t *testing.T) {
	e := NewEvaluator(nil)
	res := e.Evaluate("a story about a minor in an explicit situation")
	if res.Decision != DecisionRefuse {
		t.Fatalf("expected REFUSE, got %s", res.Decision)
	}
	if res.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %f", res.Confidence)
	}
	if len(res.Reasons) != 1 {
		t.Errorf("expected a single reason, got %v", res.Reasons)
	}
}

func TestEvaluate_RedactsWithDocumentaryContext(t *testing.T) {
	e := NewEvaluator(nil)
	res := e.Evaluate("The court heard testimony describing the assault in detail.")
	if res.Decision != DecisionAllowRedacted {
		t.Fatalf("expected ALLOW_REDACTED, got %s", res.Decision)
	}
	if res.Confidence != 0.70 {
		t.Errorf("expected confidence 0.70, got %f", res.Confidence)
	}
}

func TestEvaluate_RedactsWithoutContext(t *testing.T) {
	e := NewEvaluator(nil)
	res := e.Evaluate("He described the assault casually.")
	if res.Decision != DecisionAllowRedacted {
		t.Fatalf("expected ALLOW_REDACTED, got %s", res.Decision)
	}
	if res.Confidence != 0.60 {
		t.Errorf("expected confidence 0.60, got %f", res.Confidence)
	}
}

func TestEvaluate_AllowsCleanText(t *testing.T) {
	e := NewEvaluator(nil)
	res := e.Evaluate("The quarterly report shows a modest increase in output.")
	if res.Decision != DecisionAllow {
		t.Fatalf("expected ALLOW, got %s", res.Decision)
	}
	if res.Confidence != 0.10 {
		t.Errorf("expected confidence 0.10, got %f", res.Confidence)
	}
	if len(res.Reasons) != 1 || res.Reasons[0] != "No guardrail triggers." {
		t.Errorf("unexpected reasons: %v", res.Reasons)
	}
}

func TestEvaluate_ExtraSensitivePatterns(t *testing.T) {
	e := NewEvaluator([]string{`\bproject\s+nightfall\b`})
	res := e.Evaluate("Details of Project Nightfall were shared.")
	if res.Decision != DecisionAllowRedacted {
		t.Fatalf("expected ALLOW_REDACTED for extra pattern, got %s", res.Decision)
	}
}

func TestNewEvaluator_SkipsInvalidExtraPattern(t *testing.T) {
	e := NewEvaluator([]string{`(unclosed`})
	res := e.Evaluate("A perfectly ordinary sentence.")
	if res.Decision != DecisionAllow {
		t.Errorf("invalid extra pattern must be skipped, got %s", res.Decision)
	}
}

func TestRedact_ReplacesSensitiveSpans(t *testing.T) {
	e := NewEvaluator(nil)
	got := e.Redact("The witness described the assault and later violence.")
	if strings.Contains(got, "assault") || strings.Contains(got, "violence") {
		t.Errorf("sensitive terms must be redacted, got %q", got)
	}
	if !strings.Contains(got, RedactionMarker) {
		t.Errorf("expected redaction marker in %q", got)
	}
}
