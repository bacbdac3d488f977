// Package guardrail gates raw text before trace generation. It is a small
// keyword/regex screen, deliberately narrow: hard-stop the worst framing
// combinations, allow legal/clinical/news/research contexts, redact when
// sensitive terms appear without such context.
package guardrail

import (
	"errors"
	"regexp"
)

// Decision is the guardrail verdict for a text.
type Decision string

const (
	DecisionAllow         Decision = "ALLOW"
	DecisionAllowRedacted Decision = "ALLOW_REDACTED"
	DecisionRefuse        Decision = "REFUSE"
)

// RedactionMarker replaces matched sensitive spans in redacted text.
const RedactionMarker = "[REDACTED]"

// ErrRefused is returned by guarded generation when the guardrail refuses;
// the pipeline must not proceed to trace generation.
var ErrRefused = errors.New("guardrail refused input")

// Result carries the decision, the reasons behind it, and a heuristic
// confidence in [0,1].
type Result struct {
	Decision   Decision `json:"decision"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

// Cue lists. Kept small and sane; site-local additions come in through
// configuration rather than edits here.
var docContextCues = []string{
	`(?i)\b(case\s+no\.|docket|plaintiff|defendant|court|affidavit|indictment|testimony)\b`,
	`(?i)\b(judge|jury|prosecutor|defense\s+counsel|sentencing|probation)\b`,
	`(?i)\b(reporting|investigation|journalism|according\s+to|witness)\b`,
	`(?i)\b(study|paper|research|methodology|dataset|ethics\s+approval)\b`,
	`(?i)\b(therapy|counsel(or|ing)|clinical|diagnos(is|ed)|patient)\b`,
}

// highRiskPairs hard-refuse when both halves match.
var highRiskPairs = [][2]string{
	{`(?i)\b(minor|child|underage)\b`, `(?i)\b(sexual|pornographic|explicit)\b`},
}

// sensitiveTriggers can appear in legitimate contexts; they trigger
// redaction, not refusal.
var sensitiveTriggers = []string{
	`(?i)\b(rape|sexual\s+assault|molest(ed|ation)|incest)\b`,
	`(?i)\b(abuse|abused|abuser|assault|violence|violent)\b`,
}

type riskPair struct {
	a *regexp.Regexp
	b *regexp.Regexp
}

// Evaluator holds the compiled pattern sets.
type Evaluator struct {
	contextCues []*regexp.Regexp
	highRisk    []riskPair
	sensitive   []*regexp.Regexp
}

// NewEvaluator compiles the built-in cue lists plus any extra sensitive
// patterns. Invalid extra patterns are skipped rather than failing the run.
func NewEvaluator(extraSensitive []string) *Evaluator {
	e := &Evaluator{}
	for _, p := range docContextCues {
		e.contextCues = append(e.contextCues, regexp.MustCompile(p))
	}
	for _, pair := range highRiskPairs {
		e.highRisk = append(e.highRisk, riskPair{
			a: regexp.MustCompile(pair[0]),
			b: regexp.MustCompile(pair[1]),
		})
	}
	for _, p := range sensitiveTriggers {
		e.sensitive = append(e.sensitive, regexp.MustCompile(p))
	}
	for _, p := range extraSensitive {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			continue
		}
		e.sensitive = append(e.sensitive, re)
	}
	return e
}

// Evaluate screens a text and returns the guardrail verdict.
func (e *Evaluator) Evaluate(text string) Result {
	var reasons []string

	// 1) Hard refuse combinations.
	for _, pair := range e.highRisk {
		if pair.a.MatchString(text) && pair.b.MatchString(text) {
			reasons = append(reasons, "High-risk combination detected (minor/underage + explicit sexual framing).")
			return Result{Decision: DecisionRefuse, Reasons: reasons, Confidence: 0.95}
		}
	}

	// 2) Context-aware handling for sensitive but legitimate material.
	hasSensitive := matchAny(e.sensitive, text)
	hasDocContext := matchAny(e.contextCues, text)

	if hasSensitive && hasDocContext {
		reasons = append(reasons, "Sensitive terms detected in documentary/legal/clinical context → allow with redaction.")
		return Result{Decision: DecisionAllowRedacted, Reasons: reasons, Confidence: 0.70}
	}

	if hasSensitive {
		reasons = append(reasons, "Sensitive terms detected without clear documentary/legal/clinical context → allow with redaction.")
		return Result{Decision: DecisionAllowRedacted, Reasons: reasons, Confidence: 0.60}
	}

	return Result{Decision: DecisionAllow, Reasons: []string{"No guardrail triggers."}, Confidence: 0.10}
}

// Redact replaces every sensitive-trigger match with the redaction marker.
func (e *Evaluator) Redact(text string) string {
	for _, re := range e.sensitive {
		text = re.ReplaceAllString(text, RedactionMarker)
	}
	return text
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
