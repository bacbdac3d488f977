package model

// Report is the complete arbiter output document.
// Everything in it is diagnostic: labels and flags carry no execution or
// authorization semantics.
type Report struct {
	Arbiter       ArbiterMeta       `json:"arbiter"`
	InputTrace    InputTrace        `json:"input_trace"`
	ProxyDoctrine ProxyDoctrine     `json:"proxy_doctrine"`
	GlobalState   GlobalState       `json:"global_state"`
	Segments      []SegmentDecision `json:"segments"`
	Aggregate     Aggregate         `json:"aggregate"`
}

// ArbiterMeta identifies the arbiter that produced the report.
// NonGoverning is always true: a report is never a control decision.
type ArbiterMeta struct {
	CanonicalName string `json:"canonical_name"`
	Abbreviation  string `json:"abbreviation"`
	Version       string `json:"version"`
	NonGoverning  bool   `json:"non_governing"`
	CreatedAt     string `json:"created_at"`
}

// InputTrace is the pass-through subset of the analyzed trace document.
type InputTrace struct {
	Schema    map[string]interface{} `json:"schema"`
	IDs       map[string]interface{} `json:"ids"`
	Source    map[string]interface{} `json:"source"`
	CreatedAt interface{}            `json:"created_at"`
}

// ProxyDoctrine is the standing disclaimer attached to every report.
type ProxyDoctrine struct {
	Note  string `json:"note"`
	Scale string `json:"scale"`
}

// GlobalState is the trace-level outcome: the collapse-risk scalar, the
// single global mode it selects, and the aggregate stability flags.
type GlobalState struct {
	RLCIProxy      float64  `json:"rlci_proxy"`
	Mode           Mode     `json:"mode"`
	AggregateFlags []string `json:"aggregate_flags"`
}

// SegmentDecision is the per-segment decision record. Built once during the
// classification pass and immutable thereafter.
type SegmentDecision struct {
	SegID           string        `json:"id"`
	Mode            Mode          `json:"mode"`
	Admissibility   Admissibility `json:"admissibility"`
	Masking         Masking       `json:"masking"`
	RoutingLabels   []string      `json:"routing_labels"`
	StabilityFlags  []string      `json:"stability_flags"`
	ConfidenceProxy float64       `json:"confidence_proxy"`
	Reasons         []string      `json:"reasons"`
}

// Aggregate is the trace-level tally block.
type Aggregate struct {
	SegmentCount        int                 `json:"segment_count"`
	AdmissibilityCounts AdmissibilityCounts `json:"admissibility_counts"`
	MaskingCounts       MaskingCounts       `json:"masking_counts"`
	FailureTaxonomy     []FailureClass      `json:"failure_taxonomy"`
}

// AdmissibilityCounts tallies per-segment admissibility outcomes.
type AdmissibilityCounts struct {
	Admissible int `json:"admissible"`
	Contested  int `json:"contested"`
	Inert      int `json:"inert"`
}

// MaskingCounts tallies per-segment masking suggestions.
type MaskingCounts struct {
	Masked   int `json:"masked"`
	Unmasked int `json:"unmasked"`
}

// FailureClass is a static failure-taxonomy entry. Qualitative only: presence
// in a report is binary, there is no numeric payload.
type FailureClass struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Trigger string `json:"trigger"`
	Notes   string `json:"notes"`
}

// Mode is the global trace state selected once from RLCI.
type Mode string

const (
	ModeRouting Mode = "routing"
	ModeShadow  Mode = "shadow"
)

// Admissibility classifies a segment's structural continuation eligibility.
type Admissibility string

const (
	AdmissibilityAdmissible Admissibility = "admissible"
	AdmissibilityContested  Admissibility = "contested"
	AdmissibilityInert      Admissibility = "inert"
)

// Masking is the suggestion that a segment persist without being surfaced.
// It is not deletion.
type Masking string

const (
	MaskingMasked   Masking = "masked"
	MaskingUnmasked Masking = "unmasked"
)
