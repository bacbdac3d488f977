// Package arbiter implements the ArbiterSTG classification core: a pure,
// stateless pipeline from an MDS trace to a diagnostic report. It evaluates
// structural geometry proxies only, never text content, and its output is
// explicitly non-governing.
package arbiter

import (
	"fmt"
	"math"
	"time"

	"github.com/ppiankov/arbiterstg/internal/model"
)

const (
	Version       = "1.0"
	CanonicalName = "ArbiterSTG"
	Abbreviation  = "ASTG"
)

// doctrineNote is attached to every report. The numbers are geometry and
// legibility proxies, nothing more.
const doctrineNote = "All numeric values are proxies (geometry/legibility/load). " +
	"They are not measures of truth, value, correctness, or meaning."

// Analyze runs the full classification pipeline over a trace and assembles
// the report. Identical trace input yields identical report content; only the
// report timestamp varies between runs.
func Analyze(trace *model.Trace) *model.Report {
	rlci := ComputeRLCI(trace.Segments)
	mode := SelectMode(rlci)

	decisions := make([]model.SegmentDecision, 0, len(trace.Segments))
	var admissCounts model.AdmissibilityCounts
	var maskCounts model.MaskingCounts

	for i := range trace.Segments {
		d := classifySegment(&trace.Segments[i], mode)
		decisions = append(decisions, d)

		switch d.Admissibility {
		case model.AdmissibilityAdmissible:
			admissCounts.Admissible++
		case model.AdmissibilityContested:
			admissCounts.Contested++
		case model.AdmissibilityInert:
			admissCounts.Inert++
		}
		if d.Masking == model.MaskingMasked {
			maskCounts.Masked++
		} else {
			maskCounts.Unmasked++
		}
	}

	aggFlags := aggregateFlags(trace.Segments, rlci)

	return &model.Report{
		Arbiter: model.ArbiterMeta{
			CanonicalName: CanonicalName,
			Abbreviation:  Abbreviation,
			Version:       Version,
			NonGoverning:  true,
			CreatedAt:     utcNowISO(),
		},
		InputTrace: model.InputTrace{
			Schema:    passthrough(trace.Schema),
			IDs:       passthrough(trace.IDs),
			Source:    passthrough(trace.Source),
			CreatedAt: trace.CreatedAt,
		},
		ProxyDoctrine: model.ProxyDoctrine{
			Note:  doctrineNote,
			Scale: "0..1 (dimensionless proxy scale)",
		},
		GlobalState: model.GlobalState{
			RLCIProxy:      rlci,
			Mode:           mode,
			AggregateFlags: aggFlags,
		},
		Segments: decisions,
		Aggregate: model.Aggregate{
			SegmentCount:        len(decisions),
			AdmissibilityCounts: admissCounts,
			MaskingCounts:       maskCounts,
			FailureTaxonomy:     failureTaxonomy(trace.Segments, aggFlags),
		},
	}
}

// classifySegment produces one immutable decision record. It depends only on
// the segment's own proxies, the global mode, and the pure authority-risk
// function.
func classifySegment(seg *model.Segment, mode model.Mode) model.SegmentDecision {
	segID := seg.ID
	if segID == "" {
		segID = "unknown"
	}
	p := seg.Proxies()

	score := AdmissionScore(p)
	adm := ClassifyAdmissibility(score)
	mask, maskReasons := maskingSuggestion(mode, adm, p.L, p.ESC)
	labels := routingLabels(mode, adm, p)

	flags := []string{}
	if mode == model.ModeShadow {
		flags = append(flags, FlagShadowModeActive)
	}
	if p.L >= LeakOverloadThreshold {
		flags = append(flags, FlagLeakOverloadLocal)
	}
	if p.ESC >= ESCOverloadThreshold {
		flags = append(flags, FlagESCOverloadLocal)
	}

	authRisk, authReasons := AuthorityRisk(p)
	if authRisk >= AuthorityRiskHighThreshold {
		flags = append(flags, FlagAuthorityRiskHigh)
	}

	// Audit trail, in rule evaluation order.
	reasons := []string{}
	if mode == model.ModeShadow {
		reasons = append(reasons, ReasonRLCITriggered)
	}
	reasons = append(reasons, fmt.Sprintf("admission_score=%.3f", score))
	reasons = append(reasons, maskReasons...)
	if len(authReasons) > 0 && authRisk >= AuthorityRiskReportThreshold {
		reasons = append(reasons, fmt.Sprintf("authority_smuggling_proxy=%.3f", authRisk))
		reasons = append(reasons, authReasons...)
	}

	confidence := clamp01(confidenceWeightAdmission*score +
		confidenceWeightAuthority*(1.0-authRisk))

	return model.SegmentDecision{
		SegID:           segID,
		Mode:            mode,
		Admissibility:   adm,
		Masking:         mask,
		RoutingLabels:   labels,
		StabilityFlags:  flags,
		ConfidenceProxy: round6(confidence),
		Reasons:         reasons,
	}
}

// passthrough copies a metadata block into the report, normalizing a missing
// block to an empty object.
func passthrough(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}

func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}

func utcNowISO() string {
	return time.Now().UTC().Truncate(time.Second).Format("2006-01-02T15:04:05-07:00")
}
