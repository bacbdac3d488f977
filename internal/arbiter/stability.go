package arbiter

import "github.com/ppiankov/arbiterstg/internal/model"

// aggregateFlags recomputes trace-wide stability risks in a second pass over
// the raw segments, independent of the per-segment decisions.
func aggregateFlags(segs []model.Segment, rlci float64) []string {
	flags := []string{}

	if rlci >= ShadowModeThreshold {
		flags = append(flags, FlagRLCIHighShadowRisk)
	}

	if len(segs) > 0 {
		// Saturation: too many segments simultaneously leaky and
		// externally closed.
		highLoad := 0
		for i := range segs {
			p := segs[i].Proxies()
			if p.L >= SaturationLeakThreshold && p.ESC >= SaturationESCThreshold {
				highLoad++
			}
		}
		if float64(highLoad)/float64(len(segs)) >= SaturationFraction {
			flags = append(flags, FlagShadowSaturationRisk)
		}

		// Collapse: most segments inert by admission score.
		inert := 0
		for i := range segs {
			if ClassifyAdmissibility(AdmissionScore(segs[i].Proxies())) == model.AdmissibilityInert {
				inert++
			}
		}
		if float64(inert)/float64(len(segs)) >= CollapseFraction {
			flags = append(flags, FlagTraceCollapseRisk)
		}
	}

	return flags
}

// failureTaxonomy emits the fixed set of structural failure classes whose
// aggregate triggers hold. Entries are static text; presence is binary.
func failureTaxonomy(segs []model.Segment, flags []string) []model.FailureClass {
	classes := []model.FailureClass{}
	flagged := func(name string) bool {
		for _, f := range flags {
			if f == name {
				return true
			}
		}
		return false
	}

	if flagged(FlagShadowSaturationRisk) {
		classes = append(classes, model.FailureClass{
			Code:    "ASTG-F1",
			Name:    "Shadow Saturation",
			Trigger: "high fraction of segments exceed leak+closure load",
			Notes:   "masked residue accumulates faster than routing capacity (structural bottleneck).",
		})
	}

	// F2: authority risk prevalent across the trace. Same risk function as
	// the per-segment pass.
	if len(segs) > 0 {
		highAuth := 0
		for i := range segs {
			risk, _ := AuthorityRisk(segs[i].Proxies())
			if risk >= AuthorityRiskHighThreshold {
				highAuth++
			}
		}
		if float64(highAuth)/float64(len(segs)) >= AuthorityPrevalenceFraction {
			classes = append(classes, model.FailureClass{
				Code:    "ASTG-F2",
				Name:    "Authority Smuggling",
				Trigger: "many segments show high external-closure + low persistence/legibility coherence",
				Notes:   "prestige/interpretation tends to bypass diagnostic constraints (proxy-detectable).",
			})
		}
	}

	if flagged(FlagTraceCollapseRisk) {
		classes = append(classes, model.FailureClass{
			Code:    "ASTG-F3",
			Name:    "Trace Collapse",
			Trigger: "majority of segments classify as inert",
			Notes:   "residue persists but becomes structurally unavailable to recruitment/memorialization.",
		})
	}

	return classes
}
