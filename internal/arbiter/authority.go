package arbiter

import "github.com/ppiankov/arbiterstg/internal/model"

// AuthorityRisk is the structural heuristic for authority smuggling: high
// external-closure dependency combined with low internal legibility
// coherence. Pure function of the proxy tuple; the same function backs both
// the per-segment flagging pass and the F2 aggregate fraction, so the two
// call sites can never drift apart.
//
// Trigger reasons are appended independently, each when its guard holds.
func AuthorityRisk(p model.ProxyTuple) (float64, []string) {
	risk := clamp01(authorityWeightESC*p.ESC +
		authorityWeightL*p.L +
		authorityWeightInvR*(1.0-p.R) +
		authorityWeightInvD*(1.0-p.D))

	var reasons []string
	if p.ESC >= AuthorityESCTrigger {
		reasons = append(reasons, ReasonESCDependencyHigh)
	}
	if p.L >= AuthorityLeakTrigger {
		reasons = append(reasons, ReasonLeakPressureHigh)
	}
	if p.R <= AuthorityPersistenceTrigger {
		reasons = append(reasons, ReasonLowPersistence)
	}

	return risk, reasons
}
