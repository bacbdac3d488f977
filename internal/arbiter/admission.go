package arbiter

import (
	"math"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// AdmissionScore measures structural continuation eligibility. Leakiness and
// external-closure dependency reduce it, persistence raises it, and density
// is rewarded only near a mid-range value: both very sparse and very dense
// segments are harder to carry forward.
func AdmissionScore(p model.ProxyTuple) float64 {
	score := admissionWeightInvL*(1.0-p.L) +
		admissionWeightInvESC*(1.0-p.ESC) +
		admissionWeightR*p.R +
		admissionWeightD*(1.0-math.Abs(p.D-admissionDensityPivot))
	return clamp01(score)
}

// ClassifyAdmissibility maps an admission score onto the three-way
// admissibility state.
func ClassifyAdmissibility(score float64) model.Admissibility {
	if score >= AdmissibleThreshold {
		return model.AdmissibilityAdmissible
	}
	if score >= ContestedThreshold {
		return model.AdmissibilityContested
	}
	return model.AdmissibilityInert
}
