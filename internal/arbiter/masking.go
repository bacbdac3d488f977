package arbiter

import "github.com/ppiankov/arbiterstg/internal/model"

// maskingSuggestion decides whether a segment should persist without being
// surfaced. Masking is not erasure. Rules are evaluated in strict priority
// order; the first match wins and its reason is recorded.
func maskingSuggestion(mode model.Mode, adm model.Admissibility, l, esc float64) (model.Masking, []string) {
	if mode == model.ModeShadow {
		return model.MaskingMasked, []string{ReasonShadowModeActive}
	}

	if adm == model.AdmissibilityInert {
		return model.MaskingMasked, []string{ReasonInertTrace}
	}

	if l >= MaskLeakThreshold {
		return model.MaskingMasked, []string{ReasonLeakPressureHigh}
	}

	if esc >= MaskESCThreshold {
		return model.MaskingMasked, []string{ReasonESCDependencyHigh}
	}

	return model.MaskingUnmasked, nil
}
