package arbiter

import "github.com/ppiankov/arbiterstg/internal/model"

// routingLabels lists which futures are structurally eligible for a segment.
// Labels only, never actions. The result is non-empty for every input.
func routingLabels(mode model.Mode, adm model.Admissibility, p model.ProxyTuple) []string {
	if mode == model.ModeShadow {
		return []string{LabelShadowPersistence}
	}

	if adm == model.AdmissibilityInert {
		return []string{LabelInertPersistence}
	}

	labels := []string{}

	// Memorialization needs enough persistence and not-too-high leak.
	if p.R >= MemorializationMinR && p.L <= MemorializationMaxL {
		labels = append(labels, LabelMemorialization)
	}

	// Jurisdictional transfer needs some structure plus addressability.
	if p.D >= JurisdictionMinD && p.L <= JurisdictionMaxL {
		labels = append(labels, LabelJurisdictionTransfer)
	}

	// Diagnostic propagation is possible even when contested.
	labels = append(labels, LabelDiagnosticPropagation)

	// Strongly external segments may still circulate institutionally.
	if p.ESC >= InstitutionCarryMinESC && adm != model.AdmissibilityInert {
		labels = append(labels, LabelInstitutionCarry)
	}

	// Fallback for a label-less segment. Currently unreachable because the
	// diagnostic propagation label is always added above; kept for forward
	// compatibility should that label ever become conditional.
	if len(labels) == 0 {
		labels = append(labels, LabelDriftingResidue)
	}

	return labels
}
