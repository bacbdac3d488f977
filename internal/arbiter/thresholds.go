package arbiter

// Policy thresholds. Every comparison constant in the classification pipeline
// is named here so tests and future tuning can reference it; none of these
// are configurable at call sites.
const (
	// ShadowModeThreshold selects the global mode: shadow iff RLCI >= this.
	ShadowModeThreshold = 0.78

	// Admission score boundaries.
	AdmissibleThreshold = 0.62
	ContestedThreshold  = 0.38

	// Masking triggers in routing mode.
	MaskLeakThreshold = 0.78
	MaskESCThreshold  = 0.78

	// Routing-label eligibility.
	MemorializationMinR    = 0.45
	MemorializationMaxL    = 0.65
	JurisdictionMinD       = 0.25
	JurisdictionMaxL       = 0.72
	InstitutionCarryMinESC = 0.70

	// Local overload flags.
	LeakOverloadThreshold = 0.85
	ESCOverloadThreshold  = 0.85

	// Authority-smuggling risk.
	AuthorityRiskHighThreshold   = 0.78
	AuthorityRiskReportThreshold = 0.60
	AuthorityESCTrigger          = 0.75
	AuthorityLeakTrigger         = 0.75
	AuthorityPersistenceTrigger  = 0.20

	// Aggregate fractions.
	SaturationLeakThreshold     = 0.75
	SaturationESCThreshold      = 0.60
	SaturationFraction          = 0.45
	CollapseFraction            = 0.60
	AuthorityPrevalenceFraction = 0.30
)

// Formula weights. Unlike the thresholds above these are not decision
// boundaries; they encode how much each proxy contributes to a score.
const (
	pressureWeightD    = 0.40
	pressureWeightL    = 0.40
	pressureWeightESC  = 0.35
	pressureWeightInvR = 0.10

	rlciMeanWeight       = 0.80
	rlciVolatilityWeight = 0.35

	admissionWeightInvL   = 0.35
	admissionWeightInvESC = 0.25
	admissionWeightR      = 0.25
	admissionWeightD      = 0.15
	admissionDensityPivot = 0.55

	authorityWeightESC  = 0.55
	authorityWeightL    = 0.25
	authorityWeightInvR = 0.15
	authorityWeightInvD = 0.05

	confidenceWeightAdmission = 0.55
	confidenceWeightAuthority = 0.45
)

// Routing labels. Labels are structural eligibility tags only; they carry no
// execution or authorization semantics.
const (
	LabelShadowPersistence     = "shadow_persistence"
	LabelInertPersistence      = "inert_persistence"
	LabelMemorialization       = "memorialization_eligible"
	LabelJurisdictionTransfer  = "jurisdiction_transfer_eligible"
	LabelDiagnosticPropagation = "diagnostic_propagation_eligible"
	LabelInstitutionCarry      = "institution_dependent_carry"
	LabelDriftingResidue       = "drifting_residue"
)

// Stability flags.
const (
	FlagShadowModeActive      = "shadow_mode_active"
	FlagLeakOverloadLocal     = "leak_overload_local"
	FlagESCOverloadLocal      = "esc_overload_local"
	FlagAuthorityRiskHigh     = "authority_smuggling_risk_high"
	FlagRLCIHighShadowRisk    = "rlci_high_shadow_mode_risk"
	FlagShadowSaturationRisk  = "shadow_saturation_risk"
	FlagTraceCollapseRisk     = "trace_collapse_risk"
)

// Reason tokens recorded in decision audit trails.
const (
	ReasonShadowModeActive  = "shadow_mode_active"
	ReasonInertTrace        = "inert_trace"
	ReasonLeakPressureHigh  = "leak_pressure_high"
	ReasonESCDependencyHigh = "esc_dependency_high"
	ReasonLowPersistence    = "low_persistence_surface"
	ReasonRLCITriggered     = "rlci_triggered"
)
