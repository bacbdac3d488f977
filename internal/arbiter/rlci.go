package arbiter

import (
	"math"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// clamp01 bounds a score to the dimensionless proxy scale.
func clamp01(x float64) float64 {
	if x < 0.0 {
		return 0.0
	}
	if x > 1.0 {
		return 1.0
	}
	return x
}

// collapsePressure is the per-segment structural load: high density, leak
// pressure and external-closure dependency all raise it; stabilizing residue
// (R) lowers it slightly.
func collapsePressure(p model.ProxyTuple) float64 {
	pressure := pressureWeightD*p.D +
		pressureWeightL*p.L +
		pressureWeightESC*p.ESC +
		pressureWeightInvR*(1.0-p.R)
	return clamp01(pressure)
}

// ComputeRLCI reduces all segments to the trace-level legibility collapse
// index: mean pressure amplified by volatility across segments. A trace that
// oscillates between very stable and very unstable segments is riskier than a
// uniformly moderate one. An empty trace has zero collapse risk.
func ComputeRLCI(segs []model.Segment) float64 {
	if len(segs) == 0 {
		return 0.0
	}

	vals := make([]float64, 0, len(segs))
	for i := range segs {
		vals = append(vals, collapsePressure(segs[i].Proxies()))
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))

	// Population variance, not sample.
	var variance float64
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(vals))
	volatility := math.Sqrt(variance)

	return clamp01(rlciMeanWeight*mean + rlciVolatilityWeight*volatility)
}

// SelectMode thresholds RLCI into the single global mode for the run.
// The boundary itself (RLCI exactly at the threshold) is shadow.
func SelectMode(rlci float64) model.Mode {
	if rlci >= ShadowModeThreshold {
		return model.ModeShadow
	}
	return model.ModeRouting
}
