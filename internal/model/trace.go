package model

import "encoding/json"

// Trace is the arbiter's read-only view of an MDS trace document.
// Only the fields the classification pass needs are decoded; everything else
// in the document is ignored. The trace is never mutated.
type Trace struct {
	Schema    map[string]interface{} `json:"schema"`
	IDs       map[string]interface{} `json:"ids"`
	Source    map[string]interface{} `json:"source"`
	CreatedAt interface{}            `json:"created_at"`
	Segments  []Segment              `json:"segments"`
}

// Segment carries one segment's id and its four structural proxies.
// Raw segment text, spans and echo metadata are deliberately not decoded:
// the arbiter never inspects content.
type Segment struct {
	ID  string     `json:"id"`
	D   ProxyValue `json:"D_proxy"`
	L   ProxyValue `json:"L_proxy"`
	ESC ProxyValue `json:"ESC_proxy"`
	R   ProxyValue `json:"R_proxy"`
}

// Proxies resolves all four proxy fields, defaulting absent or malformed
// values to 0.0.
func (s *Segment) Proxies() ProxyTuple {
	return ProxyTuple{
		D:   s.D.Float(0.0),
		L:   s.L.Float(0.0),
		ESC: s.ESC.Float(0.0),
		R:   s.R.Float(0.0),
	}
}

// ProxyTuple is the resolved (D, L, ESC, R) tuple for one segment.
// Values are semantically expected in [0,1] but not enforced on input;
// every derived score downstream is clamped.
type ProxyTuple struct {
	D   float64
	L   float64
	ESC float64
	R   float64
}

// ProxyValue tolerates the shape variation of proxy fields produced by trace
// generators: either a bare number, or an object carrying the number under
// one of the keys "score", "strength" or "value" (first numeric match wins).
// Any other shape resolves to the extraction default.
type ProxyValue struct {
	value float64
	ok    bool
}

// proxyValueKeys is the object-key priority order for proxy extraction.
var proxyValueKeys = []string{"score", "strength", "value"}

// UnmarshalJSON never fails: unrecognized shapes simply leave the value
// unresolved so extraction falls back to the default.
func (p *ProxyValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		p.value = num
		p.ok = true
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, key := range proxyValueKeys {
			raw, present := obj[key]
			if !present {
				continue
			}
			if err := json.Unmarshal(raw, &num); err == nil {
				p.value = num
				p.ok = true
				return nil
			}
		}
	}

	return nil
}

// Float returns the resolved proxy value, or def when the field was absent
// or carried an unrecognized shape.
func (p ProxyValue) Float(def float64) float64 {
	if !p.ok {
		return def
	}
	return p.value
}

// NumberProxy builds a resolved ProxyValue. Used by tests and fixtures.
func NumberProxy(v float64) ProxyValue {
	return ProxyValue{value: v, ok: true}
}
