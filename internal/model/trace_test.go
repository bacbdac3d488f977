package model

import (
	"encoding/json"
	"testing"
)

func TestProxyValue_Shapes(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"bare number", `0.3`, 0.3},
		{"bare integer", `1`, 1.0},
		{"score object", `{"score": 0.2}`, 0.2},
		{"strength object", `{"strength": 0.4}`, 0.4},
		{"value object", `{"value": 0.5}`, 0.5},
		{"score wins over strength", `{"strength": 0.9, "score": 0.1}`, 0.1},
		{"non-numeric score skipped", `{"score": "high", "strength": 0.7}`, 0.7},
		{"extra keys ignored", `{"dependency": "low", "score": 0.25}`, 0.25},
		{"string resolves to default", `"0.3"`, 0.0},
		{"array resolves to default", `[0.3]`, 0.0},
		{"null resolves to default", `null`, 0.0},
		{"object without known keys", `{"weight": 0.9}`, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p ProxyValue
			if err := json.Unmarshal([]byte(tc.json), &p); err != nil {
				t.Fatalf("unmarshal must never fail, got %v", err)
			}
			if got := p.Float(0.0); got != tc.want {
				t.Errorf("expected %f, got %f", tc.want, got)
			}
		})
	}
}

func TestProxyValue_CustomDefault(t *testing.T) {
	var p ProxyValue
	if got := p.Float(0.7); got != 0.7 {
		t.Errorf("unresolved proxy must return the given default, got %f", got)
	}
}

func TestSegment_Proxies(t *testing.T) {
	raw := `{
		"id": "p001.s001",
		"D_proxy": {"score": 0.4},
		"L_proxy": 0.05,
		"ESC_proxy": {"dependency": "low", "score": 0.25},
		"R_proxy": {"strength": 0.3, "sign": "unknown"}
	}`

	var s Segment
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal segment: %v", err)
	}

	p := s.Proxies()
	if p.D != 0.4 || p.L != 0.05 || p.ESC != 0.25 || p.R != 0.3 {
		t.Errorf("unexpected proxy tuple: %+v", p)
	}
}

func TestSegment_MissingProxiesDefaultToZero(t *testing.T) {
	var s Segment
	if err := json.Unmarshal([]byte(`{"id": "p001.s001"}`), &s); err != nil {
		t.Fatalf("unmarshal segment: %v", err)
	}

	p := s.Proxies()
	if p.D != 0.0 || p.L != 0.0 || p.ESC != 0.0 || p.R != 0.0 {
		t.Errorf("missing proxies must default to zero, got %+v", p)
	}
}

func TestTrace_DecodeIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"schema": {"name": "MDS_Trace", "version": "1.0"},
		"ids": {"content_id": "abc", "trace_id": "def"},
		"created_at": "2025-01-01T00:00:00+00:00",
		"source": {"title": "Run"},
		"non_governing": true,
		"segments": [{"id": "p001.s001", "span": {"start_char": 0, "end_char": 10}, "D_proxy": 0.4}],
		"aggregate": {"segment_count": 1}
	}`

	var tr Trace
	if err := json.Unmarshal([]byte(raw), &tr); err != nil {
		t.Fatalf("unmarshal trace: %v", err)
	}
	if len(tr.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(tr.Segments))
	}
	if tr.Segments[0].Proxies().D != 0.4 {
		t.Errorf("expected D 0.4, got %f", tr.Segments[0].Proxies().D)
	}
}
