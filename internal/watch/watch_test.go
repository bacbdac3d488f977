package watch

import (
	"testing"
	"time"
)

func TestPathLimiter_CollapsesBursts(t *testing.T) {
	l := newPathLimiter(1.0, 2)

	if !l.Allow("a.json") {
		t.Error("first event must pass")
	}
	if !l.Allow("a.json") {
		t.Error("second event within burst must pass")
	}
	if l.Allow("a.json") {
		t.Error("third immediate event must be throttled")
	}
}

func TestPathLimiter_PerPathIsolation(t *testing.T) {
	l := newPathLimiter(1.0, 1)

	if !l.Allow("a.json") {
		t.Error("first event for a.json must pass")
	}
	if l.Allow("a.json") {
		t.Error("repeat event for a.json must be throttled")
	}
	if !l.Allow("b.json") {
		t.Error("a.json burst must not throttle b.json")
	}
}

func TestPathLimiter_RefillsOverTime(t *testing.T) {
	l := newPathLimiter(100.0, 1)

	if !l.Allow("a.json") {
		t.Fatal("first event must pass")
	}
	if l.Allow("a.json") {
		t.Fatal("immediate repeat must be throttled")
	}

	time.Sleep(20 * time.Millisecond)
	if !l.Allow("a.json") {
		t.Error("event after refill interval must pass")
	}
}

func TestPathLimiter_MinimumBurst(t *testing.T) {
	l := newPathLimiter(1.0, 0)
	if !l.Allow("a.json") {
		t.Error("zero burst must be lifted to one")
	}
}

func TestIsTraceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"trace.json", true},
		{"dir/trace.json", true},
		{"trace.report.json", false},
		{"notes.txt", false},
		{"trace.json.bak", false},
	}
	for _, tc := range tests {
		if got := isTraceFile(tc.path); got != tc.want {
			t.Errorf("isTraceFile(%q): expected %v, got %v", tc.path, tc.want, got)
		}
	}
}
