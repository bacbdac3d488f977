package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// fakeAnalyzer counts calls and fails for paths in failOn.
type fakeAnalyzer struct {
	calls  int32
	failOn map[string]bool
}

func (f *fakeAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.failOn[path] {
		return nil, errors.New("bad trace")
	}
	return &model.Report{
		Aggregate: model.Aggregate{SegmentCount: 1},
	}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	bp := NewBatchProcessor(analyzer, 3)

	paths := []string{"a.json", "b.json", "c.json", "d.json"}
	results := bp.ProcessPaths(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	if atomic.LoadInt32(&analyzer.calls) != int32(len(paths)) {
		t.Errorf("expected %d analyses, got %d", len(paths), analyzer.calls)
	}

	got := make([]string, 0, len(results))
	for _, res := range results {
		got = append(got, res.Path)
		if res.GetError() != nil {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
		}
		if res.Report == nil || res.Report.Aggregate.SegmentCount != 1 {
			t.Errorf("missing report for %s", res.Path)
		}
	}
	sort.Strings(got)
	if len(got) != 4 || got[0] != "a.json" || got[3] != "d.json" {
		t.Errorf("unexpected result paths: %v", got)
	}
}

func TestBatchProcessor_PartialFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{failOn: map[string]bool{"b.json": true}}
	bp := NewBatchProcessor(analyzer, 2)

	results := bp.ProcessPaths(context.Background(), []string{"a.json", "b.json", "c.json"})

	failures := 0
	for _, res := range results {
		if res.GetError() != nil {
			failures++
			if res.Path != "b.json" {
				t.Errorf("unexpected failing path %s", res.Path)
			}
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	bp := NewBatchProcessor(&fakeAnalyzer{}, 2)
	results := bp.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCollectTracePaths_Directory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "a.report.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := CollectTracePaths(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("expected %v, got %v", want, paths)
	}
}

func TestCollectTracePaths_ListFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "traces.txt")
	content := "a.json\n\n# comment\nb.json\na.json\n"
	if err := os.WriteFile(list, []byte(content), 0644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	paths, err := CollectTracePaths(list)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(paths) != 2 || paths[0] != "a.json" || paths[1] != "b.json" {
		t.Errorf("expected deduplicated [a.json b.json], got %v", paths)
	}
}

func TestCollectTracePaths_Missing(t *testing.T) {
	if _, err := CollectTracePaths(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing input")
	}
}
