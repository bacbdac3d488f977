// Package worker runs trace analyses concurrently. Each analysis is an
// independent pure computation, so jobs need no coordination beyond the pool.
package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ppiankov/arbiterstg/internal/model"
)

// Analyzer analyzes one trace file.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// AnalyzeJob is one trace file to analyze.
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute runs the analysis.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &AnalyzeResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult is the outcome for one trace file.
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the analysis error, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many trace files in parallel.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given trace files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, 0, len(results))
	for _, result := range results {
		analyzeResults = append(analyzeResults, result.(*AnalyzeResult))
	}

	return analyzeResults
}

// ProcessInput accepts either a directory of trace files or a list file
// (one path per line) and analyzes everything it names.
func (b *BatchProcessor) ProcessInput(ctx context.Context, input string) ([]*AnalyzeResult, error) {
	paths, err := CollectTracePaths(input)
	if err != nil {
		return nil, err
	}
	return b.ProcessPaths(ctx, paths), nil
}

// CollectTracePaths resolves a batch input to trace file paths. A directory
// yields its *.json files (reports from earlier runs are skipped); a regular
// file is read as a newline-separated path list.
func CollectTracePaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("read dir: %w", err)
		}
		var paths []string
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			if strings.HasSuffix(name, ".report.json") {
				continue
			}
			paths = append(paths, filepath.Join(input, name))
		}
		sort.Strings(paths)
		return paths, nil
	}

	return readPathList(input)
}

// readPathList reads paths from a list file, skipping blanks, comments and
// duplicates.
func readPathList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan list: %w", err)
	}

	return paths, nil
}
