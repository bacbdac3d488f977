// Package pipeline wires the collaborators around the arbiter core: the
// fail-fast loader, the guardrailed trace generator, the result cache and the
// report renderer.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ppiankov/arbiterstg/internal/arbiter"
	"github.com/ppiankov/arbiterstg/internal/cache"
	"github.com/ppiankov/arbiterstg/internal/guardrail"
	"github.com/ppiankov/arbiterstg/internal/model"
	"github.com/ppiankov/arbiterstg/internal/tracegen"
)

// Pipeline orchestrates trace analysis and guardrailed trace generation.
type Pipeline struct {
	cfg       *model.Config
	store     cache.Cache
	validator *SchemaValidator
	guard     *guardrail.Evaluator
	renderer  *Renderer
}

// NewPipeline builds a pipeline from configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	p := &Pipeline{
		cfg:      cfg,
		guard:    guardrail.NewEvaluator(cfg.Guardrail.ExtraSensitivePatterns),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
	}

	if cfg.Input.ValidateSchema {
		v, err := NewSchemaValidator()
		if err != nil {
			return nil, err
		}
		p.validator = v
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			p.store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			p.store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
	}

	return p, nil
}

// Renderer exposes the configured report renderer.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// AnalyzeFile loads a trace file and runs the arbiter over it. When the cache
// is enabled, results are keyed by the file's content hash so byte-identical
// traces in a batch are analyzed once.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}

	var key string
	if p.store != nil {
		key = cache.Key(data)
		if cached, found := p.store.Get(key); found {
			var report model.Report
			if err := json.Unmarshal(cached, &report); err == nil {
				return &report, nil
			}
			// Corrupt entry: fall through and recompute.
			_ = p.store.Delete(key)
		}
	}

	if p.validator != nil {
		if err := p.validator.Validate(data); err != nil {
			return nil, err
		}
	}

	trace, err := ParseTrace(data)
	if err != nil {
		return nil, err
	}

	report := arbiter.Analyze(trace)

	if p.store != nil {
		if encoded, err := json.Marshal(report); err == nil {
			_ = p.store.Set(key, encoded, 0)
		}
	}

	return report, nil
}

// GenerateResult describes one guardrailed generation run.
type GenerateResult struct {
	Guardrail *guardrail.Result
	Document  *tracegen.Document
}

// GenerateTraceFile reads raw text, applies the content guardrail, and writes
// the generated trace document. On REFUSE no trace is generated and the
// returned error wraps guardrail.ErrRefused; on ALLOW_REDACTED the generator
// receives redacted text.
func (p *Pipeline) GenerateTraceFile(infile, outfile string) (*GenerateResult, error) {
	raw, err := os.ReadFile(infile)
	if err != nil {
		return nil, fmt.Errorf("read input text: %w", err)
	}
	text := string(raw)

	result := &GenerateResult{}

	if p.cfg.Guardrail.Enabled {
		gr := p.guard.Evaluate(text)
		result.Guardrail = &gr

		switch gr.Decision {
		case guardrail.DecisionRefuse:
			return result, guardrail.ErrRefused
		case guardrail.DecisionAllowRedacted:
			text = p.guard.Redact(text)
		}
	}

	gen := tracegen.NewGenerator(p.cfg.Trace.SourceTitle, p.cfg.Trace.SourceKind, p.cfg.Trace.IncludeText)
	doc := gen.Generate(text)
	result.Document = doc

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return result, fmt.Errorf("marshal trace: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(outfile, data, 0644); err != nil {
		return result, fmt.Errorf("write trace: %w", err)
	}

	return result, nil
}
