package main

import (
	"context"

	"github.com/kbukum/dagkit/logger"
	"github.com/kbukum/dagkit/pipeline"
	"github.com/kbukum/dagkit/stream"
	"github.com/kbukum/dagkit/textstat"
)

// buildRegistry exposes the seven transform tasks under stable names so
// they can be wired either by buildPipeline or by a declarative
// definition file.
func buildRegistry(cfg *Config) *pipeline.Registry {
	r := pipeline.NewRegistry()

	r.Add(pipeline.Source("load", func(_ context.Context) (any, error) {
		records, err := textstat.LoadRecords(cfg.Input)
		if err != nil {
			return nil, err
		}
		return records, nil
	}))

	r.Add(pipeline.Typed("filter", func(ctx context.Context, records []textstat.Record) ([]textstat.Record, error) {
		return stream.Collect(ctx, textstat.FilterRecords(records, textstat.HasField(cfg.Column)))
	}))

	r.Add(pipeline.Typed("encode", func(_ context.Context, records []textstat.Record) (string, error) {
		return textstat.EncodeTable(records), nil
	}))

	r.Add(pipeline.Typed("column", func(_ context.Context, table string) (*stream.Stream[string], error) {
		return textstat.Column(table, cfg.Column), nil
	}))

	r.Add(pipeline.Typed("normalize", func(_ context.Context, values *stream.Stream[string]) (*stream.Stream[string], error) {
		return textstat.Normalize(values), nil
	}))

	r.Add(pipeline.Typed("frequencies", func(ctx context.Context, tokens *stream.Stream[string]) (*textstat.FreqTable, error) {
		return textstat.Frequencies(ctx, tokens, cfg.Stopwords)
	}))

	r.Add(pipeline.Typed("rank", func(_ context.Context, table *textstat.FreqTable) ([]textstat.TokenCount, error) {
		return textstat.TopN(table, cfg.TopN), nil
	}))

	return r
}

var chainOrder = []string{"load", "filter", "encode", "column", "normalize", "frequencies", "rank"}

// buildPipeline wires the transforms as a linear chain, or resolves a
// declarative definition file if one is configured.
func buildPipeline(cfg *Config, log *logger.Logger) (*pipeline.Pipeline, error) {
	registry := buildRegistry(cfg)

	if cfg.PipelineFile != "" {
		def, err := pipeline.LoadDefinition(cfg.PipelineFile)
		if err != nil {
			return nil, err
		}
		return pipeline.Resolve(def, registry, pipeline.WithLogger(log))
	}

	p := pipeline.New(pipeline.WithLogger(log))
	var prev pipeline.Handle
	for _, name := range chainOrder {
		task, _ := registry.Get(name)
		task = pipeline.WithLogging(task, log)
		if cfg.Tracing.Enabled {
			task = pipeline.WithTracing(task, cfg.Name)
		}

		var opts []pipeline.RegisterOption
		if prev.Valid() {
			opts = append(opts, pipeline.DependsOn(prev))
		}
		h, err := p.Register(task, opts...)
		if err != nil {
			return nil, err
		}
		prev = h
	}
	return p, nil
}
