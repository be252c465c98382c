// Package runner schedules per-file parse pipelines under a fixed admission
// ceiling and reconciles the fragments they produce into class records.
package runner

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/viant/drafter/inspector"
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Runner coordinates concurrent parsing of a file batch.
// Admission and completion use separate primitives: a weighted semaphore
// bounds running workers, an errgroup joins them.
type Runner struct {
	config    *Config
	inspector inspector.Inspector
	logger    *slog.Logger
	admission *semaphore.Weighted
}

// New creates a runner
func New(options ...Option) *Runner {
	ret := &Runner{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if ret.config.MaxConcurrent <= 0 {
		ret.config.MaxConcurrent = DefaultMaxConcurrent
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.inspector == nil {
		ret.inspector = inspector.New(lexer.WithCache(ret.config.CacheSize))
	}
	ret.admission = semaphore.NewWeighted(int64(ret.config.MaxConcurrent))
	return ret
}

// MaxConcurrent returns admission ceiling
func (r *Runner) MaxConcurrent() int {
	return r.config.MaxConcurrent
}

// task processes a single file while holding an admission permit
type task func(ctx context.Context, file string)

// run submits files in order, blocking the caller while all permits are held,
// and returns once every admitted worker has finished.
// A cancelled context stops admission, remaining files are not processed.
func (r *Runner) run(ctx context.Context, files []string, fn task) {
	var group errgroup.Group
	for i, file := range files {
		if err := r.admission.Acquire(ctx, 1); err != nil {
			r.logger.Warn("admission stopped", "skipped", len(files)-i, "error", err)
			break
		}
		r.logger.Debug("parsing", "file", filepath.Base(file))
		group.Go(func() error {
			defer r.admission.Release(1)
			defer r.absorb(file)
			fn(ctx, file)
			return nil
		})
	}
	_ = group.Wait()
}

// absorb recovers worker panic so a single file never aborts the batch
func (r *Runner) absorb(file string) {
	if err := recover(); err != nil {
		r.logger.Warn("parser failed", "file", file, "error", err)
	}
}

// Parse parses files and returns canonical class records, order is unspecified
func (r *Runner) Parse(ctx context.Context, files []string) []*graph.ClassNode {
	objcFiles, swiftFiles := inspector.Classify(files)
	fragments := make(chan *fragment)
	collected := make(chan *batch, 1)
	go func() {
		result := newBatch()
		for item := range fragments {
			result.add(item)
		}
		collected <- result
	}()

	r.run(ctx, append(objcFiles, swiftFiles...), func(ctx context.Context, file string) {
		if item := r.parseFile(ctx, file); item != nil {
			fragments <- item
		}
	})
	close(fragments)
	return (<-collected).reconcile()
}

// parseFile runs dialect parsers over the file, nil means no nodes extracted
func (r *Runner) parseFile(ctx context.Context, file string) *fragment {
	tokens := r.inspector.Tokenize(ctx, file)
	ret := &fragment{file: file}
	switch inspector.DialectOf(file) {
	case inspector.ObjC:
		ret.interfaces = r.inspector.ParseInterfaces(tokens).Value()
		ret.implementations = r.inspector.ParseImplementations(tokens).Value()
	case inspector.Swift:
		if unified, ok := r.inspector.ParseUnified(tokens).Get(); ok && unified != nil {
			ret.classes = unified.Classes
		}
	}
	if ret.isEmpty() {
		r.logger.Debug("no nodes extracted", "file", file)
		return nil
	}
	ret.locate()
	return ret
}
