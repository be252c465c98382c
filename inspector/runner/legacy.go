package runner

import (
	"context"
	"sync"

	"github.com/viant/drafter/inspector"
	"github.com/viant/drafter/inspector/graph"
)

// ParseMethods parses method call sites, result is keyed by file path.
// Declaration only files are skipped, every other file gets an entry.
// Files other than swift go through the objc method parser.
func (r *Runner) ParseMethods(ctx context.Context, files []string) map[string][]*graph.MethodNode {
	var sources []string
	result := make(map[string][]*graph.MethodNode)
	for _, file := range files {
		if inspector.IsHeader(file) {
			continue
		}
		if _, ok := result[file]; !ok {
			result[file] = []*graph.MethodNode{}
		}
		sources = append(sources, file)
	}

	var mux sync.Mutex
	r.run(ctx, sources, func(ctx context.Context, file string) {
		tokens := r.inspector.Tokenize(ctx, file)
		dialect := inspector.ObjC
		if inspector.DialectOf(file) == inspector.Swift {
			dialect = inspector.Swift
		}
		methods := r.inspector.ParseMethodCalls(dialect, tokens).Value()
		if len(methods) == 0 {
			return
		}
		mux.Lock()
		defer mux.Unlock()
		result[file] = methods
	})
	return result
}

// ParseInherit parses type hierarchy, class records are merged by name as workers finish
func (r *Runner) ParseInherit(ctx context.Context, files []string) ([]*graph.ClassNode, []*graph.ProtocolNode) {
	var mux sync.Mutex
	classes := &graph.Classes{}
	var protocols []*graph.ProtocolNode
	declared := map[string]bool{}

	objcFiles, swiftFiles := inspector.Classify(files)
	r.run(ctx, append(objcFiles, swiftFiles...), func(ctx context.Context, file string) {
		tokens := r.inspector.Tokenize(ctx, file)
		var nodes []*graph.ClassNode
		var protos []*graph.ProtocolNode
		switch inspector.DialectOf(file) {
		case inspector.ObjC:
			nodes = r.inspector.ParseInterfaceClasses(tokens).Value()
		case inspector.Swift:
			if unified, ok := r.inspector.ParseUnified(tokens).Get(); ok && unified != nil {
				nodes, protos = unified.Classes, unified.Protocols
			}
		}
		if len(nodes) == 0 && len(protos) == 0 {
			r.logger.Debug("no nodes extracted", "file", file)
			return
		}
		(&fragment{file: file, classes: nodes}).locate()
		mux.Lock()
		defer mux.Unlock()
		classes.Merge(nodes...)
		for _, protocol := range protos {
			if protocol == nil || declared[protocol.Name] {
				continue
			}
			declared[protocol.Name] = true
			protocols = append(protocols, protocol)
		}
	})
	return classes.Nodes, protocols
}
