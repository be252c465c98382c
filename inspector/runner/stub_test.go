package runner_test

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viant/drafter/inspector"
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

// stubInspector serves fixtures keyed by file path and records how many
// tokenizers run at once.
type stubInspector struct {
	interfaces      map[string][]*graph.InterfaceNode
	implementations map[string][]*graph.ImplementationNode
	unified         map[string]*graph.Unified
	methods         map[string][]*graph.MethodNode
	panics          map[string]bool
	delay           time.Duration

	active   atomic.Int32
	peak     atomic.Int32
	calls    atomic.Int32
	dialects sync.Map // file -> inspector.Dialect passed to ParseMethodCalls
}

func newStub() *stubInspector {
	return &stubInspector{
		interfaces:      map[string][]*graph.InterfaceNode{},
		implementations: map[string][]*graph.ImplementationNode{},
		unified:         map[string]*graph.Unified{},
		methods:         map[string][]*graph.MethodNode{},
		panics:          map[string]bool{},
	}
}

func (s *stubInspector) declare(file string, names ...string) *stubInspector {
	for _, name := range names {
		s.interfaces[file] = append(s.interfaces[file], &graph.InterfaceNode{ClassName: name, Superclass: "NSObject"})
	}
	return s
}

func (s *stubInspector) implement(file, name string, methods ...string) *stubInspector {
	node := &graph.ImplementationNode{ClassName: name}
	for _, method := range methods {
		node.Methods = append(node.Methods, &graph.MethodNode{Name: method})
	}
	s.implementations[file] = append(s.implementations[file], node)
	return s
}

func (s *stubInspector) unify(file string, protocols []string, classes ...string) *stubInspector {
	result := &graph.Unified{}
	for _, protocol := range protocols {
		result.Protocols = append(result.Protocols, &graph.ProtocolNode{Name: protocol})
	}
	for _, name := range classes {
		result.Classes = append(result.Classes, graph.NewClassNode(graph.LanguageSwift,
			&graph.InterfaceNode{ClassName: name},
			&graph.ImplementationNode{ClassName: name, Methods: []*graph.MethodNode{{Name: "run"}}}))
	}
	s.unified[file] = result
	return s
}

// categorize adds a category or class extension declaration, category "()" marks an extension
func (s *stubInspector) categorize(file, name, category string, protocols ...string) *stubInspector {
	s.interfaces[file] = append(s.interfaces[file], &graph.InterfaceNode{
		ClassName: name,
		Category:  category,
		Protocols: protocols,
		Location:  &graph.Location{Path: file, Line: 1},
	})
	return s
}

// swiftType adds a swift class or extension, an empty superclass marks an extension
func (s *stubInspector) swiftType(file, name, superclass string, protocols []string, methods ...string) *stubInspector {
	result, ok := s.unified[file]
	if !ok {
		result = &graph.Unified{}
		s.unified[file] = result
	}
	location := &graph.Location{Path: file, Line: len(result.Classes) + 1}
	impl := &graph.ImplementationNode{ClassName: name, Location: location}
	for _, method := range methods {
		impl.Methods = append(impl.Methods, &graph.MethodNode{Name: method})
	}
	result.Classes = append(result.Classes, graph.NewClassNode(graph.LanguageSwift,
		&graph.InterfaceNode{ClassName: name, Superclass: superclass, Protocols: protocols, Location: location}, impl))
	return s
}

func (s *stubInspector) Tokenize(ctx context.Context, filename string) []lexer.Token {
	s.calls.Add(1)
	current := s.active.Add(1)
	for {
		peak := s.peak.Load()
		if current <= peak || s.peak.CompareAndSwap(peak, current) {
			break
		}
	}
	time.Sleep(s.delay)
	s.active.Add(-1)
	if s.panics[filename] {
		panic("malformed input: " + filename)
	}
	return []lexer.Token{{Kind: lexer.String, Text: filename}}
}

func fileOf(tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0].Text
}

func (s *stubInspector) ParseInterfaces(tokens []lexer.Token) graph.Outcome[[]*graph.InterfaceNode] {
	nodes, ok := s.interfaces[fileOf(tokens)]
	if !ok {
		return graph.NoMatch[[]*graph.InterfaceNode]()
	}
	return graph.Matched(nodes)
}

func (s *stubInspector) ParseImplementations(tokens []lexer.Token) graph.Outcome[[]*graph.ImplementationNode] {
	nodes, ok := s.implementations[fileOf(tokens)]
	if !ok {
		return graph.NoMatch[[]*graph.ImplementationNode]()
	}
	return graph.Matched(nodes)
}

func (s *stubInspector) ParseUnified(tokens []lexer.Token) graph.Outcome[*graph.Unified] {
	unified, ok := s.unified[fileOf(tokens)]
	if !ok {
		return graph.NoMatch[*graph.Unified]()
	}
	result := &graph.Unified{Protocols: unified.Protocols}
	for _, class := range unified.Classes {
		result.Classes = append(result.Classes, graph.NewClassNode(class.Language, class.Interface, class.Implementation))
	}
	return graph.Matched(result)
}

func (s *stubInspector) ParseInterfaceClasses(tokens []lexer.Token) graph.Outcome[[]*graph.ClassNode] {
	nodes, ok := s.interfaces[fileOf(tokens)]
	if !ok {
		return graph.NoMatch[[]*graph.ClassNode]()
	}
	var result []*graph.ClassNode
	for _, node := range nodes {
		result = append(result, graph.NewClassNode(graph.LanguageObjC, node, nil))
	}
	return graph.Matched(result)
}

func (s *stubInspector) ParseMethodCalls(dialect inspector.Dialect, tokens []lexer.Token) graph.Outcome[[]*graph.MethodNode] {
	s.dialects.Store(fileOf(tokens), dialect)
	nodes, ok := s.methods[fileOf(tokens)]
	if !ok {
		return graph.NoMatch[[]*graph.MethodNode]()
	}
	return graph.Matched(nodes)
}

// summary maps class name to its sorted method names
func summary(classes []*graph.ClassNode) map[string][]string {
	result := make(map[string][]string, len(classes))
	for _, class := range classes {
		var names []string
		if class.Implementation != nil {
			for _, method := range class.Implementation.Methods {
				names = append(names, method.Name)
			}
		}
		sort.Strings(names)
		result[class.Name] = names
	}
	return result
}

func permutations(values []string) [][]string {
	if len(values) <= 1 {
		return [][]string{append([]string{}, values...)}
	}
	var result [][]string
	for i := range values {
		rest := append(append([]string{}, values[:i]...), values[i+1:]...)
		for _, tail := range permutations(rest) {
			result = append(result, append([]string{values[i]}, tail...))
		}
	}
	return result
}

func classNames(classes []*graph.ClassNode) []string {
	var names []string
	for _, class := range classes {
		names = append(names, class.Name)
	}
	sort.Strings(names)
	return names
}
