package runner

import "github.com/viant/drafter/inspector/graph"

// fragment represents nodes extracted from a single file
type fragment struct {
	file            string
	interfaces      []*graph.InterfaceNode
	implementations []*graph.ImplementationNode
	classes         []*graph.ClassNode
}

func (f *fragment) isEmpty() bool {
	return len(f.interfaces) == 0 && len(f.implementations) == 0 && len(f.classes) == 0
}

// locate sets file path on node locations the parser left without one
func (f *fragment) locate() {
	var locations []*graph.Location
	for _, node := range f.interfaces {
		locations = append(locations, node.Location)
	}
	for _, node := range f.implementations {
		locations = append(locations, node.Location)
	}
	for _, node := range f.classes {
		if node.Interface != nil {
			locations = append(locations, node.Interface.Location)
		}
		if node.Implementation != nil {
			locations = append(locations, node.Implementation.Location)
		}
	}
	for _, location := range locations {
		if location != nil && location.Path == "" {
			location.Path = f.file
		}
	}
}

// batch accumulates fragments, it is owned by the collector goroutine
type batch struct {
	files           map[string]bool
	interfaces      []*graph.InterfaceNode
	implementations []*graph.ImplementationNode
	classes         []*graph.ClassNode
}

func newBatch() *batch {
	return &batch{files: map[string]bool{}}
}

// add appends fragment nodes, a repeated file contributes once
func (b *batch) add(item *fragment) {
	if b.files[item.file] {
		return
	}
	b.files[item.file] = true
	b.interfaces = append(b.interfaces, item.interfaces...)
	b.implementations = append(b.implementations, item.implementations...)
	b.classes = append(b.classes, item.classes...)
}

// reconcile joins implementations with declarations by class name.
// An implementation without a declaration yields no record.
func (b *batch) reconcile() []*graph.ClassNode {
	implementations := graph.ImplementationNodes(b.implementations).Merged()
	records := make([]*graph.ClassNode, 0, len(b.interfaces)+len(b.classes))
	records = append(records, b.classes...)
	for _, iface := range b.interfaces {
		records = append(records, graph.NewClassNode(graph.LanguageObjC, iface, implementations[iface.ClassName]))
	}
	graph.Sort(records)
	classes := &graph.Classes{}
	classes.Merge(graph.Distinct(records)...)
	return classes.Nodes
}
