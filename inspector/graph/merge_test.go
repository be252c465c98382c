package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/drafter/inspector/graph"
	"gopkg.in/yaml.v3"
)

func methodNames(methods []*graph.MethodNode) []string {
	var names []string
	for _, method := range methods {
		names = append(names, method.Name)
	}
	return names
}

func TestImplementationNodes_Merged(t *testing.T) {
	nodes := graph.ImplementationNodes{
		{ClassName: "Foo", Methods: []*graph.MethodNode{{Name: "m1"}}},
		{ClassName: "Bar", Methods: []*graph.MethodNode{{Name: "b1"}}},
		{ClassName: "Foo", Category: "Extra", Methods: []*graph.MethodNode{{Name: "m2"}}},
		nil,
	}
	merged := nodes.Merged()
	require.Len(t, merged, 2)
	assert.ElementsMatch(t, []string{"m1", "m2"}, methodNames(merged["Foo"].Methods))
	assert.ElementsMatch(t, []string{"b1"}, methodNames(merged["Bar"].Methods))
	assert.Len(t, nodes[0].Methods, 1, "input nodes are not modified")
}

func TestDistinct(t *testing.T) {
	newClass := func(name string, methods ...string) *graph.ClassNode {
		impl := &graph.ImplementationNode{ClassName: name}
		for _, method := range methods {
			impl.Methods = append(impl.Methods, &graph.MethodNode{Name: method})
		}
		return graph.NewClassNode(graph.LanguageObjC, &graph.InterfaceNode{ClassName: name, Superclass: "NSObject"}, impl)
	}

	var testCases = []struct {
		description string
		input       []*graph.ClassNode
		expect      []string
	}{
		{
			description: "identical records",
			input:       []*graph.ClassNode{newClass("Foo", "a"), newClass("Foo", "a")},
			expect:      []string{"Foo"},
		},
		{
			description: "method order does not matter",
			input:       []*graph.ClassNode{newClass("Foo", "a", "b"), newClass("Foo", "b", "a")},
			expect:      []string{"Foo"},
		},
		{
			description: "different bodies are kept",
			input:       []*graph.ClassNode{newClass("Foo", "a"), newClass("Foo", "b"), newClass("Bar")},
			expect:      []string{"Foo", "Foo", "Bar"},
		},
		{
			description: "absent body differs from empty body",
			input: []*graph.ClassNode{
				graph.NewClassNode(graph.LanguageObjC, &graph.InterfaceNode{ClassName: "Foo"}, nil),
				graph.NewClassNode(graph.LanguageObjC, &graph.InterfaceNode{ClassName: "Foo"}, &graph.ImplementationNode{ClassName: "Foo"}),
			},
			expect: []string{"Foo", "Foo"},
		},
	}

	for _, testCase := range testCases {
		actual := graph.Distinct(testCase.input)
		var names []string
		for _, node := range actual {
			names = append(names, node.Name)
		}
		assert.EqualValues(t, testCase.expect, names, testCase.description)
	}
}

func TestDistinct_KeepsFirst(t *testing.T) {
	first := graph.NewClassNode(graph.LanguageSwift, &graph.InterfaceNode{ClassName: "A"}, nil)
	second := graph.NewClassNode(graph.LanguageSwift, &graph.InterfaceNode{ClassName: "A"}, nil)
	actual := graph.Distinct([]*graph.ClassNode{first, second})
	require.Len(t, actual, 1)
	assert.Same(t, first, actual[0])
}

func TestClasses_Merge(t *testing.T) {
	classes := &graph.Classes{}
	impl := &graph.ImplementationNode{ClassName: "View", Methods: []*graph.MethodNode{{Name: "draw"}}}
	classes.Merge(
		graph.NewClassNode(graph.LanguageSwift, &graph.InterfaceNode{ClassName: "View", Superclass: "UIView"}, impl),
		graph.NewClassNode(graph.LanguageSwift, &graph.InterfaceNode{ClassName: "Model"}, nil),
		graph.NewClassNode(graph.LanguageSwift, &graph.InterfaceNode{ClassName: "View", Protocols: []string{"Drawable"}}, &graph.ImplementationNode{
			ClassName: "View",
			Methods:   []*graph.MethodNode{{Name: "layout"}},
		}),
		graph.NewClassNode(graph.LanguageSwift, &graph.InterfaceNode{ClassName: "View"}, impl),
	)
	require.Equal(t, 2, classes.Len())
	view := classes.Lookup("View")
	require.NotNil(t, view)
	assert.Equal(t, "UIView", view.Superclass())
	assert.Equal(t, []string{"Drawable"}, view.Interface.Protocols)
	assert.ElementsMatch(t, []string{"draw", "layout"}, methodNames(view.Methods()))
	assert.Len(t, impl.Methods, 1, "shared implementation is not modified")
	assert.Nil(t, classes.Lookup("Missing"))
}

// fragments returns fresh declaration records of the same class as spread across files
func fragments() []*graph.ClassNode {
	return []*graph.ClassNode{
		graph.NewClassNode(graph.LanguageObjC,
			&graph.InterfaceNode{ClassName: "Foo", Superclass: "NSObject", Protocols: []string{"NSCoding"},
				Properties: []*graph.Property{{Name: "title", Type: "NSString *"}}, Location: &graph.Location{Path: "Foo.h", Line: 3}},
			&graph.ImplementationNode{ClassName: "Foo", Methods: []*graph.MethodNode{{Name: "init"}}, Location: &graph.Location{Path: "Foo.m", Line: 7}}),
		graph.NewClassNode(graph.LanguageObjC,
			&graph.InterfaceNode{ClassName: "Foo", Category: "Extra", Protocols: []string{"NSCopying"},
				Methods: []*graph.MethodNode{{Name: "copy"}}, Location: &graph.Location{Path: "Foo+Extra.h", Line: 1}}, nil),
		graph.NewClassNode(graph.LanguageObjC,
			&graph.InterfaceNode{ClassName: "Foo", Category: "()",
				Properties: []*graph.Property{{Name: "cache", Type: "NSCache *"}, {Name: "title", Type: "id"}}, Location: &graph.Location{Path: "Foo.m", Line: 1}}, nil),
		graph.NewClassNode(graph.LanguageSwift,
			&graph.InterfaceNode{ClassName: "Foo", Protocols: []string{"Named"}, Location: &graph.Location{Path: "Sources/Foo+Named.swift", Line: 1}},
			&graph.ImplementationNode{ClassName: "Foo", Methods: []*graph.MethodNode{{Name: "describe"}}, Location: &graph.Location{Path: "Sources/Foo+Named.swift", Line: 1}}),
	}
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var result [][]int
	for _, rest := range permutations(n - 1) {
		for i := 0; i <= len(rest); i++ {
			order := append(append(append([]int{}, rest[:i]...), n-1), rest[i:]...)
			result = append(result, order)
		}
	}
	return result
}

func TestClassNode_Merge_OrderIndependent(t *testing.T) {
	var expect uint64
	for i, order := range permutations(len(fragments())) {
		nodes := fragments()
		classes := &graph.Classes{}
		for _, idx := range order {
			classes.Merge(nodes[idx])
		}
		require.Equal(t, 1, classes.Len(), "%v", order)
		foo := classes.Lookup("Foo")
		fingerprint, err := foo.Fingerprint()
		require.NoError(t, err)
		if i == 0 {
			expect = fingerprint
		}
		assert.Equal(t, expect, fingerprint, "%v", order)
		assert.Equal(t, graph.LanguageObjC, foo.Language, "%v", order)
		assert.Equal(t, "", foo.Interface.Category, "%v", order)
		assert.Equal(t, &graph.Location{Path: "Foo.h", Line: 3}, foo.Interface.Location, "%v", order)
		assert.Equal(t, &graph.Location{Path: "Foo.m", Line: 7}, foo.Implementation.Location, "%v", order)
		assert.Equal(t, "NSObject", foo.Superclass(), "%v", order)
		assert.ElementsMatch(t, []string{"NSCoding", "NSCopying", "Named"}, foo.Interface.Protocols, "%v", order)
		assert.ElementsMatch(t, []string{"init", "describe"}, methodNames(foo.Methods()), "%v", order)
		var properties []string
		for _, property := range foo.Interface.Properties {
			properties = append(properties, property.Type+" "+property.Name)
		}
		assert.ElementsMatch(t, []string{"NSString * title", "NSCache * cache"}, properties, "%v", order)
	}
}

func TestSort(t *testing.T) {
	nodes := fragments()
	shuffled := []*graph.ClassNode{nodes[2], nodes[3], nodes[1], nodes[0]}
	graph.Sort(shuffled)
	assert.Same(t, nodes[0], shuffled[0])
	assert.Same(t, nodes[3], shuffled[1])
	assert.Same(t, nodes[2], shuffled[2])
	assert.Same(t, nodes[1], shuffled[3])
}

func TestImplementationNode_AddMethods(t *testing.T) {
	var testCases = []struct {
		description string
		existing    []*graph.MethodNode
		added       []*graph.MethodNode
		expect      []string
	}{
		{
			description: "identical method collapses",
			existing:    []*graph.MethodNode{{Name: "run", Invokes: []*graph.Invoke{{Receiver: "self", Name: "stop"}}}},
			added:       []*graph.MethodNode{{Name: "run", Invokes: []*graph.Invoke{{Receiver: "self", Name: "stop"}}}},
			expect:      []string{"run"},
		},
		{
			description: "same signature with other call sites is kept",
			existing:    []*graph.MethodNode{{Name: "run", Invokes: []*graph.Invoke{{Receiver: "self", Name: "stop"}}}},
			added:       []*graph.MethodNode{{Name: "run", Invokes: []*graph.Invoke{{Receiver: "self", Name: "start"}}}},
			expect:      []string{"run", "run"},
		},
		{
			description: "static differs from instance",
			existing:    []*graph.MethodNode{{Name: "shared"}},
			added:       []*graph.MethodNode{{Name: "shared", IsStatic: true}, nil},
			expect:      []string{"shared", "shared"},
		},
	}

	for _, testCase := range testCases {
		node := &graph.ImplementationNode{ClassName: "Foo", Methods: testCase.existing}
		node.AddMethods(testCase.added...)
		assert.Equal(t, testCase.expect, methodNames(node.Methods), testCase.description)
	}
}

func TestDistinct_CanonicalEquality(t *testing.T) {
	base := func() *graph.ClassNode {
		return graph.NewClassNode(graph.LanguageObjC,
			&graph.InterfaceNode{ClassName: "Foo", Superclass: "NSObject", Protocols: []string{"A", "B"}},
			&graph.ImplementationNode{ClassName: "Foo", Methods: []*graph.MethodNode{{Name: "run", Invokes: []*graph.Invoke{{Name: "stop"}}}}})
	}
	category := base()
	category.Interface.Category = "Extra"
	callSite := base()
	callSite.Implementation.Methods[0].Invokes[0].Name = "start"
	language := base()
	language.Language = graph.LanguageSwift
	reordered := base()
	reordered.Interface.Protocols = []string{"B", "A"}
	relocated := base()
	relocated.Interface.Location = &graph.Location{Path: "Other.h", Line: 9}

	var testCases = []struct {
		description string
		input       []*graph.ClassNode
		expect      int
	}{
		{description: "exact duplicate", input: []*graph.ClassNode{base(), base()}, expect: 1},
		{description: "protocol order", input: []*graph.ClassNode{base(), reordered}, expect: 1},
		{description: "location only", input: []*graph.ClassNode{base(), relocated}, expect: 1},
		{description: "category", input: []*graph.ClassNode{base(), category}, expect: 2},
		{description: "call site", input: []*graph.ClassNode{base(), callSite}, expect: 2},
		{description: "language", input: []*graph.ClassNode{base(), language}, expect: 2},
		{description: "all", input: []*graph.ClassNode{base(), category, callSite, language, base(), reordered}, expect: 4},
	}
	for _, testCase := range testCases {
		assert.Len(t, graph.Distinct(testCase.input), testCase.expect, testCase.description)
	}
}

func TestOutcome(t *testing.T) {
	matched := graph.Matched([]*graph.InterfaceNode{{ClassName: "Foo"}})
	nodes, ok := matched.Get()
	assert.True(t, ok)
	assert.Len(t, nodes, 1)

	noMatch := graph.NoMatch[[]*graph.InterfaceNode]()
	assert.False(t, noMatch.IsMatched())
	assert.Empty(t, noMatch.Value())
}

func TestYAMLEmitter_Emit(t *testing.T) {
	model := &graph.Model{
		Classes: []*graph.ClassNode{
			graph.NewClassNode(graph.LanguageObjC, &graph.InterfaceNode{ClassName: "Zeta"}, nil),
			graph.NewClassNode(graph.LanguageObjC, &graph.InterfaceNode{ClassName: "Alpha", Superclass: "NSObject"}, nil),
		},
		Protocols: []*graph.ProtocolNode{{Name: "Runnable"}},
	}
	emitter := &graph.YAMLEmitter{}
	data, err := emitter.Emit(model)
	require.NoError(t, err)

	decoded := struct {
		Classes []struct {
			Name      string `yaml:"name"`
			Language  string `yaml:"language"`
			Interface struct {
				Superclass string `yaml:"superclass"`
			} `yaml:"interface"`
		} `yaml:"classes"`
		Protocols []struct {
			Name string `yaml:"name"`
		} `yaml:"protocols"`
	}{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Classes, 2)
	assert.Equal(t, "Alpha", decoded.Classes[0].Name)
	assert.Equal(t, "NSObject", decoded.Classes[0].Interface.Superclass)
	assert.Equal(t, "objc", decoded.Classes[0].Language)
	assert.Equal(t, "Runnable", decoded.Protocols[0].Name)

	_, err = emitter.Emit(nil)
	assert.Error(t, err)
}
