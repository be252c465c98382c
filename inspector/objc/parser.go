// Package objc parses Objective-C declaration (@interface) and implementation (@implementation) tokens
package objc

import (
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

// ParseInterfaces extracts @interface declarations, including categories and class extensions
func ParseInterfaces(tokens []lexer.Token) graph.Outcome[[]*graph.InterfaceNode] {
	stream := lexer.NewStream(tokens)
	var result []*graph.InterfaceNode
	for stream.SkipTo("@interface") {
		line := stream.Next().Line
		name, superclass, category, protocols, ok := parseClassHeader(stream)
		if !ok {
			continue
		}
		node := &graph.InterfaceNode{
			ClassName:  name,
			Superclass: superclass,
			Category:   category,
			Protocols:  protocols,
			Location:   &graph.Location{Line: line},
		}
		parseInterfaceMembers(stream, node)
		result = append(result, node)
	}
	if len(result) == 0 {
		return graph.NoMatch[[]*graph.InterfaceNode]()
	}
	return graph.Matched(result)
}

func parseInterfaceMembers(stream *lexer.Stream, node *graph.InterfaceNode) {
	if stream.Peek(0).Is("{") {
		stream.Balanced("{", "}")
	}
	for !stream.EOF() {
		token := stream.Peek(0)
		switch {
		case token.Is("@end"):
			stream.Next()
			return
		case token.Is("@interface", "@implementation", "@protocol"):
			return
		case token.Is("-", "+"):
			if method := parseMethodSignature(stream); method != nil {
				node.Methods = append(node.Methods, method)
			}
			stream.Accept(";")
		case token.Is("@property"):
			if property := parseProperty(stream); property != nil {
				node.Properties = append(node.Properties, property)
			}
		case token.Is("{"):
			stream.Balanced("{", "}")
		default:
			stream.Next()
		}
	}
}

// ParseImplementations extracts @implementation blocks with their method bodies call sites
func ParseImplementations(tokens []lexer.Token) graph.Outcome[[]*graph.ImplementationNode] {
	stream := lexer.NewStream(tokens)
	var result []*graph.ImplementationNode
	for stream.SkipTo("@implementation") {
		line := stream.Next().Line
		name, _, category, _, ok := parseClassHeader(stream)
		if !ok {
			continue
		}
		node := &graph.ImplementationNode{
			ClassName: name,
			Category:  category,
			Location:  &graph.Location{Line: line},
		}
		parseImplementationMembers(stream, node)
		result = append(result, node)
	}
	if len(result) == 0 {
		return graph.NoMatch[[]*graph.ImplementationNode]()
	}
	return graph.Matched(result)
}

func parseImplementationMembers(stream *lexer.Stream, node *graph.ImplementationNode) {
	for !stream.EOF() {
		token := stream.Peek(0)
		switch {
		case token.Is("@end"):
			stream.Next()
			return
		case token.Is("@interface", "@implementation", "@protocol"):
			return
		case token.Is("-", "+"):
			method := parseMethodSignature(stream)
			if stream.Peek(0).Is("{") {
				body := stream.Balanced("{", "}")
				if method != nil {
					method.Invokes = MessageSends(body)
				}
			} else {
				stream.Accept(";")
			}
			if method != nil {
				node.Methods = append(node.Methods, method)
			}
		case token.Is("{"):
			stream.Balanced("{", "}")
		default:
			stream.Next()
		}
	}
}

// ParseClasses returns class records built from declarations alone
func ParseClasses(tokens []lexer.Token) graph.Outcome[[]*graph.ClassNode] {
	interfaces, ok := ParseInterfaces(tokens).Get()
	if !ok {
		return graph.NoMatch[[]*graph.ClassNode]()
	}
	result := make([]*graph.ClassNode, 0, len(interfaces))
	for _, iface := range interfaces {
		result = append(result, graph.NewClassNode(graph.LanguageObjC, iface, nil))
	}
	return graph.Matched(result)
}

// ParseMethods returns every implemented method of the file
func ParseMethods(tokens []lexer.Token) graph.Outcome[[]*graph.MethodNode] {
	implementations, ok := ParseImplementations(tokens).Get()
	if !ok {
		return graph.NoMatch[[]*graph.MethodNode]()
	}
	var result []*graph.MethodNode
	for _, implementation := range implementations {
		result = append(result, implementation.Methods...)
	}
	return graph.Matched(result)
}
