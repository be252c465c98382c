// Package swift parses Swift tokens into protocol and class records
package swift

import (
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

type parser struct {
	unified *graph.Unified
}

// ParseUnified extracts protocols and type declarations (class, struct, enum, actor, extension), nested types included
func ParseUnified(tokens []lexer.Token) graph.Outcome[*graph.Unified] {
	p := &parser{unified: &graph.Unified{}}
	p.parseScope(lexer.NewStream(tokens), "")
	if p.unified.IsEmpty() {
		return graph.NoMatch[*graph.Unified]()
	}
	return graph.Matched(p.unified)
}

// parseScope parses declarations of a file or a type body
func (p *parser) parseScope(stream *lexer.Stream, owner string) (methods []*graph.MethodNode, properties []*graph.Property) {
	isStatic := false
	for !stream.EOF() {
		token := stream.Peek(0)
		switch {
		case token.Is("protocol") && isName(stream.Peek(1)):
			p.parseProtocol(stream)
		case typeKinds[token.Text] && isName(stream.Peek(1)):
			p.parseType(stream, owner)
		case token.Is("func") || (token.Is("init", "deinit") && stream.Peek(1).Is("(", "?", "!", "{", "<")):
			method := parseFunction(stream, isStatic)
			if method != nil && owner != "" {
				methods = append(methods, method)
			}
		case token.Is("var", "let"):
			if property := parseProperty(stream); property != nil && owner != "" {
				properties = append(properties, property)
			}
		case token.Is("{"):
			stream.Balanced("{", "}")
		case modifiers[token.Text]:
			stream.Next()
			if token.Is("static", "class") {
				isStatic = true
			}
			continue
		default:
			stream.Next()
		}
		isStatic = false
	}
	return methods, properties
}

// parseType parses 'kind Name<...>: A, B where ... { members }'
func (p *parser) parseType(stream *lexer.Stream, owner string) {
	kind := stream.Next()
	name := stream.Next().Text
	for stream.Peek(0).Is(".") && isName(stream.Peek(1)) {
		stream.Next()
		name += "." + stream.Next().Text
	}
	if owner != "" && kind.Text != "extension" {
		name = owner + "." + name
	}
	if stream.Peek(0).Is("<") {
		skipAngles(stream)
	}
	inherited := parseInheritance(stream)
	iface := &graph.InterfaceNode{ClassName: name, Location: &graph.Location{Line: kind.Line}}
	if kind.Is("class") && len(inherited) > 0 {
		iface.Superclass = inherited[0]
		inherited = inherited[1:]
	}
	iface.AddProtocols(inherited...)
	if stream.Peek(0).Is("where") {
		stream.SkipTo("{")
	}
	class := graph.NewClassNode(graph.LanguageSwift, iface, nil)
	p.unified.Classes = append(p.unified.Classes, class)
	if !stream.Peek(0).Is("{") {
		return
	}
	methods, properties := p.parseScope(lexer.NewStream(stream.Balanced("{", "}")), name)
	iface.Properties = properties
	var implemented []*graph.MethodNode
	for _, method := range methods {
		declared := *method
		declared.Invokes = nil
		iface.Methods = append(iface.Methods, &declared)
		implemented = append(implemented, method)
	}
	if len(implemented) > 0 {
		class.Implementation = &graph.ImplementationNode{ClassName: name, Methods: implemented, Location: iface.Location}
	}
}

// parseProtocol parses 'protocol Name: A, B { requirements }'
func (p *parser) parseProtocol(stream *lexer.Stream) {
	keyword := stream.Next()
	protocol := &graph.ProtocolNode{Name: stream.Next().Text, Location: &graph.Location{Line: keyword.Line}}
	protocol.Inherits = parseInheritance(stream)
	if stream.Peek(0).Is("where") {
		stream.SkipTo("{")
	}
	p.unified.Protocols = append(p.unified.Protocols, protocol)
	if !stream.Peek(0).Is("{") {
		return
	}
	body := lexer.NewStream(stream.Balanced("{", "}"))
	protocol.Methods, _ = (&parser{unified: &graph.Unified{}}).parseScope(body, protocol.Name)
}

// parseInheritance parses ': A, B<C>' up to '{' or 'where'
func parseInheritance(stream *lexer.Stream) []string {
	if !stream.Accept(":") {
		return nil
	}
	var clause []lexer.Token
	depth := 0
	for !stream.EOF() {
		token := stream.Peek(0)
		if depth == 0 && token.Is("{", "where") {
			break
		}
		switch token.Text {
		case "<", "(", "[":
			depth++
		case ">", ")", "]":
			depth--
		}
		clause = append(clause, stream.Next())
	}
	var result []string
	for _, item := range splitTopLevel(clause, ",") {
		if len(item) > 0 {
			result = append(result, lexer.Join(item))
		}
	}
	return result
}

// parseProperty parses 'var name: Type = value { accessors }' bounded by the declaration line
func parseProperty(stream *lexer.Stream) *graph.Property {
	keyword := stream.Next()
	if !isName(stream.Peek(0)) {
		return nil
	}
	nameToken := stream.Next()
	property := &graph.Property{Name: nameToken.Text}
	if keyword.Is("let") {
		property.Attributes = []string{"let"}
	}
	line := nameToken.Line
	if stream.Accept(":") {
		var typeTokens []lexer.Token
		depth := 0
		for !stream.EOF() {
			token := stream.Peek(0)
			if depth == 0 && (token.Is("=", "{") || token.Line != line) {
				break
			}
			switch token.Text {
			case "(", "[", "<":
				depth++
			case ")", "]", ">":
				depth--
			}
			typeTokens = append(typeTokens, stream.Next())
		}
		property.Type = lexer.Join(typeTokens)
	}
	if stream.Accept("=") {
		for !stream.EOF() && stream.Peek(0).Line == line {
			if stream.Peek(0).Is("(", "[", "{") {
				open := stream.Peek(0).Text
				stream.Balanced(open, closingOf(open))
				continue
			}
			stream.Next()
		}
	}
	if stream.Peek(0).Is("{") && stream.Peek(0).Line == line {
		stream.Balanced("{", "}")
	}
	return property
}

func closingOf(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	}
	return "}"
}
