package objc

import (
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

// parseMethodSignature parses method signature starting at '-' or '+' up to (excluding) ';' or '{'
func parseMethodSignature(stream *lexer.Stream) *graph.MethodNode {
	marker := stream.Next()
	method := &graph.MethodNode{
		IsStatic: marker.Text == "+",
		Location: &graph.Location{Line: marker.Line},
	}
	if stream.Peek(0).Is("(") {
		method.ReturnType = lexer.Join(stream.Balanced("(", ")"))
	}
	var selector string
	for !stream.EOF() {
		token := stream.Peek(0)
		if token.Is(";", "{", "@end") {
			break
		}
		if !token.IsIdent() {
			stream.Next()
			continue
		}
		if !stream.Peek(1).Is(":") {
			if selector == "" {
				selector = token.Text
			}
			stream.Next()
			continue
		}
		stream.Next()
		stream.Next()
		selector += token.Text + ":"
		param := &graph.Param{Label: token.Text}
		if stream.Peek(0).Is("(") {
			param.Type = lexer.Join(stream.Balanced("(", ")"))
		}
		if stream.Peek(0).IsIdent() {
			param.Name = stream.Next().Text
		}
		method.Params = append(method.Params, param)
	}
	if selector == "" {
		return nil
	}
	method.Name = selector
	return method
}

// parseProperty parses '@property (attributes) Type name;'
func parseProperty(stream *lexer.Stream) *graph.Property {
	stream.Next()
	property := &graph.Property{}
	if stream.Peek(0).Is("(") {
		for _, token := range stream.Balanced("(", ")") {
			if token.IsIdent() {
				property.Attributes = append(property.Attributes, token.Text)
			}
		}
	}
	declaration := stream.Until(";", "@end")
	stream.Accept(";")
	nameIdx := -1
	for i := len(declaration) - 1; i >= 0; i-- {
		if declaration[i].IsIdent() && !isQualifier(declaration[i].Text) {
			nameIdx = i
			break
		}
	}
	if nameIdx <= 0 {
		return nil
	}
	property.Name = declaration[nameIdx].Text
	property.Type = lexer.Join(declaration[:nameIdx])
	return property
}

func isQualifier(text string) bool {
	switch text {
	case "NS_AVAILABLE", "NS_DEPRECATED", "NS_UNAVAILABLE", "API_AVAILABLE", "API_UNAVAILABLE", "__deprecated":
		return true
	}
	return false
}

// parseClassHeader parses 'Name [: Super] [(Category)] [<P, ...>]' following @interface or @implementation
func parseClassHeader(stream *lexer.Stream) (name, superclass, category string, protocols []string, ok bool) {
	if !stream.Peek(0).IsIdent() {
		return "", "", "", nil, false
	}
	name = stream.Next().Text
	if stream.Peek(0).Is("<") && !isProtocolList(stream) {
		stream.Balanced("<", ">")
	}
	if stream.Accept(":") && stream.Peek(0).IsIdent() {
		superclass = stream.Next().Text
		if stream.Peek(0).Is("<") && !isProtocolListAfterSuper(stream) {
			stream.Balanced("<", ">")
		}
	}
	if stream.Peek(0).Is("(") {
		for _, token := range stream.Balanced("(", ")") {
			if token.IsIdent() {
				category = token.Text
			}
		}
		if category == "" {
			category = "()"
		}
	}
	if stream.Peek(0).Is("<") {
		for _, token := range stream.Balanced("<", ">") {
			if token.IsIdent() {
				protocols = append(protocols, token.Text)
			}
		}
	}
	return name, superclass, category, protocols, true
}

// isProtocolList distinguishes lightweight generics '@interface Box<T> : NSObject' from a protocol list
func isProtocolList(stream *lexer.Stream) bool {
	pos := stream.Pos()
	defer stream.Seek(pos)
	stream.Balanced("<", ">")
	return !stream.Peek(0).Is(":")
}

// isProtocolListAfterSuper returns false for a generic superclass such as 'NSObject<NSString *>'
func isProtocolListAfterSuper(stream *lexer.Stream) bool {
	pos := stream.Pos()
	defer stream.Seek(pos)
	for _, token := range stream.Balanced("<", ">") {
		if token.Is("*") {
			return false
		}
	}
	return true
}
