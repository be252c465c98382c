package swift

import (
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

// parseFunction parses 'func name<...>(params) async throws -> T { body }' or an initializer,
// the stream is positioned at 'func', 'init' or 'deinit'
func parseFunction(stream *lexer.Stream, isStatic bool) *graph.MethodNode {
	keyword := stream.Next()
	method := &graph.MethodNode{IsStatic: isStatic, Location: &graph.Location{Line: keyword.Line}}
	switch keyword.Text {
	case "func":
		name := stream.Peek(0)
		if name.Is("(", "{") || name.Text == "" {
			return nil
		}
		method.Name = stream.Next().Text
		for !stream.EOF() && !stream.Peek(0).Is("(", "<", "{") && stream.Peek(0).Kind == lexer.Punct {
			method.Name += stream.Next().Text
		}
	default:
		method.Name = keyword.Text
		stream.Accept("?", "!")
	}
	if stream.Peek(0).Is("<") {
		skipAngles(stream)
	}
	if stream.Peek(0).Is("(") {
		method.Params = parseParams(stream.Balanced("(", ")"))
	}
	for !stream.EOF() && stream.Peek(0).Is("async", "throws", "rethrows", "reasync") {
		stream.Next()
	}
	if stream.Peek(0).Is("->") {
		line := stream.Next().Line
		var result []lexer.Token
		depth := 0
		for !stream.EOF() {
			token := stream.Peek(0)
			if depth == 0 && (token.Is("{", "where") || token.Line != line) {
				break
			}
			switch token.Text {
			case "(", "[", "<":
				depth++
			case ")", "]", ">":
				depth--
			}
			result = append(result, stream.Next())
		}
		method.ReturnType = lexer.Join(result)
	}
	if stream.Peek(0).Is("where") {
		stream.SkipTo("{")
	}
	if stream.Peek(0).Is("{") {
		method.Invokes = Calls(stream.Balanced("{", "}"))
	}
	return method
}

// parseParams parses 'label name: Type = default, ...'
func parseParams(tokens []lexer.Token) []*graph.Param {
	var params []*graph.Param
	for _, item := range splitTopLevel(tokens, ",") {
		colon := -1
		for i, token := range item {
			if token.Is(":") {
				colon = i
				break
			}
		}
		if colon <= 0 {
			continue
		}
		param := &graph.Param{}
		names := item[:colon]
		param.Label = names[0].Text
		param.Name = names[len(names)-1].Text
		typeTokens := item[colon+1:]
		for i, token := range typeTokens {
			if token.Is("=") {
				typeTokens = typeTokens[:i]
				break
			}
		}
		param.Type = lexer.Join(typeTokens)
		params = append(params, param)
	}
	return params
}

// Calls returns call sites 'receiver.name(...)' found in tokens
func Calls(tokens []lexer.Token) []*graph.Invoke {
	var invokes []*graph.Invoke
	for i := 0; i+1 < len(tokens); i++ {
		token := tokens[i]
		if !tokens[i+1].Is("(") {
			continue
		}
		if !isName(token) && !token.Is("init") {
			continue
		}
		invoke := &graph.Invoke{Name: token.Text}
		for j := i - 1; j >= 1 && tokens[j].Is(".") && (isName(tokens[j-1]) || tokens[j-1].Is("self", "super", "Self")); j -= 2 {
			if invoke.Receiver == "" {
				invoke.Receiver = tokens[j-1].Text
			} else {
				invoke.Receiver = tokens[j-1].Text + "." + invoke.Receiver
			}
		}
		if invoke.Receiver == "" && token.Is("init") {
			continue
		}
		invokes = append(invokes, invoke)
	}
	return invokes
}

func splitTopLevel(tokens []lexer.Token, separator string) [][]lexer.Token {
	var result [][]lexer.Token
	depth := 0
	start := 0
	for i, token := range tokens {
		switch token.Text {
		case "(", "[", "<", "{":
			depth++
		case ")", "]", ">", "}":
			depth--
		case separator:
			if depth == 0 {
				result = append(result, tokens[start:i])
				start = i + 1
			}
		}
	}
	if start < len(tokens) {
		result = append(result, tokens[start:])
	}
	return result
}

func skipAngles(stream *lexer.Stream) {
	depth := 0
	for !stream.EOF() {
		token := stream.Next()
		switch token.Text {
		case "<":
			depth++
		case ">":
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}
