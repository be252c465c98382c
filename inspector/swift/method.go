package swift

import (
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

// ParseMethods returns every function and initializer of the file with its call sites
func ParseMethods(tokens []lexer.Token) graph.Outcome[[]*graph.MethodNode] {
	stream := lexer.NewStream(tokens)
	var result []*graph.MethodNode
	isStatic := false
	for !stream.EOF() {
		token := stream.Peek(0)
		previous := stream.Peek(-1)
		switch {
		case token.Is("func") || (token.Is("init", "deinit") && !previous.Is(".") && stream.Peek(1).Is("(", "?", "!", "{", "<")):
			if method := parseFunction(stream, isStatic); method != nil {
				result = append(result, method)
			}
		case token.Is("static", "class") && stream.Peek(1).Is("func"):
			stream.Next()
			isStatic = true
			continue
		default:
			stream.Next()
		}
		isStatic = false
	}
	if len(result) == 0 {
		return graph.NoMatch[[]*graph.MethodNode]()
	}
	return graph.Matched(result)
}
