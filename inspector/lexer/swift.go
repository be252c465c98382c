package lexer

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

// scanSwift parses the source with tree-sitter and emits its leaf nodes as tokens
func scanSwift(ctx context.Context, src []byte) []Token {
	parser := sitter.NewParser()
	parser.SetLanguage(swift.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil || tree == nil {
		return nil
	}
	var tokens []Token
	stack := []*sitter.Node{tree.RootNode()}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		nodeType := node.Type()
		switch {
		case strings.Contains(nodeType, "comment"):
			continue
		case strings.HasSuffix(nodeType, "string_literal"):
			tokens = append(tokens, Token{Kind: String, Text: node.Content(src), Line: int(node.StartPoint().Row) + 1})
			continue
		}
		count := int(node.ChildCount())
		if count == 0 {
			if node.StartByte() == node.EndByte() {
				continue
			}
			text := node.Content(src)
			tokens = append(tokens, Token{Kind: kindOf(text), Text: text, Line: int(node.StartPoint().Row) + 1})
			continue
		}
		for i := count - 1; i >= 0; i-- {
			stack = append(stack, node.Child(i))
		}
	}
	return tokens
}
