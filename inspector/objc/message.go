package objc

import (
	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
)

// MessageSends returns message sends '[receiver selector:arg ...]' found in tokens, inner sends come first
func MessageSends(tokens []lexer.Token) []*graph.Invoke {
	var invokes []*graph.Invoke
	for i := 0; i < len(tokens); {
		if tokens[i].Is("[") {
			i = parseMessage(tokens, i, &invokes)
			continue
		}
		i++
	}
	return invokes
}

// parseMessage parses bracket group at tokens[start] and returns index past its closing bracket
func parseMessage(tokens []lexer.Token, start int, invokes *[]*graph.Invoke) int {
	n := len(tokens)
	i := start + 1
	receiver := ""
	hasReceiver := false
	if i < n && tokens[i].Is("(") {
		i = skipGroup(tokens, i, "(", ")")
	}
	switch {
	case i < n && tokens[i].Is("["):
		end := parseMessage(tokens, i, invokes)
		receiver = lexer.Join(tokens[i:end])
		i = end
		hasReceiver = true
	case i < n && tokens[i].IsIdent():
		receiver = tokens[i].Text
		i++
		for i+2 < n && tokens[i].Is(".") && tokens[i+1].IsIdent() && !tokens[i+2].Is(":") {
			receiver += "." + tokens[i+1].Text
			i += 2
		}
		hasReceiver = true
	}
	var selector string
	if i+1 < n && tokens[i].IsIdent() && tokens[i+1].Is("]") {
		selector = tokens[i].Text
	}
	depth := 0
	for i < n {
		token := tokens[i]
		switch {
		case token.Is("["):
			i = parseMessage(tokens, i, invokes)
			continue
		case token.Is("]") && depth == 0:
			if hasReceiver && selector != "" {
				*invokes = append(*invokes, &graph.Invoke{Receiver: receiver, Name: selector})
			}
			return i + 1
		case token.Is("(", "{"):
			depth++
		case token.Is(")", "}"):
			depth--
		case depth == 0 && token.IsIdent() && i+1 < n && tokens[i+1].Is(":"):
			selector += token.Text + ":"
			i += 2
			continue
		}
		i++
	}
	return n
}

func skipGroup(tokens []lexer.Token, start int, open, closing string) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		switch tokens[i].Text {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(tokens)
}
