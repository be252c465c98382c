package lexer

import "strings"

// Kind represents token kind
type Kind int

const (
	Ident Kind = iota
	Keyword
	Number
	String
	Char
	Punct
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "ident"
	case Keyword:
		return "keyword"
	case Number:
		return "number"
	case String:
		return "string"
	case Char:
		return "char"
	}
	return "punct"
}

// Token represents lexical unit
type Token struct {
	Kind Kind
	Text string
	Line int
}

// Is returns true if token text equals any of candidates
func (t Token) Is(candidates ...string) bool {
	for _, candidate := range candidates {
		if t.Text == candidate {
			return true
		}
	}
	return false
}

// IsIdent returns true for identifier tokens
func (t Token) IsIdent() bool {
	return t.Kind == Ident
}

// Join renders tokens as source text, identifiers are separated by a single space
func Join(tokens []Token) string {
	builder := &strings.Builder{}
	for i, token := range tokens {
		if i > 0 && needsSpace(tokens[i-1], token) {
			builder.WriteByte(' ')
		}
		builder.WriteString(token.Text)
	}
	return builder.String()
}

func needsSpace(prev, next Token) bool {
	wordy := func(t Token) bool { return t.Kind != Punct }
	return wordy(prev) && wordy(next)
}

// kindOf infers token kind from its text
func kindOf(text string) Kind {
	if text == "" {
		return Punct
	}
	c := text[0]
	switch {
	case c == '@' && len(text) > 1:
		return Keyword
	case c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80:
		return Ident
	case c >= '0' && c <= '9':
		return Number
	case c == '"':
		return String
	case c == '\'':
		return Char
	}
	return Punct
}
