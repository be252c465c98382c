package lexer

// Stream represents token cursor used by the dialect parsers
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream creates a stream over tokens
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Pos returns current position
func (s *Stream) Pos() int {
	return s.pos
}

// Seek moves cursor to position
func (s *Stream) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.tokens) {
		pos = len(s.tokens)
	}
	s.pos = pos
}

// EOF returns true when all tokens were consumed
func (s *Stream) EOF() bool {
	return s.pos >= len(s.tokens)
}

// Peek returns token at offset from the current position, zero token past the end
func (s *Stream) Peek(offset int) Token {
	idx := s.pos + offset
	if idx < 0 || idx >= len(s.tokens) {
		return Token{Kind: Punct}
	}
	return s.tokens[idx]
}

// Next returns current token and advances
func (s *Stream) Next() Token {
	token := s.Peek(0)
	if !s.EOF() {
		s.pos++
	}
	return token
}

// Accept advances if current token matches any of candidates
func (s *Stream) Accept(candidates ...string) bool {
	if s.EOF() || !s.Peek(0).Is(candidates...) {
		return false
	}
	s.pos++
	return true
}

// SkipTo advances until current token matches any of candidates, returns false at the end of stream
func (s *Stream) SkipTo(candidates ...string) bool {
	for !s.EOF() {
		if s.Peek(0).Is(candidates...) {
			return true
		}
		s.pos++
	}
	return false
}

// Balanced consumes a group opened by the current token and returns its inner tokens
func (s *Stream) Balanced(open, closing string) []Token {
	if !s.Accept(open) {
		return nil
	}
	start := s.pos
	depth := 1
	for !s.EOF() {
		token := s.Next()
		switch token.Text {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s.tokens[start : s.pos-1]
			}
		}
	}
	return s.tokens[start:s.pos]
}

// Until returns tokens up to (excluding) the first token matching candidates at nesting level zero
func (s *Stream) Until(candidates ...string) []Token {
	start := s.pos
	depth := 0
	for !s.EOF() {
		token := s.Peek(0)
		if depth == 0 && token.Is(candidates...) {
			break
		}
		switch token.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			if depth == 0 {
				return s.tokens[start:s.pos]
			}
			depth--
		}
		s.pos++
	}
	return s.tokens[start:s.pos]
}
