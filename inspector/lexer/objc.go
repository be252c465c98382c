package lexer

import (
	"bytes"
	"text/scanner"
)

// scanObjC tokenizes C family source, comments and preprocessor directives are dropped
func scanObjC(src []byte) []Token {
	var s scanner.Scanner
	s.Init(bytes.NewReader(stripDirectives(src)))
	s.Mode = scanner.ScanIdents | scanner.ScanFloats | scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	s.Error = func(*scanner.Scanner, string) {}
	s.IsIdentRune = func(ch rune, i int) bool {
		return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(i > 0 && ch >= '0' && ch <= '9') || ch >= 0x80
	}
	var tokens []Token
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		token := Token{Text: s.TokenText(), Line: s.Position.Line}
		switch tok {
		case scanner.Ident:
			token.Kind = Ident
		case scanner.Int, scanner.Float:
			token.Kind = Number
		case scanner.String:
			token.Kind = String
		case scanner.Char:
			token.Kind = Char
		case '@':
			if next := s.Peek(); next == '_' || (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') {
				s.Scan()
				token.Text = "@" + s.TokenText()
				token.Kind = Keyword
			} else {
				token.Kind = Punct
			}
		default:
			token.Kind = Punct
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// stripDirectives blanks preprocessor lines keeping line numbering intact
func stripDirectives(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	continued := false
	for i, line := range lines {
		trimmed := bytes.TrimSpace(line)
		if continued || bytes.HasPrefix(trimmed, []byte("#")) {
			continued = bytes.HasSuffix(trimmed, []byte("\\"))
			lines[i] = nil
		}
	}
	return bytes.Join(lines, []byte("\n"))
}
