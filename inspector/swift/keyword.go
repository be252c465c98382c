package swift

import "github.com/viant/drafter/inspector/lexer"

var keywords = map[string]bool{
	"class": true, "struct": true, "enum": true, "protocol": true, "extension": true, "actor": true,
	"func": true, "init": true, "deinit": true, "var": true, "let": true, "static": true, "final": true,
	"public": true, "private": true, "fileprivate": true, "internal": true, "open": true, "override": true,
	"mutating": true, "nonmutating": true, "convenience": true, "required": true, "lazy": true, "weak": true,
	"unowned": true, "dynamic": true, "indirect": true, "typealias": true, "import": true, "associatedtype": true,
	"subscript": true, "case": true, "return": true, "if": true, "else": true, "guard": true, "for": true,
	"while": true, "repeat": true, "switch": true, "in": true, "where": true, "throws": true, "rethrows": true,
	"async": true, "await": true, "try": true, "catch": true, "throw": true, "do": true, "defer": true,
	"self": true, "super": true, "Self": true, "true": true, "false": true, "nil": true, "some": true,
	"any": true, "inout": true, "is": true, "as": true, "break": true, "continue": true, "fallthrough": true,
	"default": true, "get": true, "set": true, "willSet": true, "didSet": true, "operator": true,
}

var typeKinds = map[string]bool{"class": true, "struct": true, "enum": true, "actor": true, "extension": true}

var modifiers = map[string]bool{
	"public": true, "private": true, "fileprivate": true, "internal": true, "open": true, "final": true,
	"override": true, "mutating": true, "nonmutating": true, "convenience": true, "required": true,
	"static": true, "class": true, "lazy": true, "weak": true, "unowned": true, "dynamic": true, "indirect": true,
	"nonisolated": true, "optional": true,
}

// isName returns true for identifiers that are not reserved words
func isName(token lexer.Token) bool {
	return token.IsIdent() && !keywords[token.Text]
}
