package inspector

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/viant/drafter/inspector/graph"
	"github.com/viant/drafter/inspector/lexer"
	"github.com/viant/drafter/inspector/objc"
	"github.com/viant/drafter/inspector/swift"
)

// Dialect represents source dialect family
type Dialect int

const (
	// Unknown represents unsupported file
	Unknown Dialect = iota
	// ObjC represents declaration/implementation pair files (.h/.m)
	ObjC
	// Swift represents unified declaration files (.swift)
	Swift
)

func (d Dialect) String() string {
	switch d {
	case ObjC:
		return "objc"
	case Swift:
		return "swift"
	}
	return "unknown"
}

// DialectOf returns dialect of the file based on its extension
func DialectOf(filename string) Dialect {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".h", ".m":
		return ObjC
	case ".swift":
		return Swift
	}
	return Unknown
}

// IsHeader returns true for declaration only files
func IsHeader(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".h"
}

// Classify partitions files into objc and swift groups preserving input order, other files are dropped
func Classify(files []string) (objcFiles, swiftFiles []string) {
	for _, file := range files {
		switch DialectOf(file) {
		case ObjC:
			objcFiles = append(objcFiles, file)
		case Swift:
			swiftFiles = append(swiftFiles, file)
		}
	}
	return objcFiles, swiftFiles
}

// Inspector provides tokenizer and dialect parsers consumed by the runner
type Inspector interface {
	// Tokenize returns file tokens, unreadable or empty file yields no tokens
	Tokenize(ctx context.Context, filename string) []lexer.Token

	// ParseInterfaces extracts class declarations
	ParseInterfaces(tokens []lexer.Token) graph.Outcome[[]*graph.InterfaceNode]

	// ParseImplementations extracts class bodies
	ParseImplementations(tokens []lexer.Token) graph.Outcome[[]*graph.ImplementationNode]

	// ParseUnified extracts protocols and class records from unified declaration files
	ParseUnified(tokens []lexer.Token) graph.Outcome[*graph.Unified]

	// ParseInterfaceClasses extracts class records straight from class declarations
	ParseInterfaceClasses(tokens []lexer.Token) graph.Outcome[[]*graph.ClassNode]

	// ParseMethodCalls extracts methods with their call sites
	ParseMethodCalls(dialect Dialect, tokens []lexer.Token) graph.Outcome[[]*graph.MethodNode]
}

// Service represents default inspector backed by lexer, objc and swift parsers
type Service struct {
	lexer *lexer.Lexer
}

// New creates default inspector
func New(options ...lexer.Option) *Service {
	return &Service{lexer: lexer.New(options...)}
}

func (s *Service) Tokenize(ctx context.Context, filename string) []lexer.Token {
	return s.lexer.Tokenize(ctx, filename)
}

func (s *Service) ParseInterfaces(tokens []lexer.Token) graph.Outcome[[]*graph.InterfaceNode] {
	return objc.ParseInterfaces(tokens)
}

func (s *Service) ParseImplementations(tokens []lexer.Token) graph.Outcome[[]*graph.ImplementationNode] {
	return objc.ParseImplementations(tokens)
}

func (s *Service) ParseUnified(tokens []lexer.Token) graph.Outcome[*graph.Unified] {
	return swift.ParseUnified(tokens)
}

func (s *Service) ParseInterfaceClasses(tokens []lexer.Token) graph.Outcome[[]*graph.ClassNode] {
	return objc.ParseClasses(tokens)
}

func (s *Service) ParseMethodCalls(dialect Dialect, tokens []lexer.Token) graph.Outcome[[]*graph.MethodNode] {
	if dialect == Swift {
		return swift.ParseMethods(tokens)
	}
	return objc.ParseMethods(tokens)
}
