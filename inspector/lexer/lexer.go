package lexer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/afs"
	"github.com/viant/drafter/inspector/graph"
)

// Lexer turns source files into token streams
type Lexer struct {
	fs    afs.Service
	cache *lru.Cache[uint64, []Token]
}

// Option represents lexer option
type Option func(l *Lexer)

// WithFS sets file system used to read sources
func WithFS(fs afs.Service) Option {
	return func(l *Lexer) {
		l.fs = fs
	}
}

// WithCache enables token cache holding up to size token streams keyed by source content
func WithCache(size int) Option {
	return func(l *Lexer) {
		if size <= 0 {
			return
		}
		if cache, err := lru.New[uint64, []Token](size); err == nil {
			l.cache = cache
		}
	}
}

// New creates a lexer
func New(options ...Option) *Lexer {
	ret := &Lexer{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// LanguageOf returns language inferred from the file extension
func LanguageOf(filename string) graph.Language {
	if strings.ToLower(filepath.Ext(filename)) == ".swift" {
		return graph.LanguageSwift
	}
	return graph.LanguageObjC
}

// Tokenize returns tokens of the file, unreadable or empty file yields no tokens
func (l *Lexer) Tokenize(ctx context.Context, filename string) []Token {
	tokens, _ := l.Scan(ctx, filename)
	return tokens
}

// Scan reads the file and returns its tokens
func (l *Lexer) Scan(ctx context.Context, filename string) ([]Token, error) {
	src, err := l.fs.DownloadWithURL(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return l.TokenizeSource(ctx, LanguageOf(filename), src), nil
}

// TokenizeSource returns tokens of the source written in language
func (l *Lexer) TokenizeSource(ctx context.Context, language graph.Language, src []byte) []Token {
	if len(src) == 0 {
		return nil
	}
	var key uint64
	if l.cache != nil {
		var err error
		if key, err = graph.Hash(append([]byte(language+"\x00"), src...)); err == nil {
			if tokens, ok := l.cache.Get(key); ok {
				return tokens
			}
		} else {
			key = 0
		}
	}
	var tokens []Token
	switch language {
	case graph.LanguageSwift:
		tokens = scanSwift(ctx, src)
	default:
		tokens = scanObjC(src)
	}
	if l.cache != nil && key != 0 {
		l.cache.Add(key, tokens)
	}
	return tokens
}
