/*
Package scanner defines tokenizers which produce input for token-level parsers.

A Tokenizer is drained by Tokens into an array of tokens, which is a valid input
for parsers of package combi. Token-level parsers are built from Kind and Lexeme
and composed with the combinators of package combi:

    input := scanner.Tokens(scanner.GoTokenizer("example", strings.NewReader("a = 1")))
    assign := combi.Then(scanner.Kind(scanner.Ident), scanner.Lexeme("="))
    r := assign.Parse(input)

Two tokenizer implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("combi.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() combi.Token
	SetErrorHandler(func(error))
}

// Input is the type of token arrays, as consumed by token-level parsers.
type Input = combi.Items[combi.Token]

// Tokens reads tokens from t until EOF and returns them as parser input.
// The EOF token is not part of the result.
func Tokens(t Tokenizer) Input {
	var toks []combi.Token
	for {
		token := t.NextToken()
		if token.TokType() == EOF {
			break
		}
		toks = append(toks, token)
	}
	tracer().Debugf("tokenizer produced %d tokens", len(toks))
	return combi.ItemsOf(toks...)
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(scanError{pos: s.Position, msg: msg})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() combi.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   combi.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   combi.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

type scanError struct {
	pos scanner.Position
	msg string
}

func (e scanError) Error() string {
	return e.pos.String() + ": " + e.msg
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   combi.TokType
	lexeme string
	Val    interface{}
	span   combi.Span
}

var _ combi.Token = DefaultToken{}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ combi.TokType, lexeme string, span combi.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() combi.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() combi.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return "'" + t.lexeme + "'" + t.span.String()
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
// Go tokenizers skip comments by default.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}
