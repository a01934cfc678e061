package combi

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language. Arrays of tokens, wrapped as Items[Token],
// are valid input for parsers.
//
// An example would be a token for a floating point number:
//
//    TokType = Float       // identifier for this kind of tokens (application specific)
//    Lexeme  = "3.1416"    // lexeme how it appeared in the input stream
//    Value   = 3.1416      // is a float64 value
//    Span    = 67…73       // occurred from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end. For text input,
// positions are byte offsets; for items, positions are indices.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Parsers tracking input ------------------------------------------------

// Spanned is the output of WithSpan.
type Spanned[O any] struct {
	Value O
	Span  Span
}

// WithSpan pairs the output of p with the span of input p consumed.
func WithSpan[S Slice[S, T], T, O, E any](p Parser[S, O, E]) Parser[S, Spanned[O], E] {
	return New(func(input S) Result[S, Spanned[O], E] {
		r := p.run(input)
		if !r.ok {
			return Failure[S, Spanned[O]](r.err)
		}
		span := Span{uint64(input.Offset()), uint64(r.rest.Offset())}
		return Success[S, Spanned[O], E](Spanned[O]{Value: r.out, Span: span}, r.rest)
	})
}

// Consumed replaces the output of p by the part of the input p consumed.
func Consumed[S Slice[S, T], T, O, E any](p Parser[S, O, E]) Parser[S, S, E] {
	return New(func(input S) Result[S, S, E] {
		r := p.run(input)
		if !r.ok {
			return Failure[S, S](r.err)
		}
		return Success[S, S, E](input.Until(r.rest), r.rest)
	})
}
