package combi

import "fmt"

// Void is the empty error marker. Primitive parsers fail with Void; clients
// replace it by their own error type with MapErr or Filter.
type Void struct{}

func (Void) String() string {
	return "void"
}

// --- Results ---------------------------------------------------------------

// Result is the outcome of running a parser on input of type I.
// It either is a success, carrying an output of type O together with the
// remaining input, or a failure carrying an error of type E.
//
// A failed result does not expose any output or remaining input.
type Result[I, O, E any] struct {
	out  O
	rest I
	err  E
	ok   bool
}

// Success creates a successful result.
func Success[I, O, E any](out O, rest I) Result[I, O, E] {
	return Result[I, O, E]{out: out, rest: rest, ok: true}
}

// Failure creates a failed result.
func Failure[I, O, E any](err E) Result[I, O, E] {
	return Result[I, O, E]{err: err}
}

// OK is true for successful results.
func (r Result[I, O, E]) OK() bool {
	return r.ok
}

// Output returns the output of a successful result, and the zero value of O
// for failures.
func (r Result[I, O, E]) Output() O {
	return r.out
}

// Rest returns the input remaining after a successful parse step, and the
// zero value of I for failures.
func (r Result[I, O, E]) Rest() I {
	return r.rest
}

// Err returns the error of a failed result, and the zero value of E for
// successes.
func (r Result[I, O, E]) Err() E {
	return r.err
}

// Unpack returns all components of a result at once.
func (r Result[I, O, E]) Unpack() (O, I, E, bool) {
	return r.out, r.rest, r.err, r.ok
}

func (r Result[I, O, E]) String() string {
	if r.ok {
		return fmt.Sprintf("ok(%v | %v)", r.out, r.rest)
	}
	return fmt.Sprintf("fail(%v)", r.err)
}

// --- Parsers ---------------------------------------------------------------

// ParseFn is the type of parsing functions wrapped by a Parser.
// A ParseFn must be free of side effects: called with equal inputs it has to
// produce equal results.
type ParseFn[I, O, E any] func(input I) Result[I, O, E]

// Parser is an opaque wrapper around a parsing function. Parsers are created
// by primitive constructors or by combinators and are never changed after
// construction.
//
// Parsers are lazy; call Parse to run one.
type Parser[I, O, E any] struct {
	run ParseFn[I, O, E]
}

// New wraps a parsing function into a parser.
func New[I, O, E any](fn ParseFn[I, O, E]) Parser[I, O, E] {
	if fn == nil {
		panic("combi: parser constructed from nil function")
	}
	return Parser[I, O, E]{run: fn}
}

// Parse runs the parser on input. Only parsers created by New, by a primitive
// or by a combinator may be run; Parse panics for the zero Parser.
func (p Parser[I, O, E]) Parse(input I) Result[I, O, E] {
	if p.run == nil {
		panic("combi: zero parser run; create parsers with New")
	}
	return p.run(input)
}

// Recursive creates a parser which may refer to itself. Function def receives
// a handle to the parser under construction and returns its definition. def is
// called exactly once, at construction time; the handle must not be run
// before def returns.
//
//    value := Recursive(func(self Parser[Text, Value, Expect]) Parser[Text, Value, Expect] {
//        array := Surround(Separate(self, comma), open, close)
//        …
//    })
//
func Recursive[I, O, E any](def func(self Parser[I, O, E]) Parser[I, O, E]) Parser[I, O, E] {
	var inner Parser[I, O, E]
	self := New(func(input I) Result[I, O, E] {
		return inner.run(input)
	})
	inner = def(self)
	if inner.run == nil {
		panic("combi: recursive parser definition yields a zero parser")
	}
	return self
}
