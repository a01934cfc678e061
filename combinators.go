package combi

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// Combinators build new parsers from existing ones. None of them runs a parser
// eagerly. Combinators which change the output or error type are functions,
// as Go methods cannot introduce type parameters; type-preserving
// combinators are available as methods, too.

// --- Transforming outputs and errors ---------------------------------------

// Map transforms the output of a successful parse with f.
// Failures are passed through unchanged; f is never called for them.
func Map[I, O, O2, E any](p Parser[I, O, E], f func(O) O2) Parser[I, O2, E] {
	return New(func(input I) Result[I, O2, E] {
		r := p.run(input)
		if !r.ok {
			return Failure[I, O2](r.err)
		}
		return Success[I, O2, E](f(r.out), r.rest)
	})
}

// MapErr transforms the error of a failed parse with f.
// Successes are passed through unchanged.
func MapErr[I, O, E, E2 any](p Parser[I, O, E], f func(E) E2) Parser[I, O, E2] {
	return New(func(input I) Result[I, O, E2] {
		r := p.run(input)
		if r.ok {
			return Success[I, O, E2](r.out, r.rest)
		}
		return Failure[I, O](f(r.err))
	})
}

// Filter makes a parser fail if its output does not satisfy pred. The error
// is created by onReject from the rejected output.
//
// Filter does not reset the input on rejection: the result is a failure at the
// point after p consumed its input. Clients needing zero consumption on
// rejection combine the filtered parser with Or or Optional, which both
// restart from the original input.
func (p Parser[I, O, E]) Filter(pred func(O) bool, onReject func(O) E) Parser[I, O, E] {
	return New(func(input I) Result[I, O, E] {
		r := p.run(input)
		if r.ok && !pred(r.out) {
			return Failure[I, O](onReject(r.out))
		}
		return r
	})
}

// FilterMap maps the output of p with f, which may reject the output by
// returning false. Rejected outputs are turned into errors by onReject.
func FilterMap[I, O, O2, E any](p Parser[I, O, E], f func(O) (O2, bool), onReject func(O) E) Parser[I, O2, E] {
	return New(func(input I) Result[I, O2, E] {
		r := p.run(input)
		if !r.ok {
			return Failure[I, O2](r.err)
		}
		if v, ok := f(r.out); ok {
			return Success[I, O2, E](v, r.rest)
		}
		return Failure[I, O2](onReject(r.out))
	})
}

// Ignore drops the output of p.
func Ignore[I, O, E any](p Parser[I, O, E]) Parser[I, Void, E] {
	return Map(p, func(O) Void { return Void{} })
}

// --- Sequencing ------------------------------------------------------------

// Pair is the output of Then.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Combine runs p, then q on the input remaining after p. Outputs are merged by
// f. If either parser fails, Combine fails with that parser's error.
func Combine[I, O1, O2, O3, E any](p Parser[I, O1, E], q Parser[I, O2, E], f func(O1, O2) O3) Parser[I, O3, E] {
	return New(func(input I) Result[I, O3, E] {
		r1 := p.run(input)
		if !r1.ok {
			return Failure[I, O3](r1.err)
		}
		r2 := q.run(r1.rest)
		if !r2.ok {
			return Failure[I, O3](r2.err)
		}
		return Success[I, O3, E](f(r1.out, r2.out), r2.rest)
	})
}

// Then runs p and q in sequence and pairs their outputs.
func Then[I, O1, O2, E any](p Parser[I, O1, E], q Parser[I, O2, E]) Parser[I, Pair[O1, O2], E] {
	return Combine(p, q, func(a O1, b O2) Pair[O1, O2] {
		return Pair[O1, O2]{First: a, Second: b}
	})
}

// Left runs p and q in sequence and keeps the output of p.
func Left[I, O1, O2, E any](p Parser[I, O1, E], q Parser[I, O2, E]) Parser[I, O1, E] {
	return Combine(p, q, func(a O1, _ O2) O1 { return a })
}

// Right runs p and q in sequence and keeps the output of q.
func Right[I, O1, O2, E any](p Parser[I, O1, E], q Parser[I, O2, E]) Parser[I, O2, E] {
	return Combine(p, q, func(_ O1, b O2) O2 { return b })
}

// Surround runs left, p and right in sequence and keeps the output of p.
func Surround[I, O, OL, OR, E any](p Parser[I, O, E], left Parser[I, OL, E], right Parser[I, OR, E]) Parser[I, O, E] {
	return Left(Right(left, p), right)
}

// AndThen runs p, then calls f with the output of p to get the parser for the
// remaining input. This allows the continuation to depend on what p produced.
func AndThen[I, O, O2, E any](p Parser[I, O, E], f func(O) Parser[I, O2, E]) Parser[I, O2, E] {
	return New(func(input I) Result[I, O2, E] {
		r := p.run(input)
		if !r.ok {
			return Failure[I, O2](r.err)
		}
		return f(r.out).run(r.rest)
	})
}

// --- Alternation -----------------------------------------------------------

// Or runs p; if p fails, it runs q on the original input. Or never sees the
// input p may have consumed before failing. If both fail, the error of q is
// returned, as q is the last interpretation attempted.
func Or[I, O, E1, E2 any](p Parser[I, O, E1], q Parser[I, O, E2]) Parser[I, O, E2] {
	return New(func(input I) Result[I, O, E2] {
		if r := p.run(input); r.ok {
			return Success[I, O, E2](r.out, r.rest)
		}
		return q.run(input)
	})
}

// Or is the method version of function Or, for parsers of equal type.
func (p Parser[I, O, E]) Or(q Parser[I, O, E]) Parser[I, O, E] {
	return Or(p, q)
}

// Choice tries all parsers in order, each on the original input, and returns
// the first success. If all of them fail, the error of the last one is
// returned. Choice is equivalent to ps[0].Or(ps[1]).Or(…).
//
// Choice panics if no parser is given.
func Choice[I, O, E any](ps ...Parser[I, O, E]) Parser[I, O, E] {
	if len(ps) == 0 {
		panic("combi: choice between zero alternatives")
	}
	alts := make([]Parser[I, O, E], len(ps))
	copy(alts, ps)
	return New(func(input I) Result[I, O, E] {
		var r Result[I, O, E]
		for _, p := range alts {
			if r = p.run(input); r.ok {
				return r
			}
		}
		return r
	})
}

// Maybe is the output of Optional.
type Maybe[T any] struct {
	Value   T
	Present bool
}

func (m Maybe[T]) String() string {
	if !m.Present {
		return "none"
	}
	return fmt.Sprintf("some(%v)", m.Value)
}

// Optional makes p optional. It always succeeds: if p fails, the output is an
// absent Maybe and the original input is returned unconsumed.
func Optional[I, O, E any](p Parser[I, O, E]) Parser[I, Maybe[O], E] {
	return New(func(input I) Result[I, Maybe[O], E] {
		if r := p.run(input); r.ok {
			return Success[I, Maybe[O], E](Maybe[O]{Value: r.out, Present: true}, r.rest)
		}
		return Success[I, Maybe[O], E](Maybe[O]{}, input)
	})
}

// --- Repetition ------------------------------------------------------------

// Positioned inputs report where they start within the original input.
// Repetition combinators require it to detect iterations which consume
// nothing. All implementations of Slice are positioned.
type Positioned interface {
	Offset() int
}

// Many runs p repeatedly, until it fails, and collects the outputs. Many never
// fails; with no successful iteration, it outputs an empty slice and returns
// the original input. The input consumed by a failing iteration is discarded.
//
// An iteration which succeeds without consuming any input stops the
// repetition, as every further iteration would yield the same result.
func Many[I Positioned, O, E any](p Parser[I, O, E]) Parser[I, []O, E] {
	return Repeat(p, 0, -1)
}

// Many1 is like Many, but requires at least one successful iteration.
func Many1[I Positioned, O, E any](p Parser[I, O, E]) Parser[I, []O, E] {
	return Repeat(p, 1, -1)
}

// Repeat runs p at least min and at most max times (max < 0 means no upper
// bound). If p fails before min iterations succeeded, Repeat fails with the
// error of p.
//
// Iterations consuming no input stop the repetition as soon as min is reached,
// see Many. If configuration flag 'panic-on-zero-width-repeat' is set, Repeat
// panics instead; this helps in finding such parsers during grammar
// development.
//
// Repeat panics if min < 0 or max < min (unless max < 0).
func Repeat[I Positioned, O, E any](p Parser[I, O, E], min, max int) Parser[I, []O, E] {
	if min < 0 || (max >= 0 && max < min) {
		panic(fmt.Sprintf("combi: invalid repetition range [%d…%d]", min, max))
	}
	return New(func(input I) Result[I, []O, E] {
		var outs []O
		rest := input
		for max < 0 || len(outs) < max {
			r := p.run(rest)
			if !r.ok {
				if len(outs) < min {
					return Failure[I, []O](r.err)
				}
				break
			}
			outs = append(outs, r.out)
			zeroWidth := r.rest.Offset() == rest.Offset()
			rest = r.rest
			if zeroWidth && len(outs) >= min {
				zeroWidthCutoff(rest.Offset(), len(outs))
				break
			}
		}
		return Success[I, []O, E](outs, rest)
	})
}

// Separate parses zero or more occurrences of p, separated by sep. A trailing
// separator is consumed. The outputs of sep are dropped.
func Separate[I Positioned, O, OS, E any](p Parser[I, O, E], sep Parser[I, OS, E]) Parser[I, []O, E] {
	return New(func(input I) Result[I, []O, E] {
		var outs []O
		rest := input
		for {
			r := p.run(rest)
			if !r.ok {
				break
			}
			outs = append(outs, r.out)
			s := sep.run(r.rest)
			if !s.ok {
				rest = r.rest
				break
			}
			zeroWidth := s.rest.Offset() == rest.Offset()
			rest = s.rest
			if zeroWidth {
				zeroWidthCutoff(rest.Offset(), len(outs))
				break
			}
		}
		return Success[I, []O, E](outs, rest)
	})
}

func zeroWidthCutoff(at int, n int) {
	if gconf.GetBool("panic-on-zero-width-repeat") {
		panic(fmt.Sprintf(`combi: repetition does not consume input at position %d.

Configuration flag panic-on-zero-width-repeat is set to true. A parser inside
a repetition succeeded without consuming input, which would loop forever.`, at))
	}
	tracer().Debugf("repetition stopped after zero-width iteration #%d at %d", n, at)
}
