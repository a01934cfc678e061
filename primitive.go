package combi

import "strings"

// Primitive parsers are built directly from input operations. They fail with
// error Void and may serve as starting points for composition:
//
//    letter := Rune().Filter(unicode.IsLetter, Reject[rune])
//

// Unit parses and consumes a single element of the input.
// It fails if the input is empty.
func Unit[S Slice[S, T], T any]() Parser[S, T, Void] {
	return New(func(input S) Result[S, T, Void] {
		if t, rest, ok := input.Head(); ok {
			return Success[S, T, Void](t, rest)
		}
		return Failure[S, T](Void{})
	})
}

// Just matches literal against a prefix of the input, element by element.
// On success the literal is the output. On failure nothing is consumed.
//
// Text literals are matched byte by byte.
func Just[S Slice[S, T], T comparable](literal S) Parser[S, S, Void] {
	if lit, ok := any(literal).(Text); ok {
		return any(justText(lit)).(Parser[S, S, Void])
	}
	return New(func(input S) Result[S, S, Void] {
		lit, rest := literal, input
		for {
			l, lrest, ok := lit.Head()
			if !ok {
				return Success[S, S, Void](literal, rest)
			}
			t, irest, ok := rest.Head()
			if !ok || t != l {
				return Failure[S, S](Void{})
			}
			lit, rest = lrest, irest
		}
	})
}

// justText matches a literal against the raw bytes of the input. Decoding
// runes would map every invalid UTF-8 byte to utf8.RuneError.
func justText(literal Text) Parser[Text, Text, Void] {
	lit := literal.String()
	return New(func(input Text) Result[Text, Text, Void] {
		if !strings.HasPrefix(input.String(), lit) {
			return Failure[Text, Text](Void{})
		}
		rest := Text{src: input.src, lo: input.lo + len(lit), hi: input.hi}
		return Success[Text, Text, Void](literal, rest)
	})
}

// End succeeds without consuming anything if the input is empty.
func End[S Slice[S, T], T any]() Parser[S, Void, Void] {
	return New(func(input S) Result[S, Void, Void] {
		if input.IsEmpty() {
			return Success[S, Void, Void](Void{}, input)
		}
		return Failure[S, Void](Void{})
	})
}

// Succeed always succeeds with output v, consuming nothing.
func Succeed[I, O, E any](v O) Parser[I, O, E] {
	return New(func(input I) Result[I, O, E] {
		return Success[I, O, E](v, input)
	})
}

// Identity parses nothing and always succeeds.
func Identity[I any]() Parser[I, Void, Void] {
	return Succeed[I, Void, Void](Void{})
}

// Fail always fails with err.
func Fail[I, O, E any](err E) Parser[I, O, E] {
	return New(func(input I) Result[I, O, E] {
		return Failure[I, O](err)
	})
}

// Satisfy consumes a single element if it matches pred.
func Satisfy[S Slice[S, T], T any](pred func(T) bool) Parser[S, T, Void] {
	return Unit[S, T]().Filter(pred, Reject[T])
}

// Recognize consumes one or more elements as long as they match pred.
// The output is the consumed part of the input.
func Recognize[S Slice[S, T], T any](pred func(T) bool) Parser[S, S, Void] {
	return Consumed[S, T](Many1(Satisfy[S, T](pred)))
}

// Reject is a rejection function for Filter, producing error Void.
func Reject[O any](O) Void {
	return Void{}
}

// --- Convenience primitives for text and items -----------------------------

// Rune is Unit for text input.
func Rune() Parser[Text, rune, Void] {
	return Unit[Text, rune]()
}

// Literal is Just for text input.
func Literal(s string) Parser[Text, Text, Void] {
	return Just[Text, rune](TextOf(s))
}

// Item is Unit for an input of items.
func Item[T any]() Parser[Items[T], T, Void] {
	return Unit[Items[T], T]()
}

// JustItems is Just for an input of items.
func JustItems[T comparable](items ...T) Parser[Items[T], Items[T], Void] {
	return Just[Items[T], T](ItemsOf(items...))
}
