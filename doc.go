/*
Package combi is a parser combinator toolbox.

Parsers are built from small pieces which transform an input into a typed output
plus the remaining input, or into a typed failure. The error type of a parser is
under full control of the client. The library defines no error types of its own,
apart from the empty marker Void, which primitive parsers report on failure.

Package structure is as follows:

■ combi: The base package contains the Parser type, primitive parsers, the
combinator algebra and the Slice abstraction, which lets parsers operate on
different input representations (text, token arrays, …).

■ scanner: Package scanner provides tokenizers which turn text into token arrays,
to be consumed by token-level parsers. Sub-package lexmach adapts lexmachine.

■ examples: Packages json and calc demonstrate parsers for text and for tokens.

Building Parsers

A parser for a decimal digit followed by a literal may look like this:

    digit := combi.Rune().Filter(unicode.IsDigit, func(rune) combi.Void { return combi.Void{} })
    p := combi.Then(digit, combi.Literal("px"))
    r := p.Parse(combi.TextOf("7px"))
    // r.OK() == true, r.Output() == Pair{'7', "px"}, r.Rest() is empty

Parsers are lazy: combinators build new parsers without running anything.
A parser is run with Parse. Parsers hold no mutable state and may be shared
between goroutines, provided client supplied functions do not mutate shared
data either.

Errors

Combinators which have to manufacture an error value (Filter, FilterMap) receive
a function from the client. Heterogeneous error types of sub-parsers are unified
explicitly with MapErr before being combined; there is no automatic conversion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package combi

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'combi'.
func tracer() tracing.Trace {
	return tracing.Select("combi")
}
