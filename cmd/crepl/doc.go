/*
Package crepl/main provides an interactive command line tool (C.REPL)
for the example parsers of combi. Lines are parsed either as integer
arithmetic or as JSON; commands ":calc" and ":json" switch between the
two. C.REPL serves as a sandbox for experiments with parser combinators.

    crepl -mode json -trace Debug '[1, {"a": null}]'

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'combi.repl'
func tracer() tracing.Trace {
	return tracing.Select("combi.repl")
}
