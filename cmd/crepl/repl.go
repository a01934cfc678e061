package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/combi/examples/calc"
	"github.com/npillmayer/combi/examples/json"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("C.REPL"), where users may enter either
// arithmetic expressions or JSON documents. C.REPL will parse the input with
// the example parsers of combi and print out the result.
// C.REPL is intended as a sandbox for experiments with parser combinators.
//
// Please refer to packages "examples/calc" and "examples/json".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	mode := flag.String("mode", "calc", "Input mode [calc|json]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to C.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	intp := &Intp{}
	if err := intp.SetMode(*mode); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(1)
		}
	}
	//
	// set up REPL
	repl, err := readline.New(intp.prompt())
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D; switch modes with :calc and :json")
	intp.loadInitFile(*initf) // init file name provided by flag
	intp.REPL()               // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	mode string
	repl *readline.Instance
}

// SetMode switches between input languages.
func (intp *Intp) SetMode(mode string) error {
	switch mode {
	case "calc", "json":
		intp.mode = mode
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if intp.repl != nil {
		intp.repl.SetPrompt(intp.prompt())
	}
	return nil
}

func (intp *Intp) prompt() string {
	return intp.mode + "> "
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	err = intp.evalLines(f, func(lineno int, err error) {
		tracer().Errorf("Error line %d: %v", lineno, err)
	})
	if err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// evalLines evaluates every non-blank line of r. Evaluation errors are passed
// to report, together with the line number (counting blank lines, too).
func (intp *Intp) evalLines(r io.Reader, report func(int, error)) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			report(lineno, err)
		}
	}
	return scanner.Err()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses a line of input in the current mode and prints the result.
// Lines starting with ':' are commands.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		cmd := strings.TrimPrefix(line, ":")
		if cmd == "quit" || cmd == "q" {
			return true, nil
		}
		if err := intp.SetMode(cmd); err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		pterm.Info.Println("mode is " + intp.mode)
		return false, nil
	}
	switch intp.mode {
	case "json":
		v, err := json.Parse(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		printValue(v)
	default:
		tree, err := calc.Parse(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		tracer().Debugf("tree = %s", tree)
		v, err := tree.Eval()
		if err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		pterm.Info.Println(fmt.Sprintf("%s = %d", tree, v))
	}
	return false, nil
}

// printValue displays a JSON value as a tree on a terminal.
func printValue(v any) {
	ll := leveledValue("", v, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledValue(label string, v any, ll pterm.LeveledList, level int) pterm.LeveledList {
	item := func(text string) pterm.LeveledList {
		return append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  label + text,
		})
	}
	switch x := v.(type) {
	case map[string]any:
		ll = item("{…}")
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ll = leveledValue(fmt.Sprintf("%q: ", k), x[k], ll, level+1)
		}
		return ll
	case []any:
		ll = item("[…]")
		for i, e := range x {
			ll = leveledValue(fmt.Sprintf("#%d: ", i), e, ll, level+1)
		}
		return ll
	case string:
		return item(fmt.Sprintf("%q", x))
	case nil:
		return item("null")
	}
	return item(fmt.Sprintf("%v", v))
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
