package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvalLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.repl")
	defer teardown()
	//
	intp := &Intp{}
	if err := intp.SetMode("calc"); err != nil {
		t.Fatal(err)
	}
	input := "1+1\n\n   \n1 $ 2\n:json\n[1, 2]\n{\n"
	var lines []int
	err := intp.evalLines(strings.NewReader(input), func(lineno int, err error) {
		t.Logf("line %d: %v", lineno, err)
		lines = append(lines, lineno)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != 4 || lines[1] != 7 {
		t.Errorf("expected errors in lines 4 and 7, got %v", lines)
	}
	if intp.mode != "json" {
		t.Errorf("expected mode to be switched to json, is %q", intp.mode)
	}
}
