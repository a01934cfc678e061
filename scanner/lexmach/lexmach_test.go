package lexmach

import (
	"testing"

	"github.com/npillmayer/combi"
	"github.com/npillmayer/combi/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 2, 3, 3}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMTokenParsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	input, err := LM.Tokens(`(x "s" 12)`)
	if err != nil {
		t.Fatal(err)
	}
	if input.Len() != 5 {
		t.Fatalf("Expected 5 tokens, have %d", input.Len())
	}
	num := combi.TokType(tokenIds["NUM"])
	atom := scanner.Kind(combi.TokType(tokenIds["ID"])).
		Or(scanner.Kind(combi.TokType(tokenIds["STRING"]))).
		Or(scanner.Kind(num))
	list := combi.Surround(combi.Many(atom), scanner.Lexeme("("), scanner.Lexeme(")"))
	r := list.Parse(input)
	if !r.OK() || len(r.Output()) != 3 || !r.Rest().IsEmpty() {
		t.Fatalf("Expected list of 3 atoms, got %v", r)
	}
	last := r.Output()[2]
	if last.TokType() != num || last.Value() != "12" {
		t.Errorf("Expected last atom to be number 12, is %v", last)
	}
	if last.Span() != (combi.Span{7, 9}) {
		t.Errorf("Expected number at bytes (7…9), is %v", last.Span())
	}
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"'",
		"(",
		")",
		"[",
		"]",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"t",
	}
	tokens = []string{
		"COMMENT",
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = scanner.Comment
	tokenIds["ID"] = scanner.Ident
	tokenIds["NUM"] = scanner.Int
	tokenIds["STRING"] = int(scanner.String)
	for i, tok := range tokens[4:] {
		tokenIds[tok] = i + 10
	}
}
