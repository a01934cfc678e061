package scanner

import "github.com/npillmayer/combi"

// AnyToken consumes a single token of any kind.
func AnyToken() combi.Parser[Input, combi.Token, combi.Void] {
	return combi.Item[combi.Token]()
}

// Kind consumes a single token of type k.
func Kind(k combi.TokType) combi.Parser[Input, combi.Token, combi.Void] {
	return AnyToken().Filter(func(t combi.Token) bool {
		return t.TokType() == k
	}, combi.Reject[combi.Token])
}

// Lexeme consumes a single token which has been scanned from string s.
func Lexeme(s string) combi.Parser[Input, combi.Token, combi.Void] {
	return AnyToken().Filter(func(t combi.Token) bool {
		return t.Lexeme() == s
	}, combi.Reject[combi.Token])
}

// Lexemes maps token outputs to their lexemes.
func Lexemes[E any](p combi.Parser[Input, []combi.Token, E]) combi.Parser[Input, []string, E] {
	return combi.Map(p, func(toks []combi.Token) []string {
		s := make([]string, len(toks))
		for i, t := range toks {
			s[i] = t.Lexeme()
		}
		return s
	})
}
