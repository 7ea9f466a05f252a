package lexer

import "testing"

func TestNextTokenOperators(t *testing.T) {
	input := `+ - * / .+ .- .* ./ = += -= *= /= == != < > <= >= ' , : ; ( ) [ ] { }`

	expected := []TokenType{
		PLUS, MINUS, STAR, SLASH, DOTPLUS, DOTMINUS, DOTSTAR, DOTSLASH,
		ASSIGN, ADDASSIGN, SUBASSIGN, MULASSIGN, DIVASSIGN,
		EQ, NOTEQ, LT, GT, LE, GE, QUOTE,
		COMMA, COLON, SEMI, LPAREN, RPAREN, LBRACK, RBRACK, LBRACE, RBRACE,
		EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: want %s, got %s (%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenKeywordsAndIdents(t *testing.T) {
	input := `if else for while break continue return print zeros eye ones foo A1`

	expected := []TokenType{
		IF, ELSE, FOR, WHILE, BREAK, CONTINUE, RETURN, PRINT, ZEROS, EYE, ONES,
		IDENT, IDENT, EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: want %s, got %s (%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	cases := []struct {
		src      string
		wantType TokenType
		wantLit  string
	}{
		{"123", INTNUM, "123"},
		{"3.14", FLOATNUM, "3.14"},
		{"2E10", FLOATNUM, "2E10"}, // an exponent suffix makes the literal a float even without a decimal point
		{"1.5E3", FLOATNUM, "1.5E3"},
	}

	for _, c := range cases {
		l := New(c.src)
		tok := l.NextToken()
		if tok.Type != c.wantType || tok.Literal != c.wantLit {
			t.Errorf("lexing %q: want (%s, %q), got (%s, %q)", c.src, c.wantType, c.wantLit, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenString(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "hello world" {
		t.Fatalf("want STRING %q, got %s %q", "hello world", tok.Type, tok.Literal)
	}
}

func TestNextTokenComment(t *testing.T) {
	l := New("x = 1 # trailing comment\ny = 2;")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{IDENT, ASSIGN, INTNUM, IDENT, ASSIGN, INTNUM, SEMI, EOF}
	if len(types) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: want %s, got %s", i, want[i], types[i])
		}
	}
}

func TestLinePositionAdvancesOnNewline(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	if first.Pos.Line != 1 {
		t.Fatalf("want line 1, got %d", first.Pos.Line)
	}
	second := l.NextToken()
	if second.Pos.Line != 2 {
		t.Fatalf("want line 2, got %d", second.Pos.Line)
	}
}
