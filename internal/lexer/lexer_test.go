package lexer

import (
	"testing"

	"lox/internal/diag"
	"lox/internal/tokens"
)

func scan(source string) ([]tokens.Token, *diag.Collector) {
	diags := diag.NewCollector()
	return New(source, diags).Scan(), diags
}

func checkTypes(t *testing.T, source string, expected ...tokens.TokenType) []tokens.Token {
	t.Helper()
	toks, diags := scan(source)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors scanning %q: %v", source, diags.Diagnostics())
	}
	expected = append(expected, tokens.EOF)
	if len(toks) != len(expected) {
		t.Fatalf("%q: expected %d tokens, found %d: %v", source, len(expected), len(toks), toks)
	}
	for i, tk := range toks {
		if tk.Type != expected[i] {
			t.Errorf("%q: token %d should be %s instead of %s", source, i, expected[i], tk.Type)
		}
	}
	return toks
}

func TestPunctuationAndOperators(t *testing.T) {
	checkTypes(t, "(){},.-+;*/",
		tokens.LEFT_PAREN, tokens.RIGHT_PAREN, tokens.LEFT_BRACE, tokens.RIGHT_BRACE,
		tokens.COMMA, tokens.DOT, tokens.MINUS, tokens.PLUS, tokens.SEMICOLON,
		tokens.STAR, tokens.SLASH,
	)
	checkTypes(t, "! != = == < <= > >=",
		tokens.BANG, tokens.BANG_EQUAL, tokens.EQUAL, tokens.EQUAL_EQUAL,
		tokens.LESS, tokens.LESS_EQUAL, tokens.GREATER, tokens.GREATER_EQUAL,
	)
	checkTypes(t, "!==", tokens.BANG_EQUAL, tokens.EQUAL)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := checkTypes(t, "var language = nil; fun _foo1() { return this; } classy",
		tokens.VAR, tokens.IDENTIFIER, tokens.EQUAL, tokens.NIL, tokens.SEMICOLON,
		tokens.FUN, tokens.IDENTIFIER, tokens.LEFT_PAREN, tokens.RIGHT_PAREN,
		tokens.LEFT_BRACE, tokens.RETURN, tokens.THIS, tokens.SEMICOLON, tokens.RIGHT_BRACE,
		tokens.IDENTIFIER,
	)
	if toks[1].Lexeme != "language" {
		t.Errorf("identifier lexeme should be 'language' instead of %q", toks[1].Lexeme)
	}
	if toks[6].Lexeme != "_foo1" {
		t.Errorf("identifier lexeme should be '_foo1' instead of %q", toks[6].Lexeme)
	}
}

func TestNumbers(t *testing.T) {
	toks := checkTypes(t, "123 4.5", tokens.NUMBER, tokens.NUMBER)
	if toks[0].Literal != 123.0 || toks[1].Literal != 4.5 {
		t.Errorf("wrong literals %v %v", toks[0].Literal, toks[1].Literal)
	}

	// trailing dot is not part of the number
	toks = checkTypes(t, "1.", tokens.NUMBER, tokens.DOT)
	if toks[0].Lexeme != "1" {
		t.Errorf("number lexeme should be '1' instead of %q", toks[0].Lexeme)
	}

	checkTypes(t, "1.foo", tokens.NUMBER, tokens.DOT, tokens.IDENTIFIER)
}

func TestStrings(t *testing.T) {
	toks := checkTypes(t, `"hello" "multi
line"`, tokens.STRING, tokens.STRING)
	if toks[0].Literal != "hello" {
		t.Errorf("literal should be hello instead of %v", toks[0].Literal)
	}
	if toks[1].Literal != "multi\nline" {
		t.Errorf("literal should span lines, found %q", toks[1].Literal)
	}
	if toks[2].Line != 2 {
		t.Errorf("EOF should be on line 2 instead of %d", toks[2].Line)
	}
}

func TestCommentsAndLines(t *testing.T) {
	toks := checkTypes(t, "// comment\nprint 1; // trailing\n\nx",
		tokens.PRINT, tokens.NUMBER, tokens.SEMICOLON, tokens.IDENTIFIER,
	)
	if toks[0].Line != 2 {
		t.Errorf("print should be on line 2 instead of %d", toks[0].Line)
	}
	if toks[3].Line != 4 {
		t.Errorf("x should be on line 4 instead of %d", toks[3].Line)
	}
}

func TestErrorsDoNotStopScanning(t *testing.T) {
	toks, diags := scan("a @ b\n# c")
	d := diags.Diagnostics()
	if len(d) != 2 {
		t.Fatalf("expected 2 errors, found %v", d)
	}
	if d[0].String() != "line[1] Error: Unexpected character." {
		t.Errorf("unexpected diagnostic %q", d[0])
	}
	if d[1].Line != 2 {
		t.Errorf("second error should be on line 2 instead of %d", d[1].Line)
	}
	// a, b, c, EOF
	if len(toks) != 4 {
		t.Errorf("expected 4 tokens, found %v", toks)
	}
}

func TestNonASCIICharacter(t *testing.T) {
	toks, diags := scan("a é b\n日本")
	d := diags.Diagnostics()
	if len(d) != 3 {
		t.Fatalf("expected one error per character, found %v", d)
	}
	if d[0].Line != 1 || d[1].Line != 2 || d[2].Line != 2 {
		t.Errorf("unexpected lines %v", d)
	}
	// a, b, EOF
	if len(toks) != 3 || toks[1].Lexeme != "b" {
		t.Errorf("expected a and b, found %v", toks)
	}

	toks, diags = scan("print \"héllo\";")
	if len(diags.Diagnostics()) != 0 || toks[1].Literal != "héllo" {
		t.Errorf("strings keep their bytes, found %v %v", toks, diags.Diagnostics())
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, diags := scan("print \"abc\ndef")
	d := diags.Diagnostics()
	if len(d) != 1 || d[0].Message != "Unterminated string." {
		t.Fatalf("expected unterminated string error, found %v", d)
	}
	if d[0].Line != 2 {
		t.Errorf("error should be on line 2 instead of %d", d[0].Line)
	}
	if len(toks) != 2 || toks[1].Type != tokens.EOF {
		t.Errorf("expected PRINT EOF, found %v", toks)
	}
}
