package parser

import (
	"testing"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/lexer"
)

func parse(source string) ([]ast.Stmt, *diag.Collector) {
	diags := diag.NewCollector()
	toks := lexer.New(source, diags).Scan()
	return New(toks, diags).Parse(), diags
}

func checkTree(t *testing.T, source string, expected string) {
	t.Helper()
	stmts, diags := parse(source)
	if len(diags.Diagnostics()) != 0 {
		t.Fatalf("unexpected errors parsing %q: %v", source, diags.Diagnostics())
	}
	if found := ast.Format(stmts); found != expected+"\n" {
		t.Errorf("Source:\n%s\nExpected:\n%s\nFound:\n%s", source, expected, found)
	}
}

func checkErrors(t *testing.T, source string, expected ...string) {
	t.Helper()
	_, diags := parse(source)
	found := diags.Diagnostics()
	if len(found) != len(expected) {
		t.Fatalf("Source:\n%s\nexpected %d errors, found %v", source, len(expected), found)
	}
	for i, d := range found {
		if d.Kind != diag.Syntax {
			t.Errorf("error %d should be a syntax error, found %s", i, d.Kind)
		}
		if d.String() != expected[i] {
			t.Errorf("Source:\n%s\nExpected: %s\nFound:    %s", source, expected[i], d)
		}
	}
}

func TestPrecedence(t *testing.T) {
	checkTree(t, "1 + 2 * 3 - 4 / 5;", "(; (- (+ 1 (* 2 3)) (/ 4 5)))")
	checkTree(t, "-a * !b;", "(; (* (- a) (! b)))")
	checkTree(t, "a == b < c;", "(; (== a (< b c)))")
	checkTree(t, "a or b and c;", "(; (or a (and b c)))")
	checkTree(t, "(1 + 2) * 3;", "(; (* (group (+ 1 2)) 3))")
	checkTree(t, "a = b = c;", "(; (= a (= b c)))")
	checkTree(t, "1 - 2 - 3;", "(; (- (- 1 2) 3))")
}

func TestLiterals(t *testing.T) {
	checkTree(t, `print nil; print true; print "s"; print 1.5;`,
		"(print nil)\n(print true)\n(print \"s\")\n(print 1.5)")
}

func TestCallsAndProperties(t *testing.T) {
	checkTree(t, "f(1, 2)(3);", "(; (call (call f 1 2) 3))")
	checkTree(t, "a.b.c(d);", "(; (call (.c (.b a)) d))")
	checkTree(t, "a.b = 1;", "(; (=b a 1))")
	checkTree(t, "super.m(this);", "(; (call (super m) this))")
}

func TestStatements(t *testing.T) {
	checkTree(t, "var a; var b = 1;", "(var a)\n(var b 1)")
	checkTree(t, "{ var a = 1; print a; }", "(block (var a 1) (print a))")
	checkTree(t, "if (a) print 1; else print 2;", "(if-else a (print 1) (print 2))")
	checkTree(t, "if (a) if (b) print 1; else print 2;", "(if a (if-else b (print 1) (print 2)))")
	checkTree(t, "while (a) a = a - 1;", "(while a (; (= a (- a 1))))")
	checkTree(t, "fun f(a, b) { return a + b; }", "(fun f (a b) (return (+ a b)))")
	checkTree(t, "fun f() { return; }", "(fun f () (return))")
	checkTree(t, "class B < A { init(x) { this.x = x; } get() { return this.x; } }",
		"(class B < A (fun init (x) (; (=x this x))) (fun get () (return (.x this))))")
}

func TestForDesugaring(t *testing.T) {
	checkTree(t, "for (var i = 0; i < 3; i = i + 1) print i;",
		"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))")
	checkTree(t, "for (;;) print 1;", "(while true (print 1))")
	checkTree(t, "for (i = 0; i < 1;) print i;",
		"(block (; (= i 0)) (while (< i 1) (print i)))")
}

func TestSyntaxErrors(t *testing.T) {
	checkErrors(t, "(1 + ;", "line[1] Error at ';': Expect expression.")
	checkErrors(t, "print 1", "line[1] Error at end: Expect ';' after value.")
	checkErrors(t, "1 = 2;", "line[1] Error at '=': Invalid assignment target.")
	checkErrors(t, "var = 1;\nvar b = ;\nprint b;",
		"line[1] Error at '=': Expect variable name.",
		"line[2] Error at ';': Expect expression.",
	)
	checkErrors(t, "class A { 1 }", "line[1] Error at '1': Expect method name.")
	checkErrors(t, "fun f(a b) {}", "line[1] Error at 'b': Expect ')' after parameters.")
	checkErrors(t, "{ print 1;", "line[1] Error at end: Expect '}' after block.")
	checkErrors(t, "super;", "line[1] Error at ';': Expect '.' after 'super'.")
}

func TestRecoveryKeepsGoodStatements(t *testing.T) {
	stmts, diags := parse("print ;\nprint 2;\nvar x = (;\nprint 3;")
	if len(diags.Diagnostics()) != 2 {
		t.Fatalf("expected 2 errors, found %v", diags.Diagnostics())
	}
	if found := ast.Format(stmts); found != "(print 2)\n(print 3)\n" {
		t.Errorf("unexpected statements after recovery:\n%s", found)
	}
}

func TestTooManyArguments(t *testing.T) {
	source := "f("
	for i := 0; i < 256; i++ {
		if i != 0 {
			source += ", "
		}
		source += "1"
	}
	source += ");"
	checkErrors(t, source, "line[1] Error at '1': Can't have more than 255 arguments.")
}
