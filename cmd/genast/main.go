// Command genast writes the expression and statement node declarations of
// package ast from the grammar description below.
package main

import (
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var exprTypes = []string{
	"Assign: Name *tokens.Token, Value Expr",
	"Binary: Left Expr, Operator *tokens.Token, Right Expr",
	"Call: Callee Expr, Paren *tokens.Token, Arguments []Expr",
	"Get: Object Expr, Name *tokens.Token",
	"Grouping: Expression Expr",
	"Literal: Value interface{}",
	"Logical: Left Expr, Operator *tokens.Token, Right Expr",
	"Set: Object Expr, Name *tokens.Token, Value Expr",
	"Super: Keyword *tokens.Token, Method *tokens.Token",
	"This: Keyword *tokens.Token",
	"Unary: Operator *tokens.Token, Right Expr",
	"Variable: Name *tokens.Token",
}

var stmtTypes = []string{
	"Block: Stmts []Stmt",
	"Class: Name *tokens.Token, Superclass *VariableExpr, Methods []*FunctionStmt",
	"Expression: Expression Expr",
	"Function: Name *tokens.Token, Params []*tokens.Token, Body []Stmt",
	"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
	"Print: Expression Expr",
	"Return: Keyword *tokens.Token, Value Expr",
	"Var: Name *tokens.Token, Initializer Expr",
	"While: Condition Expr, Body Stmt",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: genast <output directory>")
		os.Exit(64)
	}
	dir := os.Args[1]

	if err := writeAst(dir, "Expr", "an expression", exprTypes); err != nil {
		log.Fatal(err)
	}
	if err := writeAst(dir, "Stmt", "a statement", stmtTypes); err != nil {
		log.Fatal(err)
	}
}

func writeAst(dir, baseName, description string, types []string) error {
	src, err := format.Source([]byte(generateAst(baseName, description, types)))
	if err != nil {
		return fmt.Errorf("formatting %s: %w", baseName, err)
	}
	path := filepath.Join(dir, strings.ToLower(baseName)+".go")
	return ioutil.WriteFile(path, src, 0o644)
}

func generateAst(baseName, description string, types []string) string {
	marker := strings.ToLower(baseName) + "Node"

	out := "// Code generated by genast; DO NOT EDIT.\n\n"
	out += "package ast\n\n"
	out += "import \"lox/internal/tokens\"\n\n"

	// Start sealed interface
	out += fmt.Sprintf("// %s is implemented by every node that is %s.\n", baseName, description)
	out += "//\n//gosumtype:decl " + baseName + "\n"
	out += "type " + baseName + " interface {\n"
	out += "\t" + marker + "()\n"
	out += "}\n\n"
	// End sealed interface

	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		name := strings.TrimSpace(typeDef[0])
		fields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, marker, name, fields)
	}

	return out
}

func generateType(baseName, marker, name, fields string) string {
	structName := name + baseName

	// Start Structure Definition
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	out += "func (*" + structName + ") " + marker + "() {}\n\n"

	return out
}
