package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders statements in parenthesised prefix form, one per line
func Format(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(FormatStmt(s))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatStmt renders a single statement
func FormatStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *BlockStmt:
		out := "(block"
		for _, st := range s.Stmts {
			out += " " + FormatStmt(st)
		}
		return out + ")"
	case *ClassStmt:
		out := "(class " + s.Name.Lexeme
		if s.Superclass != nil {
			out += " < " + s.Superclass.Name.Lexeme
		}
		for _, m := range s.Methods {
			out += " " + FormatStmt(m)
		}
		return out + ")"
	case *ExpressionStmt:
		return parenthesize(";", s.Expression)
	case *FunctionStmt:
		out := "(fun " + s.Name.Lexeme + " ("
		for i, param := range s.Params {
			if i != 0 {
				out += " "
			}
			out += param.Lexeme
		}
		out += ")"
		for _, st := range s.Body {
			out += " " + FormatStmt(st)
		}
		return out + ")"
	case *IfStmt:
		if s.ElseBranch == nil {
			return fmt.Sprintf("(if %s %s)", FormatExpr(s.Condition), FormatStmt(s.ThenBranch))
		}
		return fmt.Sprintf("(if-else %s %s %s)", FormatExpr(s.Condition), FormatStmt(s.ThenBranch), FormatStmt(s.ElseBranch))
	case *PrintStmt:
		return parenthesize("print", s.Expression)
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return parenthesize("return", s.Value)
	case *VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return parenthesize("var "+s.Name.Lexeme, s.Initializer)
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)", FormatExpr(s.Condition), FormatStmt(s.Body))
	default:
		panic(fmt.Sprintf("ast: unexpected statement %T", stmt))
	}
}

// FormatExpr renders a single expression
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *AssignExpr:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *CallExpr:
		return parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
	case *GetExpr:
		return parenthesize("."+e.Name.Lexeme, e.Object)
	case *GroupingExpr:
		return parenthesize("group", e.Expression)
	case *LiteralExpr:
		return literal(e.Value)
	case *LogicalExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *SetExpr:
		return parenthesize("="+e.Name.Lexeme, e.Object, e.Value)
	case *SuperExpr:
		return "(super " + e.Method.Lexeme + ")"
	case *ThisExpr:
		return "this"
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *VariableExpr:
		return e.Name.Lexeme
	default:
		panic(fmt.Sprintf("ast: unexpected expression %T", expr))
	}
}

func parenthesize(name string, exprs ...Expr) string {
	out := "(" + name
	for _, e := range exprs {
		out += " " + FormatExpr(e)
	}
	return out + ")"
}

func literal(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
