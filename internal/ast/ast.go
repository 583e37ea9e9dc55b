// Package ast declares the syntax tree produced by the parser. Nodes are
// compared by pointer identity, never structurally.
package ast

//go:generate go run ../../cmd/genast .

// Locals maps variable references and assignment targets to the number of
// scopes between the use and the declaring scope. Missing entries are globals.
type Locals map[Expr]int
