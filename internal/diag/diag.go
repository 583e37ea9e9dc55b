// Package diag collects the errors reported by every pass of a run.
package diag

import (
	"fmt"
	"io"

	"lox/internal/tokens"
)

// Kind separates the three disjoint error classes.
type Kind int

const (
	Syntax Kind = iota
	Static
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax"
	case Static:
		return "static"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported error.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line[%d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Collector stores the diagnostics of a run. Passes report into it instead
// of flipping a process wide flag.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{diagnostics: make([]Diagnostic, 0)}
}

// Error reports an error located only by line, as the lexer does
func (c *Collector) Error(kind Kind, line int, message string) {
	c.add(Diagnostic{Kind: kind, Line: line, Message: message})
}

// ErrorAt reports an error located at a token
func (c *Collector) ErrorAt(kind Kind, tk *tokens.Token, message string) {
	c.add(Diagnostic{Kind: kind, Line: tk.Line, Where: Where(tk), Message: message})
}

func (c *Collector) add(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// Where renders the location part of a diagnostic for a token
func Where(tk *tokens.Token) string {
	if tk.Type == tokens.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tk.Lexeme)
}

// Diagnostics returns everything reported so far
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// HasErrors is true if a syntax or static error was reported
func (c *Collector) HasErrors() bool {
	for _, d := range c.diagnostics {
		if d.Kind != Runtime {
			return true
		}
	}
	return false
}

// HadRuntimeError is true if a runtime error was reported
func (c *Collector) HadRuntimeError() bool {
	for _, d := range c.diagnostics {
		if d.Kind == Runtime {
			return true
		}
	}
	return false
}

// Reset forgets previous diagnostics, used between REPL lines
func (c *Collector) Reset() {
	c.diagnostics = c.diagnostics[:0]
}

// Print writes all diagnostics, one per line
func (c *Collector) Print(w io.Writer) {
	for _, d := range c.diagnostics {
		fmt.Fprintln(w, d)
	}
}
