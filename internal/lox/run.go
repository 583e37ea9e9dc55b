// Package lox chains the passes together. A Runner keeps one interpreter
// alive so that consecutive sources, like REPL lines, share their globals.
package lox

import (
	"errors"
	"io"
	"io/ioutil"

	"github.com/sirupsen/logrus"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/interp"
	"lox/internal/lexer"
	"lox/internal/parser"
	"lox/internal/resolver"
)

// Status is the outcome of running one source
type Status int

const (
	StatusOK Status = iota
	StatusStaticError
	StatusRuntimeError
)

// ExitCode maps a status to the process exit code of the CLI
func (s Status) ExitCode() int {
	switch s {
	case StatusStaticError:
		return 65
	case StatusRuntimeError:
		return 70
	default:
		return 0
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStaticError:
		return "static error"
	case StatusRuntimeError:
		return "runtime error"
	default:
		return "unknown"
	}
}

// Runner runs sources on a persistent interpreter
type Runner struct {
	interpreter *interp.Interpreter
	diags       *diag.Collector

	stderr io.Writer
	log    logrus.FieldLogger
}

// NewRunner creates a runner printing program output to stdout and
// diagnostics to stderr. log may be nil.
func NewRunner(stdout, stderr io.Writer, log logrus.FieldLogger) *Runner {
	if log == nil {
		discard := logrus.New()
		discard.Out = ioutil.Discard
		log = discard
	}
	return &Runner{
		interpreter: interp.New(stdout),
		diags:       diag.NewCollector(),
		stderr:      stderr,
		log:         log,
	}
}

// Parse scans and parses source without running it. ok is false if any
// syntax error was reported.
func (r *Runner) Parse(source string) (stmts []ast.Stmt, ok bool) {
	r.diags.Reset()
	stmts = r.parse(source)
	if r.diags.HasErrors() {
		r.diags.Print(r.stderr)
		return nil, false
	}
	return stmts, true
}

func (r *Runner) parse(source string) []ast.Stmt {
	toks := lexer.New(source, r.diags).Scan()
	r.log.WithFields(logrus.Fields{
		"phase":  "scan",
		"tokens": len(toks),
	}).Debug("source scanned")

	stmts := parser.New(toks, r.diags).Parse()
	r.log.WithFields(logrus.Fields{
		"phase":       "parse",
		"statements":  len(stmts),
		"diagnostics": len(r.diags.Diagnostics()),
	}).Debug("tokens parsed")
	return stmts
}

// Run scans, parses, resolves and interprets source. Any syntax or static
// error stops it before interpretation. Diagnostics are printed to the
// runner's error writer.
func (r *Runner) Run(source string) Status {
	r.diags.Reset()
	defer r.diags.Print(r.stderr)

	stmts := r.parse(source)
	if r.diags.HasErrors() {
		return StatusStaticError
	}

	locals := resolver.New(r.diags).Resolve(stmts)
	r.log.WithFields(logrus.Fields{
		"phase":       "resolve",
		"locals":      len(locals),
		"diagnostics": len(r.diags.Diagnostics()),
	}).Debug("statements resolved")
	if r.diags.HasErrors() {
		return StatusStaticError
	}

	r.interpreter.Resolve(locals)
	if err := r.interpreter.Interpret(stmts); err != nil {
		var runErr *interp.RuntimeError
		if !errors.As(err, &runErr) {
			panic(err)
		}
		r.diags.ErrorAt(diag.Runtime, runErr.Token, runErr.Message)
		r.log.WithFields(logrus.Fields{
			"phase": "interpret",
			"line":  runErr.Token.Line,
		}).Debug("runtime error")
		return StatusRuntimeError
	}
	r.log.WithField("phase", "interpret").Debug("statements executed")
	return StatusOK
}

// Diagnostics returns what the last Run or Parse reported
func (r *Runner) Diagnostics() []diag.Diagnostic {
	return r.diags.Diagnostics()
}
