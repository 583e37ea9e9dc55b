package interp

import (
	"fmt"

	"lox/internal/tokens"
)

// RuntimeError aborts the statement list being interpreted. Token locates
// the failure for the report.
type RuntimeError struct {
	Token   *tokens.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Token.Line, e.Message)
}

func runtimeErr(tk *tokens.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tk, Message: message}
}

func runtimeErrf(tk *tokens.Token, format string, args ...interface{}) *RuntimeError {
	return runtimeErr(tk, fmt.Sprintf(format, args...))
}

func undefinedVariable(name *tokens.Token) *RuntimeError {
	return runtimeErrf(name, "Undefined variable '%s'.", name.Lexeme)
}

// Runtime errors
const (
	errOnlyNumber          = "Operand must be a number."
	errOnlyNumbers         = "Operands must be numbers."
	errNumbersOrStrings    = "Operands must be two numbers or two strings."
	errOnlyFunction        = "Can only call functions and classes."
	errInvalidArguments    = "Expected %d arguments but got %d."
	errOnlyInstanceProps   = "Only instances have properties."
	errOnlyInstanceFields  = "Only instances have fields."
	errUndefinedProp       = "Undefined property '%s'."
	errSuperclassNotClass  = "Superclass must be a class."
	errUnexpectedOperation = "Unexpected operator '%s'."
	errStackOverflow       = "Stack overflow."
)
