// Package interp evaluates resolved syntax trees.
package interp

import (
	"fmt"
	"io"
	"time"

	"lox/internal/ast"
	"lox/internal/tokens"
)

// maxCallDepth bounds nested calls so runaway recursion becomes a runtime
// error instead of exhausting the Go stack
const maxCallDepth = 10000

// returnValue is how a return statement finishes. It travels back up
// through execute until a function call consumes it.
type returnValue struct {
	value interface{}
}

// Interpreter holds the runtime state shared by every Interpret call:
// the globals and the scope distances of every resolved program.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  ast.Locals
	depth   int

	out io.Writer
}

// New creates an interpreter that prints to out
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	defineGlobals(globals, time.Now)
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(ast.Locals),
		out:     out,
	}
}

// Resolve adds the scope distances computed by the resolver. Distances
// from earlier programs are kept, closures created by them still need them.
func (in *Interpreter) Resolve(locals ast.Locals) {
	for expr, distance := range locals {
		in.locals[expr] = distance
	}
}

// Interpret runs stmts in order and stops at the first runtime error,
// which is returned as a *RuntimeError. Effects of the statements that
// already ran are kept.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	in.env = in.globals
	for _, s := range stmts {
		if _, err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) (*returnValue, error) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewEnvironment(in.env))
	case *ast.ClassStmt:
		return nil, in.executeClass(s)
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return nil, err
	case *ast.FunctionStmt:
		in.env.Define(s.Name.Lexeme, &Function{
			declaration: s,
			closure:     in.env,
		})
		return nil, nil
	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return in.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil, nil
	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.out, Stringify(value))
		return nil, nil
	case *ast.ReturnStmt:
		var value interface{}
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return nil, err
			}
			value = v
		}
		return &returnValue{value: value}, nil
	case *ast.VarStmt:
		var value interface{}
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return nil, err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil, nil
	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return nil, err
			}
			if !truthy(cond) {
				return nil, nil
			}
			ret, err := in.execute(s.Body)
			if ret != nil || err != nil {
				return ret, err
			}
		}
	default:
		panic(fmt.Sprintf("interp: unexpected statement %T", stmt))
	}
}

// executeBlock runs stmts inside env and puts the previous environment
// back however the block ends
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (*returnValue, error) {
	previous := in.env
	defer func() {
		in.env = previous
	}()
	in.env = env
	for _, s := range stmts {
		ret, err := in.execute(s)
		if ret != nil || err != nil {
			return ret, err
		}
	}
	return nil, nil
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	// defined first so methods can refer to their own class
	in.env.Define(s.Name.Lexeme, nil)

	var superclass *Class
	if s.Superclass != nil {
		value, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		class, ok := value.(*Class)
		if !ok {
			return runtimeErr(s.Superclass.Name, errSuperclassNotClass)
		}
		superclass = class
	}

	closure := in.env
	if superclass != nil {
		closure = NewEnvironment(in.env)
		closure.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &Function{
			declaration:   method,
			closure:       closure,
			isInitializer: method.Name.Lexeme == "init",
		}
	}

	return in.env.Assign(s.Name, &Class{
		name:       s.Name.Lexeme,
		superclass: superclass,
		methods:    methods,
	})
}

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.env.AssignAt(distance, e.Name, value)
			return value, nil
		}
		return value, in.globals.Assign(e.Name, value)
	case *ast.BinaryExpr:
		return in.evaluateBinary(e)
	case *ast.CallExpr:
		return in.evaluateCall(e)
	case *ast.GetExpr:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, runtimeErr(e.Name, errOnlyInstanceProps)
		}
		return instance.Get(e.Name)
	case *ast.GroupingExpr:
		return in.evaluate(e.Expression)
	case *ast.LiteralExpr:
		return e.Value, nil
	case *ast.LogicalExpr:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == tokens.OR {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)
	case *ast.SetExpr:
		object, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, runtimeErr(e.Name, errOnlyInstanceFields)
		}
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name, value)
		return value, nil
	case *ast.SuperExpr:
		distance := in.locals[e]
		superclass := in.env.GetAt(distance, "super").(*Class)
		// 'this' is always one scope inside 'super'
		object := in.env.GetAt(distance-1, "this").(*Instance)
		method := superclass.findMethod(e.Method.Lexeme)
		if method == nil {
			return nil, runtimeErrf(e.Method, errUndefinedProp, e.Method.Lexeme)
		}
		return method.bind(object), nil
	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.UnaryExpr:
		return in.evaluateUnary(e)
	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)
	default:
		panic(fmt.Sprintf("interp: unexpected expression %T", expr))
	}
}

func (in *Interpreter) lookUpVariable(name *tokens.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evaluateUnary(e *ast.UnaryExpr) (interface{}, error) {
	value, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case tokens.BANG:
		return !truthy(value), nil
	case tokens.MINUS:
		valueNum, ok := value.(float64)
		if !ok {
			return nil, runtimeErr(e.Operator, errOnlyNumber)
		}
		return -valueNum, nil
	default:
		return nil, runtimeErrf(e.Operator, errUnexpectedOperation, e.Operator.Lexeme)
	}
}

func (in *Interpreter) evaluateBinary(e *ast.BinaryExpr) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case tokens.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case tokens.BANG_EQUAL:
		return !isEqual(left, right), nil
	case tokens.PLUS:
		if leftNum, ok := left.(float64); ok {
			if rightNum, ok := right.(float64); ok {
				return leftNum + rightNum, nil
			}
		}
		if leftStr, ok := left.(string); ok {
			if rightStr, ok := right.(string); ok {
				return leftStr + rightStr, nil
			}
		}
		return nil, runtimeErr(e.Operator, errNumbersOrStrings)
	}

	leftNum, rightNum, err := getNums(e.Operator, left, right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case tokens.GREATER:
		return leftNum > rightNum, nil
	case tokens.GREATER_EQUAL:
		return leftNum >= rightNum, nil
	case tokens.LESS:
		return leftNum < rightNum, nil
	case tokens.LESS_EQUAL:
		return leftNum <= rightNum, nil
	case tokens.MINUS:
		return leftNum - rightNum, nil
	case tokens.SLASH:
		return leftNum / rightNum, nil
	case tokens.STAR:
		return leftNum * rightNum, nil
	default:
		return nil, runtimeErrf(e.Operator, errUnexpectedOperation, e.Operator.Lexeme)
	}
}

func getNums(operator *tokens.Token, left, right interface{}) (float64, float64, error) {
	leftNum, ok := left.(float64)
	if !ok {
		return 0, 0, runtimeErr(operator, errOnlyNumbers)
	}
	rightNum, ok := right.(float64)
	if !ok {
		return 0, 0, runtimeErr(operator, errOnlyNumbers)
	}
	return leftNum, rightNum, nil
}

func (in *Interpreter) evaluateCall(e *ast.CallExpr) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	arguments := make([]interface{}, len(e.Arguments))
	for i := range e.Arguments {
		if arguments[i], err = in.evaluate(e.Arguments[i]); err != nil {
			return nil, err
		}
	}

	fn, isFn := callee.(Callable)
	if !isFn {
		return nil, runtimeErr(e.Paren, errOnlyFunction)
	}

	if len(arguments) != fn.Arity() {
		return nil, runtimeErrf(e.Paren, errInvalidArguments, fn.Arity(), len(arguments))
	}

	if in.depth >= maxCallDepth {
		return nil, runtimeErr(e.Paren, errStackOverflow)
	}
	in.depth++
	defer func() { in.depth-- }()

	return fn.Call(in, arguments)
}
