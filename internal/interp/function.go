package interp

import (
	"fmt"

	"lox/internal/ast"
)

// Callable is any value that can appear before a call's parentheses
type Callable interface {
	Arity() int
	Call(in *Interpreter, arguments []interface{}) (interface{}, error)
}

// NativeFunction is a function provided by the host
type NativeFunction struct {
	arityValue int
	callFn     func(in *Interpreter, arguments []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int {
	return n.arityValue
}

func (n *NativeFunction) Call(in *Interpreter, arguments []interface{}) (interface{}, error) {
	return n.callFn(in, arguments)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}

// Function is a user declared function or method together with the
// environment it was declared in
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(in *Interpreter, arguments []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	ret, err := in.executeBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}

	// init always hands back the instance, even on a bare return
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if ret != nil {
		return ret.value, nil
	}
	return nil, nil
}

// bind returns a copy of the method whose closure has 'this' one scope
// inside the original closure
func (f *Function) bind(object *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", object)
	return &Function{
		declaration:   f.declaration,
		closure:       env,
		isInitializer: f.isInitializer,
	}
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
