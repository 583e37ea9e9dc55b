package interp

import "lox/internal/tokens"

// Environment is one scope of bindings. Children point at their parent,
// never the other way around, and closures share environments by pointer.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a scope nested in enclosing, which may be nil
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

// Define binds name in this scope, replacing any previous binding
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks name up through the whole chain
func (e *Environment) Get(name *tokens.Token) (interface{}, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, undefinedVariable(name)
}

// Assign changes an existing binding in the closest scope that has it
func (e *Environment) Assign(name *tokens.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return undefinedVariable(name)
}

// GetAt reads name from the scope exactly distance hops up
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.Ancestor(distance).values[name]
}

// AssignAt writes name in the scope exactly distance hops up
func (e *Environment) AssignAt(distance int, name *tokens.Token, value interface{}) {
	e.Ancestor(distance).values[name.Lexeme] = value
}

// Ancestor walks distance parent links
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}
