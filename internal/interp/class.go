package interp

import "lox/internal/tokens"

// Class is both a method table and the constructor of its instances
type Class struct {
	name       string
	superclass *Class
	methods    map[string]*Function
}

// findMethod looks in the class and then up the superclass chain
func (c *Class) findMethod(name string) *Function {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, arguments []interface{}) (interface{}, error) {
	obj := &Instance{
		class:  c,
		fields: make(map[string]interface{}),
	}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(obj).Call(in, arguments); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (c *Class) String() string {
	return c.name
}

// Instance is an open record of fields attached to a class
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

// Get returns a field, or else a method bound to the instance
func (o *Instance) Get(name *tokens.Token) (interface{}, error) {
	if val, ok := o.fields[name.Lexeme]; ok {
		return val, nil
	}
	if method := o.class.findMethod(name.Lexeme); method != nil {
		return method.bind(o), nil
	}
	return nil, runtimeErrf(name, errUndefinedProp, name.Lexeme)
}

func (o *Instance) Set(name *tokens.Token, value interface{}) {
	o.fields[name.Lexeme] = value
}

func (o *Instance) String() string {
	return o.class.name + " instance"
}
