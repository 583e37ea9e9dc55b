package interp

import "time"

func defineGlobals(e *Environment, now func() time.Time) {
	e.Define("clock", &NativeFunction{
		arityValue: 0,
		callFn: func(in *Interpreter, arguments []interface{}) (interface{}, error) {
			return float64(now().UnixNano()) / float64(time.Second), nil
		},
	})
}
