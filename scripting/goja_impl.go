package scripting

import (
	"context"

	"github.com/dop251/goja"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	return &GojaEngine{vm: goja.New()}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) RegisterCatalog(dom CatalogDOM) error {
	e.vm.Set("log", func(call goja.FunctionCall) goja.Value {
		msg := ""
		if len(call.Arguments) > 0 {
			msg = call.Arguments[0].String()
		}
		dom.Log(msg)
		return goja.Undefined()
	})

	e.vm.Set("listIcons", func(call goja.FunctionCall) goja.Value {
		return e.vm.ToValue(dom.Subjects())
	})

	e.vm.Set("getIcon", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		subject := call.Arguments[0].String()
		if _, err := dom.Params(subject); err != nil {
			return goja.Null()
		}

		obj := e.vm.NewObject()
		obj.Set("params", func(call goja.FunctionCall) goja.Value {
			params, err := dom.Params(subject)
			if err != nil {
				return goja.Null()
			}
			return e.vm.ToValue(params)
		})
		obj.Set("get", func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 1 {
				return goja.Undefined()
			}
			params, err := dom.Params(subject)
			if err != nil {
				return goja.Null()
			}
			return e.vm.ToValue(params[call.Arguments[0].String()])
		})
		obj.Set("set", func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(e.vm.ToValue("set(name, value) needs two arguments"))
			}
			name := call.Arguments[0].String()
			if err := dom.SetParam(subject, name, call.Arguments[1].Export()); err != nil {
				panic(e.vm.ToValue(err.Error()))
			}
			return goja.Undefined()
		})
		return obj
	})

	return nil
}
