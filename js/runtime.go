// Package js runs page scripts with goja. Scripts build pages with the
// handle API: h("div", ...), tag functions, render, routes and navigation.
package js

import (
	"fmt"
	"strings"
	"sync"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/chrisuehlinger/avita/handle"
	"github.com/chrisuehlinger/avita/router"
	"github.com/dop251/goja"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MaxTasks bounds how many timer callbacks RunUntilIdle runs, so a page
// with a free-running setInterval still finishes.
const MaxTasks = 10000

// Options configures a Runtime.
type Options struct {
	// Root is the selector render and the router use; "#root" when empty.
	Root string
	// BaseStyles makes render inject the reset stylesheet.
	BaseStyles bool
}

// Runtime is a goja VM bound to a window.
type Runtime struct {
	mu   sync.Mutex
	vm   *goja.Runtime
	win  *dom.Window
	opts Options

	router  *router.Router
	objects map[*handle.Handle]*goja.Object
	bound   []boundListener

	timers     *timerQueue
	microtasks []goja.Callable

	errors  []error
	onError func(error)
}

// NewRuntime returns a runtime whose globals act on win.
func NewRuntime(win *dom.Window, opts Options) *Runtime {
	if opts.Root == "" {
		opts.Root = handle.DefaultRoot
	}
	r := &Runtime{
		vm:      goja.New(),
		win:     win,
		opts:    opts,
		objects: make(map[*handle.Handle]*goja.Object),
		timers:  newTimerQueue(),
	}
	r.setupConsole()
	r.setupTimers()
	r.setupGlobals()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime { return r.vm }

// Window returns the window scripts act on.
func (r *Runtime) Window() *dom.Window { return r.win }

// SetOnError sets a callback for script errors.
func (r *Runtime) SetOnError(fn func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = fn
}

func (r *Runtime) fail(err error) error {
	r.errors = append(r.errors, err)
	logrus.WithError(err).Error("script error")
	if r.onError != nil {
		r.onError(err)
	}
	return err
}

// Execute runs code and returns its completion value.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() {
		if p := recover(); p != nil {
			err = r.fail(errors.Errorf("script execution panic: %v", p))
		}
	}()
	result, err = r.vm.RunString(code)
	if err != nil {
		return nil, r.fail(errors.Wrap(err, "execute"))
	}
	r.drainMicrotasks()
	return result, nil
}

// ExecuteScript compiles and runs code under name, which appears in stack
// traces.
func (r *Runtime) ExecuteScript(code, name string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() {
		if p := recover(); p != nil {
			err = r.fail(errors.Errorf("script panic in %s: %v", name, p))
		}
	}()
	program, err := goja.Compile(name, code, false)
	if err != nil {
		return r.fail(errors.Wrapf(err, "compile %s", name))
	}
	if _, err = r.vm.RunProgram(program); err != nil {
		return r.fail(errors.Wrapf(err, "run %s", name))
	}
	r.drainMicrotasks()
	return nil
}

func (r *Runtime) drainMicrotasks() {
	for len(r.microtasks) > 0 {
		cb := r.microtasks[0]
		r.microtasks = r.microtasks[1:]
		if _, err := cb(goja.Undefined()); err != nil {
			r.fail(errors.Wrap(err, "microtask"))
		}
	}
}

// RunUntilIdle runs pending timers in due order on the virtual clock until
// none are left or MaxTasks callbacks ran. It returns the number run.
func (r *Runtime) RunUntilIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for ; n < MaxTasks; n++ {
		r.drainMicrotasks()
		t := r.timers.next()
		if t == nil {
			break
		}
		if _, err := t.callback(goja.Undefined(), t.args...); err != nil {
			r.fail(errors.Wrap(err, "timer"))
		}
	}
	r.drainMicrotasks()
	return n
}

// PendingTimers returns the number of scheduled timers.
func (r *Runtime) PendingTimers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timers.pending()
}

// Errors returns every error scripts raised.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errors...)
}

// ClearErrors forgets recorded errors.
func (r *Runtime) ClearErrors() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = r.errors[:0]
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a.Export())
		if goja.IsUndefined(a) {
			parts[i] = "undefined"
		} else if goja.IsNull(a) {
			parts[i] = "null"
		}
	}
	return strings.Join(parts, " ")
}

// setupConsole routes console output to the logger.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	log := func(level logrus.Level) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			logrus.WithField("source", "console").Log(level, formatArgs(call.Arguments))
			return goja.Undefined()
		}
	}
	console.Set("log", log(logrus.InfoLevel))
	console.Set("info", log(logrus.InfoLevel))
	console.Set("debug", log(logrus.DebugLevel))
	console.Set("warn", log(logrus.WarnLevel))
	console.Set("error", log(logrus.ErrorLevel))
	console.Set("assert", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 || !call.Arguments[0].ToBoolean() {
			msg := "Assertion failed"
			if len(call.Arguments) > 1 {
				msg += ": " + formatArgs(call.Arguments[1:])
			}
			logrus.WithField("source", "console").Error(msg)
		}
		return goja.Undefined()
	})
	r.vm.Set("console", console)
}
