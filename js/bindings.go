package js

import (
	"sort"

	"github.com/chrisuehlinger/avita/dom"
	"github.com/chrisuehlinger/avita/handle"
	"github.com/chrisuehlinger/avita/router"
	"github.com/dop251/goja"
	"github.com/pkg/errors"
)

// handleKey is the property holding the Go handle behind a script object.
const handleKey = "__handle"

// boundListener pairs a script function with the dom listener made for it
// on one handle, so off() can find the listener again.
type boundListener struct {
	h        *handle.Handle
	fn       goja.Value
	event    string
	window   bool
	listener *dom.Listener
}

func (r *Runtime) throw(err error) {
	panic(r.vm.NewGoError(err))
}

func (r *Runtime) arg(call goja.FunctionCall, i int) goja.Value {
	if i < len(call.Arguments) {
		return call.Arguments[i]
	}
	return goja.Undefined()
}

func present(v goja.Value) bool {
	return v != nil && !goja.IsUndefined(v) && !goja.IsNull(v)
}

// handleOf returns the Go handle behind a script value, if any.
func (r *Runtime) handleOf(v goja.Value) (*handle.Handle, bool) {
	if !present(v) {
		return nil, false
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	inner := obj.Get(handleKey)
	if inner == nil {
		return nil, false
	}
	h, ok := inner.Export().(*handle.Handle)
	return h, ok
}

// children converts script arguments to declared children. Arrays are
// flattened; other non-handle values become text.
func (r *Runtime) children(args []goja.Value) []handle.Child {
	var out []handle.Child
	for _, a := range args {
		if !present(a) {
			continue
		}
		if h, ok := r.handleOf(a); ok {
			out = append(out, h)
			continue
		}
		if obj, ok := a.(*goja.Object); ok && obj.ClassName() == "Array" {
			var items []goja.Value
			for _, k := range obj.Keys() {
				items = append(items, obj.Get(k))
			}
			out = append(out, r.children(items)...)
			continue
		}
		out = append(out, handle.Text(a.String()))
	}
	return out
}

// props converts a plain script object into Props.
func (r *Runtime) props(v goja.Value) handle.Props {
	out := handle.Props{}
	if obj, ok := v.(*goja.Object); ok {
		for _, k := range obj.Keys() {
			out[k] = obj.Get(k).String()
		}
	}
	return out
}

func isObject(v goja.Value) bool {
	_, ok := v.(*goja.Object)
	return ok
}

func (r *Runtime) mapValue(m map[string]string) goja.Value {
	obj := r.vm.NewObject()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_ = obj.Set(k, m[k])
	}
	return obj
}

// wrap returns the script object for h, creating it once per handle.
func (r *Runtime) wrap(h *handle.Handle) goja.Value {
	if h == nil {
		return goja.Null()
	}
	if obj, ok := r.objects[h]; ok {
		return obj
	}
	obj := r.vm.NewObject()
	r.objects[h] = obj
	_ = obj.DefineDataProperty(handleKey, r.vm.ToValue(h), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
	_ = obj.DefineAccessorProperty("tag", r.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(h.Element().LocalName())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = obj.DefineAccessorProperty("length", r.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return r.vm.ToValue(h.Len())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	method := func(name string, fn func(goja.FunctionCall) goja.Value) { _ = obj.Set(name, fn) }

	accessor := func(get func() handle.Accessor) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			a := get()
			k, v := r.arg(call, 0), r.arg(call, 1)
			switch {
			case !present(k):
				return r.mapValue(a.All())
			case isObject(k):
				a.SetMany(r.props(k))
				return obj
			case !present(v):
				if val, ok := a.Get(k.String()); ok {
					return r.vm.ToValue(val)
				}
				return goja.Null()
			default:
				a.Set(k.String(), v.String())
				return obj
			}
		}
	}
	method("attr", accessor(h.Attr))
	method("data", accessor(h.Data))
	method("css", accessor(h.CSS))
	method("id", func(call goja.FunctionCall) goja.Value {
		if v := r.arg(call, 0); present(v) {
			h.SetID(v.String())
			return obj
		}
		return r.vm.ToValue(h.ID())
	})

	strs := func(call goja.FunctionCall) []string {
		out := make([]string, 0, len(call.Arguments))
		for _, a := range call.Arguments {
			out = append(out, a.String())
		}
		return out
	}
	method("class", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return r.vm.ToValue(h.Class())
		}
		h.AddClass(strs(call)...)
		return obj
	})
	method("addClass", func(call goja.FunctionCall) goja.Value { h.AddClass(strs(call)...); return obj })
	method("removeClass", func(call goja.FunctionCall) goja.Value { h.RemoveClass(strs(call)...); return obj })
	method("toggleClass", func(call goja.FunctionCall) goja.Value {
		if f := r.arg(call, 1); present(f) {
			h.ToggleClass(r.arg(call, 0).String(), f.ToBoolean())
		} else {
			h.ToggleClass(r.arg(call, 0).String())
		}
		return obj
	})
	method("hasClass", func(call goja.FunctionCall) goja.Value {
		return r.vm.ToValue(h.HasClass(r.arg(call, 0).String()))
	})

	method("text", func(call goja.FunctionCall) goja.Value {
		if v := r.arg(call, 0); present(v) {
			h.SetText(v.String())
			return obj
		}
		return r.vm.ToValue(h.Text())
	})
	method("html", func(call goja.FunctionCall) goja.Value {
		if v := r.arg(call, 0); present(v) {
			if err := h.SetHTML(v.String()); err != nil {
				r.throw(err)
			}
			return obj
		}
		return r.vm.ToValue(h.HTML())
	})
	method("append", func(call goja.FunctionCall) goja.Value { h.Append(r.children(call.Arguments)...); return obj })
	method("prepend", func(call goja.FunctionCall) goja.Value { h.Prepend(r.children(call.Arguments)...); return obj })
	method("children", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			h.SetChildren(r.children(call.Arguments)...)
			return obj
		}
		declared, ok := h.Children()
		if !ok {
			return goja.Null()
		}
		out := make([]any, len(declared))
		for i, c := range declared {
			switch c := c.(type) {
			case handle.Text:
				out[i] = string(c)
			case *handle.Handle:
				out[i] = r.wrap(c)
			}
		}
		return r.vm.ToValue(out)
	})
	method("empty", func(goja.FunctionCall) goja.Value { h.Empty(); return obj })
	method("remove", func(goja.FunctionCall) goja.Value { h.Remove(); return obj })
	method("show", func(goja.FunctionCall) goja.Value { h.Show(); return obj })
	method("hide", func(goja.FunctionCall) goja.Value { h.Hide(); return obj })
	method("click", func(goja.FunctionCall) goja.Value { h.Click(); return obj })
	method("find", func(call goja.FunctionCall) goja.Value {
		found, err := h.Find(r.arg(call, 0).String())
		if err != nil {
			r.throw(err)
		}
		return r.wrap(found)
	})

	method("on", func(call goja.FunctionCall) goja.Value {
		event := r.arg(call, 0).String()
		fn, ok := goja.AssertFunction(r.arg(call, 1))
		if !ok {
			r.throw(errors.Errorf("on(%q): listener is not a function", event))
		}
		l := dom.NewListener(func(ev *dom.Event) {
			if _, err := fn(obj, r.eventValue(ev)); err != nil {
				r.fail(errors.Wrapf(err, "%s listener", ev.Type))
			}
		})
		onWindow := r.arg(call, 2).ToBoolean()
		r.bound = append(r.bound, boundListener{h: h, fn: r.arg(call, 1), event: dom.NormalizeEventType(event), window: onWindow, listener: l})
		if onWindow {
			h.OnWindow(event, l)
		} else {
			h.On(event, l)
		}
		return obj
	})
	method("off", func(call goja.FunctionCall) goja.Value {
		event := dom.NormalizeEventType(r.arg(call, 0).String())
		fn := r.arg(call, 1)
		for i, b := range r.bound {
			if b.h == h && b.event == event && b.fn.SameAs(fn) {
				if b.window {
					h.OffWindow(event, b.listener)
				} else {
					h.Off(event, b.listener)
				}
				r.bound = append(r.bound[:i], r.bound[i+1:]...)
				break
			}
		}
		return obj
	})
	method("trigger", func(call goja.FunctionCall) goja.Value { h.Trigger(r.arg(call, 0).String()); return obj })

	scoped := func(one func(string, string) *handle.Handle, many func(handle.Props) *handle.Handle) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			if k := r.arg(call, 0); isObject(k) {
				many(r.props(k))
			} else {
				one(k.String(), r.arg(call, 1).String())
			}
			return obj
		}
	}
	method("hover", scoped(h.Hover, h.HoverAll))
	method("active", scoped(h.Active, h.ActiveAll))
	method("focus", scoped(h.Focus, h.FocusAll))
	method("sm", scoped(h.SM, h.SMAll))
	method("md", scoped(h.MD, h.MDAll))
	method("lg", scoped(h.LG, h.LGAll))
	method("xl", scoped(h.XL, h.XLAll))
	method("xxl", scoped(h.XXL, h.XXLAll))
	method("media", func(call goja.FunctionCall) goja.Value {
		query := r.arg(call, 0).String()
		if k := r.arg(call, 1); isObject(k) {
			h.MediaAll(query, r.props(k))
		} else {
			h.Media(query, k.String(), r.arg(call, 2).String())
		}
		return obj
	})
	return obj
}

func (r *Runtime) eventValue(ev *dom.Event) goja.Value {
	obj := r.vm.NewObject()
	_ = obj.Set("type", ev.Type)
	_ = obj.Set("preventDefault", func(goja.FunctionCall) goja.Value { ev.PreventDefault(); return goja.Undefined() })
	_ = obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value { ev.StopPropagation(); return goja.Undefined() })
	if ev.State != nil {
		_ = obj.Set("state", ev.State)
	}
	if ev.Detail != nil {
		_ = obj.Set("detail", ev.Detail)
	}
	return obj
}

// setupGlobals installs document, window helpers, h, tag functions,
// find/$, render and routing.
func (r *Runtime) setupGlobals() {
	vm := r.vm
	doc := func() *dom.Document { return r.win.Document() }

	document := vm.NewObject()
	_ = document.DefineAccessorProperty("title",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return vm.ToValue(doc().Title()) }),
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			doc().SetTitle(r.arg(call, 0).String())
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = document.DefineAccessorProperty("body",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return r.wrap(r.wrapElement(doc().Body())) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = document.DefineAccessorProperty("head",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return r.wrap(r.wrapElement(doc().Head())) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	vm.Set("document", document)

	window := vm.GlobalObject()
	vm.Set("window", window)
	_ = window.DefineAccessorProperty("innerWidth",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return vm.ToValue(r.win.InnerWidth()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = window.DefineAccessorProperty("innerHeight",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return vm.ToValue(r.win.InnerHeight()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	vm.Set("matchMedia", func(call goja.FunctionCall) goja.Value {
		res := r.win.MatchMedia(r.arg(call, 0).String())
		return vm.ToValue(map[string]any{"media": res.Media, "matches": res.Matches})
	})
	vm.Set("scrollTo", func(call goja.FunctionCall) goja.Value {
		handle.ScrollWindow(r.win, r.arg(call, 0).ToFloat(), r.arg(call, 1).ToFloat(), r.arg(call, 2).ToBoolean())
		return goja.Undefined()
	})

	// A leading plain object is taken as attributes: div({id: "app"}, "hi").
	create := func(tag string, args []goja.Value) goja.Value {
		var attrs handle.Props
		if len(args) > 0 {
			if obj, ok := args[0].(*goja.Object); ok && obj.ClassName() == "Object" {
				if _, isHandle := r.handleOf(obj); !isHandle {
					attrs, args = r.props(obj), args[1:]
				}
			}
		}
		h := handle.New(doc(), tag, r.children(args)...)
		if len(attrs) > 0 {
			h.Attr().SetMany(attrs)
		}
		return r.wrap(h)
	}
	vm.Set("h", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			r.throw(errors.New("h: missing tag name"))
		}
		return create(call.Arguments[0].String(), call.Arguments[1:])
	})
	for _, tag := range handle.TagNames {
		tag := tag
		vm.Set(tag, func(call goja.FunctionCall) goja.Value { return create(tag, call.Arguments) })
	}

	find := func(call goja.FunctionCall) goja.Value {
		found, err := handle.Find(doc(), r.arg(call, 0).String())
		if err != nil {
			r.throw(err)
		}
		return r.wrap(found)
	}
	vm.Set("find", find)
	vm.Set("$", find)

	vm.Set("render", func(call goja.FunctionCall) goja.Value {
		h, ok := r.handleOf(r.arg(call, 0))
		if !ok {
			r.throw(errors.New("render: argument is not an element handle"))
		}
		selector := r.opts.Root
		if s := r.arg(call, 1); present(s) {
			selector = s.String()
		}
		if err := handle.Render(h, selector, r.opts.BaseStyles); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	})

	vm.Set("route", func(call goja.FunctionCall) goja.Value {
		h, ok := r.handleOf(r.arg(call, 1))
		if !ok {
			r.throw(errors.Errorf("route(%q): second argument is not an element handle", r.arg(call, 0).String()))
		}
		r.routes().Handle(r.arg(call, 0).String(), h)
		return goja.Undefined()
	})
	vm.Set("notFound", func(call goja.FunctionCall) goja.Value {
		h, ok := r.handleOf(r.arg(call, 0))
		if !ok {
			r.throw(errors.New("notFound: argument is not an element handle"))
		}
		r.routes().NotFound(h)
		return goja.Undefined()
	})
	vm.Set("navigate", func(call goja.FunctionCall) goja.Value {
		if err := r.routes().Navigate(r.arg(call, 0).String()); err != nil {
			r.throw(err)
		}
		return goja.Undefined()
	})
	vm.Set("back", func(goja.FunctionCall) goja.Value {
		r.win.History().Back()
		return goja.Undefined()
	})
}

// wrapElement returns the handle cached for el, so the same element always
// maps to the same script object.
func (r *Runtime) wrapElement(el *dom.Element) *handle.Handle {
	for h := range r.objects {
		if h.Element() == el && h.Len() == 1 {
			return h
		}
	}
	return handle.Wrap(el)
}

// routes returns the page router, creating it on first use. The router
// follows popstate from then on.
func (r *Runtime) routes() *router.Router {
	if r.router == nil {
		rt, err := router.New(r.win, r.opts.Root)
		if err != nil {
			r.throw(err)
		}
		rt.Listen()
		r.router = rt
	}
	return r.router
}

// Router returns the page router, or nil when the script never routed.
func (r *Runtime) Router() *router.Router { return r.router }
