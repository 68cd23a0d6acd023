package js

import (
	"sort"
	"time"

	"github.com/dop251/goja"
)

// timer is a pending setTimeout or setInterval callback.
type timer struct {
	id       int
	seq      int
	callback goja.Callable
	args     []goja.Value
	due      time.Duration
	interval time.Duration // zero for setTimeout
}

// timerQueue runs timers against a virtual clock, so a page script that
// schedules work renders the same way however fast the host is.
type timerQueue struct {
	now    time.Duration
	nextID int
	seq    int
	timers map[int]*timer
}

func newTimerQueue() *timerQueue {
	return &timerQueue{nextID: 1, timers: make(map[int]*timer)}
}

func (q *timerQueue) add(cb goja.Callable, delay, interval time.Duration, args []goja.Value) int {
	id := q.nextID
	q.nextID++
	q.seq++
	q.timers[id] = &timer{id: id, seq: q.seq, callback: cb, args: args, due: q.now + delay, interval: interval}
	return id
}

func (q *timerQueue) clear(id int) { delete(q.timers, id) }

func (q *timerQueue) pending() int { return len(q.timers) }

// next removes and returns the earliest timer, advancing the clock to it.
// Ties run in scheduling order.
func (q *timerQueue) next() *timer {
	if len(q.timers) == 0 {
		return nil
	}
	all := make([]*timer, 0, len(q.timers))
	for _, t := range q.timers {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].due != all[j].due {
			return all[i].due < all[j].due
		}
		return all[i].seq < all[j].seq
	})
	t := all[0]
	if t.due > q.now {
		q.now = t.due
	}
	if t.interval > 0 {
		q.seq++
		t.seq = q.seq
		t.due = q.now + t.interval
	} else {
		delete(q.timers, t.id)
	}
	return t
}

func (r *Runtime) setupTimers() {
	schedule := func(repeat bool) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 1 {
				return goja.Undefined()
			}
			cb, ok := goja.AssertFunction(call.Arguments[0])
			if !ok {
				return goja.Undefined()
			}
			delay := int64(0)
			if len(call.Arguments) > 1 {
				delay = max(call.Arguments[1].ToInteger(), 0)
			}
			var args []goja.Value
			if len(call.Arguments) > 2 {
				args = call.Arguments[2:]
			}
			d := time.Duration(delay) * time.Millisecond
			var interval time.Duration
			if repeat {
				// Intervals shorter than 4ms are clamped.
				interval = max(d, 4*time.Millisecond)
				d = interval
			}
			return r.vm.ToValue(r.timers.add(cb, d, interval, args))
		}
	}
	clearTimer := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			r.timers.clear(int(call.Arguments[0].ToInteger()))
		}
		return goja.Undefined()
	}

	r.vm.Set("setTimeout", schedule(false))
	r.vm.Set("setInterval", schedule(true))
	r.vm.Set("clearTimeout", clearTimer)
	r.vm.Set("clearInterval", clearTimer)
	r.vm.Set("requestAnimationFrame", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		cb, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return goja.Undefined()
		}
		ts := r.vm.ToValue(float64(r.timers.now+16*time.Millisecond) / float64(time.Millisecond))
		return r.vm.ToValue(r.timers.add(cb, 16*time.Millisecond, 0, []goja.Value{ts}))
	})
	r.vm.Set("cancelAnimationFrame", clearTimer)
	r.vm.Set("queueMicrotask", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			if cb, ok := goja.AssertFunction(call.Arguments[0]); ok {
				r.microtasks = append(r.microtasks, cb)
			}
		}
		return goja.Undefined()
	})
}
