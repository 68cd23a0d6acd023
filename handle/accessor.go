package handle

import (
	"sort"

	"github.com/chrisuehlinger/avita/css"
	"github.com/chrisuehlinger/avita/dom"
	"github.com/sirupsen/logrus"
)

// Props maps property or attribute names to values.
type Props map[string]string

// sortedKeys returns the keys of p in sorted order so generated output is
// stable.
func (p Props) sortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type opKind int

const (
	opGetAll opKind = iota
	opGetOne
	opSetOne
	opSetAll
)

// Op is one accessor request: read everything, read one key, write one key
// or write a map.
type Op struct {
	kind   opKind
	key    string
	value  string
	values Props
}

// GetAll reads every value.
func GetAll() Op { return Op{kind: opGetAll} }

// GetOne reads a single key.
func GetOne(key string) Op { return Op{kind: opGetOne, key: key} }

// SetOne writes a single key.
func SetOne(key, value string) Op { return Op{kind: opSetOne, key: key, value: value} }

// SetAll writes every entry of values.
func SetAll(values Props) Op { return Op{kind: opSetAll, values: values} }

// Result is the outcome of Do. Reads fill Values (GetAll) or Value and Found
// (GetOne); writes return the handle for chaining.
type Result struct {
	Values map[string]string
	Value  string
	Found  bool
	Handle *Handle
}

// store is one family of key/value data on an element.
type store interface {
	all(el *dom.Element) map[string]string
	get(el *dom.Element, key string) (string, bool)
	set(el *dom.Element, key, value string)
}

// Accessor reads and writes attributes, data attributes or styles of a
// handle's elements.
type Accessor struct {
	h     *Handle
	store store
}

// Attr accesses the attributes of the handle.
func (h *Handle) Attr() Accessor { return Accessor{h: h, store: attrStore{}} }

// Data accesses the data-* attributes of the handle by camelCase key.
func (h *Handle) Data() Accessor { return Accessor{h: h, store: dataStore{}} }

// CSS accesses styles: reads return the computed style of the primary
// element, writes set inline styles.
func (h *Handle) CSS() Accessor { return Accessor{h: h, store: cssStore{}} }

// All returns every value of the primary element.
func (a Accessor) All() map[string]string { return a.store.all(a.h.primary) }

// Get returns one value of the primary element and whether it is present.
func (a Accessor) Get(key string) (string, bool) { return a.store.get(a.h.primary, key) }

// Set writes key on every selected element.
func (a Accessor) Set(key, value string) *Handle {
	return a.h.each(func(el *dom.Element) { a.store.set(el, key, value) })
}

// SetMany writes every entry of values on every selected element.
func (a Accessor) SetMany(values Props) *Handle {
	keys := values.sortedKeys()
	return a.h.each(func(el *dom.Element) {
		for _, k := range keys {
			a.store.set(el, k, values[k])
		}
	})
}

// Do runs op.
func (a Accessor) Do(op Op) Result {
	switch op.kind {
	case opGetOne:
		v, ok := a.Get(op.key)
		return Result{Value: v, Found: ok}
	case opSetOne:
		return Result{Handle: a.Set(op.key, op.value)}
	case opSetAll:
		return Result{Handle: a.SetMany(op.values)}
	default:
		return Result{Values: a.All()}
	}
}

type attrStore struct{}

func (attrStore) all(el *dom.Element) map[string]string { return el.Attributes() }

func (attrStore) get(el *dom.Element, key string) (string, bool) { return el.Attribute(key) }

func (attrStore) set(el *dom.Element, key, value string) {
	if err := el.SetAttributeWithError(key, value); err != nil {
		logrus.WithField("attribute", key).WithError(err).Debug("attribute not set")
	}
}

type dataStore struct{}

func (dataStore) all(el *dom.Element) map[string]string { return el.Dataset().All() }

func (dataStore) get(el *dom.Element, key string) (string, bool) { return el.Dataset().Get(key) }

func (dataStore) set(el *dom.Element, key, value string) {
	if err := el.Dataset().Set(key, value); err != nil {
		logrus.WithField("key", key).WithError(err).Debug("data attribute not set")
	}
}

type cssStore struct{}

func computed(el *dom.Element) *css.ComputedStyle {
	if win := el.OwnerDocument().DefaultView(); win != nil {
		return win.GetComputedStyle(el)
	}
	return nil
}

func (cssStore) all(el *dom.Element) map[string]string {
	if cs := computed(el); cs != nil {
		return cs.All()
	}
	return el.Style().All()
}

func (cssStore) get(el *dom.Element, key string) (string, bool) {
	if cs := computed(el); cs != nil {
		return cs.Get(key)
	}
	v := el.Style().GetPropertyValue(key)
	return v, v != ""
}

func (cssStore) set(el *dom.Element, key, value string) {
	if !css.IsCustomProperty(key) && !css.IsKnownProperty(key) {
		logrus.WithField("property", key).Debug("unknown style property dropped")
		return
	}
	el.Style().SetProperty(key, value)
}

// ID returns the id of the primary element.
func (h *Handle) ID() string { return h.primary.Id() }

// SetID sets the id of the primary element only, since ids are unique.
func (h *Handle) SetID(id string) *Handle {
	h.primary.SetId(id)
	return h
}
