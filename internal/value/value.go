package value

import (
	"iter"
	"slices"
)

// Kind identifies the category of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one of Undefined, Null, Bool, Number, String, *List or *Object.
type Value interface {
	Kind() Kind
}

// Undefined is an explicit undefined value. An object holding a key with an
// Undefined value is different from an object without that key.
type Undefined struct{}

type Null struct{}

type Bool bool

type Number float64

type String string

// List is an ordered sequence of values. Lists compare by identity.
type List struct {
	Items []Value
}

func (Undefined) Kind() Kind { return KindUndefined }
func (Null) Kind() Kind      { return KindNull }
func (Bool) Kind() Kind      { return KindBool }
func (Number) Kind() Kind    { return KindNumber }
func (String) Kind() Kind    { return KindString }
func (*List) Kind() Kind     { return KindList }
func (*Object) Kind() Kind   { return KindObject }

// NewList returns a list holding items.
func NewList(items ...Value) *List {
	if items == nil {
		items = []Value{}
	}
	return &List{Items: items}
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Values returns the items; a nil list has none.
func (l *List) Values() []Value {
	if l == nil {
		return nil
	}
	return l.Items
}

// Object maps keys to values and remembers the order keys were first set.
// Objects compare by identity.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Set stores v under key and returns o so calls can be chained. Setting an
// existing key keeps its original position.
func (o *Object) Set(key string, v Value) *Object {
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	if v == nil {
		v = Undefined{}
	}
	o.fields[key] = v
	return o
}

// Get returns the value stored under key. The boolean reports whether the key
// is present, which is true for keys explicitly set to Undefined.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Lookup returns the value under key, or Undefined when the key is absent.
func (o *Object) Lookup(key string) Value {
	if v, ok := o.Get(key); ok {
		return v
	}
	return Undefined{}
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// All iterates over key/value pairs in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}
