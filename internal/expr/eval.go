package expr

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/chriserin/xt/internal/value"
)

// globals are the names that resolve when the scope does not define them.
var globals = map[string]value.Value{
	"undefined": value.Undefined{},
	"NaN":       value.Number(math.NaN()),
	"Infinity":  value.Number(math.Inf(1)),
}

func (n *Literal) Eval(*value.Object) (value.Value, error) {
	return n.Value, nil
}

func (n *Ident) Eval(scope *value.Object) (value.Value, error) {
	if v, ok := scope.Get(n.Name); ok {
		return v, nil
	}
	if v, ok := globals[n.Name]; ok {
		return v, nil
	}
	return nil, &ReferenceError{Name: n.Name}
}

func (n *ArrayLit) Eval(scope *value.Object) (value.Value, error) {
	items := make([]value.Value, 0, len(n.Elems))
	for _, elem := range n.Elems {
		v, err := elem.Eval(scope)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return value.NewList(items...), nil
}

func (n *ObjectLit) Eval(scope *value.Object) (value.Value, error) {
	obj := value.NewObject()
	for _, prop := range n.Props {
		key := prop.Key
		if prop.Computed != nil {
			k, err := prop.Computed.Eval(scope)
			if err != nil {
				return nil, err
			}
			key = value.ToString(k)
		}
		v, err := prop.Value.Eval(scope)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	return obj, nil
}

func (n *Unary) Eval(scope *value.Object) (value.Value, error) {
	x, err := n.X.Eval(scope)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "-":
		return value.Number(-value.ToNumber(x)), nil
	case "+":
		return value.Number(value.ToNumber(x)), nil
	case "!":
		return value.Bool(!value.Truthy(x)), nil
	}
	return nil, fmt.Errorf("expr: unknown unary operator %s", n.Op)
}

func (n *Member) Eval(scope *value.Object) (value.Value, error) {
	x, err := n.X.Eval(scope)
	if err != nil {
		return nil, err
	}
	key := n.Name
	if n.Index != nil {
		k, err := n.Index.Eval(scope)
		if err != nil {
			return nil, err
		}
		key = value.ToString(k)
	}
	return property(x, key)
}

// property reads key from x. Lists and strings expose length and their
// elements by index; numbers and booleans have no readable properties.
func property(x value.Value, key string) (value.Value, error) {
	switch x := x.(type) {
	case nil, value.Undefined, value.Null:
		return nil, &TypeError{Msg: fmt.Sprintf("Cannot read properties of %s (reading '%s')", value.ToString(x), key)}
	case *value.Object:
		return x.Lookup(key), nil
	case *value.List:
		if key == "length" {
			return value.Number(x.Len()), nil
		}
		if i, ok := arrayIndex(key); ok && i < x.Len() {
			return x.Values()[i], nil
		}
	case value.String:
		units := utf16.Encode([]rune(string(x)))
		if key == "length" {
			return value.Number(len(units)), nil
		}
		if i, ok := arrayIndex(key); ok && i < len(units) {
			return value.String(utf16.Decode(units[i : i+1])), nil
		}
	}
	return value.Undefined{}, nil
}

// arrayIndex accepts only canonical non-negative integers, so "01" and "1.0"
// are plain keys rather than indexes.
func arrayIndex(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}
