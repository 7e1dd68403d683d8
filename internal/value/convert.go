package value

import (
	"fmt"
	"reflect"
	"slices"
)

// FromGo converts plain Go data into a Value. Maps become objects with sorted
// keys; structs are not supported.
func FromGo(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []any:
		list := NewList()
		for _, item := range x {
			v, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, v)
		}
		return list, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := FromGo(x[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range rv.Len() {
			items[i] = rv.Index(i).Interface()
		}
		return FromGo(items)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromGo(m)
	}
	return nil, fmt.Errorf("value: unsupported Go type %T", x)
}

// MustFromGo is like FromGo but panics on unsupported input.
func MustFromGo(x any) Value {
	v, err := FromGo(x)
	if err != nil {
		panic(err)
	}
	return v
}

// ObjectFromMap converts m into an object, for use as a binding scope.
func ObjectFromMap(m map[string]any) (*Object, error) {
	v, err := FromGo(m)
	if err != nil {
		return nil, err
	}
	return v.(*Object), nil
}

// ToGo converts v into plain Go data. Undefined and Null both become nil.
func ToGo(v Value) any {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Number:
		return float64(v)
	case String:
		return string(v)
	case *List:
		out := make([]any, v.Len())
		for i, item := range v.Values() {
			out[i] = ToGo(item)
		}
		return out
	case *Object:
		out := make(map[string]any, v.Len())
		for k, item := range v.All() {
			out[k] = ToGo(item)
		}
		return out
	}
	return nil
}
