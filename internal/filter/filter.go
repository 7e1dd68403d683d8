// Package filter selects which parameter objects become test cases.
package filter

import "github.com/chriserin/xt/internal/value"

// Func transforms the parsed parameter objects before cases are built.
type Func func(params []*value.Object) []*value.Object

// Chain applies fns left to right.
func Chain(fns ...Func) Func {
	return func(params []*value.Object) []*value.Object {
		for _, fn := range fns {
			params = fn(params)
		}
		return params
	}
}

// Matches reports whether entry is hit by exclude. For some key of exclude,
// the entry's value must be truthy and either be contained in the exclusion
// list or be strictly equal to the exclusion value.
func Matches(entry, exclude *value.Object) bool {
	for key, ex := range exclude.All() {
		got := entry.Lookup(key)
		if !value.Truthy(got) {
			continue
		}
		if list, ok := ex.(*value.List); ok && list.Includes(got) {
			return true
		}
		if value.StrictEqual(got, ex) {
			return true
		}
	}
	return false
}

// Skip returns the params not matched by exclude, keeping their order.
// A nil exclude keeps everything.
func Skip(params []*value.Object, exclude *value.Object) []*value.Object {
	kept := make([]*value.Object, 0, len(params))
	for _, p := range params {
		if exclude != nil && Matches(p, exclude) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// Exclude returns a Func that skips params matching exclude.
func Exclude(exclude *value.Object) Func {
	return func(params []*value.Object) []*value.Object {
		return Skip(params, exclude)
	}
}
