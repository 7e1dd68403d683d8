package value

import (
	"math"
	"strconv"
	"strings"
)

// ObjectMarker is what a plain object turns into when coerced to a string.
const ObjectMarker = "[object Object]"

// ToString coerces v the way string interpolation does.
func ToString(v Value) string {
	switch v := v.(type) {
	case nil, Undefined:
		return "undefined"
	case Null:
		return "null"
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Number:
		return FormatNumber(float64(v))
	case String:
		return string(v)
	case *List:
		parts := make([]string, v.Len())
		for i, item := range v.Values() {
			switch item.(type) {
			case nil, Undefined, Null:
				// empty
			default:
				parts[i] = ToString(item)
			}
		}
		return strings.Join(parts, ",")
	case *Object:
		return ObjectMarker
	}
	return ""
}

// FormatNumber renders f in the shortest form that reads back as f, switching
// to exponent notation below 1e-6 and from 1e21 upward.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case f < 0:
		return "-" + FormatNumber(-f)
	}

	// d.ddde±x gives the significant digits and the decimal exponent.
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, _ := strconv.Atoi(exp)
	k := len(digits)
	n := x + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	abs := n - 1
	if abs < 0 {
		abs = -abs
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(abs)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(abs)
}

// Truthy reports whether v counts as true in a condition.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Undefined, Null:
		return false
	case Bool:
		return bool(v)
	case Number:
		return v != 0 && !math.IsNaN(float64(v))
	case String:
		return v != ""
	}
	return true
}

// ToNumber converts v to a number the way unary plus does.
func ToNumber(v Value) float64 {
	switch v := v.(type) {
	case nil, Undefined:
		return math.NaN()
	case Null:
		return 0
	case Bool:
		if v {
			return 1
		}
		return 0
	case Number:
		return float64(v)
	case String:
		return stringToNumber(string(v))
	case *List:
		return stringToNumber(ToString(v))
	}
	return math.NaN()
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}
	// ParseFloat accepts forms like "inf" and "0x1p-2" that are not numbers here.
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// StrictEqual compares like ===. Lists and objects are equal only to themselves.
func StrictEqual(a, b Value) bool {
	a, b = normalize(a), normalize(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case Undefined, Null:
		return true
	case Bool:
		return a == b.(Bool)
	case Number:
		return a == b.(Number)
	case String:
		return a == b.(String)
	case *List:
		return a == b.(*List)
	case *Object:
		return a == b.(*Object)
	}
	return false
}

// SameValueZero is StrictEqual except that NaN equals NaN. List membership
// tests use it.
func SameValueZero(a, b Value) bool {
	if x, ok := normalize(a).(Number); ok {
		if y, ok := normalize(b).(Number); ok && math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
	}
	return StrictEqual(a, b)
}

// Includes reports whether l holds an element equal to v under SameValueZero.
func (l *List) Includes(v Value) bool {
	if l == nil {
		return false
	}
	for _, item := range l.Items {
		if SameValueZero(item, v) {
			return true
		}
	}
	return false
}

func normalize(v Value) Value {
	if v == nil {
		return Undefined{}
	}
	return v
}
