package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// MarshalJSON renders v like JSON.stringify: keys keep insertion order,
// undefined properties are left out and undefined list items become null.
func MarshalJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) MarshalJSON() ([]byte, error) { return MarshalJSON(o) }

func (l *List) MarshalJSON() ([]byte, error) { return MarshalJSON(l) }

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v := v.(type) {
	case nil, Undefined, Null:
		buf.WriteString("null")
	case Bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(FormatNumber(f))
	case String:
		return writeJSONString(buf, string(v))
	case *List:
		buf.WriteByte('[')
		for i, item := range v.Values() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *Object:
		buf.WriteByte('{')
		first := true
		for k, item := range v.All() {
			if _, ok := item.(Undefined); ok {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("value: cannot encode %T", v)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// ParseJSON decodes a single JSON document. Object keys keep document order.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("value: unexpected data after JSON document")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(tok), nil
	case json.Number:
		f, err := tok.Float64()
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		return Number(f), nil
	case string:
		return String(tok), nil
	case json.Delim:
		switch tok {
		case '[':
			list := NewList()
			for dec.More() {
				item, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				list.Items = append(list.Items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("value: unexpected object key %v", keyTok)
				}
				item, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("value: unexpected token %v", tok)
}
