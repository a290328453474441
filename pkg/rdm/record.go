package rdm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// extras is embedded in every record and holds the payload keys that are not
// declared fields.
type extras struct {
	props map[string]any
}

// AdditionalProperties returns the mutable map of undeclared fields.
func (e *extras) AdditionalProperties() map[string]any {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	return e.props
}

// SetAdditionalProperty inserts or overwrites one undeclared field.
func (e *extras) SetAdditionalProperty(name string, value any) {
	e.AdditionalProperties()[name] = value
}

// recordField describes one declared field of a record struct.
type recordField struct {
	index int
	name  string // Go field name, used for String
	wire  string // JSON name
}

var fieldCache sync.Map // reflect.Type -> []recordField

// recordFields returns the declared fields of a record type in declaration
// order. Only exported fields with a json tag take part.
func recordFields(t reflect.Type) []recordField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]recordField)
	}
	var fields []recordField
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tag == "" || tag == "-" {
			continue
		}
		fields = append(fields, recordField{index: i, name: sf.Name, wire: tag})
	}
	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.([]recordField)
}

// marshalRecord writes the set declared fields of rec in declaration order,
// followed by the additional properties sorted by key. Bag entries that
// collide with a declared wire name are dropped.
func marshalRecord(rec any, props map[string]any) ([]byte, error) {
	rv := reflect.ValueOf(rec)
	fields := recordFields(rv.Type())

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeEntry := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(data)
		return nil
	}

	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.wire] = struct{}{}
		fv := rv.Field(f.index)
		if fv.IsZero() {
			continue
		}
		if err := writeEntry(f.wire, fv.Interface()); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		if _, ok := declared[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := writeEntry(k, props[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalRecord fills the declared fields of rec (a pointer to a record
// struct) from data using exact wire names; every other key is decoded into
// props with numbers kept as json.Number.
func unmarshalRecord(data []byte, rec any, props *map[string]any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	rv := reflect.ValueOf(rec).Elem()
	for _, f := range recordFields(rv.Type()) {
		msg, ok := raw[f.wire]
		if !ok {
			continue
		}
		delete(raw, f.wire)
		if err := json.Unmarshal(msg, rv.Field(f.index).Addr().Interface()); err != nil {
			return fmt.Errorf("%s.%s: %w", rv.Type().Name(), f.wire, err)
		}
	}

	for k, msg := range raw {
		v, err := decodeBagValue(msg)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", rv.Type().Name(), k, err)
		}
		if *props == nil {
			*props = make(map[string]any, len(raw))
		}
		(*props)[k] = v
	}
	return nil
}

// decodeBagValue decodes an undeclared field. Numbers, nested ones included,
// stay json.Number so integers beyond 2^53 survive a round trip.
func decodeBagValue(msg json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// renderRecord formats a record as "Name [field=value, ..., additionalProperties={...}]".
func renderRecord(name string, rec any, props map[string]any) string {
	rv := reflect.ValueOf(rec)

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" [")
	for _, f := range recordFields(rv.Type()) {
		sb.WriteString(lowerFirst(f.name))
		sb.WriteByte('=')
		sb.WriteString(renderValue(rv.Field(f.index)))
		sb.WriteString(", ")
	}
	sb.WriteString("additionalProperties=")
	sb.WriteString(renderProps(props))
	sb.WriteByte(']')
	return sb.String()
}

func renderValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return "null"
		}
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v.Elem().Interface())
	case reflect.Slice:
		if v.IsNil() {
			return "null"
		}
		parts := make([]string, v.Len())
		for i := range v.Len() {
			parts[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v.Interface())
	}
}

func renderProps(props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, props[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Leading acronyms (GCHiddenFlag) are lowered as a run.
	n := 0
	for n < len(s) && s[n] >= 'A' && s[n] <= 'Z' {
		n++
	}
	switch {
	case n == len(s):
		return strings.ToLower(s)
	case n > 1:
		n--
	}
	if n == 0 {
		return s
	}
	return strings.ToLower(s[:n]) + s[n:]
}
