package docgen

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"unsafe"
)

// CircularMarker replaces a composite value already visited in the current
// serialization pass.
const CircularMarker = "[Circular]"

var (
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// nodeKey identifies a composite value by address, not by content
type nodeKey struct {
	kind reflect.Kind
	ptr  unsafe.Pointer
	typ  reflect.Type
	len  int
}

// Stringify renders a value as JSON text. Cyclic or shared composite values
// are replaced by CircularMarker from their second visit on. indent > 0
// pretty-prints with that many spaces per level, otherwise output is compact.
// It never fails: values that cannot be encoded fall back to fmt formatting.
func Stringify(value any, indent int) string {
	tree := Acyclic(value)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(tree); err != nil {
		return fmt.Sprintf("%v", tree)
	}

	return strings.TrimRight(buf.String(), "\n")
}

// Acyclic returns a copy of value built from maps, slices and scalars only,
// with every revisited composite replaced by CircularMarker. The visited set
// lives for this call only.
func Acyclic(value any) any {
	seen := make(map[nodeKey]struct{})
	return acyclicValue(reflect.ValueOf(value), seen)
}

func acyclicValue(v reflect.Value, seen map[nodeKey]struct{}) any {
	if !v.IsValid() {
		return nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		return acyclicValue(v.Elem(), seen)
	}

	if isMarshaler(v) {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return nil
		}
		if v.CanInterface() {
			return v.Interface()
		}
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case reflect.String:
		return v.String()
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v.Complex())
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if tracked(v) && visited(v, seen) {
			return CircularMarker
		}
		return acyclicValue(v.Elem(), seen)
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		if visited(v, seen) {
			return CircularMarker
		}
		return acyclicMap(v, seen)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Bytes()
		}
		if v.Len() > 0 && tracked(v) && visited(v, seen) {
			return CircularMarker
		}
		return acyclicList(v, seen)
	case reflect.Array:
		return acyclicList(v, seen)
	case reflect.Struct:
		return acyclicStruct(v, seen)
	default:
		return fmt.Sprint(v)
	}
}

// tracked reports whether v has an identity worth recording. Zero-size
// elements all share one address, so distinct values would collide.
func tracked(v reflect.Value) bool {
	return v.Type().Elem().Size() > 0
}

// visited records v and reports whether it had already been recorded
func visited(v reflect.Value, seen map[nodeKey]struct{}) bool {
	key := nodeKey{
		kind: v.Kind(),
		ptr:  v.UnsafePointer(),
		typ:  v.Type(),
	}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}

	if _, ok := seen[key]; ok {
		return true
	}
	seen[key] = struct{}{}
	return false
}

func acyclicMap(v reflect.Value, seen map[nodeKey]struct{}) map[string]any {
	type entry struct {
		key   string
		value reflect.Value
	}

	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: mapKeyString(iter.Key()), value: iter.Value()})
	}

	// Visit in key order so a shared node is always expanded at the same place
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	out := make(map[string]any, len(entries))
	for _, e := range entries {
		out[e.key] = acyclicValue(e.value, seen)
	}
	return out
}

func acyclicList(v reflect.Value, seen map[nodeKey]struct{}) []any {
	out := make([]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = acyclicValue(v.Index(i), seen)
	}
	return out
}

func acyclicStruct(v reflect.Value, seen map[nodeKey]struct{}) map[string]any {
	out := make(map[string]any, v.NumField())
	collectFields(v, seen, out)
	return out
}

// collectFields writes the fields of v into out. Untagged embedded structs
// are flattened into the parent, and fields declared on the parent win.
func collectFields(v reflect.Value, seen map[nodeKey]struct{}, out map[string]any) {
	t := v.Type()

	var embedded []reflect.Value
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			if inner, ok := embeddedStruct(field, v.Field(i), seen); ok {
				if inner.IsValid() {
					embedded = append(embedded, inner)
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := jsonFieldName(field)
		if skip {
			continue
		}

		fv := v.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		out[name] = acyclicValue(fv, seen)
	}

	for _, inner := range embedded {
		promoted := make(map[string]any, inner.NumField())
		collectFields(inner, seen, promoted)
		for name, value := range promoted {
			if _, ok := out[name]; !ok {
				out[name] = value
			}
		}
	}
}

// embeddedStruct returns the struct whose fields are promoted through an
// anonymous field. A json name on the field keeps it nested instead.
func embeddedStruct(field reflect.StructField, fv reflect.Value, seen map[nodeKey]struct{}) (reflect.Value, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" || strings.Split(tag, ",")[0] != "" {
		return reflect.Value{}, false
	}

	ft := field.Type
	if ft.Kind() == reflect.Pointer {
		ft = ft.Elem()
	}
	if ft.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	if fv.Kind() == reflect.Pointer {
		// A nil or self-referencing embedded pointer contributes nothing
		if fv.IsNil() || (tracked(fv) && visited(fv, seen)) {
			return reflect.Value{}, true
		}
		fv = fv.Elem()
	}
	return fv, true
}

func jsonFieldName(field reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func mapKeyString(key reflect.Value) string {
	for key.Kind() == reflect.Interface && !key.IsNil() {
		key = key.Elem()
	}
	if key.Kind() == reflect.String {
		return key.String()
	}
	if key.CanInterface() {
		if tm, ok := key.Interface().(encoding.TextMarshaler); ok {
			if text, err := tm.MarshalText(); err == nil {
				return string(text)
			}
		}
	}
	return fmt.Sprint(key)
}

func isMarshaler(v reflect.Value) bool {
	t := v.Type()
	return t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType)
}
