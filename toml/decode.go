package toml

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Unmarshal parses TOML data and stores the result in the value pointed to by v
func Unmarshal(data []byte, v any) error {
	tree, err := Parse(data)
	if err != nil {
		return err
	}
	return Decode(tree, v)
}

// Decode maps a parsed tree onto v, which must be a non-nil pointer
// Fields are matched by `toml` tag, falling back to the field name; `toml:"-"` skips a field
func Decode(tree map[string]any, v any) error {
	_, err := decode(tree, v)
	return err
}

// DecodeStrict is Decode that also returns dotted paths of keys no field consumed
func DecodeStrict(tree map[string]any, v any) ([]string, error) {
	return decode(tree, v)
}

func decode(tree map[string]any, v any) ([]string, error) {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return nil, fmt.Errorf("toml: decode target must be a non-nil pointer, got %T", v)
	}
	d := &decoder{}
	if err := d.value("", tree, val.Elem()); err != nil {
		return nil, err
	}
	sort.Strings(d.unknown)
	return d.unknown, nil
}

type decoder struct {
	unknown []string
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func (d *decoder) value(path string, data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	switch val.Kind() {
	case reflect.Ptr:
		elem := reflect.New(val.Type().Elem())
		if err := d.value(path, data, elem.Elem()); err != nil {
			return err
		}
		val.Set(elem)

	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("toml: %s: expected table, got %T", path, data)
		}
		return d.structFields(path, m, val)

	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("toml: %s: only map[string]T is supported", path)
		}
		m, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("toml: %s: expected table, got %T", path, data)
		}
		if val.IsNil() {
			val.Set(reflect.MakeMapWithSize(val.Type(), len(m)))
		}
		for k, item := range m {
			elem := reflect.New(val.Type().Elem()).Elem()
			if err := d.value(join(path, k), item, elem); err != nil {
				return err
			}
			val.SetMapIndex(reflect.ValueOf(k).Convert(val.Type().Key()), elem)
		}

	case reflect.Slice:
		items, ok := data.([]any)
		if !ok {
			return fmt.Errorf("toml: %s: expected array, got %T", path, data)
		}
		out := reflect.MakeSlice(val.Type(), len(items), len(items))
		for i, item := range items {
			if err := d.value(fmt.Sprintf("%s[%d]", path, i), item, out.Index(i)); err != nil {
				return err
			}
		}
		val.Set(out)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := data.(int)
		if !ok {
			return fmt.Errorf("toml: %s: cannot use %T as integer", path, data)
		}
		if val.OverflowInt(int64(n)) {
			return fmt.Errorf("toml: %s: %d overflows %s", path, n, val.Type())
		}
		val.SetInt(int64(n))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := data.(int)
		if !ok || n < 0 {
			return fmt.Errorf("toml: %s: cannot use %v as unsigned integer", path, data)
		}
		if val.OverflowUint(uint64(n)) {
			return fmt.Errorf("toml: %s: %d overflows %s", path, n, val.Type())
		}
		val.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		switch f := data.(type) {
		case float64:
			val.SetFloat(f)
		case int:
			val.SetFloat(float64(f))
		default:
			return fmt.Errorf("toml: %s: cannot use %T as float", path, data)
		}

	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("toml: %s: cannot use %T as string", path, data)
		}
		val.SetString(s)

	case reflect.Bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("toml: %s: cannot use %T as bool", path, data)
		}
		val.SetBool(b)

	default:
		return fmt.Errorf("toml: %s: unsupported target kind %s", path, val.Kind())
	}
	return nil
}

func (d *decoder) structFields(path string, m map[string]any, val reflect.Value) error {
	typ := val.Type()
	seen := make(map[string]bool, len(m))

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key := field.Name
		if tag := field.Tag.Get("toml"); tag != "" {
			name, _, _ := strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
			if name != "" {
				key = name
			}
		}

		item, ok := m[key]
		if !ok {
			continue
		}
		seen[key] = true
		if err := d.value(join(path, key), item, val.Field(i)); err != nil {
			return err
		}
	}

	for k := range m {
		if !seen[k] {
			d.unknown = append(d.unknown, join(path, k))
		}
	}
	return nil
}
