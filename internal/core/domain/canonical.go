package domain

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Canonicalization turns heterogeneous, possibly nested parameter values into
// a single text form with the following properties:
//
//   - map keys are sorted, so key order in the source never matters
//   - sequence order is preserved element-wise
//   - numeric values keep their declared type: an integer 8 and a float 8.0
//     canonicalize to distinct forms and never compare equal
//
// The form is the authoritative input for signature equality; hashes are only
// a pre-check over it.

// CanonicalParams returns the canonical text form of a step parameter map.
// It fails with ErrMalformedStep if a value cannot be normalized.
func CanonicalParams(params map[string]any) (string, error) {
	var b strings.Builder
	if err := writeCanonical(&b, params); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeCanonical(b *strings.Builder, v any) error {
	if v == nil {
		b.WriteByte('~')
		return nil
	}

	switch val := v.(type) {
	case bool:
		if val {
			b.WriteByte('T')
		} else {
			b.WriteByte('F')
		}
		return nil
	case string:
		b.WriteString(strconv.Quote(val))
		return nil
	case int:
		return writeCanonicalInt(b, int64(val))
	case int64:
		return writeCanonicalInt(b, val)
	case float64:
		return writeCanonicalFloat(b, val)
	case float32:
		return writeCanonicalFloat(b, float64(val))
	case []any:
		return writeCanonicalSlice(b, func(yield func(any) error) error {
			for _, e := range val {
				if err := yield(e); err != nil {
					return err
				}
			}
			return nil
		})
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte('=')
			if err := writeCanonical(b, val[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil
	}

	return writeCanonicalReflect(b, v)
}

// writeCanonicalReflect handles typed containers and the remaining numeric
// kinds that the fast-path switch does not name explicitly.
func writeCanonicalReflect(b *strings.Builder, v any) error {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return writeCanonicalInt(b, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteByte('u')
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
		return nil
	case reflect.Slice, reflect.Array:
		return writeCanonicalSlice(b, func(yield func(any) error) error {
			for i := range rv.Len() {
				if err := yield(rv.Index(i).Interface()); err != nil {
					return err
				}
			}
			return nil
		})
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return zerr.With(ErrMalformedStep, "value_type", rv.Type().String())
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return writeCanonical(b, m)
	default:
		return zerr.With(ErrMalformedStep, "value_type", rv.Type().String())
	}
}

func writeCanonicalSlice(b *strings.Builder, each func(func(any) error) error) error {
	b.WriteByte('[')
	first := true
	err := each(func(e any) error {
		if !first {
			b.WriteByte(',')
		}
		first = false
		return writeCanonical(b, e)
	})
	if err != nil {
		return err
	}
	b.WriteByte(']')
	return nil
}

func writeCanonicalInt(b *strings.Builder, v int64) error {
	b.WriteByte('i')
	b.WriteString(strconv.FormatInt(v, 10))
	return nil
}

func writeCanonicalFloat(b *strings.Builder, v float64) error {
	// Shortest exact decimal form; exact declared value, no tolerance.
	b.WriteByte('f')
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}
