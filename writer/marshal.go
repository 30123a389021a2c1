// Package writer renders parsed-buffer results the way the CLI wants to
// print them: not a serialization format for a host language (that's the
// embedding's concern, not this library's), just a compact, deterministic
// record syntax for terminal debug output.
package writer

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
)

// RecordMarshaler is implemented by types that know how to render
// themselves in the record syntax Encode otherwise derives by reflection.
type RecordMarshaler interface {
	MarshalRecord() ([]byte, error)
}

var recordMarshalerType = reflect.TypeOf((*RecordMarshaler)(nil)).Elem()

// Encode renders v in a compact record syntax, recursing into it with the
// following type-dependent encodings:
//
// Booleans encode as true/false. Strings encode quoted. Slices and arrays
// encode as bracketed, comma-separated lists of their recursively encoded
// elements. A nil pointer or interface encodes as "-".
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(b *bytes.Buffer, v reflect.Value) error {
	if !v.IsValid() {
		return writeString(b, "-")
	}
	return encodeType(b, v.Type(), v)
}

func encodeType(b *bytes.Buffer, t reflect.Type, v reflect.Value) error {
	if t.Implements(recordMarshalerType) {
		return encodeMarshaler(b, v)
	}

	switch t.Kind() {
	case reflect.Bool:
		return encodeBool(b, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Uint:
		return encodeInt(b, v)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return encodeUint(b, v)
	case reflect.Float32, reflect.Float64:
		return encodeFloat(b, v)
	case reflect.String:
		return encodeString(b, v)
	case reflect.Slice:
		return encodeSlice(b, v)
	case reflect.Array:
		return encodeArray(b, v)
	case reflect.Interface, reflect.Ptr:
		return encodeInterface(b, v)
	default:
		return fmt.Errorf("unsupported encoding type for value: %#v", v)
	}
}

func encodeBool(b *bytes.Buffer, v reflect.Value) error {
	return writeString(b, strconv.FormatBool(v.Bool()))
}

func encodeInt(b *bytes.Buffer, v reflect.Value) error {
	return writeString(b, strconv.FormatInt(v.Int(), 10))
}

func encodeUint(b *bytes.Buffer, v reflect.Value) error {
	return writeString(b, strconv.FormatUint(v.Uint(), 10))
}

func encodeFloat(b *bytes.Buffer, v reflect.Value) error {
	return writeString(b, strconv.FormatFloat(v.Float(), 'g', -1, 64))
}

func encodeString(b *bytes.Buffer, v reflect.Value) error {
	return writeString(b, strconv.QuoteToASCII(v.String()))
}

func encodeSlice(b *bytes.Buffer, v reflect.Value) error {
	if v.IsNil() {
		return writeString(b, "[]")
	}
	return encodeArray(b, v)
}

func encodeArray(b *bytes.Buffer, v reflect.Value) error {
	if err := b.WriteByte('['); err != nil {
		return err
	}
	n := v.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := writeString(b, ", "); err != nil {
				return err
			}
		}
		if err := encodeValue(b, v.Index(i)); err != nil {
			return err
		}
	}
	return b.WriteByte(']')
}

func encodeInterface(b *bytes.Buffer, v reflect.Value) error {
	if v.IsNil() {
		return writeString(b, "-")
	}
	return encodeValue(b, v.Elem())
}

func encodeMarshaler(b *bytes.Buffer, v reflect.Value) error {
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return writeString(b, "-")
	}
	m, ok := v.Interface().(RecordMarshaler)
	if !ok {
		return writeString(b, "-")
	}
	r, err := m.MarshalRecord()
	if err != nil {
		return err
	}
	return writeString(b, string(r))
}

func writeString(b *bytes.Buffer, value string) error {
	_, err := b.WriteString(value)
	return err
}
