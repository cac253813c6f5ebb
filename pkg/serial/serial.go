package serial

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

// Marshal encodes v in format f.
func Marshal(v any, f Format) (data []byte, err error) {
	if isNil(v) {
		return nil, ErrNilValue
	}

	// yaml.v3 panics on values it cannot represent.
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w: %v", ErrNotSerializable, r)
		}
	}()

	switch f {
	case Binary:
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
		}
		return buf.Bytes(), nil
	case SOAP:
		return marshalSOAP(v)
	case JSON:
		data, err = json.Marshal(v)
	case YAML:
		data, err = yaml.Marshal(v)
	case TOML:
		data, err = toml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}
	return data, nil
}

// Unmarshal decodes data in format f into out, which must be a non-nil pointer.
func Unmarshal(data []byte, f Format, out any) error {
	if isNil(out) {
		return ErrNilValue
	}
	if reflect.TypeOf(out).Kind() != reflect.Pointer {
		return fmt.Errorf("%w: target %T is not a pointer", ErrNotSerializable, out)
	}

	var err error
	switch f {
	case Binary:
		err = gob.NewDecoder(bytes.NewReader(data)).Decode(out)
	case SOAP:
		if err := unmarshalSOAP(data, out); err != nil {
			return fault.Wrap(fault.ErrInvalidFormat, err)
		}
		return nil
	case JSON:
		err = json.Unmarshal(data, out)
	case YAML:
		err = yaml.Unmarshal(data, out)
	case TOML:
		err = toml.Unmarshal(data, out)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return decodeError(err)
	}
	return nil
}

func decodeError(err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return fault.Wrap(fault.ErrNotSerializable, fmt.Errorf("%w: %w", ErrNotSerializable, err))
	}
	return fault.Wrap(fault.ErrInvalidFormat, fmt.Errorf("%w: %w", ErrInvalidFormat, err))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
