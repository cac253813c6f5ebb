package serial

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/ophite/pkg/codec"
)

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

const (
	envelopeOpen  = `<SOAP-ENV:Envelope xmlns:SOAP-ENV="` + EnvelopeNamespace + `"><SOAP-ENV:Body>`
	envelopeClose = `</SOAP-ENV:Body></SOAP-ENV:Envelope>`
)

type envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Content []byte `xml:",innerxml"`
	} `xml:"Body"`
}

func marshalSOAP(v any) ([]byte, error) {
	if !hasExportedFields(reflect.TypeOf(v)) {
		return nil, fmt.Errorf("%w: type %T has no exported fields", ErrNotSerializable, v)
	}
	payload, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}
	var buf bytes.Buffer
	buf.Grow(len(envelopeOpen) + len(payload) + len(envelopeClose))
	buf.WriteString(envelopeOpen)
	buf.Write(payload)
	buf.WriteString(envelopeClose)
	return buf.Bytes(), nil
}

// hasExportedFields reports false for a struct that xml would render as an
// empty element, matching what gob rejects.
func hasExportedFields(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return true
	}
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

func unmarshalSOAP(data []byte, out any) error {
	var env envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if env.XMLName.Space != EnvelopeNamespace {
		return fmt.Errorf("%w: unexpected envelope namespace %q", ErrInvalidFormat, env.XMLName.Space)
	}
	if len(bytes.TrimSpace(env.Body.Content)) == 0 {
		return fmt.Errorf("%w: empty SOAP body", ErrInvalidFormat)
	}
	if err := xml.Unmarshal(env.Body.Content, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// SOAPString marshals v into a SOAP envelope rendered as text. Only the
// ASCII and UTF8 formats are accepted; ASCII replaces non-ASCII bytes with '?'.
func SOAPString(v any, f codec.TextFormat) (string, error) {
	if f != codec.ASCII && f != codec.UTF8 {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	data, err := Marshal(v, SOAP)
	if err != nil {
		return "", err
	}
	return codec.DecodeText(data, f)
}

// FromSOAPString decodes an envelope produced by SOAPString into out.
func FromSOAPString(s string, out any) error {
	if s == "" {
		return fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	return Unmarshal([]byte(s), SOAP, out)
}
