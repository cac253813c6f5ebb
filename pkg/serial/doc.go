// Package serial marshals values into a handful of wire formats behind one
// Marshal/Unmarshal pair.
//
// Supported formats:
//
//   - Binary: encoding/gob
//   - SOAP: an XML document wrapped in a SOAP 1.1 envelope
//   - JSON: encoding/json
//   - YAML: gopkg.in/yaml.v3
//   - TOML: github.com/pelletier/go-toml/v2
//
// Values the format cannot represent (functions, channels, structs without
// exported fields for gob) fail with ErrNotSerializable. Input that cannot be
// decoded fails with ErrInvalidFormat. A nil value fails with ErrNilValue.
//
//	data, err := serial.Marshal(order, serial.SOAP)
//	var back Order
//	err = serial.Unmarshal(data, serial.SOAP, &back)
package serial
