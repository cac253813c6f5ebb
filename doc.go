// Package ophite is a toolkit of small conversion, encoding and text utilities.
//
// The packages under pkg/ are independent and can be imported on their own:
//
//   - binconv: numbers and booleans to and from fixed-size byte slices
//   - decimal: 128-bit decimal values and their 16-byte layout
//   - convert: strict string to number parsing and small text helpers
//   - codec: hexadecimal, base64 and text encodings
//   - regex: predefined matching, rewriting and extraction templates
//   - mathx: integer routines, quadratic roots and GPS distance
//   - random: seedable shuffling and reproducible UUIDs
//   - serial: binary, SOAP, JSON, YAML and TOML serialization
//   - imaging: image encoding and QR codes
//   - console: line-based prompts and colored terminal output
//   - sysutil: process control, clocks and embedded resources
//   - validator: rule-based validation built on the packages above
//
// Failures from every package wrap a fault.Kind, so callers can branch on the
// category of an error without knowing which package produced it:
//
//	if fault.KindOf(err) == fault.ErrOverflow {
//		// handle out-of-range input
//	}
//
// The ophite command in cmd/ophite exposes most of this on the terminal.
package ophite

// Version is the toolkit release.
const Version = "0.1.1"
