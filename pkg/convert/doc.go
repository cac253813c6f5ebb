// Package convert parses numbers from text and provides small string and
// time conversions.
//
// Parsing uses the invariant culture: '.' is the only decimal separator,
// there are no group separators and surrounding white space is ignored.
// Failures are reported with three sentinels that wrap the fault kinds:
//
//   - ErrEmpty: the input is empty or blank
//   - ErrInvalidFormat: the input is not a number of the requested kind
//   - ErrOverflow: the value does not fit into the requested type
//
// Parse is the strict form. ParseOrZero and the typed helpers with
// ignoreErrors set return the zero value instead of failing:
//
//	n, err := convert.Parse[int32]("1024")
//	v := convert.ParseOrZero[uint16]("nope") // 0
//	f, _ := convert.ToFloat64("1.5", true)
package convert
