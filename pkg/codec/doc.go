// Package codec renders bytes as hexadecimal, decimal and base64 text and
// converts strings to and from common text encodings.
//
// Hex encoding is lowercase and unseparated by default. Options add a prefix
// and suffix around every byte:
//
//	codec.HexEncode([]byte{0xFF, 0x50}, codec.HexOptions{Before: "0x", After: " ", Upper: true})
//	// "0xFF 0x50 "
//
// HexDecode understands the same layout. When start occurs in the input it
// splits on start and cuts each token at the first end; otherwise it splits
// on end; otherwise the input is a single run of digits, left padded with a
// '0' when its length is odd. Every token must be one or two hex digits,
// optionally prefixed by "0x". Delimiters made only of hex digits, such as
// "a" or "00", are rejected.
//
// Text encodings are backed by golang.org/x/text. ASCII replaces anything
// outside 7-bit range with '?', the other encoders substitute the target
// encoding's replacement character.
package codec
