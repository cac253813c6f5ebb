package codec_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/ophite/pkg/codec"
)

func TestRoundTripProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(20121112)

	properties := gopter.NewProperties(parameters)
	bytesGen := gen.SliceOf(gen.UInt8())

	properties.Property("plain hex", prop.ForAll(
		func(b []byte) bool {
			got, err := codec.HexDecode(codec.HexEncode(b, codec.HexOptions{}), "", "")
			return err == nil && bytes.Equal(got, b)
		},
		bytesGen,
	))

	properties.Property("delimited hex", prop.ForAll(
		func(b []byte, upper bool) bool {
			opts := codec.HexOptions{Before: "0x", After: " ", Upper: upper}
			got, err := codec.HexDecode(codec.HexEncode(b, opts), opts.Before, opts.After)
			return err == nil && bytes.Equal(got, b)
		},
		bytesGen,
		gen.Bool(),
	))

	properties.Property("base64", prop.ForAll(
		func(b []byte) bool {
			got, err := codec.Base64Decode(codec.Base64Encode(b))
			return err == nil && bytes.Equal(got, b)
		},
		bytesGen,
	))

	properties.Property("utf16 text", prop.ForAll(
		func(s string) bool {
			for _, f := range []codec.TextFormat{codec.UTF8, codec.Unicode, codec.BigEndianUnicode, codec.UTF32} {
				b, err := codec.EncodeText(s, f)
				if err != nil {
					return false
				}
				back, err := codec.DecodeText(b, f)
				if err != nil || back != s {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
