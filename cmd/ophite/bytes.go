package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/binconv"
	"github.com/dmitrymomot/ophite/pkg/codec"
	"github.com/dmitrymomot/ophite/pkg/convert"
	"github.com/dmitrymomot/ophite/pkg/decimal"
)

type byteCodec struct {
	encode func(s string, o binconv.Order) ([]byte, error)
	decode func(b []byte, o binconv.Order) (string, error)
}

func numericCodec[T binconv.Fixed](format func(T) string) byteCodec {
	return byteCodec{
		encode: func(s string, o binconv.Order) ([]byte, error) {
			v, err := convert.Parse[T](s)
			if err != nil {
				return nil, err
			}
			return binconv.Bytes(v, o), nil
		},
		decode: func(b []byte, o binconv.Order) (string, error) {
			v, err := binconv.From[T](b, o)
			if err != nil {
				return "", err
			}
			return format(v), nil
		},
	}
}

func formatInt[T ~int8 | ~int16 | ~int32 | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUint[T ~uint8 | ~uint16 | ~uint32 | ~uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

var byteCodecs = map[string]byteCodec{
	"int8":    numericCodec(formatInt[int8]),
	"uint8":   numericCodec(formatUint[uint8]),
	"int16":   numericCodec(formatInt[int16]),
	"uint16":  numericCodec(formatUint[uint16]),
	"int32":   numericCodec(formatInt[int32]),
	"uint32":  numericCodec(formatUint[uint32]),
	"int64":   numericCodec(formatInt[int64]),
	"uint64":  numericCodec(formatUint[uint64]),
	"float32": numericCodec(func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }),
	"float64": numericCodec(func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }),
	"bool": {
		encode: func(s string, _ binconv.Order) ([]byte, error) {
			v, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a bool", convert.ErrInvalidFormat, s)
			}
			return binconv.BoolBytes(v), nil
		},
		decode: func(b []byte, _ binconv.Order) (string, error) {
			v, err := binconv.ToBool(b)
			if err != nil {
				return "", err
			}
			return convert.FormatBool(v, "true", "false"), nil
		},
	},
	// decimals always use the little-endian 16-byte layout
	"decimal": {
		encode: func(s string, _ binconv.Order) ([]byte, error) {
			d, err := decimal.Parse(s)
			if err != nil {
				return nil, err
			}
			return d.Bytes(), nil
		},
		decode: func(b []byte, _ binconv.Order) (string, error) {
			d, err := decimal.FromBytes(b)
			if err != nil {
				return "", err
			}
			return d.String(), nil
		},
	},
}

func byteTypes() string {
	names := make([]string, 0, len(byteCodecs))
	for n := range byteCodecs {
		names = append(names, n)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func newBytesCmd(a *app) *cobra.Command {
	var (
		order  string
		decode bool
	)
	cmd := &cobra.Command{
		Use:   "bytes <type> <value>",
		Short: "Show the binary representation of a number, or decode one with --decode",
		Long:  "Types: " + byteTypes() + ".",
		Example: `  ophite bytes int32 258
  ophite bytes --order little uint16 1
  ophite bytes --decode int32 00000102`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, ok := byteCodecs[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown type %q, want one of: %s", args[0], byteTypes())
			}
			o, err := binconv.ParseOrder(order)
			if err != nil {
				return err
			}

			if decode {
				raw, err := codec.HexDecode(strings.Join(strings.Fields(args[1]), ""), "", "")
				if err != nil {
					return err
				}
				s, err := bc.decode(raw, o)
				if err != nil {
					return err
				}
				writeln(cmd.OutOrStdout(), s)
				return nil
			}

			b, err := bc.encode(args[1], o)
			if err != nil {
				return err
			}
			hex := codec.HexEncode(b, codec.HexOptions{After: " ", Upper: a.settings.HexUpper})
			writeln(cmd.OutOrStdout(), strings.TrimSpace(hex))
			return nil
		},
	}
	cmd.Flags().StringVarP(&order, "order", "o", "big", "Byte order: big, little or native")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode hexadecimal bytes into a value")
	return cmd
}
