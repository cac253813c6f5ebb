package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/codec"
)

// textFormatFlag binds --format to a text encoding name.
func textFormatFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "format", "f", "utf8",
		"Text encoding: utf8, ascii, utf16le, utf16be, utf32, windows1252")
}

func newHexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Encode text to hexadecimal and back",
	}

	var (
		format, before, after string
		upper                 bool
	)
	encode := &cobra.Command{
		Use:   "encode <text>",
		Short: "Print the bytes of text as hexadecimal; - reads stdin",
		Example: `  ophite hex encode "Hi"
  ophite hex encode --before 0x --after " " --format utf16le "Hi"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := codec.ParseTextFormat(format)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := codec.EncodeText(text, tf)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("upper") {
				upper = a.settings.HexUpper
			}
			out := codec.HexEncode(b, codec.HexOptions{Before: before, After: after, Upper: upper})
			writeln(cmd.OutOrStdout(), strings.TrimSpace(out))
			return nil
		},
	}
	textFormatFlag(encode, &format)
	encode.Flags().StringVar(&before, "before", "", "Text written before every byte")
	encode.Flags().StringVar(&after, "after", "", "Text written after every byte")
	encode.Flags().BoolVarP(&upper, "upper", "u", false, "Upper-case digits (default from OPHITE_HEX_UPPER)")

	var decFormat, start, end string
	decode := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hexadecimal bytes to text",
		Example: `  ophite hex decode 4869
  ophite hex decode --start 0x "0x48 0x69"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := codec.ParseTextFormat(decFormat)
			if err != nil {
				return err
			}
			input := args[0]
			if start == "" && end == "" {
				input = strings.Join(strings.Fields(input), "")
			}
			b, err := codec.HexDecode(strings.TrimSpace(input), start, end)
			if err != nil {
				return err
			}
			s, err := codec.DecodeText(b, tf)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	textFormatFlag(decode, &decFormat)
	decode.Flags().StringVar(&start, "start", "", "Delimiter that opens every byte")
	decode.Flags().StringVar(&end, "end", "", "Delimiter that closes every byte")

	cmd.AddCommand(encode, decode)
	return cmd
}

func newBase64Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode text to standard base64 and back",
	}

	var encFormat string
	encode := &cobra.Command{
		Use:   "encode <text>",
		Short: "Print the bytes of text as base64; - reads stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := codec.ParseTextFormat(encFormat)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			b, err := codec.EncodeText(text, tf)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), codec.Base64Encode(b))
			return nil
		},
	}
	textFormatFlag(encode, &encFormat)

	var decFormat string
	decode := &cobra.Command{
		Use:   "decode <base64>",
		Short: "Decode base64 to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := codec.ParseTextFormat(decFormat)
			if err != nil {
				return err
			}
			b, err := codec.Base64Decode(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			s, err := codec.DecodeText(b, tf)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	textFormatFlag(decode, &decFormat)

	cmd.AddCommand(encode, decode)
	return cmd
}
