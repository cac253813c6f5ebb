package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/serial"
)

// documentFormats are the text formats that can hold an untyped document.
var documentFormats = []serial.Format{serial.JSON, serial.YAML, serial.TOML}

func parseDocumentFormat(name string) (serial.Format, error) {
	f, err := serial.ParseFormat(name)
	if err != nil {
		return 0, err
	}
	for _, df := range documentFormats {
		if f == df {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %s cannot hold an untyped document", serial.ErrUnknownFormat, f)
}

func newSerialCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "serial <document>",
		Short: "Convert a document between JSON, YAML and TOML",
		Example: `  ophite serial --to yaml '{"name":"ophite","tags":["a","b"]}'
  cat config.toml | ophite serial --from toml --to json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseDocumentFormat(from)
			if err != nil {
				return err
			}
			dst, err := parseDocumentFormat(to)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[0])
			if err != nil {
				return err
			}

			var doc any
			if err := serial.Unmarshal([]byte(text), src, &doc); err != nil {
				return err
			}
			out, err := serial.Marshal(doc, dst)
			if err != nil {
				return err
			}
			a.log.Debug("converted document",
				slog.String("from", src.String()),
				slog.String("to", dst.String()),
			)
			writeln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "Input format: json, yaml or toml")
	cmd.Flags().StringVar(&to, "to", "yaml", "Output format: json, yaml or toml")
	return cmd
}
