package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/regex"
)

// errNoMatch makes "match" exit non-zero for a mismatch.
var errNoMatch = errors.New("no match")

func regexFlags(cmd *cobra.Command, ignoreCase *bool) {
	cmd.Flags().BoolVarP(ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
}

func regexOptions(ignoreCase bool) []regex.Option {
	if ignoreCase {
		return []regex.Option{regex.IgnoreCase()}
	}
	return nil
}

func nameList[T fmt.Stringer](items []T) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.String()
	}
	return strings.Join(names, ", ")
}

// readText returns arg, or all of stdin when arg is "-".
func readText(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func newMatchCmd(a *app) *cobra.Command {
	var ignoreCase bool
	var pattern bool
	cmd := &cobra.Command{
		Use:   "match <template> <text>",
		Short: "Check text against a template or, with --pattern, a regular expression",
		Long:  "Templates: " + nameList(regex.Templates()) + ".\nUse - as text to read stdin. Exits with an error when the text does not match.",
		Example: `  ophite match email user@example.com
  ophite match --pattern '^\d{3}$' 123`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args[1])
			if err != nil {
				return err
			}

			var ok bool
			if pattern {
				ok, err = a.engine.MatchPattern(text, args[0], regexOptions(ignoreCase)...)
			} else {
				var t regex.Template
				if t, err = regex.ParseTemplate(args[0]); err != nil {
					return err
				}
				ok, err = a.engine.Match(text, t, regexOptions(ignoreCase)...)
			}
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), ok)
			if !ok {
				return errNoMatch
			}
			return nil
		},
	}
	regexFlags(cmd, &ignoreCase)
	cmd.Flags().BoolVarP(&pattern, "pattern", "p", false, "Treat the first argument as a regular expression")
	return cmd
}

func newModifyCmd(a *app) *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "modify <modification> <text>",
		Short: "Rewrite text with a predefined modification",
		Long:  "Modifications: " + nameList(regex.Modifications()) + ".\nUse - as text to read stdin.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := regex.ParseModification(args[0])
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[1])
			if err != nil {
				return err
			}
			out, err := a.engine.Modify(text, m, regexOptions(ignoreCase)...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			if !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	regexFlags(cmd, &ignoreCase)
	return cmd
}

func newExtractCmd(a *app) *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "extract <extraction> <text>",
		Short: "Print every occurrence of a predefined pattern, one per line",
		Long:  "Extractions: " + nameList(regex.Extractions()) + ".\nUse - as text to read stdin.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := regex.ParseExtraction(args[0])
			if err != nil {
				return err
			}
			text, err := readText(cmd, args[1])
			if err != nil {
				return err
			}
			found, err := a.engine.Extract(text, x, regexOptions(ignoreCase)...)
			if err != nil {
				return err
			}
			a.log.Debug("extracted", slog.Int("count", len(found)))
			for _, s := range found {
				writeln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	regexFlags(cmd, &ignoreCase)
	return cmd
}
