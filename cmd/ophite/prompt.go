package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/console"
)

func newPromptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for a value on the terminal and print it back",
	}

	var (
		question string
		once     bool
		color    string
	)
	flags := func(c *cobra.Command) {
		c.Flags().StringVarP(&question, "question", "q", "> ", "Prompt text")
		c.Flags().BoolVar(&once, "once", false, "Fail on invalid input instead of asking again")
		c.Flags().StringVar(&color, "color", "", "Print the answer in this color (e.g. green, dark-cyan)")
	}

	newConsole := func(cmd *cobra.Command) *console.Console {
		return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), console.WithLogger(a.log))
	}

	// answer prints v, colored when --color is set.
	answer := func(c *console.Console, v any) error {
		if color == "" {
			return c.Printf("%v\n", v)
		}
		fg, err := console.ParseColor(color)
		if err != nil {
			return err
		}
		return c.Colorln(fmtAny(v), fg, console.Black)
	}

	intCmd := &cobra.Command{
		Use:   "int",
		Short: "Read an integer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newConsole(cmd)
			read := c.ReadIntLoop
			if once {
				read = c.ReadInt
			}
			v, err := read(question)
			if err != nil {
				return err
			}
			return answer(c, v)
		},
	}
	flags(intCmd)

	floatCmd := &cobra.Command{
		Use:   "float",
		Short: "Read a decimal number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newConsole(cmd)
			read := c.ReadFloatLoop
			if once {
				read = c.ReadFloat
			}
			v, err := read(question)
			if err != nil {
				return err
			}
			return answer(c, v)
		},
	}
	flags(floatCmd)

	stringCmd := &cobra.Command{
		Use:   "string",
		Short: "Read a line of text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newConsole(cmd)
			v, err := c.ReadString(question)
			if err != nil {
				return err
			}
			return answer(c, v)
		},
	}
	flags(stringCmd)

	cmd.AddCommand(intCmd, floatCmd, stringCmd)
	return cmd
}

func fmtAny(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
