package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/random"
)

func newShuffleCmd(a *app) *cobra.Command {
	var (
		seed int64
		pick bool
	)
	cmd := &cobra.Command{
		Use:   "shuffle <item>...",
		Short: "Print the items in random order",
		Long:  "Print the items in random order. The seed comes from --seed, then OPHITE_SEED, then the clock.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := a.rnd
			if cmd.Flags().Changed("seed") {
				src = random.New(seed)
			}
			items := append([]string(nil), args...)
			if pick {
				v, _ := random.Pick(src, items)
				writeln(cmd.OutOrStdout(), v)
				return nil
			}
			random.Shuffle(src, items)
			writeln(cmd.OutOrStdout(), strings.Join(items, " "))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible order")
	cmd.Flags().BoolVar(&pick, "pick", false, "Print one random item instead")
	return cmd
}
