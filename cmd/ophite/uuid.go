package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ophite/pkg/random"
)

func newUUIDCmd(a *app) *cobra.Command {
	var (
		seed  int64
		count int
	)
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print version 4 UUIDs",
		Long:  "Print version 4 UUIDs. With --seed or OPHITE_SEED the sequence is reproducible.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := a.rnd
			if cmd.Flags().Changed("seed") {
				src = random.New(seed)
			}
			for range max(count, 1) {
				writeln(cmd.OutOrStdout(), random.UUID(src))
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible sequence")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs")
	return cmd
}
