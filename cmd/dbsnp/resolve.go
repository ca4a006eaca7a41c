package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resolve <gene-id>",
		Short:   "Resolve a gene identifier to its chromosomal interval",
		Example: `  dbsnp resolve 1716`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			resolver := newResolver(logger, newLimiter())
			loc, err := resolver.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%d\t%d\n", loc.Accession, loc.Start, loc.Stop)
			return nil
		},
	}
}
