package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HIM72/dbsnp/internal/output"
)

func newFreqCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "freq <gene-id>",
		Short: "Fetch all frequency records overlapping a gene",
		Long: `Resolve a gene identifier to its chromosomal interval, then page through
the frequency service until the full result set is retrieved.`,
		Example: `  dbsnp freq 1716
  dbsnp freq --output-format json --output alas2.json 212`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFreq(cmd, args[0], outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output-format", "f", "tab", "Output format: tab, json")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runFreq(cmd *cobra.Command, geneID, outputFormat, outputFile string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	limiter := newLimiter()
	resolver := newResolver(logger, limiter)
	client := newFreqClient(logger, limiter)

	ctx := cmd.Context()

	loc, err := resolver.Resolve(ctx, geneID)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Gene %s spans %s (%d positions)\n", geneID, loc, loc.Length())

	recs, err := client.FetchAll(ctx, loc.Accession, loc.Start, loc.Stop)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Retrieved %d frequency records\n", len(recs))

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()
	}

	switch outputFormat {
	case "tab":
		tw := output.NewTabWriter(out)
		if err := tw.WriteHeader(); err != nil {
			return err
		}
		if err := tw.WriteAll(recs); err != nil {
			return err
		}
		return tw.Flush()
	case "json":
		return output.NewJSONWriter(out).WriteAll(recs)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}
