package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HIM72/dbsnp/internal/frequency"
	"github.com/HIM72/dbsnp/internal/gene"
	"github.com/HIM72/dbsnp/internal/ratelimit"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dbsnp",
		Short: "Fetch dbSNP allele frequency records by gene",
		Long: `dbsnp resolves a gene identifier to its chromosomal interval via the
NCBI E-utilities summary service, then pages through the dbSNP
frequency-by-interval service until every overlapping record is retrieved.`,
		Example: `  dbsnp resolve 1716             # where is gene 1716?
  dbsnp freq 1716                # fetch all frequency records for gene 1716
  dbsnp freq -f json -o out.json 1716`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newFreqCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig wires viper: ~/.dbsnp.yaml, DBSNP_* environment overrides, and
// defaults matching the public NCBI endpoints.
func initConfig() error {
	viper.SetDefault("eutils.base_url", gene.DefaultBaseURL)
	viper.SetDefault("frequency.base_url", frequency.DefaultBaseURL)
	viper.SetDefault("frequency.max_pages", frequency.DefaultMaxPages)
	viper.SetDefault("ratelimit.min_interval_seconds", 1.0)

	viper.SetEnvPrefix("DBSNP")
	// Nested keys map to underscored env vars: eutils.base_url is
	// overridden by DBSNP_EUTILS_BASE_URL.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}
	viper.SetConfigFile(filepath.Join(home, ".dbsnp.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}
	return nil
}

// newLogger builds the CLI logger: debug-level development output with
// --verbose, otherwise nothing.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// newLimiter builds the shared call pacer from config. Both the locator call
// and every pagination request go through the same limiter.
func newLimiter() *ratelimit.Limiter {
	seconds := viper.GetFloat64("ratelimit.min_interval_seconds")
	return ratelimit.New(time.Duration(seconds * float64(time.Second)))
}

// newResolver builds the gene locator from config.
func newResolver(logger *zap.Logger, limiter *ratelimit.Limiter) *gene.Resolver {
	r := gene.NewResolver(viper.GetString("eutils.base_url"))
	r.SetLogger(logger)
	r.SetLimiter(limiter)
	return r
}

// newFreqClient builds the frequency paginator from config.
func newFreqClient(logger *zap.Logger, limiter *ratelimit.Limiter) *frequency.Client {
	c := frequency.NewClient(viper.GetString("frequency.base_url"))
	c.SetLogger(logger)
	c.SetLimiter(limiter)
	c.SetMaxPages(viper.GetInt("frequency.max_pages"))
	return c
}
