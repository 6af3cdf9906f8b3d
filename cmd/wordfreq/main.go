package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/dagkit/config"
	"github.com/kbukum/dagkit/logger"
	"github.com/kbukum/dagkit/observability"
	"github.com/kbukum/dagkit/pipeline"
	"github.com/kbukum/dagkit/textstat"
	"github.com/kbukum/dagkit/util"
	"github.com/kbukum/dagkit/version"
)

type flags struct {
	configFile  string
	envFile     string
	input       string
	column      string
	topN        int
	maxParallel int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordfreq:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "wordfreq",
		Short: "Rank token frequencies from a JSON records file",
		Long: `wordfreq loads a JSON array of records, extracts one column,
tokenizes it, and prints the most frequent tokens. The transform chain
runs as a dependency-ordered task pipeline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), &f)
		},
	}

	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", ".env file path")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "JSON records file")
	cmd.Flags().StringVar(&f.column, "column", "", "record field to tokenize")
	cmd.Flags().IntVarP(&f.topN, "top", "n", 0, "number of ranked tokens to print")
	cmd.Flags().IntVarP(&f.maxParallel, "max-parallel", "p", 0, "max concurrent tasks (0 = serial)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func run(ctx context.Context, f *flags) error {
	var opts []config.LoaderOption
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}

	var cfg Config
	if err := config.Load("wordfreq", &cfg, opts...); err != nil {
		return err
	}
	applyFlags(&cfg, f)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)
	log = log.WithComponent("wordfreq")

	if cfg.Tracing.Enabled {
		tc := observability.DefaultTracerConfig(cfg.Name)
		tc.ServiceVersion = version.Get().Version
		tc.Environment = cfg.Environment
		tc.Endpoint = cfg.Tracing.Endpoint
		tc.Insecure = cfg.Tracing.Insecure
		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			return err
		}
		defer tp.Shutdown(context.Background())
	}

	p, err := buildPipeline(&cfg, log)
	if err != nil {
		return err
	}

	var res *pipeline.Result
	if cfg.MaxParallel > 0 {
		res, err = p.RunConcurrent(ctx, cfg.MaxParallel)
	} else {
		res, err = p.Run(ctx)
	}
	if err != nil {
		return err
	}

	rank, _ := p.Lookup("rank")
	out, ok := res.Output(rank)
	if !ok {
		return fmt.Errorf("run %s produced no ranking", res.RunID)
	}
	printRanking(out.([]textstat.TokenCount))

	log.Info("done", logger.Fields(
		logger.FieldRunID, res.RunID,
		logger.FieldDuration, res.Duration.Milliseconds(),
	))
	return nil
}

func applyFlags(cfg *Config, f *flags) {
	cfg.Input = util.Coalesce(f.input, cfg.Input)
	cfg.Column = util.Coalesce(f.column, cfg.Column)
	cfg.TopN = util.Coalesce(f.topN, cfg.TopN)
	cfg.MaxParallel = util.Coalesce(f.maxParallel, cfg.MaxParallel)
}

func printRanking(ranking []textstat.TokenCount) {
	for _, tc := range ranking {
		fmt.Printf("%-24s %d\n", tc.Token, tc.Count)
	}
}
