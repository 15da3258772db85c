package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/varscope/internal/analyzer"
	"github.com/sells-group/varscope/internal/monitoring"
)

// buildAnalyzer runs the startup pipeline: load the source table, score it,
// and freeze the result. Every command works off the analyzer it returns.
func buildAnalyzer(cmd *cobra.Command) (*analyzer.Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, _ := cmd.Flags().GetString("source")
	if source == "" {
		source = cfg.Source.Path
	}

	a, err := analyzer.New(source, cfg.Scorer.Weights)
	if err != nil {
		return nil, err
	}

	table := a.ScoredTable()
	if len(table) > 0 {
		lo, hi := table[0].BiasScore, table[0].BiasScore
		for _, r := range table[1:] {
			if r.BiasScore < lo {
				lo = r.BiasScore
			}
			if r.BiasScore > hi {
				hi = r.BiasScore
			}
		}
		monitoring.ObserveTable(len(table), lo, hi)
	}

	return a, nil
}

func init() {
	rootCmd.PersistentFlags().String("source", "", "input file path (default from config)")
}
