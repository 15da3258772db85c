package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/varscope/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score every team and print the table",
	Long: `Load the team statistics table, compute the weighted VAR bias score for
every team, and print the scored table.

Each score combines four normalized terms: goal-decision balance, subjective
decision balance, net goal impact, and overturn volume. Normalizers are
table-wide maxima, so a score is only meaningful relative to the same table.

Examples:
  # Print the scored table
  varscope score

  # Highest bias first
  varscope score --sort

  # Export as CSV
  varscope score --format csv --output scores.csv

  # Score a different source file
  varscope score --source stats_2024.xlsx`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table, csv, or json")
	f.Bool("sort", false, "sort by bias score descending instead of source order")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	sortByScore, _ := cmd.Flags().GetBool("sort")

	if format != "table" && format != "csv" && format != "json" {
		return eris.Errorf("score: --format must be table, csv, or json (got %q)", format)
	}

	a, err := buildAnalyzer(cmd)
	if err != nil {
		return err
	}

	records := a.ScoredTable()
	if sortByScore {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].BiasScore > records[j].BiasScore
		})
	}

	zap.L().Info("score: table ready", zap.Int("teams", len(records)))

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "score: create output file %s", outputPath)
		}
		defer f.Close() //nolint:errcheck
		w = f
	}

	switch format {
	case "csv":
		return writeScoreCSV(w, records)
	case "json":
		return writeScoreJSON(w, records)
	default:
		return writeScoreTable(w, records)
	}
}

func writeScoreCSV(w io.Writer, records []model.TeamRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"team", "overturns", "net_goal_score", "subjective_for", "subjective_against", "bias_score"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "score: write CSV header")
	}

	for _, r := range records {
		row := []string{
			r.Team,
			fmt.Sprintf("%g", r.Overturns),
			fmt.Sprintf("%g", r.NetGoalScore),
			fmt.Sprintf("%g", r.SubjectiveDecisionsFor),
			fmt.Sprintf("%g", r.SubjectiveDecisionsAgainst),
			fmt.Sprintf("%.4f", r.BiasScore),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "score: write CSV row")
		}
	}
	return nil
}

func writeScoreJSON(w io.Writer, records []model.TeamRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return eris.Wrap(err, "score: encode JSON")
	}
	return nil
}

func writeScoreTable(w io.Writer, records []model.TeamRecord) error {
	header := fmt.Sprintf("%-24s %10s %9s %9s %10s %10s\n",
		"Team", "Overturns", "Net Goal", "Subj For", "Subj Agst", "Bias")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "score: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 76)); err != nil {
		return eris.Wrap(err, "score: write table separator")
	}

	for _, r := range records {
		name := r.Team
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		line := fmt.Sprintf("%-24s %10g %9g %9g %10g %10.4f\n",
			name, r.Overturns, r.NetGoalScore,
			r.SubjectiveDecisionsFor, r.SubjectiveDecisionsAgainst, r.BiasScore)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "score: write table row")
		}
	}
	return nil
}
