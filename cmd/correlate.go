package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/varscope/internal/model"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Print the Pearson correlation matrix of numeric columns",
	Long: `Compute pairwise Pearson correlation across the requested numeric columns
over the full scored table.

Column names match the source header, e.g. "Overturns" or "Net goal score";
"Bias Score" is also available.

Examples:
  varscope correlate
  varscope correlate --columns "Overturns,Net goal score,Bias Score"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, _ := cmd.Flags().GetString("columns")

		columns := splitAndTrim(raw)
		if len(columns) == 0 {
			// Default mirrors the dashboard's heatmap view.
			columns = []string{
				model.ColOverturns,
				model.ColLeadingToGoalsFor,
				model.ColDisallowedGoalsFor,
				model.ColNetGoalScore,
				model.ColSubjectiveDecisionsFor,
			}
		}

		a, err := buildAnalyzer(cmd)
		if err != nil {
			return err
		}

		matrix, err := a.CorrelationMatrix(columns)
		if err != nil {
			return eris.Wrap(err, "correlate")
		}

		printCorrelationMatrix(columns, matrix)
		return nil
	},
}

func printCorrelationMatrix(columns []string, matrix [][]float64) {
	const cell = 10

	fmt.Printf("%-28s", "")
	for _, col := range columns {
		fmt.Printf(" %*s", cell, truncate(col, cell))
	}
	fmt.Println()

	for i, col := range columns {
		fmt.Printf("%-28s", truncate(col, 28))
		for j := range columns {
			fmt.Printf(" %*.*f", cell, 3, matrix[i][j])
		}
		fmt.Println()
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}

func init() {
	correlateCmd.Flags().String("columns", "", "comma-separated column names (default: the heatmap set)")
	rootCmd.AddCommand(correlateCmd)
}
