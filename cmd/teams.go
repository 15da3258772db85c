package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/varscope/internal/model"
)

var teamsCmd = &cobra.Command{
	Use:   "teams [NAME]",
	Short: "List team names, or show one team's scored record",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildAnalyzer(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			for _, name := range a.TeamNames() {
				fmt.Println(name)
			}
			return nil
		}

		rec, err := a.Team(args[0])
		if err != nil {
			return eris.Wrapf(err, "teams: %q", args[0])
		}
		printTeamRecord(rec)
		return nil
	},
}

func printTeamRecord(r model.TeamRecord) {
	fmt.Printf("Team:                         %s\n", r.Team)
	fmt.Printf("Overturns:                    %g\n", r.Overturns)
	fmt.Printf("Leading to goals for:         %g\n", r.LeadingToGoalsFor)
	fmt.Printf("Disallowed goals for:         %g\n", r.DisallowedGoalsFor)
	fmt.Printf("Leading to goals against:     %g\n", r.LeadingToGoalsAgainst)
	fmt.Printf("Disallowed goals against:     %g\n", r.DisallowedGoalsAgainst)
	fmt.Printf("Net goal score:               %g\n", r.NetGoalScore)
	fmt.Printf("Subjective decisions for:     %g\n", r.SubjectiveDecisionsFor)
	fmt.Printf("Subjective decisions against: %g\n", r.SubjectiveDecisionsAgainst)
	fmt.Printf("Net subjective score:         %g\n", r.NetSubjectiveScore)
	fmt.Printf("Bias score:                   %.4f\n", r.BiasScore)
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}
