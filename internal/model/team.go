// Package model defines the VAR statistics table types shared across the service.
package model

// Source column names, exactly as they appear in the input header.
const (
	ColTeam                       = "Team"
	ColOverturns                  = "Overturns"
	ColLeadingToGoalsFor          = "Leading to goals for"
	ColDisallowedGoalsFor         = "Disallowed goals for"
	ColLeadingToGoalsAgainst      = "Leading to goals against"
	ColDisallowedGoalsAgainst     = "Disallowed goals against"
	ColNetGoalScore               = "Net goal score"
	ColSubjectiveDecisionsFor     = "Subjective decisions for"
	ColSubjectiveDecisionsAgainst = "Subjective decisions against"
	ColNetSubjectiveScore         = "Net subjective score"
	ColBiasScore                  = "Bias Score"
)

// RequiredColumns lists every column the input header must contain.
func RequiredColumns() []string {
	return []string{
		ColTeam,
		ColOverturns,
		ColLeadingToGoalsFor,
		ColDisallowedGoalsFor,
		ColLeadingToGoalsAgainst,
		ColDisallowedGoalsAgainst,
		ColNetGoalScore,
		ColSubjectiveDecisionsFor,
		ColSubjectiveDecisionsAgainst,
		ColNetSubjectiveScore,
	}
}

// NumericColumns lists the source columns coerced to float64 during loading.
func NumericColumns() []string {
	return []string{
		ColOverturns,
		ColLeadingToGoalsFor,
		ColDisallowedGoalsFor,
		ColLeadingToGoalsAgainst,
		ColDisallowedGoalsAgainst,
		ColNetGoalScore,
		ColSubjectiveDecisionsFor,
		ColSubjectiveDecisionsAgainst,
		ColNetSubjectiveScore,
	}
}

// TeamRecord is one row of VAR-event aggregates for a single team.
// All numeric fields are finite after normalization; cells that were empty
// or unparseable in the source hold 0.
type TeamRecord struct {
	Team                       string  `json:"team"`
	Overturns                  float64 `json:"overturns"`
	LeadingToGoalsFor          float64 `json:"leading_to_goals_for"`
	DisallowedGoalsFor         float64 `json:"disallowed_goals_for"`
	LeadingToGoalsAgainst      float64 `json:"leading_to_goals_against"`
	DisallowedGoalsAgainst     float64 `json:"disallowed_goals_against"`
	NetGoalScore               float64 `json:"net_goal_score"`
	SubjectiveDecisionsFor     float64 `json:"subjective_decisions_for"`
	SubjectiveDecisionsAgainst float64 `json:"subjective_decisions_against"`
	NetSubjectiveScore         float64 `json:"net_subjective_score"`
	BiasScore                  float64 `json:"bias_score"`
}

// Value returns the named numeric column of the record. The second return
// is false for ColTeam or an unknown column name.
func (r TeamRecord) Value(column string) (float64, bool) {
	switch column {
	case ColOverturns:
		return r.Overturns, true
	case ColLeadingToGoalsFor:
		return r.LeadingToGoalsFor, true
	case ColDisallowedGoalsFor:
		return r.DisallowedGoalsFor, true
	case ColLeadingToGoalsAgainst:
		return r.LeadingToGoalsAgainst, true
	case ColDisallowedGoalsAgainst:
		return r.DisallowedGoalsAgainst, true
	case ColNetGoalScore:
		return r.NetGoalScore, true
	case ColSubjectiveDecisionsFor:
		return r.SubjectiveDecisionsFor, true
	case ColSubjectiveDecisionsAgainst:
		return r.SubjectiveDecisionsAgainst, true
	case ColNetSubjectiveScore:
		return r.NetSubjectiveScore, true
	case ColBiasScore:
		return r.BiasScore, true
	}
	return 0, false
}
