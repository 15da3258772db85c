package scorer

import (
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/varscope/internal/model"
)

// maxima holds the table-wide normalizers, computed once before any row is
// scored. Every row's score depends on the full table through these values,
// so scores are only valid for the membership they were computed against.
type maxima struct {
	netGoal    float64 // signed max of Net goal score
	subjFor    float64 // max of Subjective decisions for
	absNetGoal float64 // max of |Net goal score|
	overturns  float64 // max of Overturns
}

func computeMaxima(records []model.TeamRecord) maxima {
	if len(records) == 0 {
		return maxima{}
	}
	m := maxima{
		netGoal:    records[0].NetGoalScore,
		subjFor:    records[0].SubjectiveDecisionsFor,
		absNetGoal: math.Abs(records[0].NetGoalScore),
		overturns:  records[0].Overturns,
	}
	for _, r := range records[1:] {
		if r.NetGoalScore > m.netGoal {
			m.netGoal = r.NetGoalScore
		}
		if r.SubjectiveDecisionsFor > m.subjFor {
			m.subjFor = r.SubjectiveDecisionsFor
		}
		if a := math.Abs(r.NetGoalScore); a > m.absNetGoal {
			m.absNetGoal = a
		}
		if r.Overturns > m.overturns {
			m.overturns = r.Overturns
		}
	}
	return m
}

// Score computes the bias score for every record and returns a new slice with
// the Bias Score column filled in. The input slice is not mutated; the result
// is the frozen, final table. Scoring is a pure function of the table contents.
func Score(records []model.TeamRecord, w Weights) []model.TeamRecord {
	scored := make([]model.TeamRecord, len(records))
	copy(scored, records)

	m := computeMaxima(records)
	for i := range scored {
		scored[i].BiasScore = scoreOne(scored[i], m, w)
	}

	if len(scored) > 0 {
		lo, hi := scored[0].BiasScore, scored[0].BiasScore
		for _, r := range scored[1:] {
			if r.BiasScore < lo {
				lo = r.BiasScore
			}
			if r.BiasScore > hi {
				hi = r.BiasScore
			}
		}
		zap.L().Info("scorer: bias scoring complete",
			zap.Int("teams", len(scored)),
			zap.Float64("min_score", lo),
			zap.Float64("max_score", hi),
		)
	}

	return scored
}

// scoreOne evaluates the weighted formula for a single row. A term whose
// table maximum is exactly 0 carries no signal and contributes 0; a negative
// signed maximum is divided by as-is.
func scoreOne(r model.TeamRecord, m maxima, w Weights) float64 {
	goalsBias := (r.LeadingToGoalsFor - r.DisallowedGoalsFor) -
		(r.LeadingToGoalsAgainst - r.DisallowedGoalsAgainst)
	subjectiveBias := r.SubjectiveDecisionsFor - r.SubjectiveDecisionsAgainst

	var score float64
	score += term(w.GoalsBias, goalsBias, m.netGoal)
	score += term(w.SubjectiveBias, subjectiveBias, m.subjFor)
	score += term(w.NetGoalImpact, r.NetGoalScore, m.absNetGoal)
	score += term(w.Overturns, r.Overturns, m.overturns)
	return score
}

func term(weight, numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return weight * numerator / denominator
}
