// Package scorer computes the per-team VAR bias score from a normalized
// statistics table.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Weights holds the four term weights of the bias formula.
type Weights struct {
	GoalsBias      float64 `yaml:"goals_bias" mapstructure:"goals_bias"`
	SubjectiveBias float64 `yaml:"subjective_bias" mapstructure:"subjective_bias"`
	NetGoalImpact  float64 `yaml:"net_goal_impact" mapstructure:"net_goal_impact"`
	Overturns      float64 `yaml:"overturns" mapstructure:"overturns"`
}

// DefaultWeights returns the standard weighting. Weights sum to 1.
func DefaultWeights() Weights {
	return Weights{
		GoalsBias:      0.3,
		SubjectiveBias: 0.2,
		NetGoalImpact:  0.3,
		Overturns:      0.2,
	}
}

// Sum returns the total of all term weights.
func (w Weights) Sum() float64 {
	return w.GoalsBias + w.SubjectiveBias + w.NetGoalImpact + w.Overturns
}

// ValidateWeights checks that a Weights value is internally consistent.
func ValidateWeights(w Weights) error {
	var errs []string

	named := map[string]float64{
		"goals_bias_weight":      w.GoalsBias,
		"subjective_bias_weight": w.SubjectiveBias,
		"net_goal_impact_weight": w.NetGoalImpact,
		"overturns_weight":       w.Overturns,
	}
	for name, v := range named {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	sum := w.Sum()
	if sum <= 0 {
		errs = append(errs, "weight sum must be > 0")
	}
	// Weights should be close to 1 (allow tolerance for floating-point).
	if math.Abs(sum-1) > 0.01 {
		errs = append(errs, fmt.Sprintf("weights should sum to 1, got %.3f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: weight validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
