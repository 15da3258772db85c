// Package analyzer builds the scored VAR table and exposes the read-only
// query surface consumed by the CLI and the HTTP API.
package analyzer

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/varscope/internal/dataset"
	"github.com/sells-group/varscope/internal/model"
	"github.com/sells-group/varscope/internal/scorer"
	"github.com/sells-group/varscope/internal/stats"
)

// ErrTeamNotFound is returned by Team for an unknown team name.
var ErrTeamNotFound = eris.New("analyzer: team not found")

// Analyzer holds the scored table. It is constructed once at startup by the
// load → score → freeze pipeline and never mutated afterwards, so concurrent
// readers need no locking.
type Analyzer struct {
	records []model.TeamRecord
	names   []string
	index   map[string]int
}

// New loads the table from path, scores it with the given weights, and
// returns the frozen analyzer.
func New(path string, w scorer.Weights) (*Analyzer, error) {
	if err := scorer.ValidateWeights(w); err != nil {
		return nil, err
	}
	records, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return FromRecords(records, w), nil
}

// FromRecords scores an already normalized table and freezes it.
func FromRecords(records []model.TeamRecord, w scorer.Weights) *Analyzer {
	scored := scorer.Score(records, w)

	names := make([]string, 0, len(scored))
	index := make(map[string]int, len(scored))
	for i, r := range scored {
		names = append(names, r.Team)
		// First occurrence wins on duplicate team names.
		if _, ok := index[r.Team]; !ok {
			index[r.Team] = i
		}
	}

	return &Analyzer{records: scored, names: names, index: index}
}

// ScoredTable returns a copy of the full scored table in source order.
func (a *Analyzer) ScoredTable() []model.TeamRecord {
	out := make([]model.TeamRecord, len(a.records))
	copy(out, a.records)
	return out
}

// TeamNames returns the team identifiers in source order, one per row.
func (a *Analyzer) TeamNames() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Team looks up a single record by team name.
func (a *Analyzer) Team(name string) (model.TeamRecord, error) {
	i, ok := a.index[name]
	if !ok {
		return model.TeamRecord{}, eris.Wrapf(ErrTeamNotFound, "%q", name)
	}
	return a.records[i], nil
}

// CorrelationMatrix computes the pairwise Pearson correlation of the
// requested numeric columns over the full table. Column names must match the
// source header (Bias Score included); an unknown name is an error.
func (a *Analyzer) CorrelationMatrix(columns []string) ([][]float64, error) {
	series := make([][]float64, len(columns))
	for ci, col := range columns {
		values := make([]float64, len(a.records))
		for ri, r := range a.records {
			v, ok := r.Value(col)
			if !ok {
				return nil, eris.Errorf("analyzer: unknown numeric column %q", col)
			}
			values[ri] = v
		}
		series[ci] = values
	}
	return stats.CorrelationMatrix(series), nil
}
