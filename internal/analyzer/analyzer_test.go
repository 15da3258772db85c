package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/varscope/internal/dataset"
	"github.com/sells-group/varscope/internal/model"
	"github.com/sells-group/varscope/internal/scorer"
)

func fixtureRecords() []model.TeamRecord {
	return []model.TeamRecord{
		{Team: "Arsenal", Overturns: 6, LeadingToGoalsFor: 5, DisallowedGoalsFor: 1,
			LeadingToGoalsAgainst: 2, NetGoalScore: 10, SubjectiveDecisionsFor: 8,
			SubjectiveDecisionsAgainst: 3, NetSubjectiveScore: 5},
		{Team: "Everton", Overturns: 2, LeadingToGoalsFor: 2, DisallowedGoalsFor: 2,
			LeadingToGoalsAgainst: 5, DisallowedGoalsAgainst: 1, NetGoalScore: -10,
			SubjectiveDecisionsFor: 3, SubjectiveDecisionsAgainst: 8, NetSubjectiveScore: -5},
		{Team: "Brighton"},
	}
}

func fixtureAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return FromRecords(fixtureRecords(), scorer.DefaultWeights())
}

func TestNew_LoadsScoresAndFreezes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.csv")
	data := "Team,Overturns,Leading to goals for,Disallowed goals for," +
		"Leading to goals against,Disallowed goals against,Net goal score," +
		"Subjective decisions for,Subjective decisions against,Net subjective score\n" +
		"Arsenal,6,5,1,2,0,10,8,3,5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	a, err := New(path, scorer.DefaultWeights())
	require.NoError(t, err)

	table := a.ScoredTable()
	require.Len(t, table, 1)
	assert.NotZero(t, table[0].BiasScore)
}

func TestNew_InvalidWeights(t *testing.T) {
	_, err := New("ignored.csv", scorer.Weights{})
	require.Error(t, err)
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv"), scorer.DefaultWeights())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_BadSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Team,Overturns\nArsenal,6\n"), 0o644))

	_, err := New(path, scorer.DefaultWeights())
	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestTeamNames_SourceOrder(t *testing.T) {
	a := fixtureAnalyzer(t)
	assert.Equal(t, []string{"Arsenal", "Everton", "Brighton"}, a.TeamNames())
}

func TestTeam_Lookup(t *testing.T) {
	a := fixtureAnalyzer(t)

	rec, err := a.Team("Everton")
	require.NoError(t, err)
	assert.Equal(t, "Everton", rec.Team)
	assert.Equal(t, -10.0, rec.NetGoalScore)
	assert.NotZero(t, rec.BiasScore)
}

func TestTeam_NotFound(t *testing.T) {
	a := fixtureAnalyzer(t)

	_, err := a.Team("Real Madrid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestTeam_DuplicateNameFirstWins(t *testing.T) {
	records := []model.TeamRecord{
		{Team: "Wolves", Overturns: 1},
		{Team: "Wolves", Overturns: 9},
	}
	a := FromRecords(records, scorer.DefaultWeights())

	rec, err := a.Team("Wolves")
	require.NoError(t, err)
	assert.Equal(t, 1.0, rec.Overturns)
}

func TestScoredTable_DefensiveCopy(t *testing.T) {
	a := fixtureAnalyzer(t)

	table := a.ScoredTable()
	table[0].Team = "mutated"
	table[0].BiasScore = 999

	again := a.ScoredTable()
	assert.Equal(t, "Arsenal", again[0].Team)
	assert.NotEqual(t, 999.0, again[0].BiasScore)

	names := a.TeamNames()
	names[0] = "mutated"
	assert.Equal(t, "Arsenal", a.TeamNames()[0])
}

func TestCorrelationMatrix(t *testing.T) {
	a := fixtureAnalyzer(t)

	columns := []string{model.ColOverturns, model.ColNetGoalScore, model.ColBiasScore}
	m, err := a.CorrelationMatrix(columns)
	require.NoError(t, err)
	require.Len(t, m, 3)

	for i := range m {
		assert.Equal(t, 1.0, m[i][i])
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}

	// More overturns track a higher bias score in this fixture.
	assert.Greater(t, m[0][2], 0.5)
}

func TestCorrelationMatrix_UnknownColumn(t *testing.T) {
	a := fixtureAnalyzer(t)

	_, err := a.CorrelationMatrix([]string{model.ColOverturns, "Stadium capacity"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stadium capacity")
}

func TestCorrelationMatrix_TeamColumnRejected(t *testing.T) {
	a := fixtureAnalyzer(t)

	_, err := a.CorrelationMatrix([]string{model.ColTeam})
	require.Error(t, err)
}
