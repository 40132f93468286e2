package scoring_test

import (
	"errors"
	"testing"

	"workload_survey/internal/model"
	"workload_survey/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitX = []model.Aircraft{{Label: "X", IDSuffix: "x"}}

// twoQuestions is the worked example: two questions with one weight-10 section each.
func twoQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Text: "q1", Sections: []model.Section{model.NewSection("1a", "a", "A", 10, unitX)}},
		{ID: 2, Text: "q2", Sections: []model.Section{model.NewSection("2a", "a", "A", 10, unitX)}},
	}
}

func fullScores(questions []model.Question, rating int) map[string]int {
	scores := map[string]int{}
	for _, q := range questions {
		for _, id := range q.ItemIDs() {
			scores[id] = rating
		}
	}
	return scores
}

func TestTotalScore_WorkedExample(t *testing.T) {
	qs := twoQuestions()
	scores := map[string]int{"1a_x": 5, "2a_x": 5}

	total, err := scoring.TotalScore(qs, scores)
	require.NoError(t, err)
	assert.Equal(t, 100, total)
	assert.Equal(t, 100, scoring.AircraftScore(qs, scores, "x"))
}

func TestTotalScore_UniformRatingTimesWeightSum(t *testing.T) {
	qs := model.DefaultQuestions()
	for r := 1; r <= 5; r++ {
		total, err := scoring.TotalScore(qs, fullScores(qs, r))
		require.NoError(t, err)
		assert.Equal(t, r*100, total, "rating %d", r)
	}
}

func TestTotalScore_UsesSectionMean(t *testing.T) {
	aircraft := []model.Aircraft{{Label: "A", IDSuffix: "a"}, {Label: "B", IDSuffix: "b"}, {Label: "C", IDSuffix: "c"}}
	qs := []model.Question{{ID: 1, Sections: []model.Section{model.NewSection("1a", "a", "S", 7, aircraft)}}}

	// mean = (1+2+2)/3 = 1.666..., * 7 = 11.666... -> 12
	total, err := scoring.TotalScore(qs, map[string]int{"1a_a": 1, "1a_b": 2, "1a_c": 2})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestTotalScore_RoundsHalfUp(t *testing.T) {
	aircraft := []model.Aircraft{{Label: "A", IDSuffix: "a"}, {Label: "B", IDSuffix: "b"}}
	qs := []model.Question{{ID: 1, Sections: []model.Section{model.NewSection("1a", "a", "S", 5, aircraft)}}}

	// mean = 1.5, * 5 = 7.5 -> 8
	total, err := scoring.TotalScore(qs, map[string]int{"1a_a": 1, "1a_b": 2})
	require.NoError(t, err)
	assert.Equal(t, 8, total)
}

func TestTotalScore_MissingRating(t *testing.T) {
	qs := twoQuestions()
	_, err := scoring.TotalScore(qs, map[string]int{"1a_x": 5})

	require.Error(t, err)
	assert.True(t, errors.Is(err, scoring.ErrMissingRating))
	var mr *scoring.MissingRatingError
	require.True(t, errors.As(err, &mr))
	assert.Equal(t, "2a_x", mr.ItemID)
}

func TestTotalScore_EmptySectionContributesNothing(t *testing.T) {
	qs := twoQuestions()
	qs[0].Sections = append(qs[0].Sections, model.Section{ID: "1b", Label: "b", SectionWeight: 50})

	total, err := scoring.TotalScore(qs, map[string]int{"1a_x": 5, "2a_x": 5})
	require.NoError(t, err)
	assert.Equal(t, 100, total)
}

func TestAircraftScore_MissingItemCountsAsZero(t *testing.T) {
	qs := twoQuestions()
	assert.Equal(t, 30, scoring.AircraftScore(qs, map[string]int{"1a_x": 3}, "x"))
	assert.Equal(t, 0, scoring.AircraftScore(qs, map[string]int{"1a_x": 3}, "y"))
}

func TestAircraftScore_InvariantUnderSectionOrder(t *testing.T) {
	qs := model.DefaultQuestions()
	scores := map[string]int{}
	for i, q := range qs {
		for j, id := range q.ItemIDs() {
			scores[id] = (i+j)%5 + 1
		}
	}

	reordered := model.CloneQuestions(qs)
	for i, j := 0, len(reordered)-1; i < j; i, j = i+1, j-1 {
		reordered[i], reordered[j] = reordered[j], reordered[i]
	}
	for _, q := range reordered {
		for i, j := 0, len(q.Sections)-1; i < j; i, j = i+1, j-1 {
			q.Sections[i], q.Sections[j] = q.Sections[j], q.Sections[i]
		}
	}

	for _, a := range model.DefaultAircraft {
		assert.Equal(t,
			scoring.AircraftScore(qs, scores, a.IDSuffix),
			scoring.AircraftScore(reordered, scores, a.IDSuffix),
			"aircraft %s", a.Label)
	}
}
