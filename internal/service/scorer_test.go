package service

import (
	"testing"

	"github.com/prepmint/examcore/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScoreCountsOnlyMatchingKnownQuestions(t *testing.T) {
	s := NewScorer()
	correct := map[uint]model.OptionID{1: "A", 2: "B"}
	answers := []model.Answer{
		{QuestionID: 1, SelectedOptionID: "A"},
		{QuestionID: 2, SelectedOptionID: "C"},
		{QuestionID: 3, SelectedOptionID: "A"}, // unknown question, worth nothing
	}

	assert.Equal(t, 1, s.Score(correct, answers))
}

func TestScoreEmptyAnswers(t *testing.T) {
	s := NewScorer()
	assert.Equal(t, 0, s.Score(map[uint]model.OptionID{1: "A"}, nil))
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer()
	correct := map[uint]model.OptionID{1: "A", 2: "B", 3: "C"}
	answers := []model.Answer{
		{QuestionID: 1, SelectedOptionID: "A"},
		{QuestionID: 2, SelectedOptionID: "B"},
		{QuestionID: 3, SelectedOptionID: "A"},
	}

	first := s.Score(correct, answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(correct, answers))
	}
}

func TestScoreNumericStyleIDs(t *testing.T) {
	s := NewScorer()
	// Option ids that arrived as JSON numbers are canonicalized to the same
	// string form as stored ones.
	correct := map[uint]model.OptionID{1: "2"}
	answers := []model.Answer{{QuestionID: 1, SelectedOptionID: "2"}}

	assert.Equal(t, 1, s.Score(correct, answers))
}

func TestDistinctAnswersKeepsFirstPerQuestion(t *testing.T) {
	answers := []model.Answer{
		{QuestionID: 1, SelectedOptionID: "A"},
		{QuestionID: 2, SelectedOptionID: "B"},
		{QuestionID: 1, SelectedOptionID: "C"},
		{QuestionID: 2, SelectedOptionID: "B"},
	}

	distinct := distinctAnswers(answers)
	assert.Equal(t, []model.Answer{
		{QuestionID: 1, SelectedOptionID: "A"},
		{QuestionID: 2, SelectedOptionID: "B"},
	}, distinct)
}
