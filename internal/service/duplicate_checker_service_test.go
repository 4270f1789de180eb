package service

import (
	"testing"

	"github.com/prepmint/examcore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateNormalizedMatch(t *testing.T) {
	repo := &fakeQuestionRepo{questions: []model.Question{
		{ID: 1, CourseID: 1, QuestionText: "what is the capital of france?"},
	}}
	checker := NewDuplicateChecker(repo)

	dup, err := checker.IsDuplicate(1, "  What is  the capital Of France?  ")
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestIsDuplicateScopedToCourse(t *testing.T) {
	repo := &fakeQuestionRepo{questions: []model.Question{
		{ID: 1, CourseID: 1, QuestionText: "what is the capital of france?"},
	}}
	checker := NewDuplicateChecker(repo)

	dup, err := checker.IsDuplicate(2, "what is the capital of france?")
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestIsDuplicateIncludesPaperQuestions(t *testing.T) {
	paperID := uint(7)
	repo := &fakeQuestionRepo{questions: []model.Question{
		{ID: 1, CourseID: 1, PaperID: &paperID, QuestionText: "define entropy"},
	}}
	checker := NewDuplicateChecker(repo)

	// The gate scopes on the course, not just the mock pool.
	dup, err := checker.IsDuplicate(1, "Define Entropy")
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestIsDuplicateReadFailure(t *testing.T) {
	checker := NewDuplicateChecker(&fakeQuestionRepo{failReads: true})

	_, err := checker.IsDuplicate(1, "anything")
	require.ErrorIs(t, err, model.ErrPersistence)
}

func TestNormalizeQuestionText(t *testing.T) {
	cases := map[string]string{
		"  What is  the capital Of France?  ": "what is the capital of france?",
		"plain":                               "plain",
		"Tabs\tand\nnewlines":                 "tabs and newlines",
		"":                                    "",
		"   ":                                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeQuestionText(in), "input %q", in)
	}
}
