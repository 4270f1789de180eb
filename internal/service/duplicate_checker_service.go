package service

import (
	"fmt"
	"strings"

	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
)

// DuplicateChecker is the pre-insert gate of the question-authoring path.
// It compares normalized text against every existing question of the same
// course, reading the full set through the paged accessor rather than a
// single bounded page.
type DuplicateChecker interface {
	IsDuplicate(courseID uint, questionText string) (bool, error)
}

type duplicateChecker struct {
	questionRepo repository.QuestionRepository
}

func NewDuplicateChecker(questionRepo repository.QuestionRepository) DuplicateChecker {
	return &duplicateChecker{questionRepo: questionRepo}
}

func (c *duplicateChecker) IsDuplicate(courseID uint, questionText string) (bool, error) {
	existing, err := c.questionRepo.FindAllByCourseID(courseID)
	if err != nil {
		return false, fmt.Errorf("%w: reading course questions: %v", model.ErrPersistence, err)
	}
	candidate := normalizeQuestionText(questionText)
	for _, q := range existing {
		if normalizeQuestionText(q.QuestionText) == candidate {
			return true, nil
		}
	}
	return false, nil
}

// normalizeQuestionText trims, collapses internal whitespace runs to a
// single space and lowercases, so cosmetic differences do not create
// distinct questions. Exact match only; no fuzzy matching.
func normalizeQuestionText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
