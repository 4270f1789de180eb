package service

import "github.com/prepmint/examcore/internal/model"

// Scorer computes an attempt score from submitted answers and the
// authoritative correct-option mapping. It is pure: no store access, no
// randomness.
type Scorer interface {
	Score(correctOptions map[uint]model.OptionID, answers []model.Answer) int
}

type scorer struct{}

func NewScorer() Scorer {
	return &scorer{}
}

func (s *scorer) Score(correctOptions map[uint]model.OptionID, answers []model.Answer) int {
	score := 0
	for _, ans := range answers {
		correct, ok := correctOptions[ans.QuestionID]
		if !ok {
			// Unknown question ids come from stale or hostile clients and
			// must not fault the submission.
			continue
		}
		if ans.SelectedOptionID == correct {
			score++
		}
	}
	return score
}

// distinctAnswers keeps the first answer per question id. Submission APIs
// score each distinct question once, and the reduced id set also bounds the
// correct-option lookup.
func distinctAnswers(answers []model.Answer) []model.Answer {
	seen := make(map[uint]bool, len(answers))
	out := make([]model.Answer, 0, len(answers))
	for _, ans := range answers {
		if seen[ans.QuestionID] {
			continue
		}
		seen[ans.QuestionID] = true
		out = append(out, ans)
	}
	return out
}
