package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/prepmint/examcore/internal/dto"
	"github.com/prepmint/examcore/internal/model"
	"github.com/prepmint/examcore/internal/repository"
	"gorm.io/gorm"
)

func toModelAnswers(answers []dto.AnswerDTO) []model.Answer {
	out := make([]model.Answer, 0, len(answers))
	for _, ans := range answers {
		out = append(out, model.Answer{
			QuestionID:       ans.QuestionID,
			SelectedOptionID: ans.SelectedOptionID,
		})
	}
	return out
}

func questionIDs(answers []model.Answer) []uint {
	ids := make([]uint, 0, len(answers))
	for _, ans := range answers {
		ids = append(ids, ans.QuestionID)
	}
	return ids
}

// loadAttemptDetail fetches an attempt and the questions its answers
// reference, and merges each question with the selected option. Shared by
// the mock and past-year-paper review endpoints.
func loadAttemptDetail(
	attemptRepo repository.AttemptRepository,
	questionRepo repository.QuestionRepository,
	attemptID uint,
) (*dto.AttemptDetailResponse, error) {
	attempt, err := attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: attempt %d", model.ErrNotFound, attemptID)
		}
		return nil, fmt.Errorf("%w: reading attempt: %v", model.ErrPersistence, err)
	}

	questions, err := questionRepo.FindByIDs(questionIDs(attempt.Answers))
	if err != nil {
		return nil, fmt.Errorf("%w: reading attempt questions: %v", model.ErrPersistence, err)
	}

	answerByQuestion := make(map[uint]model.Answer, len(attempt.Answers))
	for _, ans := range attempt.Answers {
		if _, ok := answerByQuestion[ans.QuestionID]; !ok {
			answerByQuestion[ans.QuestionID] = ans
		}
	}

	details := make([]dto.AttemptQuestionDetail, 0, len(questions))
	for _, q := range questions {
		var detail dto.AttemptQuestionDetail
		copier.Copy(&detail.QuestionResponse, &q)
		if ans, ok := answerByQuestion[q.ID]; ok {
			selected := ans.SelectedOptionID
			detail.SelectedOptionID = &selected
			detail.IsCorrect = selected == q.CorrectOptionID
		}
		details = append(details, detail)
	}

	return &dto.AttemptDetailResponse{
		AttemptID:      attempt.ID,
		StudentID:      attempt.StudentID,
		CourseID:       attempt.CourseID,
		PaperID:        attempt.PaperID,
		Score:          attempt.Score,
		TotalQuestions: len(details),
		SubmittedAt:    attempt.SubmittedAt,
		Questions:      details,
	}, nil
}
