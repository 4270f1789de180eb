package dto

import "github.com/prepmint/examcore/internal/model"

type OptionDTO struct {
	ID    model.OptionID `json:"id" binding:"required"`
	Label string         `json:"label" binding:"required"`
}

// CreateQuestionRequest creates a question for a course's mock pool, or for
// a past-year paper when PaperID is set.
type CreateQuestionRequest struct {
	CourseID        uint           `json:"course_id" binding:"required"`
	PaperID         *uint          `json:"paper_id"`
	QuestionText    string         `json:"question_text" binding:"required"`
	Options         []OptionDTO    `json:"options" binding:"required,min=2,dive"`
	CorrectOptionID model.OptionID `json:"correct_option_id" binding:"required"`
	ImageURL        *string        `json:"image_url"`
	Difficulty      *string        `json:"difficulty"`
}

type CreateCourseRequest struct {
	Name        string `json:"course_name" binding:"required"`
	Description string `json:"description"`
}

type CreatePaperRequest struct {
	CourseID uint    `json:"course_id" binding:"required"`
	Year     int     `json:"year" binding:"required"`
	ExamDay  *string `json:"exam_day"`
	Title    string  `json:"title" binding:"required"`
}

// AnswerDTO is one submitted answer. The selected option id is canonicalized
// at unmarshal time, see model.OptionID.
type AnswerDTO struct {
	QuestionID       uint           `json:"question_id" binding:"required"`
	SelectedOptionID model.OptionID `json:"selected_option_id" binding:"required"`
}

type SubmitMockAttemptRequest struct {
	CourseID  uint        `json:"course_id" binding:"required"`
	StudentID uint        `json:"student_id" binding:"required"`
	Answers   []AnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

type SubmitPaperAttemptRequest struct {
	PaperID   uint        `json:"paper_id" binding:"required"`
	StudentID uint        `json:"student_id" binding:"required"`
	Answers   []AnswerDTO `json:"answers" binding:"required,min=1,dive"`
}
