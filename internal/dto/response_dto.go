package dto

import (
	"time"

	"github.com/prepmint/examcore/internal/model"
)

type QuestionResponse struct {
	ID              uint           `json:"id"`
	CourseID        uint           `json:"course_id"`
	PaperID         *uint          `json:"paper_id,omitempty"`
	QuestionText    string         `json:"question_text"`
	Options         []OptionDTO    `json:"options"`
	CorrectOptionID model.OptionID `json:"correct_option_id"`
	ImageURL        *string        `json:"image_url,omitempty"`
	Difficulty      *string        `json:"difficulty,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// MockTestResponse is the ephemeral sampled test for one session. It is
// never persisted; every request produces a fresh selection.
type MockTestResponse struct {
	CourseID       uint               `json:"course_id"`
	TotalQuestions int                `json:"total_questions"`
	Questions      []QuestionResponse `json:"questions"`
}

type CourseResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"course_name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaperResponse struct {
	ID        uint      `json:"id"`
	CourseID  uint      `json:"course_id"`
	Year      int       `json:"year"`
	ExamDay   *string   `json:"exam_day,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type AttemptResponse struct {
	ID          uint        `json:"id"`
	StudentID   uint        `json:"student_id"`
	CourseID    uint        `json:"course_id"`
	PaperID     *uint       `json:"paper_id,omitempty"`
	Answers     []AnswerDTO `json:"answers"`
	Score       int         `json:"score"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

type AttemptSummaryResponse struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"course_id"`
	PaperID     *uint     `json:"paper_id,omitempty"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// AttemptQuestionDetail merges a question with what the student selected.
type AttemptQuestionDetail struct {
	QuestionResponse
	SelectedOptionID *model.OptionID `json:"selected_option_id"`
	IsCorrect        bool            `json:"is_correct"`
}

type AttemptDetailResponse struct {
	AttemptID      uint                    `json:"attempt_id"`
	StudentID      uint                    `json:"student_id"`
	CourseID       uint                    `json:"course_id"`
	PaperID        *uint                   `json:"paper_id,omitempty"`
	Score          int                     `json:"score"`
	TotalQuestions int                     `json:"total_questions"`
	SubmittedAt    time.Time               `json:"submitted_at"`
	Questions      []AttemptQuestionDetail `json:"questions"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
